package clients

import (
	"context"
	"fmt"
	"net/http"
	"strings"
)

// UserClient calls the external user service
type UserClient struct {
	*Client
}

// NewUserClient creates a user service client
func NewUserClient(baseURL, token string) *UserClient {
	return &UserClient{Client: NewClient(baseURL, token, DefaultRetryPolicy)}
}

// LookupUsernames resolves emails to display usernames in one call
func (c *UserClient) LookupUsernames(ctx context.Context, emails []string) (map[string]string, error) {
	if len(emails) == 0 {
		return map[string]string{}, nil
	}

	body := struct {
		Emails []string `json:"emails"`
	}{Emails: emails}

	usernames := map[string]string{}
	status, err := c.doJSON(ctx, http.MethodPost, "/users/lookup", nil, body, &usernames)
	if err != nil {
		return nil, err
	}
	if status != http.StatusOK {
		return nil, fmt.Errorf("username lookup returned status %d", status)
	}
	return usernames, nil
}

// FallbackUsername is the degraded display value used when the user
// service cannot be reached: the local part of the email.
func FallbackUsername(email string) string {
	if at := strings.Index(email, "@"); at > 0 {
		return email[:at]
	}
	return email
}
