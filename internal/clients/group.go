package clients

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

// GroupClient calls the group service's internal endpoints
type GroupClient struct {
	*Client
}

// NewGroupClient creates a group service client
func NewGroupClient(baseURL, token string) *GroupClient {
	return &GroupClient{Client: NewClient(baseURL, token, DefaultRetryPolicy)}
}

// CaveInheritance queries the group service for the inheritance decision
// of a cave whose owner is being removed
func (c *GroupClient) CaveInheritance(ctx context.Context, caveID uint, currentOwnerEmail string) (*InheritanceDecision, error) {
	query := url.Values{"current_owner_email": []string{currentOwnerEmail}}

	var decision InheritanceDecision
	status, err := c.doJSON(ctx, http.MethodGet,
		fmt.Sprintf("/groups/caves/%d/inheritance", caveID), query, nil, &decision)
	if err != nil {
		return nil, err
	}
	if status != http.StatusOK {
		return nil, fmt.Errorf("inheritance query for cave %d returned status %d", caveID, status)
	}
	return &decision, nil
}

// DeleteCaveAssignments removes all group assignments referencing a cave
func (c *GroupClient) DeleteCaveAssignments(ctx context.Context, caveID uint) error {
	status, err := c.doJSON(ctx, http.MethodDelete,
		fmt.Sprintf("/caves/%d/assignments", caveID), nil, nil, nil)
	if err != nil {
		return err
	}
	if status != http.StatusNoContent && status != http.StatusOK {
		return fmt.Errorf("assignment cleanup for cave %d returned status %d", caveID, status)
	}
	return nil
}

// CheckCavePermission asks whether a user may edit a cave. The result
// gates an authorization decision, so callers fail closed on error.
func (c *GroupClient) CheckCavePermission(ctx context.Context, caveID uint, userEmail string) (bool, error) {
	var result struct {
		CanEdit bool `json:"can_edit"`
	}
	status, err := c.doJSON(ctx, http.MethodGet,
		fmt.Sprintf("/caves/%d/permissions/%s", caveID, url.PathEscape(userEmail)), nil, nil, &result)
	if err != nil {
		return false, err
	}
	if status != http.StatusOK {
		return false, fmt.Errorf("permission check for cave %d returned status %d", caveID, status)
	}
	return result.CanEdit, nil
}
