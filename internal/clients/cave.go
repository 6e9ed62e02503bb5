package clients

import (
	"context"
	"fmt"
	"net/http"
)

// CaveClient calls the cave service
type CaveClient struct {
	*Client
}

// NewCaveClient creates a cave service client
func NewCaveClient(baseURL, token string) *CaveClient {
	return &CaveClient{Client: NewClient(baseURL, token, DefaultRetryPolicy)}
}

// GetCave fetches the display summary of a cave
func (c *CaveClient) GetCave(ctx context.Context, caveID uint) (*CaveSummary, error) {
	var cave CaveSummary
	status, err := c.doJSON(ctx, http.MethodGet, fmt.Sprintf("/caves/%d", caveID), nil, nil, &cave)
	if err != nil {
		return nil, err
	}
	if status != http.StatusOK {
		return nil, fmt.Errorf("cave %d lookup returned status %d", caveID, status)
	}
	return &cave, nil
}

// FallbackCaveName is the degraded display value used when the cave
// service cannot be reached
func FallbackCaveName(caveID uint) string {
	return fmt.Sprintf("Cave #%d", caveID)
}
