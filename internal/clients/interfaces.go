package clients

import (
	"context"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/client_mocks.go -package=mocks

// InheritanceAction is the group service's verdict on a cave whose owner
// is being removed
type InheritanceAction string

const (
	ActionTransfer InheritanceAction = "transfer"
	ActionDelete   InheritanceAction = "delete"
)

// InheritanceDecision is the response of the inheritance query
type InheritanceDecision struct {
	Action       InheritanceAction `json:"action"`
	InheritEmail string            `json:"inherit_email,omitempty"`
}

// CaveSummary is the subset of a cave record other services care about
type CaveSummary struct {
	CaveID     uint   `json:"cave_id"`
	Name       string `json:"name"`
	OwnerEmail string `json:"owner_email"`
}

// GroupServiceClient is the cave and media services' view of the group service
type GroupServiceClient interface {
	// CaveInheritance asks who should inherit a cave when its current
	// owner goes away.
	CaveInheritance(ctx context.Context, caveID uint, currentOwnerEmail string) (*InheritanceDecision, error)

	// DeleteCaveAssignments removes all group assignments of a cave.
	DeleteCaveAssignments(ctx context.Context, caveID uint) error

	// CheckCavePermission reports whether a user may edit a cave through
	// group membership. Callers must treat an error as a denial.
	CheckCavePermission(ctx context.Context, caveID uint, userEmail string) (bool, error)
}

// UserServiceClient is the view of the external user service
type UserServiceClient interface {
	// LookupUsernames resolves emails to display usernames. On failure the
	// caller degrades to showing the raw email.
	LookupUsernames(ctx context.Context, emails []string) (map[string]string, error)
}

// CaveServiceClient is the group service's view of the cave service
type CaveServiceClient interface {
	// GetCave fetches the display summary of a cave.
	GetCave(ctx context.Context, caveID uint) (*CaveSummary, error)
}
