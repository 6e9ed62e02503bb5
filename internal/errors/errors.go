package errors

import (
	"errors"
	"fmt"
)

// NotFoundError represents an error when an entity is not found
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// Is enables errors.Is() comparison for NotFoundError
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// AlreadyExistsError represents an error when an entity already exists
type AlreadyExistsError struct {
	Entity  string
	Context string // Additional context like "in this group"
}

func (e *AlreadyExistsError) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("%s already exists %s", e.Entity, e.Context)
	}
	return fmt.Sprintf("%s already exists", e.Entity)
}

// Is enables errors.Is() comparison for AlreadyExistsError
func (e *AlreadyExistsError) Is(target error) bool {
	t, ok := target.(*AlreadyExistsError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// AuthenticationError represents authentication-related errors
type AuthenticationError struct {
	Message string
}

func (e *AuthenticationError) Error() string {
	return e.Message
}

// AuthorizationError represents authorization-related errors
type AuthorizationError struct {
	Message string
}

func (e *AuthorizationError) Error() string {
	return e.Message
}

// Entity Not Found Errors
var (
	ErrCaveNotFound        = &NotFoundError{Entity: "cave"}
	ErrGroupNotFound       = &NotFoundError{Entity: "group"}
	ErrMemberNotFound      = &NotFoundError{Entity: "group member"}
	ErrInvitationNotFound  = &NotFoundError{Entity: "invitation"}
	ErrApplicationNotFound = &NotFoundError{Entity: "application"}
	ErrAssignmentNotFound  = &NotFoundError{Entity: "cave assignment"}
	ErrMediaFileNotFound   = &NotFoundError{Entity: "media file"}
)

// Already Exists Errors
var (
	ErrGroupExists              = &AlreadyExistsError{Entity: "group", Context: "with this name"}
	ErrMemberExists             = &AlreadyExistsError{Entity: "group member", Context: "in this group"}
	ErrPendingInvitationExists  = &AlreadyExistsError{Entity: "pending invitation", Context: "for this user"}
	ErrPendingApplicationExists = &AlreadyExistsError{Entity: "pending application", Context: "for this user"}
	ErrCaveAssignedToGroup      = &AlreadyExistsError{Entity: "cave assignment", Context: "for this cave"}
)

// Business Logic Errors
var (
	ErrSoleOwner               = errors.New("cannot remove or demote the only owner of a group; transfer ownership first")
	ErrNotGroupMember          = errors.New("user is not a member of this group")
	ErrInvitationNotPending    = errors.New("invitation has already been responded to")
	ErrApplicationNotPending   = errors.New("application has already been reviewed")
	ErrGroupNotOpenForJoining  = errors.New("group does not accept this join method")
	ErrInvalidRole             = errors.New("invalid member role")
	ErrInvalidJoinPolicy       = errors.New("invalid join policy")
	ErrInvalidPaginationParams = errors.New("invalid pagination parameters")
)

// Authentication and Authorization Errors
var (
	ErrAdminRequired   = &AuthorizationError{Message: "admin privileges required"}
	ErrOwnerRequired   = &AuthorizationError{Message: "owner privileges required"}
	ErrEditNotAllowed  = &AuthorizationError{Message: "you do not have permission to edit this cave"}
	ErrInvalidToken    = &AuthenticationError{Message: "invalid or missing token"}
	ErrServiceOnly     = &AuthenticationError{Message: "endpoint restricted to internal services"}
	ErrEmailNotInToken = &AuthenticationError{Message: "user email not found in token"}
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsAlreadyExists checks if an error is an AlreadyExistsError
func IsAlreadyExists(err error) bool {
	var existsErr *AlreadyExistsError
	return errors.As(err, &existsErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsAuthentication checks if an error is an AuthenticationError
func IsAuthentication(err error) bool {
	var authErr *AuthenticationError
	return errors.As(err, &authErr)
}

// IsAuthorization checks if an error is an AuthorizationError
func IsAuthorization(err error) bool {
	var authzErr *AuthorizationError
	return errors.As(err, &authzErr)
}

// NewNotFoundError creates a new NotFoundError for a custom entity
func NewNotFoundError(entity string) error {
	return &NotFoundError{Entity: entity}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewAuthorizationError creates a new AuthorizationError
func NewAuthorizationError(message string) error {
	return &AuthorizationError{Message: message}
}
