package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"cavemap-backend/internal/clients"
	"cavemap-backend/internal/database/models"
	apperrors "cavemap-backend/internal/errors"
	"cavemap-backend/internal/events"
	"cavemap-backend/internal/logger"
	"cavemap-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

// InheritanceAction values returned by the inheritance query
const (
	InheritanceActionTransfer = "transfer"
	InheritanceActionDelete   = "delete"
)

// AssignmentService handles cave-to-group assignments and answers the
// cave service's inheritance and permission queries
type AssignmentService struct {
	assignments repository.AssignmentRepositoryInterface
	members     repository.MemberRepositoryInterface
	groups      repository.GroupRepositoryInterface
	caveClient  clients.CaveServiceClient
	userClient  clients.UserServiceClient
	validator   *validator.Validate
	log         *logger.Logger
}

// NewAssignmentService creates a new assignment service
func NewAssignmentService(
	assignments repository.AssignmentRepositoryInterface,
	members repository.MemberRepositoryInterface,
	groups repository.GroupRepositoryInterface,
	caveClient clients.CaveServiceClient,
	userClient clients.UserServiceClient,
	validator *validator.Validate,
) *AssignmentService {
	return &AssignmentService{
		assignments: assignments,
		members:     members,
		groups:      groups,
		caveClient:  caveClient,
		userClient:  userClient,
		validator:   validator,
		log:         logger.New(),
	}
}

// AssignCaveRequest represents the data needed to assign a cave to a group
type AssignCaveRequest struct {
	CaveID uint `json:"cave_id" validate:"required"`
}

// CaveAssignmentResponse represents a cave assignment enriched for display
type CaveAssignmentResponse struct {
	ID         uint      `json:"id"`
	GroupID    uint      `json:"group_id"`
	CaveID     uint      `json:"cave_id"`
	CaveName   string    `json:"cave_name"`
	AssignedAt time.Time `json:"assigned_at"`
	AssignedBy string    `json:"assigned_by"`
}

// InheritanceDecisionResponse answers the cave service's inheritance query
type InheritanceDecisionResponse struct {
	Action       string `json:"action"`
	InheritEmail string `json:"inherit_email,omitempty"`
}

// CavePermissionResponse answers the permission query for a cave
type CavePermissionResponse struct {
	CanEdit bool `json:"can_edit"`
}

// AssignCave assigns a cave to a group. The actor must be a group admin,
// and a cave may be assigned to at most one group globally.
func (s *AssignmentService) AssignCave(ctx context.Context, groupID uint, req *AssignCaveRequest, actorEmail string) (*CaveAssignmentResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	if _, err := s.groups.GetByID(groupID); err != nil {
		return nil, apperrors.ErrGroupNotFound
	}
	if err := s.requireAdmin(groupID, actorEmail); err != nil {
		return nil, err
	}

	if _, err := s.assignments.GetByCaveID(req.CaveID); err == nil {
		return nil, apperrors.ErrCaveAssignedToGroup
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	assignment := &models.GroupCave{
		GroupID:    groupID,
		CaveID:     req.CaveID,
		AssignedAt: time.Now().UTC(),
		AssignedBy: actorEmail,
	}
	if err := s.assignments.Create(assignment); err != nil {
		return nil, err
	}

	return s.toResponse(ctx, assignment), nil
}

// ListGroupCaves lists the caves assigned to a group. The actor must be a
// member of the group.
func (s *AssignmentService) ListGroupCaves(ctx context.Context, groupID uint, actorEmail string) ([]CaveAssignmentResponse, error) {
	if _, err := s.groups.GetByID(groupID); err != nil {
		return nil, apperrors.ErrGroupNotFound
	}
	if _, err := s.members.GetByGroupAndEmail(groupID, actorEmail); err != nil {
		return nil, apperrors.ErrNotGroupMember
	}

	assignments, err := s.assignments.ListByGroup(groupID)
	if err != nil {
		return nil, err
	}

	responses := make([]CaveAssignmentResponse, 0, len(assignments))
	for i := range assignments {
		responses = append(responses, *s.toResponse(ctx, &assignments[i]))
	}
	return responses, nil
}

// GetCaveGroup returns the assignment of a cave, if any
func (s *AssignmentService) GetCaveGroup(ctx context.Context, caveID uint) (*CaveAssignmentResponse, error) {
	assignment, err := s.assignments.GetByCaveID(caveID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrAssignmentNotFound
		}
		return nil, err
	}
	return s.toResponse(ctx, assignment), nil
}

// UnassignCave removes a cave from a group. Requires admin privileges.
func (s *AssignmentService) UnassignCave(groupID, caveID uint, actorEmail string) error {
	if _, err := s.groups.GetByID(groupID); err != nil {
		return apperrors.ErrGroupNotFound
	}
	if err := s.requireAdmin(groupID, actorEmail); err != nil {
		return err
	}

	assignment, err := s.assignments.GetByGroupAndCave(groupID, caveID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrAssignmentNotFound
		}
		return err
	}
	return s.assignments.Delete(assignment.ID)
}

// DeleteAssignmentsForCave removes every assignment referencing a cave.
// Called by the cave service after a deletion and by the cave.deleted
// consumer; removing assignments that are already gone is a no-op, so the
// operation is safe under event re-delivery.
func (s *AssignmentService) DeleteAssignmentsForCave(caveID uint) (int64, error) {
	removed, err := s.assignments.DeleteByCaveID(caveID)
	if err != nil {
		return 0, err
	}
	if removed == 0 {
		s.log.Infof("no group assignments found for cave %d", caveID)
	} else {
		s.log.Infof("deleted %d group assignments for cave %d", removed, caveID)
	}
	return removed, nil
}

// HandleCaveDeletedEvent drops the assignments of a cave that no longer
// exists. The event may also arrive for caves that were never assigned,
// or again after the internal cleanup endpoint already ran; both cases
// end as no-ops.
func (s *AssignmentService) HandleCaveDeletedEvent(ctx context.Context, body []byte) error {
	var event events.CaveDeletedEvent
	if err := json.Unmarshal(body, &event); err != nil {
		return fmt.Errorf("malformed cave.deleted payload: %w", err)
	}
	if event.CaveID == 0 {
		return fmt.Errorf("cave.deleted payload missing caveId")
	}
	_, err := s.DeleteAssignmentsForCave(event.CaveID)
	return err
}

// ResolveCaveInheritance decides what happens to a cave whose current
// owner is being removed: transfer to the best-ranked member of the
// cave's group(s), or delete when no candidate remains. A cave is
// assigned to at most one group, but the resolution tolerates zero or
// several.
func (s *AssignmentService) ResolveCaveInheritance(caveID uint, currentOwnerEmail string) (*InheritanceDecisionResponse, error) {
	groupIDs, err := s.assignments.GroupIDsForCave(caveID)
	if err != nil {
		return nil, err
	}

	members, err := s.members.ListByGroups(groupIDs)
	if err != nil {
		return nil, err
	}

	inheritor := SelectCaveInheritor(members, currentOwnerEmail)
	if inheritor == nil {
		return &InheritanceDecisionResponse{Action: InheritanceActionDelete}, nil
	}
	return &InheritanceDecisionResponse{
		Action:       InheritanceActionTransfer,
		InheritEmail: inheritor.UserEmail,
	}, nil
}

// CheckCavePermission reports whether a user may edit a cave through group
// membership: the cave must be assigned to a group the user belongs to
func (s *AssignmentService) CheckCavePermission(caveID uint, userEmail string) (*CavePermissionResponse, error) {
	assignment, err := s.assignments.GetByCaveID(caveID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &CavePermissionResponse{CanEdit: false}, nil
		}
		return nil, err
	}

	if _, err := s.members.GetByGroupAndEmail(assignment.GroupID, userEmail); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &CavePermissionResponse{CanEdit: false}, nil
		}
		return nil, err
	}
	return &CavePermissionResponse{CanEdit: true}, nil
}

func (s *AssignmentService) requireAdmin(groupID uint, email string) error {
	membership, err := s.members.GetByGroupAndEmail(groupID, email)
	if err != nil {
		return apperrors.ErrAdminRequired
	}
	if membership.Role != models.MemberRoleAdmin && membership.Role != models.MemberRoleOwner {
		return apperrors.ErrAdminRequired
	}
	return nil
}

// toResponse enriches an assignment with the cave name and the assigner's
// username. Lookup failures degrade to the raw values; display enrichment
// never fails the request.
func (s *AssignmentService) toResponse(ctx context.Context, assignment *models.GroupCave) *CaveAssignmentResponse {
	caveName := clients.FallbackCaveName(assignment.CaveID)
	if cave, err := s.caveClient.GetCave(ctx, assignment.CaveID); err == nil {
		caveName = cave.Name
	} else {
		s.log.WithError(err).Warnf("failed to fetch cave %d", assignment.CaveID)
	}

	assignedBy := clients.FallbackUsername(assignment.AssignedBy)
	if usernames, err := s.userClient.LookupUsernames(ctx, []string{assignment.AssignedBy}); err == nil {
		if name, ok := usernames[assignment.AssignedBy]; ok {
			assignedBy = name
		}
	} else {
		s.log.WithError(err).Warnf("failed to look up username for %s", assignment.AssignedBy)
	}

	return &CaveAssignmentResponse{
		ID:         assignment.ID,
		GroupID:    assignment.GroupID,
		CaveID:     assignment.CaveID,
		CaveName:   caveName,
		AssignedAt: assignment.AssignedAt,
		AssignedBy: assignedBy,
	}
}
