package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"cavemap-backend/internal/database/models"
	apperrors "cavemap-backend/internal/errors"
	"cavemap-backend/internal/logger"
	"cavemap-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

// invitationTTL is how long an invitation stays answerable
const invitationTTL = 7 * 24 * time.Hour

// InvitationService handles business logic for group invitations
type InvitationService struct {
	groups      repository.GroupRepositoryInterface
	members     repository.MemberRepositoryInterface
	invitations repository.InvitationRepositoryInterface
	validator   *validator.Validate
	log         *logger.Logger
}

// NewInvitationService creates a new invitation service
func NewInvitationService(
	groups repository.GroupRepositoryInterface,
	members repository.MemberRepositoryInterface,
	invitations repository.InvitationRepositoryInterface,
	validator *validator.Validate,
) *InvitationService {
	return &InvitationService{
		groups:      groups,
		members:     members,
		invitations: invitations,
		validator:   validator,
		log:         logger.New(),
	}
}

// CreateInvitationRequest represents the data needed to invite a user
type CreateInvitationRequest struct {
	InviteeEmail string `json:"invitee_email" validate:"required,email"`
	Role         string `json:"role" validate:"omitempty,oneof=admin member"`
}

// RespondInvitationRequest represents the invitee's answer
type RespondInvitationRequest struct {
	Accept bool `json:"accept"`
}

// InvitationResponse represents the response data for an invitation
type InvitationResponse struct {
	InvitationID uint       `json:"invitation_id"`
	GroupID      uint       `json:"group_id"`
	GroupName    string     `json:"group_name,omitempty"`
	InviterEmail string     `json:"inviter_email"`
	InviteeEmail string     `json:"invitee_email"`
	Role         string     `json:"role"`
	Status       string     `json:"status"`
	CreatedAt    time.Time  `json:"created_at"`
	ExpiresAt    *time.Time `json:"expires_at,omitempty"`
	RespondedAt  *time.Time `json:"responded_at,omitempty"`
}

// InviteUser creates a pending invitation. Only admins may invite, the
// invitee must not already be a member, and at most one pending
// invitation per (group, invitee) pair exists.
func (s *InvitationService) InviteUser(groupID uint, req *CreateInvitationRequest, inviterEmail string) (*InvitationResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	group, err := s.groups.GetByID(groupID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrGroupNotFound
		}
		return nil, err
	}

	inviter, err := s.members.GetByGroupAndEmail(groupID, inviterEmail)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotGroupMember
		}
		return nil, err
	}
	if inviter.Role.Priority() < models.MemberRoleAdmin.Priority() {
		return nil, apperrors.ErrAdminRequired
	}

	if _, err := s.members.GetByGroupAndEmail(groupID, req.InviteeEmail); err == nil {
		return nil, apperrors.ErrMemberExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	if _, err := s.invitations.GetPending(groupID, req.InviteeEmail); err == nil {
		return nil, apperrors.ErrPendingInvitationExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	role := models.MemberRole(req.Role)
	if req.Role == "" {
		role = models.MemberRoleMember
	}

	expiresAt := time.Now().UTC().Add(invitationTTL)
	invitation := &models.GroupInvitation{
		GroupID:      groupID,
		InviterEmail: inviterEmail,
		InviteeEmail: req.InviteeEmail,
		Role:         role,
		Status:       models.InvitationStatusPending,
		ExpiresAt:    &expiresAt,
	}
	if err := s.invitations.Create(invitation); err != nil {
		return nil, err
	}
	s.log.Infof("%s invited %s to group %d as %s", inviterEmail, req.InviteeEmail, groupID, role)

	return toInvitationResponse(invitation, group.Name), nil
}

// ListGroupInvitations lists a group's invitations. Admins only.
func (s *InvitationService) ListGroupInvitations(groupID uint, actorEmail string) ([]InvitationResponse, error) {
	group, err := s.groups.GetByID(groupID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrGroupNotFound
		}
		return nil, err
	}

	actor, err := s.members.GetByGroupAndEmail(groupID, actorEmail)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotGroupMember
		}
		return nil, err
	}
	if actor.Role.Priority() < models.MemberRoleAdmin.Priority() {
		return nil, apperrors.ErrAdminRequired
	}

	invitations, err := s.invitations.ListByGroup(groupID)
	if err != nil {
		return nil, err
	}

	responses := make([]InvitationResponse, 0, len(invitations))
	for i := range invitations {
		responses = append(responses, *toInvitationResponse(&invitations[i], group.Name))
	}
	return responses, nil
}

// ListMyInvitations lists the invitations addressed to the acting user
func (s *InvitationService) ListMyInvitations(actorEmail string) ([]InvitationResponse, error) {
	invitations, err := s.invitations.ListByInvitee(actorEmail)
	if err != nil {
		return nil, err
	}

	responses := make([]InvitationResponse, 0, len(invitations))
	for i := range invitations {
		groupName := ""
		if invitations[i].Group != nil {
			groupName = invitations[i].Group.Name
		}
		responses = append(responses, *toInvitationResponse(&invitations[i], groupName))
	}
	return responses, nil
}

// RespondToInvitation records the invitee's answer. Accepting a pending,
// unexpired invitation enrolls the invitee with the invited role; an
// expired invitation is marked as such and cannot be accepted.
func (s *InvitationService) RespondToInvitation(ctx context.Context, invitationID uint, req *RespondInvitationRequest, actorEmail string) (*InvitationResponse, error) {
	invitation, err := s.invitations.GetByID(invitationID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrInvitationNotFound
		}
		return nil, err
	}
	if invitation.InviteeEmail != actorEmail {
		return nil, apperrors.ErrInvitationNotFound
	}
	if invitation.Status != models.InvitationStatusPending {
		return nil, apperrors.ErrInvitationNotPending
	}

	now := time.Now().UTC()
	if invitation.ExpiresAt != nil && now.After(*invitation.ExpiresAt) {
		invitation.Status = models.InvitationStatusExpired
		if err := s.invitations.Update(invitation); err != nil {
			return nil, err
		}
		return nil, apperrors.ErrInvitationNotPending
	}

	if req.Accept {
		if _, err := s.members.GetByGroupAndEmail(invitation.GroupID, actorEmail); err == nil {
			return nil, apperrors.ErrMemberExists
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		member := &models.GroupMember{
			GroupID:   invitation.GroupID,
			UserEmail: actorEmail,
			Role:      invitation.Role,
			JoinedAt:  now,
		}
		if err := s.members.Create(member); err != nil {
			return nil, err
		}
		invitation.Status = models.InvitationStatusAccepted
	} else {
		invitation.Status = models.InvitationStatusDeclined
	}
	invitation.RespondedAt = &now

	if err := s.invitations.Update(invitation); err != nil {
		return nil, err
	}
	s.log.Infof("invitation %d %s by %s", invitationID, invitation.Status, actorEmail)

	groupName := ""
	if invitation.Group != nil {
		groupName = invitation.Group.Name
	}
	return toInvitationResponse(invitation, groupName), nil
}

func toInvitationResponse(inv *models.GroupInvitation, groupName string) *InvitationResponse {
	return &InvitationResponse{
		InvitationID: inv.InvitationID,
		GroupID:      inv.GroupID,
		GroupName:    groupName,
		InviterEmail: inv.InviterEmail,
		InviteeEmail: inv.InviteeEmail,
		Role:         string(inv.Role),
		Status:       string(inv.Status),
		CreatedAt:    inv.CreatedAt,
		ExpiresAt:    inv.ExpiresAt,
		RespondedAt:  inv.RespondedAt,
	}
}
