package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"cavemap-backend/internal/clients"
	"cavemap-backend/internal/database/models"
	apperrors "cavemap-backend/internal/errors"
	"cavemap-backend/internal/logger"
	"cavemap-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

// MemberService handles business logic for group membership
type MemberService struct {
	groups     repository.GroupRepositoryInterface
	members    repository.MemberRepositoryInterface
	userClient clients.UserServiceClient
	validator  *validator.Validate
	log        *logger.Logger
}

// NewMemberService creates a new member service
func NewMemberService(
	groups repository.GroupRepositoryInterface,
	members repository.MemberRepositoryInterface,
	userClient clients.UserServiceClient,
	validator *validator.Validate,
) *MemberService {
	return &MemberService{
		groups:     groups,
		members:    members,
		userClient: userClient,
		validator:  validator,
		log:        logger.New(),
	}
}

// AddMemberRequest represents the data needed to add a member directly
type AddMemberRequest struct {
	UserEmail string `json:"user_email" validate:"required,email"`
	Role      string `json:"role" validate:"omitempty,oneof=admin member"`
}

// UpdateMemberRoleRequest represents a role change for a member
type UpdateMemberRoleRequest struct {
	Role string `json:"role" validate:"required,oneof=owner admin member"`
}

// AddMember enrolls a user into a group. Only admins may add members, and
// the owner role can never be granted this way.
func (s *MemberService) AddMember(ctx context.Context, groupID uint, req *AddMemberRequest, actorEmail string) (*MemberResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	if err := s.ensureGroupActive(groupID); err != nil {
		return nil, err
	}
	if err := s.requireAdmin(groupID, actorEmail); err != nil {
		return nil, err
	}

	role := models.MemberRole(req.Role)
	if req.Role == "" {
		role = models.MemberRoleMember
	}
	return s.enroll(ctx, groupID, req.UserEmail, role)
}

// JoinGroup lets a user enroll themselves into an open group
func (s *MemberService) JoinGroup(ctx context.Context, groupID uint, userEmail string) (*MemberResponse, error) {
	group, err := s.groups.GetByID(groupID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrGroupNotFound
		}
		return nil, err
	}
	if group.JoinPolicy != models.JoinPolicyOpen {
		return nil, apperrors.ErrGroupNotOpenForJoining
	}
	return s.enroll(ctx, groupID, userEmail, models.MemberRoleMember)
}

// ListMembers lists the roster of a group. The caller must be a member.
func (s *MemberService) ListMembers(ctx context.Context, groupID uint, actorEmail string) ([]MemberResponse, error) {
	if err := s.ensureGroupActive(groupID); err != nil {
		return nil, err
	}
	if _, err := s.members.GetByGroupAndEmail(groupID, actorEmail); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotGroupMember
		}
		return nil, err
	}

	members, err := s.members.ListByGroup(groupID)
	if err != nil {
		return nil, err
	}
	return s.enrichMembers(ctx, members), nil
}

// UpdateMemberRole changes a member's role. Admins may move members
// between admin and member; only an owner may touch the owner role, and
// the last owner can never be demoted.
func (s *MemberService) UpdateMemberRole(groupID, memberID uint, req *UpdateMemberRoleRequest, actorEmail string) (*MemberResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	newRole := models.MemberRole(req.Role)
	if !newRole.IsValid() {
		return nil, apperrors.ErrInvalidRole
	}

	if err := s.ensureGroupActive(groupID); err != nil {
		return nil, err
	}

	member, err := s.getGroupMember(groupID, memberID)
	if err != nil {
		return nil, err
	}

	requiredRole := models.MemberRoleAdmin
	if member.Role == models.MemberRoleOwner || newRole == models.MemberRoleOwner {
		requiredRole = models.MemberRoleOwner
	}
	if err := s.requireRole(groupID, actorEmail, requiredRole); err != nil {
		return nil, err
	}

	if member.Role == models.MemberRoleOwner && newRole != models.MemberRoleOwner {
		owners, err := s.members.CountOwners(groupID)
		if err != nil {
			return nil, err
		}
		if owners <= 1 {
			return nil, apperrors.ErrSoleOwner
		}
	}

	member.Role = newRole
	if err := s.members.Update(member); err != nil {
		return nil, err
	}
	s.log.Infof("member %d in group %d set to role %s by %s", memberID, groupID, newRole, actorEmail)

	resp := s.enrichMembers(context.Background(), []models.GroupMember{*member})
	return &resp[0], nil
}

// RemoveMember removes a member from a group. Admins may remove regular
// members, owners may remove anyone, and a member may always remove
// themselves unless they are the last owner.
func (s *MemberService) RemoveMember(groupID, memberID uint, actorEmail string) error {
	if err := s.ensureGroupActive(groupID); err != nil {
		return err
	}

	member, err := s.getGroupMember(groupID, memberID)
	if err != nil {
		return err
	}

	if member.UserEmail != actorEmail {
		requiredRole := models.MemberRoleAdmin
		if member.Role != models.MemberRoleMember {
			requiredRole = models.MemberRoleOwner
		}
		if err := s.requireRole(groupID, actorEmail, requiredRole); err != nil {
			return err
		}
	}

	if member.Role == models.MemberRoleOwner {
		owners, err := s.members.CountOwners(groupID)
		if err != nil {
			return err
		}
		if owners <= 1 {
			return apperrors.ErrSoleOwner
		}
	}

	if err := s.members.Delete(memberID); err != nil {
		return err
	}
	s.log.Infof("member %d (%s) removed from group %d by %s", memberID, member.UserEmail, groupID, actorEmail)
	return nil
}

// LeaveGroup removes the acting user from a group
func (s *MemberService) LeaveGroup(groupID uint, actorEmail string) error {
	if err := s.ensureGroupActive(groupID); err != nil {
		return err
	}

	member, err := s.members.GetByGroupAndEmail(groupID, actorEmail)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrNotGroupMember
		}
		return err
	}
	return s.RemoveMember(groupID, member.MemberID, actorEmail)
}

func (s *MemberService) enroll(ctx context.Context, groupID uint, email string, role models.MemberRole) (*MemberResponse, error) {
	if role == models.MemberRoleOwner || !role.IsValid() {
		return nil, apperrors.ErrInvalidRole
	}

	if _, err := s.members.GetByGroupAndEmail(groupID, email); err == nil {
		return nil, apperrors.ErrMemberExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	member := &models.GroupMember{
		GroupID:   groupID,
		UserEmail: email,
		Role:      role,
		JoinedAt:  time.Now().UTC(),
	}
	if err := s.members.Create(member); err != nil {
		return nil, err
	}
	s.log.Infof("%s joined group %d as %s", email, groupID, role)

	resp := s.enrichMembers(ctx, []models.GroupMember{*member})
	return &resp[0], nil
}

func (s *MemberService) ensureGroupActive(groupID uint) error {
	if _, err := s.groups.GetByID(groupID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrGroupNotFound
		}
		return err
	}
	return nil
}

func (s *MemberService) getGroupMember(groupID, memberID uint) (*models.GroupMember, error) {
	member, err := s.members.GetByID(memberID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrMemberNotFound
		}
		return nil, err
	}
	if member.GroupID != groupID {
		return nil, apperrors.ErrMemberNotFound
	}
	return member, nil
}

func (s *MemberService) requireAdmin(groupID uint, actorEmail string) error {
	return s.requireRole(groupID, actorEmail, models.MemberRoleAdmin)
}

func (s *MemberService) requireRole(groupID uint, actorEmail string, role models.MemberRole) error {
	member, err := s.members.GetByGroupAndEmail(groupID, actorEmail)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrNotGroupMember
		}
		return err
	}
	if member.Role.Priority() < role.Priority() {
		if role == models.MemberRoleOwner {
			return apperrors.ErrOwnerRequired
		}
		return apperrors.ErrAdminRequired
	}
	return nil
}

// enrichMembers attaches display usernames to a roster, degrading to the
// email local part when the user service is unreachable
func (s *MemberService) enrichMembers(ctx context.Context, members []models.GroupMember) []MemberResponse {
	emails := make([]string, 0, len(members))
	for i := range members {
		emails = append(emails, members[i].UserEmail)
	}

	usernames, err := s.userClient.LookupUsernames(ctx, emails)
	if err != nil {
		s.log.WithError(err).Warn("username lookup failed, falling back to emails")
		usernames = nil
	}

	responses := make([]MemberResponse, 0, len(members))
	for i := range members {
		username, ok := usernames[members[i].UserEmail]
		if !ok || username == "" {
			username = clients.FallbackUsername(members[i].UserEmail)
		}
		responses = append(responses, MemberResponse{
			MemberID:  members[i].MemberID,
			UserEmail: members[i].UserEmail,
			Username:  username,
			Role:      string(members[i].Role),
			JoinedAt:  members[i].JoinedAt,
		})
	}
	return responses
}
