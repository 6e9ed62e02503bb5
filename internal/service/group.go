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

// GroupService handles business logic for expedition groups
type GroupService struct {
	groups     repository.GroupRepositoryInterface
	members    repository.MemberRepositoryInterface
	userClient clients.UserServiceClient
	validator  *validator.Validate
	log        *logger.Logger
}

// NewGroupService creates a new group service
func NewGroupService(
	groups repository.GroupRepositoryInterface,
	members repository.MemberRepositoryInterface,
	userClient clients.UserServiceClient,
	validator *validator.Validate,
) *GroupService {
	return &GroupService{
		groups:     groups,
		members:    members,
		userClient: userClient,
		validator:  validator,
		log:        logger.New(),
	}
}

// CreateGroupRequest represents the data needed to create a group
type CreateGroupRequest struct {
	Name        string `json:"name" validate:"required,max=255"`
	Description string `json:"description"`
	JoinPolicy  string `json:"join_policy" validate:"omitempty,oneof=open application invite_only"`
}

// UpdateGroupRequest represents the data needed to update a group
type UpdateGroupRequest struct {
	Name        *string `json:"name" validate:"omitempty,max=255"`
	Description *string `json:"description"`
	JoinPolicy  *string `json:"join_policy" validate:"omitempty,oneof=open application invite_only"`
}

// MemberResponse represents a group member in responses
type MemberResponse struct {
	MemberID  uint      `json:"member_id"`
	UserEmail string    `json:"user_email"`
	Username  string    `json:"username"`
	Role      string    `json:"role"`
	JoinedAt  time.Time `json:"joined_at"`
}

// GroupResponse represents the response data for a group
type GroupResponse struct {
	GroupID     uint             `json:"group_id"`
	Name        string           `json:"name"`
	Description string           `json:"description,omitempty"`
	JoinPolicy  string           `json:"join_policy"`
	CreatedAt   time.Time        `json:"created_at"`
	UpdatedAt   time.Time        `json:"updated_at"`
	MemberCount int              `json:"member_count"`
	Members     []MemberResponse `json:"members,omitempty"`
}

// CreateGroup creates a group and enrolls the creator as its owner
func (s *GroupService) CreateGroup(req *CreateGroupRequest, creatorEmail string) (*GroupResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	if _, err := s.groups.GetByName(req.Name); err == nil {
		return nil, apperrors.ErrGroupExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	policy := models.JoinPolicy(req.JoinPolicy)
	if req.JoinPolicy == "" {
		policy = models.JoinPolicyInviteOnly
	}
	if !policy.IsValid() {
		return nil, apperrors.ErrInvalidJoinPolicy
	}

	group := &models.Group{
		Name:        req.Name,
		Description: req.Description,
		JoinPolicy:  policy,
		IsActive:    true,
	}
	if err := s.groups.Create(group); err != nil {
		return nil, err
	}

	owner := &models.GroupMember{
		GroupID:   group.GroupID,
		UserEmail: creatorEmail,
		Role:      models.MemberRoleOwner,
		JoinedAt:  time.Now().UTC(),
	}
	if err := s.members.Create(owner); err != nil {
		return nil, err
	}
	s.log.Infof("created group %d (%s) owned by %s", group.GroupID, group.Name, creatorEmail)

	return s.toGroupResponse(context.Background(), group, []models.GroupMember{*owner}), nil
}

// GetGroupByID retrieves a group with its member roster
func (s *GroupService) GetGroupByID(ctx context.Context, id uint) (*GroupResponse, error) {
	group, err := s.groups.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrGroupNotFound
		}
		return nil, err
	}

	members, err := s.members.ListByGroup(id)
	if err != nil {
		return nil, err
	}
	return s.toGroupResponse(ctx, group, members), nil
}

// ListGroups retrieves active groups with pagination
func (s *GroupService) ListGroups(limit, offset int) ([]GroupResponse, int64, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	groups, total, err := s.groups.GetAll(limit, offset)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]GroupResponse, 0, len(groups))
	for i := range groups {
		resp := GroupResponse{
			GroupID:     groups[i].GroupID,
			Name:        groups[i].Name,
			Description: groups[i].Description,
			JoinPolicy:  string(groups[i].JoinPolicy),
			CreatedAt:   groups[i].CreatedAt,
			UpdatedAt:   groups[i].UpdatedAt,
			MemberCount: len(groups[i].Members),
		}
		responses = append(responses, resp)
	}
	return responses, total, nil
}

// UpdateGroup applies changes to a group. Only admins and the owner can edit.
func (s *GroupService) UpdateGroup(ctx context.Context, id uint, req *UpdateGroupRequest, actorEmail string) (*GroupResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	group, err := s.groups.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrGroupNotFound
		}
		return nil, err
	}

	if err := s.requireRole(id, actorEmail, models.MemberRoleAdmin); err != nil {
		return nil, err
	}

	if req.Name != nil && *req.Name != group.Name {
		if _, err := s.groups.GetByName(*req.Name); err == nil {
			return nil, apperrors.ErrGroupExists
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		group.Name = *req.Name
	}
	if req.Description != nil {
		group.Description = *req.Description
	}
	if req.JoinPolicy != nil {
		policy := models.JoinPolicy(*req.JoinPolicy)
		if !policy.IsValid() {
			return nil, apperrors.ErrInvalidJoinPolicy
		}
		group.JoinPolicy = policy
	}

	if err := s.groups.Update(group); err != nil {
		return nil, err
	}

	members, err := s.members.ListByGroup(id)
	if err != nil {
		return nil, err
	}
	return s.toGroupResponse(ctx, group, members), nil
}

// DeleteGroup deactivates a group. Only the owner may do this; the group
// row is kept but hidden, and its pending invitations and cave
// assignments are dropped.
func (s *GroupService) DeleteGroup(id uint, actorEmail string) error {
	if _, err := s.groups.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrGroupNotFound
		}
		return err
	}

	if err := s.requireRole(id, actorEmail, models.MemberRoleOwner); err != nil {
		return err
	}

	if err := s.groups.SoftDelete(id); err != nil {
		return err
	}
	s.log.Infof("group %d deactivated by %s", id, actorEmail)
	return nil
}

// requireRole checks that actorEmail holds at least the given role in the
// group
func (s *GroupService) requireRole(groupID uint, actorEmail string, role models.MemberRole) error {
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

// toGroupResponse builds a response with the roster enriched by display
// usernames. Lookup failures degrade to the email's local part.
func (s *GroupService) toGroupResponse(ctx context.Context, group *models.Group, members []models.GroupMember) *GroupResponse {
	resp := &GroupResponse{
		GroupID:     group.GroupID,
		Name:        group.Name,
		Description: group.Description,
		JoinPolicy:  string(group.JoinPolicy),
		CreatedAt:   group.CreatedAt,
		UpdatedAt:   group.UpdatedAt,
		MemberCount: len(members),
		Members:     make([]MemberResponse, 0, len(members)),
	}

	emails := make([]string, 0, len(members))
	for i := range members {
		emails = append(emails, members[i].UserEmail)
	}
	usernames, err := s.userClient.LookupUsernames(ctx, emails)
	if err != nil {
		s.log.WithError(err).Warnf("username lookup failed for group %d, falling back to emails", group.GroupID)
		usernames = nil
	}

	for i := range members {
		username, ok := usernames[members[i].UserEmail]
		if !ok || username == "" {
			username = clients.FallbackUsername(members[i].UserEmail)
		}
		resp.Members = append(resp.Members, MemberResponse{
			MemberID:  members[i].MemberID,
			UserEmail: members[i].UserEmail,
			Username:  username,
			Role:      string(members[i].Role),
			JoinedAt:  members[i].JoinedAt,
		})
	}
	return resp
}
