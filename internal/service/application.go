package service

import (
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

// ApplicationService handles business logic for join applications
type ApplicationService struct {
	groups       repository.GroupRepositoryInterface
	members      repository.MemberRepositoryInterface
	applications repository.ApplicationRepositoryInterface
	validator    *validator.Validate
	log          *logger.Logger
}

// NewApplicationService creates a new application service
func NewApplicationService(
	groups repository.GroupRepositoryInterface,
	members repository.MemberRepositoryInterface,
	applications repository.ApplicationRepositoryInterface,
	validator *validator.Validate,
) *ApplicationService {
	return &ApplicationService{
		groups:       groups,
		members:      members,
		applications: applications,
		validator:    validator,
		log:          logger.New(),
	}
}

// CreateApplicationRequest represents a request to join a group
type CreateApplicationRequest struct {
	Message string `json:"message" validate:"max=2000"`
}

// ReviewApplicationRequest represents an admin's verdict on an application
type ReviewApplicationRequest struct {
	Approve bool `json:"approve"`
}

// ApplicationResponse represents the response data for an application
type ApplicationResponse struct {
	ApplicationID  uint       `json:"application_id"`
	GroupID        uint       `json:"group_id"`
	ApplicantEmail string     `json:"applicant_email"`
	Message        string     `json:"message,omitempty"`
	Status         string     `json:"status"`
	CreatedAt      time.Time  `json:"created_at"`
	ReviewedAt     *time.Time `json:"reviewed_at,omitempty"`
	ReviewedBy     string     `json:"reviewed_by,omitempty"`
}

// ApplyToGroup files a join application. The group must use the
// application policy, the applicant must not already be a member, and at
// most one pending application per (group, applicant) pair exists.
func (s *ApplicationService) ApplyToGroup(groupID uint, req *CreateApplicationRequest, applicantEmail string) (*ApplicationResponse, error) {
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
	if group.JoinPolicy != models.JoinPolicyApplication {
		return nil, apperrors.ErrGroupNotOpenForJoining
	}

	if _, err := s.members.GetByGroupAndEmail(groupID, applicantEmail); err == nil {
		return nil, apperrors.ErrMemberExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	if _, err := s.applications.GetPending(groupID, applicantEmail); err == nil {
		return nil, apperrors.ErrPendingApplicationExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	application := &models.GroupApplication{
		GroupID:        groupID,
		ApplicantEmail: applicantEmail,
		Message:        req.Message,
		Status:         models.ApplicationStatusPending,
	}
	if err := s.applications.Create(application); err != nil {
		return nil, err
	}
	s.log.Infof("%s applied to group %d", applicantEmail, groupID)

	return toApplicationResponse(application), nil
}

// ListApplications lists a group's applications. Admins only.
func (s *ApplicationService) ListApplications(groupID uint, actorEmail string) ([]ApplicationResponse, error) {
	if _, err := s.groups.GetByID(groupID); err != nil {
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

	applications, err := s.applications.ListByGroup(groupID)
	if err != nil {
		return nil, err
	}

	responses := make([]ApplicationResponse, 0, len(applications))
	for i := range applications {
		responses = append(responses, *toApplicationResponse(&applications[i]))
	}
	return responses, nil
}

// ReviewApplication records an admin's verdict on a pending application.
// Approval enrolls the applicant as a regular member.
func (s *ApplicationService) ReviewApplication(groupID, applicationID uint, req *ReviewApplicationRequest, reviewerEmail string) (*ApplicationResponse, error) {
	reviewer, err := s.members.GetByGroupAndEmail(groupID, reviewerEmail)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotGroupMember
		}
		return nil, err
	}
	if reviewer.Role.Priority() < models.MemberRoleAdmin.Priority() {
		return nil, apperrors.ErrAdminRequired
	}

	application, err := s.applications.GetByID(applicationID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrApplicationNotFound
		}
		return nil, err
	}
	if application.GroupID != groupID {
		return nil, apperrors.ErrApplicationNotFound
	}
	if application.Status != models.ApplicationStatusPending {
		return nil, apperrors.ErrApplicationNotPending
	}

	now := time.Now().UTC()
	if req.Approve {
		if _, err := s.members.GetByGroupAndEmail(groupID, application.ApplicantEmail); err == nil {
			return nil, apperrors.ErrMemberExists
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		member := &models.GroupMember{
			GroupID:   groupID,
			UserEmail: application.ApplicantEmail,
			Role:      models.MemberRoleMember,
			JoinedAt:  now,
		}
		if err := s.members.Create(member); err != nil {
			return nil, err
		}
		application.Status = models.ApplicationStatusApproved
	} else {
		application.Status = models.ApplicationStatusRejected
	}
	application.ReviewedAt = &now
	application.ReviewedBy = reviewerEmail

	if err := s.applications.Update(application); err != nil {
		return nil, err
	}
	s.log.Infof("application %d for group %d %s by %s", applicationID, groupID, application.Status, reviewerEmail)

	return toApplicationResponse(application), nil
}

func toApplicationResponse(app *models.GroupApplication) *ApplicationResponse {
	return &ApplicationResponse{
		ApplicationID:  app.ApplicationID,
		GroupID:        app.GroupID,
		ApplicantEmail: app.ApplicantEmail,
		Message:        app.Message,
		Status:         string(app.Status),
		CreatedAt:      app.CreatedAt,
		ReviewedAt:     app.ReviewedAt,
		ReviewedBy:     app.ReviewedBy,
	}
}
