package service_test

import (
	"context"
	"testing"
	"time"

	"cavemap-backend/internal/database/models"
	apperrors "cavemap-backend/internal/errors"
	"cavemap-backend/internal/repository"
	"cavemap-backend/internal/service"
	"cavemap-backend/internal/testutils"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

type InvitationServiceTestSuite struct {
	suite.Suite
	db          *gorm.DB
	members     *repository.MemberRepository
	invitations *repository.InvitationRepository
	svc         *service.InvitationService
	group       *models.Group
}

func (s *InvitationServiceTestSuite) SetupTest() {
	s.db = testutils.NewSQLiteDB(s.T())
	groups := repository.NewGroupRepository(s.db)
	s.members = repository.NewMemberRepository(s.db)
	s.invitations = repository.NewInvitationRepository(s.db)
	s.svc = service.NewInvitationService(groups, s.members, s.invitations, validator.New())

	s.group = testutils.NewGroupFactory().Create()
	s.Require().NoError(groups.Create(s.group))
	admin := testutils.NewMemberFactory().Create(s.group.GroupID, "admin@test.com", models.MemberRoleAdmin)
	s.Require().NoError(s.members.Create(admin))
}

func TestInvitationServiceTestSuite(t *testing.T) {
	suite.Run(t, new(InvitationServiceTestSuite))
}

func (s *InvitationServiceTestSuite) TestInviteUser_CreatesPendingWithExpiry() {
	resp, err := s.svc.InviteUser(s.group.GroupID,
		&service.CreateInvitationRequest{InviteeEmail: "guest@test.com"}, "admin@test.com")
	s.Require().NoError(err)
	s.Equal(string(models.InvitationStatusPending), resp.Status)
	s.Require().NotNil(resp.ExpiresAt)

	remaining := time.Until(*resp.ExpiresAt)
	s.InDelta((7 * 24 * time.Hour).Hours(), remaining.Hours(), 1)
}

func (s *InvitationServiceTestSuite) TestInviteUser_AdminOnly() {
	plain := testutils.NewMemberFactory().Create(s.group.GroupID, "plain@test.com", models.MemberRoleMember)
	s.Require().NoError(s.members.Create(plain))

	_, err := s.svc.InviteUser(s.group.GroupID,
		&service.CreateInvitationRequest{InviteeEmail: "guest@test.com"}, "plain@test.com")
	s.ErrorIs(err, apperrors.ErrAdminRequired)

	_, err = s.svc.InviteUser(s.group.GroupID,
		&service.CreateInvitationRequest{InviteeEmail: "guest@test.com"}, "stranger@test.com")
	s.ErrorIs(err, apperrors.ErrNotGroupMember)
}

func (s *InvitationServiceTestSuite) TestInviteUser_RejectsExistingMemberAndDuplicates() {
	_, err := s.svc.InviteUser(s.group.GroupID,
		&service.CreateInvitationRequest{InviteeEmail: "admin@test.com"}, "admin@test.com")
	s.ErrorIs(err, apperrors.ErrMemberExists)

	_, err = s.svc.InviteUser(s.group.GroupID,
		&service.CreateInvitationRequest{InviteeEmail: "guest@test.com"}, "admin@test.com")
	s.Require().NoError(err)

	_, err = s.svc.InviteUser(s.group.GroupID,
		&service.CreateInvitationRequest{InviteeEmail: "guest@test.com"}, "admin@test.com")
	s.ErrorIs(err, apperrors.ErrPendingInvitationExists)
}

func (s *InvitationServiceTestSuite) TestRespondToInvitation_AcceptEnrollsWithInvitedRole() {
	created, err := s.svc.InviteUser(s.group.GroupID,
		&service.CreateInvitationRequest{InviteeEmail: "guest@test.com", Role: "admin"}, "admin@test.com")
	s.Require().NoError(err)

	resp, err := s.svc.RespondToInvitation(context.Background(), created.InvitationID,
		&service.RespondInvitationRequest{Accept: true}, "guest@test.com")
	s.Require().NoError(err)
	s.Equal(string(models.InvitationStatusAccepted), resp.Status)
	s.NotNil(resp.RespondedAt)

	member, err := s.members.GetByGroupAndEmail(s.group.GroupID, "guest@test.com")
	s.Require().NoError(err)
	s.Equal(models.MemberRoleAdmin, member.Role)
}

func (s *InvitationServiceTestSuite) TestRespondToInvitation_Decline() {
	created, err := s.svc.InviteUser(s.group.GroupID,
		&service.CreateInvitationRequest{InviteeEmail: "guest@test.com"}, "admin@test.com")
	s.Require().NoError(err)

	resp, err := s.svc.RespondToInvitation(context.Background(), created.InvitationID,
		&service.RespondInvitationRequest{Accept: false}, "guest@test.com")
	s.Require().NoError(err)
	s.Equal(string(models.InvitationStatusDeclined), resp.Status)

	_, err = s.members.GetByGroupAndEmail(s.group.GroupID, "guest@test.com")
	s.ErrorIs(err, gorm.ErrRecordNotFound)

	// An answered invitation cannot be answered again.
	_, err = s.svc.RespondToInvitation(context.Background(), created.InvitationID,
		&service.RespondInvitationRequest{Accept: true}, "guest@test.com")
	s.ErrorIs(err, apperrors.ErrInvitationNotPending)
}

func (s *InvitationServiceTestSuite) TestRespondToInvitation_InviteeOnly() {
	created, err := s.svc.InviteUser(s.group.GroupID,
		&service.CreateInvitationRequest{InviteeEmail: "guest@test.com"}, "admin@test.com")
	s.Require().NoError(err)

	// Someone else's invitation is indistinguishable from a missing one.
	_, err = s.svc.RespondToInvitation(context.Background(), created.InvitationID,
		&service.RespondInvitationRequest{Accept: true}, "snoop@test.com")
	s.ErrorIs(err, apperrors.ErrInvitationNotFound)
}

func (s *InvitationServiceTestSuite) TestRespondToInvitation_ExpiredCannotBeAccepted() {
	invitation := testutils.NewInvitationFactory().Create(s.group.GroupID, "guest@test.com")
	expired := time.Now().UTC().Add(-time.Hour)
	invitation.ExpiresAt = &expired
	s.Require().NoError(s.invitations.Create(invitation))

	_, err := s.svc.RespondToInvitation(context.Background(), invitation.InvitationID,
		&service.RespondInvitationRequest{Accept: true}, "guest@test.com")
	s.ErrorIs(err, apperrors.ErrInvitationNotPending)

	stored, err := s.invitations.GetByID(invitation.InvitationID)
	s.Require().NoError(err)
	s.Equal(models.InvitationStatusExpired, stored.Status)

	_, err = s.members.GetByGroupAndEmail(s.group.GroupID, "guest@test.com")
	s.ErrorIs(err, gorm.ErrRecordNotFound)
}

func (s *InvitationServiceTestSuite) TestListGroupInvitations_AdminOnly() {
	_, err := s.svc.InviteUser(s.group.GroupID,
		&service.CreateInvitationRequest{InviteeEmail: "guest@test.com"}, "admin@test.com")
	s.Require().NoError(err)

	list, err := s.svc.ListGroupInvitations(s.group.GroupID, "admin@test.com")
	s.Require().NoError(err)
	s.Require().Len(list, 1)
	s.Equal(s.group.Name, list[0].GroupName)

	_, err = s.svc.ListGroupInvitations(s.group.GroupID, "stranger@test.com")
	s.ErrorIs(err, apperrors.ErrNotGroupMember)
}

func (s *InvitationServiceTestSuite) TestListMyInvitations_CarriesGroupName() {
	_, err := s.svc.InviteUser(s.group.GroupID,
		&service.CreateInvitationRequest{InviteeEmail: "guest@test.com"}, "admin@test.com")
	s.Require().NoError(err)

	list, err := s.svc.ListMyInvitations("guest@test.com")
	s.Require().NoError(err)
	s.Require().Len(list, 1)
	s.Equal(s.group.Name, list[0].GroupName)

	s.Empty(s.mustList("nobody@test.com"))
}

func (s *InvitationServiceTestSuite) mustList(email string) []service.InvitationResponse {
	list, err := s.svc.ListMyInvitations(email)
	s.Require().NoError(err)
	return list
}
