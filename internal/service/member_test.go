package service_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"cavemap-backend/internal/database/models"
	apperrors "cavemap-backend/internal/errors"
	"cavemap-backend/internal/mocks"
	"cavemap-backend/internal/repository"
	"cavemap-backend/internal/service"
	"cavemap-backend/internal/testutils"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type MemberServiceTestSuite struct {
	suite.Suite
	db      *gorm.DB
	ctrl    *gomock.Controller
	members *repository.MemberRepository
	svc     *service.MemberService
	group   *models.Group
}

func (s *MemberServiceTestSuite) SetupTest() {
	s.db = testutils.NewSQLiteDB(s.T())
	s.ctrl = gomock.NewController(s.T())
	userClient := mocks.NewMockUserServiceClient(s.ctrl)
	userClient.EXPECT().LookupUsernames(gomock.Any(), gomock.Any()).
		Return(nil, errors.New("user service unreachable")).AnyTimes()

	groups := repository.NewGroupRepository(s.db)
	s.members = repository.NewMemberRepository(s.db)
	s.svc = service.NewMemberService(groups, s.members, userClient, validator.New())

	s.group = testutils.NewGroupFactory().WithPolicy(models.JoinPolicyInviteOnly)
	s.Require().NoError(groups.Create(s.group))
}

func (s *MemberServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestMemberServiceTestSuite(t *testing.T) {
	suite.Run(t, new(MemberServiceTestSuite))
}

func (s *MemberServiceTestSuite) addMember(email string, role models.MemberRole) *models.GroupMember {
	member := testutils.NewMemberFactory().Create(s.group.GroupID, email, role)
	s.Require().NoError(s.members.Create(member))
	return member
}

func (s *MemberServiceTestSuite) TestAddMember_AdminOnly() {
	s.addMember("owner@test.com", models.MemberRoleOwner)
	s.addMember("plain@test.com", models.MemberRoleMember)

	_, err := s.svc.AddMember(context.Background(), s.group.GroupID,
		&service.AddMemberRequest{UserEmail: "new@test.com"}, "plain@test.com")
	s.ErrorIs(err, apperrors.ErrAdminRequired)

	resp, err := s.svc.AddMember(context.Background(), s.group.GroupID,
		&service.AddMemberRequest{UserEmail: "new@test.com"}, "owner@test.com")
	s.Require().NoError(err)
	s.Equal(string(models.MemberRoleMember), resp.Role)
}

func (s *MemberServiceTestSuite) TestAddMember_OwnerRoleNotGrantable() {
	s.addMember("owner@test.com", models.MemberRoleOwner)

	_, err := s.svc.AddMember(context.Background(), s.group.GroupID,
		&service.AddMemberRequest{UserEmail: "new@test.com", Role: "owner"}, "owner@test.com")
	s.Error(err)
	s.Contains(err.Error(), "validation failed")
}

func (s *MemberServiceTestSuite) TestAddMember_AlreadyEnrolled() {
	s.addMember("owner@test.com", models.MemberRoleOwner)
	s.addMember("plain@test.com", models.MemberRoleMember)

	_, err := s.svc.AddMember(context.Background(), s.group.GroupID,
		&service.AddMemberRequest{UserEmail: "plain@test.com"}, "owner@test.com")
	s.ErrorIs(err, apperrors.ErrMemberExists)
}

func (s *MemberServiceTestSuite) TestJoinGroup_PolicyEnforced() {
	_, err := s.svc.JoinGroup(context.Background(), s.group.GroupID, "walkin@test.com")
	s.ErrorIs(err, apperrors.ErrGroupNotOpenForJoining)

	open := testutils.NewGroupFactory().WithPolicy(models.JoinPolicyOpen)
	s.Require().NoError(repository.NewGroupRepository(s.db).Create(open))

	resp, err := s.svc.JoinGroup(context.Background(), open.GroupID, "walkin@test.com")
	s.Require().NoError(err)
	s.Equal(string(models.MemberRoleMember), resp.Role)
}

func (s *MemberServiceTestSuite) TestListMembers_MembershipRequired() {
	s.addMember("owner@test.com", models.MemberRoleOwner)

	_, err := s.svc.ListMembers(context.Background(), s.group.GroupID, "stranger@test.com")
	s.ErrorIs(err, apperrors.ErrNotGroupMember)

	roster, err := s.svc.ListMembers(context.Background(), s.group.GroupID, "owner@test.com")
	s.NoError(err)
	s.Len(roster, 1)
}

func (s *MemberServiceTestSuite) TestUpdateMemberRole_AdminPromotesMember() {
	s.addMember("admin@test.com", models.MemberRoleAdmin)
	target := s.addMember("plain@test.com", models.MemberRoleMember)

	resp, err := s.svc.UpdateMemberRole(s.group.GroupID, target.MemberID,
		&service.UpdateMemberRoleRequest{Role: "admin"}, "admin@test.com")
	s.Require().NoError(err)
	s.Equal("admin", resp.Role)
}

func (s *MemberServiceTestSuite) TestUpdateMemberRole_OwnerRoleNeedsOwnerActor() {
	s.addMember("admin@test.com", models.MemberRoleAdmin)
	target := s.addMember("plain@test.com", models.MemberRoleMember)

	// Granting owner is above an admin's rights.
	_, err := s.svc.UpdateMemberRole(s.group.GroupID, target.MemberID,
		&service.UpdateMemberRoleRequest{Role: "owner"}, "admin@test.com")
	s.ErrorIs(err, apperrors.ErrOwnerRequired)

	// So is demoting an owner.
	owner := s.addMember("owner@test.com", models.MemberRoleOwner)
	_, err = s.svc.UpdateMemberRole(s.group.GroupID, owner.MemberID,
		&service.UpdateMemberRoleRequest{Role: "member"}, "admin@test.com")
	s.ErrorIs(err, apperrors.ErrOwnerRequired)
}

func (s *MemberServiceTestSuite) TestUpdateMemberRole_SoleOwnerCannotBeDemoted() {
	owner := s.addMember("owner@test.com", models.MemberRoleOwner)

	_, err := s.svc.UpdateMemberRole(s.group.GroupID, owner.MemberID,
		&service.UpdateMemberRoleRequest{Role: "admin"}, "owner@test.com")
	s.ErrorIs(err, apperrors.ErrSoleOwner)
}

func (s *MemberServiceTestSuite) TestUpdateMemberRole_SecondOwnerAllowsDemotion() {
	owner := s.addMember("owner@test.com", models.MemberRoleOwner)
	target := s.addMember("co-owner@test.com", models.MemberRoleAdmin)

	_, err := s.svc.UpdateMemberRole(s.group.GroupID, target.MemberID,
		&service.UpdateMemberRoleRequest{Role: "owner"}, "owner@test.com")
	s.Require().NoError(err)

	resp, err := s.svc.UpdateMemberRole(s.group.GroupID, owner.MemberID,
		&service.UpdateMemberRoleRequest{Role: "member"}, "owner@test.com")
	s.Require().NoError(err)
	s.Equal("member", resp.Role)
}

func (s *MemberServiceTestSuite) TestUpdateMemberRole_WrongGroup() {
	other := testutils.NewGroupFactory().Create()
	s.Require().NoError(repository.NewGroupRepository(s.db).Create(other))
	foreign := testutils.NewMemberFactory().Create(other.GroupID, "foreign@test.com", models.MemberRoleMember)
	s.Require().NoError(s.members.Create(foreign))
	s.addMember("owner@test.com", models.MemberRoleOwner)

	_, err := s.svc.UpdateMemberRole(s.group.GroupID, foreign.MemberID,
		&service.UpdateMemberRoleRequest{Role: "admin"}, "owner@test.com")
	s.ErrorIs(err, apperrors.ErrMemberNotFound)
}

func (s *MemberServiceTestSuite) TestRemoveMember_SelfRemovalAlwaysAllowed() {
	s.addMember("owner@test.com", models.MemberRoleOwner)
	admin := s.addMember("admin@test.com", models.MemberRoleAdmin)

	// An admin cannot remove another admin, but may leave on their own.
	s.NoError(s.svc.RemoveMember(s.group.GroupID, admin.MemberID, "admin@test.com"))

	_, err := s.members.GetByGroupAndEmail(s.group.GroupID, "admin@test.com")
	s.ErrorIs(err, gorm.ErrRecordNotFound)
}

func (s *MemberServiceTestSuite) TestRemoveMember_AdminRemovesRegularMemberOnly() {
	s.addMember("admin@test.com", models.MemberRoleAdmin)
	otherAdmin := s.addMember("admin2@test.com", models.MemberRoleAdmin)
	plain := s.addMember("plain@test.com", models.MemberRoleMember)

	s.NoError(s.svc.RemoveMember(s.group.GroupID, plain.MemberID, "admin@test.com"))

	err := s.svc.RemoveMember(s.group.GroupID, otherAdmin.MemberID, "admin@test.com")
	s.ErrorIs(err, apperrors.ErrOwnerRequired)
}

func (s *MemberServiceTestSuite) TestLeaveGroup_SoleOwnerBlocked() {
	s.addMember("owner@test.com", models.MemberRoleOwner)
	s.addMember("plain@test.com", models.MemberRoleMember)

	err := s.svc.LeaveGroup(s.group.GroupID, "owner@test.com")
	s.ErrorIs(err, apperrors.ErrSoleOwner)

	s.NoError(s.svc.LeaveGroup(s.group.GroupID, "plain@test.com"))

	err = s.svc.LeaveGroup(s.group.GroupID, "stranger@test.com")
	s.ErrorIs(err, apperrors.ErrNotGroupMember)
}

func (s *MemberServiceTestSuite) TestEnrichMembers_FallbackUsernames() {
	s.addMember("owner@test.com", models.MemberRoleOwner)
	for i := 0; i < 3; i++ {
		s.addMember(fmt.Sprintf("caver%d@test.com", i), models.MemberRoleMember)
	}

	roster, err := s.svc.ListMembers(context.Background(), s.group.GroupID, "owner@test.com")
	s.Require().NoError(err)
	s.Require().Len(roster, 4)
	for _, m := range roster {
		s.NotEmpty(m.Username)
		s.NotContains(m.Username, "@")
	}
}
