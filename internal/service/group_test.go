package service_test

import (
	"context"
	"errors"
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
)

// GroupServiceTestSuite runs the group service against an in-memory
// database with real repositories; only the user service is mocked.
type GroupServiceTestSuite struct {
	suite.Suite
	ctrl       *gomock.Controller
	userClient *mocks.MockUserServiceClient
	groups     *repository.GroupRepository
	members    *repository.MemberRepository
	svc        *service.GroupService
}

func (s *GroupServiceTestSuite) SetupTest() {
	db := testutils.NewSQLiteDB(s.T())
	s.ctrl = gomock.NewController(s.T())
	s.userClient = mocks.NewMockUserServiceClient(s.ctrl)
	s.groups = repository.NewGroupRepository(db)
	s.members = repository.NewMemberRepository(db)
	s.svc = service.NewGroupService(s.groups, s.members, s.userClient, validator.New())
}

func (s *GroupServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestGroupServiceTestSuite(t *testing.T) {
	suite.Run(t, new(GroupServiceTestSuite))
}

func (s *GroupServiceTestSuite) lookupFails() {
	s.userClient.EXPECT().LookupUsernames(gomock.Any(), gomock.Any()).
		Return(nil, errors.New("user service unreachable")).AnyTimes()
}

func (s *GroupServiceTestSuite) TestCreateGroup_EnrollsCreatorAsOwner() {
	s.lookupFails()

	resp, err := s.svc.CreateGroup(&service.CreateGroupRequest{Name: "Speleo Club"}, "founder@test.com")
	s.Require().NoError(err)
	s.Equal("invite_only", resp.JoinPolicy)
	s.Equal(1, resp.MemberCount)
	s.Require().Len(resp.Members, 1)
	s.Equal("founder@test.com", resp.Members[0].UserEmail)
	s.Equal(string(models.MemberRoleOwner), resp.Members[0].Role)

	owner, err := s.members.GetByGroupAndEmail(resp.GroupID, "founder@test.com")
	s.NoError(err)
	s.Equal(models.MemberRoleOwner, owner.Role)
}

func (s *GroupServiceTestSuite) TestCreateGroup_DuplicateNameCaseInsensitive() {
	s.lookupFails()

	_, err := s.svc.CreateGroup(&service.CreateGroupRequest{Name: "Speleo Club"}, "a@test.com")
	s.Require().NoError(err)

	_, err = s.svc.CreateGroup(&service.CreateGroupRequest{Name: "SPELEO CLUB"}, "b@test.com")
	s.ErrorIs(err, apperrors.ErrGroupExists)
}

func (s *GroupServiceTestSuite) TestCreateGroup_RejectsBadPolicy() {
	_, err := s.svc.CreateGroup(&service.CreateGroupRequest{
		Name: "Speleo Club", JoinPolicy: "closed",
	}, "a@test.com")
	s.Error(err)
	s.Contains(err.Error(), "validation failed")
}

func (s *GroupServiceTestSuite) TestUpdateGroup_RequiresAdmin() {
	s.lookupFails()

	created, err := s.svc.CreateGroup(&service.CreateGroupRequest{Name: "Speleo Club"}, "owner@test.com")
	s.Require().NoError(err)
	member := testutils.NewMemberFactory().Create(created.GroupID, "member@test.com", models.MemberRoleMember)
	s.Require().NoError(s.members.Create(member))

	desc := "updated"
	_, err = s.svc.UpdateGroup(context.Background(), created.GroupID,
		&service.UpdateGroupRequest{Description: &desc}, "member@test.com")
	s.ErrorIs(err, apperrors.ErrAdminRequired)

	_, err = s.svc.UpdateGroup(context.Background(), created.GroupID,
		&service.UpdateGroupRequest{Description: &desc}, "stranger@test.com")
	s.ErrorIs(err, apperrors.ErrNotGroupMember)

	resp, err := s.svc.UpdateGroup(context.Background(), created.GroupID,
		&service.UpdateGroupRequest{Description: &desc}, "owner@test.com")
	s.NoError(err)
	s.Equal("updated", resp.Description)
}

func (s *GroupServiceTestSuite) TestUpdateGroup_RenameChecksUniqueness() {
	s.lookupFails()

	_, err := s.svc.CreateGroup(&service.CreateGroupRequest{Name: "Taken"}, "a@test.com")
	s.Require().NoError(err)
	created, err := s.svc.CreateGroup(&service.CreateGroupRequest{Name: "Mine"}, "b@test.com")
	s.Require().NoError(err)

	taken := "Taken"
	_, err = s.svc.UpdateGroup(context.Background(), created.GroupID,
		&service.UpdateGroupRequest{Name: &taken}, "b@test.com")
	s.ErrorIs(err, apperrors.ErrGroupExists)
}

func (s *GroupServiceTestSuite) TestDeleteGroup_OwnerOnly() {
	s.lookupFails()

	created, err := s.svc.CreateGroup(&service.CreateGroupRequest{Name: "Speleo Club"}, "owner@test.com")
	s.Require().NoError(err)
	admin := testutils.NewMemberFactory().Create(created.GroupID, "admin@test.com", models.MemberRoleAdmin)
	s.Require().NoError(s.members.Create(admin))

	err = s.svc.DeleteGroup(created.GroupID, "admin@test.com")
	s.ErrorIs(err, apperrors.ErrOwnerRequired)

	s.NoError(s.svc.DeleteGroup(created.GroupID, "owner@test.com"))

	// Deactivated groups disappear from reads.
	_, err = s.svc.GetGroupByID(context.Background(), created.GroupID)
	s.ErrorIs(err, apperrors.ErrGroupNotFound)
}

func (s *GroupServiceTestSuite) TestGetGroupByID_UsernameEnrichment() {
	created := testutils.NewGroupFactory().Create()
	s.Require().NoError(s.groups.Create(created))
	member := testutils.NewMemberFactory().Create(created.GroupID, "jana.novak@test.com", models.MemberRoleOwner)
	s.Require().NoError(s.members.Create(member))

	s.userClient.EXPECT().LookupUsernames(gomock.Any(), []string{"jana.novak@test.com"}).
		Return(map[string]string{"jana.novak@test.com": "Jana Novak"}, nil)

	resp, err := s.svc.GetGroupByID(context.Background(), created.GroupID)
	s.Require().NoError(err)
	s.Require().Len(resp.Members, 1)
	s.Equal("Jana Novak", resp.Members[0].Username)
}

func (s *GroupServiceTestSuite) TestGetGroupByID_UsernameFallback() {
	s.lookupFails()

	created := testutils.NewGroupFactory().Create()
	s.Require().NoError(s.groups.Create(created))
	member := testutils.NewMemberFactory().Create(created.GroupID, "jana.novak@test.com", models.MemberRoleOwner)
	s.Require().NoError(s.members.Create(member))

	resp, err := s.svc.GetGroupByID(context.Background(), created.GroupID)
	s.Require().NoError(err)
	s.Require().Len(resp.Members, 1)
	s.Equal("jana.novak", resp.Members[0].Username)
}

func (s *GroupServiceTestSuite) TestListGroups_SkipsInactive() {
	s.lookupFails()

	kept, err := s.svc.CreateGroup(&service.CreateGroupRequest{Name: "Kept"}, "a@test.com")
	s.Require().NoError(err)
	gone, err := s.svc.CreateGroup(&service.CreateGroupRequest{Name: "Gone"}, "b@test.com")
	s.Require().NoError(err)
	s.Require().NoError(s.svc.DeleteGroup(gone.GroupID, "b@test.com"))

	groups, total, err := s.svc.ListGroups(20, 0)
	s.NoError(err)
	s.Equal(int64(1), total)
	s.Require().Len(groups, 1)
	s.Equal(kept.GroupID, groups[0].GroupID)
}
