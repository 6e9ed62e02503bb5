//go:build integration
// +build integration

package repository

import (
	"testing"

	"cavemap-backend/internal/database/models"
	"cavemap-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// GroupRepositoryTestSuite tests the GroupRepository against Postgres
type GroupRepositoryTestSuite struct {
	suite.Suite
	base    *testutils.BaseTestSuite
	repo    *GroupRepository
	members *MemberRepository
}

func (suite *GroupRepositoryTestSuite) SetupSuite() {
	suite.base = testutils.SetupTestSuite(suite.T())
	suite.repo = NewGroupRepository(suite.base.DB)
	suite.members = NewMemberRepository(suite.base.DB)
}

func (suite *GroupRepositoryTestSuite) TearDownSuite() {
	suite.base.TeardownTestSuite()
}

func (suite *GroupRepositoryTestSuite) SetupTest() {
	suite.base.SetupTest()
}

func (suite *GroupRepositoryTestSuite) TearDownTest() {
	suite.base.TearDownTest()
}

func TestGroupRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(GroupRepositoryTestSuite))
}

func (suite *GroupRepositoryTestSuite) createGroup() *models.Group {
	group := testutils.NewGroupFactory().Create()
	suite.Require().NoError(suite.repo.Create(group))
	return group
}

func (suite *GroupRepositoryTestSuite) TestCreateAndGetByID() {
	group := suite.createGroup()

	found, err := suite.repo.GetByID(group.GroupID)
	suite.NoError(err)
	suite.Equal(group.Name, found.Name)
	suite.NotZero(found.CreatedAt)
}

func (suite *GroupRepositoryTestSuite) TestGetByName_CaseInsensitive() {
	group := testutils.NewGroupFactory().Create()
	group.Name = "Karst Explorers"
	suite.Require().NoError(suite.repo.Create(group))

	found, err := suite.repo.GetByName("KARST explorers")
	suite.NoError(err)
	suite.Equal(group.GroupID, found.GroupID)
}

func (suite *GroupRepositoryTestSuite) TestGetOwnedBy() {
	owned := suite.createGroup()
	other := suite.createGroup()

	factory := testutils.NewMemberFactory()
	suite.Require().NoError(suite.members.Create(factory.Create(owned.GroupID, "keeper@test.com", models.MemberRoleOwner)))
	suite.Require().NoError(suite.members.Create(factory.Create(other.GroupID, "keeper@test.com", models.MemberRoleAdmin)))

	groups, err := suite.repo.GetOwnedBy("keeper@test.com")
	suite.NoError(err)
	suite.Require().Len(groups, 1, "admin membership does not count as ownership")
	suite.Equal(owned.GroupID, groups[0].GroupID)
}

func (suite *GroupRepositoryTestSuite) TestGetOwnedBy_SkipsInactiveGroups() {
	group := suite.createGroup()
	suite.Require().NoError(suite.members.Create(
		testutils.NewMemberFactory().Create(group.GroupID, "keeper@test.com", models.MemberRoleOwner)))
	suite.Require().NoError(suite.repo.SoftDelete(group.GroupID))

	groups, err := suite.repo.GetOwnedBy("keeper@test.com")
	suite.NoError(err)
	suite.Empty(groups)
}

func (suite *GroupRepositoryTestSuite) TestSoftDelete_DropsInvitationsAndAssignments() {
	group := suite.createGroup()
	suite.Require().NoError(suite.base.DB.Create(
		testutils.NewInvitationFactory().Create(group.GroupID, "guest@test.com")).Error)
	suite.Require().NoError(suite.base.DB.Create(
		testutils.NewAssignmentFactory().Create(group.GroupID, 42)).Error)

	suite.Require().NoError(suite.repo.SoftDelete(group.GroupID))

	_, err := suite.repo.GetByID(group.GroupID)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)

	var count int64
	suite.NoError(suite.base.DB.Model(&models.Group{}).
		Where("group_id = ?", group.GroupID).Count(&count).Error)
	suite.Equal(int64(1), count, "the group row survives a soft delete")

	suite.NoError(suite.base.DB.Model(&models.GroupInvitation{}).
		Where("group_id = ?", group.GroupID).Count(&count).Error)
	suite.Zero(count)
	suite.NoError(suite.base.DB.Model(&models.GroupCave{}).
		Where("group_id = ?", group.GroupID).Count(&count).Error)
	suite.Zero(count)
}

func (suite *GroupRepositoryTestSuite) TestDeleteCascade() {
	group := suite.createGroup()
	suite.Require().NoError(suite.members.Create(
		testutils.NewMemberFactory().Create(group.GroupID, "keeper@test.com", models.MemberRoleOwner)))
	suite.Require().NoError(suite.base.DB.Create(
		testutils.NewInvitationFactory().Create(group.GroupID, "guest@test.com")).Error)
	suite.Require().NoError(suite.base.DB.Create(
		testutils.NewApplicationFactory().Create(group.GroupID, "hopeful@test.com")).Error)
	suite.Require().NoError(suite.base.DB.Create(
		testutils.NewAssignmentFactory().Create(group.GroupID, 42)).Error)

	suite.Require().NoError(suite.repo.DeleteCascade(group.GroupID))

	var count int64
	for _, model := range []interface{}{
		&models.Group{}, &models.GroupMember{}, &models.GroupInvitation{},
		&models.GroupApplication{}, &models.GroupCave{},
	} {
		suite.NoError(suite.base.DB.Model(model).
			Where("group_id = ?", group.GroupID).Count(&count).Error)
		suite.Zero(count)
	}
}

func (suite *GroupRepositoryTestSuite) TestGetAll_Pagination() {
	for i := 0; i < 5; i++ {
		suite.createGroup()
	}

	groups, total, err := suite.repo.GetAll(2, 2)
	suite.NoError(err)
	suite.Equal(int64(5), total)
	suite.Len(groups, 2)
}
