//go:build integration
// +build integration

package repository

import (
	"testing"

	"cavemap-backend/internal/database/models"
	"cavemap-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
)

// AssignmentRepositoryTestSuite tests the AssignmentRepository against Postgres
type AssignmentRepositoryTestSuite struct {
	suite.Suite
	base   *testutils.BaseTestSuite
	repo   *AssignmentRepository
	groups *GroupRepository
}

func (suite *AssignmentRepositoryTestSuite) SetupSuite() {
	suite.base = testutils.SetupTestSuite(suite.T())
	suite.repo = NewAssignmentRepository(suite.base.DB)
	suite.groups = NewGroupRepository(suite.base.DB)
}

func (suite *AssignmentRepositoryTestSuite) TearDownSuite() {
	suite.base.TeardownTestSuite()
}

func (suite *AssignmentRepositoryTestSuite) SetupTest() {
	suite.base.SetupTest()
}

func (suite *AssignmentRepositoryTestSuite) TearDownTest() {
	suite.base.TearDownTest()
}

func TestAssignmentRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(AssignmentRepositoryTestSuite))
}

func (suite *AssignmentRepositoryTestSuite) createGroup() *models.Group {
	group := testutils.NewGroupFactory().Create()
	suite.Require().NoError(suite.groups.Create(group))
	return group
}

func (suite *AssignmentRepositoryTestSuite) TestCreate_CaveUniqueGlobally() {
	groupA := suite.createGroup()
	groupB := suite.createGroup()

	factory := testutils.NewAssignmentFactory()
	suite.Require().NoError(suite.repo.Create(factory.Create(groupA.GroupID, 7)))

	// The same cave cannot be assigned to a second group.
	err := suite.repo.Create(factory.Create(groupB.GroupID, 7))
	suite.Error(err)
}

func (suite *AssignmentRepositoryTestSuite) TestGroupIDsForCave_ActiveGroupsOnly() {
	active := suite.createGroup()
	inactive := suite.createGroup()

	factory := testutils.NewAssignmentFactory()
	suite.Require().NoError(suite.repo.Create(factory.Create(active.GroupID, 7)))
	suite.Require().NoError(suite.repo.Create(factory.Create(inactive.GroupID, 8)))

	// Deactivating drops the group's assignments entirely; re-create one
	// directly to simulate a stale row.
	suite.Require().NoError(suite.groups.SoftDelete(inactive.GroupID))
	suite.Require().NoError(suite.base.DB.Create(factory.Create(inactive.GroupID, 8)).Error)

	ids, err := suite.repo.GroupIDsForCave(7)
	suite.NoError(err)
	suite.Equal([]uint{active.GroupID}, ids)

	ids, err = suite.repo.GroupIDsForCave(8)
	suite.NoError(err)
	suite.Empty(ids, "assignments of deactivated groups do not count")
}

func (suite *AssignmentRepositoryTestSuite) TestDeleteByCaveID_Idempotent() {
	group := suite.createGroup()
	suite.Require().NoError(suite.repo.Create(testutils.NewAssignmentFactory().Create(group.GroupID, 7)))

	removed, err := suite.repo.DeleteByCaveID(7)
	suite.NoError(err)
	suite.Equal(int64(1), removed)

	removed, err = suite.repo.DeleteByCaveID(7)
	suite.NoError(err)
	suite.Zero(removed)
}

func (suite *AssignmentRepositoryTestSuite) TestReassignAssignedBy() {
	group := suite.createGroup()
	factory := testutils.NewAssignmentFactory()

	mine := factory.Create(group.GroupID, 7)
	mine.AssignedBy = "leaving@test.com"
	suite.Require().NoError(suite.repo.Create(mine))
	suite.Require().NoError(suite.repo.Create(factory.Create(group.GroupID, 8)))

	changed, err := suite.repo.ReassignAssignedBy("leaving@test.com", models.SystemIdentity)
	suite.NoError(err)
	suite.Equal(int64(1), changed)

	found, err := suite.repo.GetByCaveID(7)
	suite.Require().NoError(err)
	suite.Equal(models.SystemIdentity, found.AssignedBy)
}

func (suite *AssignmentRepositoryTestSuite) TestGetByGroupAndCave() {
	group := suite.createGroup()
	assignment := testutils.NewAssignmentFactory().Create(group.GroupID, 7)
	suite.Require().NoError(suite.repo.Create(assignment))

	found, err := suite.repo.GetByGroupAndCave(group.GroupID, 7)
	suite.NoError(err)
	suite.Equal(assignment.ID, found.ID)

	_, err = suite.repo.GetByGroupAndCave(group.GroupID+1, 7)
	suite.Error(err)
}
