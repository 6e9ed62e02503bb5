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

// CaveRepositoryTestSuite tests the CaveRepository against Postgres
type CaveRepositoryTestSuite struct {
	suite.Suite
	base *testutils.BaseTestSuite
	repo *CaveRepository
}

func (suite *CaveRepositoryTestSuite) SetupSuite() {
	suite.base = testutils.SetupTestSuite(suite.T())
	suite.repo = NewCaveRepository(suite.base.DB)
}

func (suite *CaveRepositoryTestSuite) TearDownSuite() {
	suite.base.TeardownTestSuite()
}

func (suite *CaveRepositoryTestSuite) SetupTest() {
	suite.base.SetupTest()
}

func (suite *CaveRepositoryTestSuite) TearDownTest() {
	suite.base.TearDownTest()
}

func TestCaveRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(CaveRepositoryTestSuite))
}

func (suite *CaveRepositoryTestSuite) TestCreateWithEntrances() {
	cave := testutils.NewCaveFactory().WithEntrances(2)
	suite.Require().NoError(suite.repo.Create(cave))
	suite.NotZero(cave.CaveID)

	found, err := suite.repo.GetByID(cave.CaveID)
	suite.Require().NoError(err)
	suite.Len(found.Entrances, 2)
}

func (suite *CaveRepositoryTestSuite) TestCreate_NameUnique() {
	cave := testutils.NewCaveFactory().WithName("Krubera")
	suite.Require().NoError(suite.repo.Create(cave))

	err := suite.repo.Create(testutils.NewCaveFactory().WithName("Krubera"))
	suite.Error(err)
}

func (suite *CaveRepositoryTestSuite) TestGetByOwner() {
	suite.Require().NoError(suite.repo.Create(testutils.NewCaveFactory().WithOwner("a@test.com")))
	suite.Require().NoError(suite.repo.Create(testutils.NewCaveFactory().WithOwner("a@test.com")))
	suite.Require().NoError(suite.repo.Create(testutils.NewCaveFactory().WithOwner("b@test.com")))

	caves, err := suite.repo.GetByOwner("a@test.com")
	suite.NoError(err)
	suite.Len(caves, 2)
}

func (suite *CaveRepositoryTestSuite) TestUpdateOwner() {
	cave := testutils.NewCaveFactory().WithOwner("old@test.com")
	suite.Require().NoError(suite.repo.Create(cave))

	suite.Require().NoError(suite.repo.UpdateOwner(cave.CaveID, "new@test.com"))

	found, err := suite.repo.GetByID(cave.CaveID)
	suite.Require().NoError(err)
	suite.Equal("new@test.com", found.OwnerEmail)
}

func (suite *CaveRepositoryTestSuite) TestDelete_CascadesEntrancesAndMediaLinks() {
	cave := testutils.NewCaveFactory().WithEntrances(1)
	suite.Require().NoError(suite.repo.Create(cave))
	suite.Require().NoError(suite.base.DB.Create(&models.CaveMedia{
		CaveID: cave.CaveID, MediaFileID: 55,
	}).Error)

	suite.Require().NoError(suite.repo.Delete(cave.CaveID))

	_, err := suite.repo.GetByID(cave.CaveID)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)

	var count int64
	suite.NoError(suite.base.DB.Model(&models.Entrance{}).
		Where("cave_id = ?", cave.CaveID).Count(&count).Error)
	suite.Zero(count)
	suite.NoError(suite.base.DB.Model(&models.CaveMedia{}).
		Where("cave_id = ?", cave.CaveID).Count(&count).Error)
	suite.Zero(count)
}

func (suite *CaveRepositoryTestSuite) TestMediaFileIDs() {
	cave := testutils.NewCaveFactory().Create()
	suite.Require().NoError(suite.repo.Create(cave))
	for _, id := range []uint{10, 11} {
		suite.Require().NoError(suite.base.DB.Create(&models.CaveMedia{
			CaveID: cave.CaveID, MediaFileID: id,
		}).Error)
	}

	ids, err := suite.repo.MediaFileIDs(cave.CaveID)
	suite.NoError(err)
	suite.ElementsMatch([]uint{10, 11}, ids)

	ids, err = suite.repo.MediaFileIDs(cave.CaveID + 100)
	suite.NoError(err)
	suite.Empty(ids)
}
