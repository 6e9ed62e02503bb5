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

// MediaRepositoryTestSuite tests the MediaRepository against Postgres
type MediaRepositoryTestSuite struct {
	suite.Suite
	base *testutils.BaseTestSuite
	repo *MediaRepository
}

func (suite *MediaRepositoryTestSuite) SetupSuite() {
	suite.base = testutils.SetupTestSuite(suite.T())
	suite.repo = NewMediaRepository(suite.base.DB)
}

func (suite *MediaRepositoryTestSuite) TearDownSuite() {
	suite.base.TeardownTestSuite()
}

func (suite *MediaRepositoryTestSuite) SetupTest() {
	suite.base.SetupTest()
}

func (suite *MediaRepositoryTestSuite) TearDownTest() {
	suite.base.TearDownTest()
}

func TestMediaRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(MediaRepositoryTestSuite))
}

func (suite *MediaRepositoryTestSuite) TestCreateWithMetadata() {
	file := testutils.NewMediaFileFactory().Create()
	file.Metadata = []models.MediaMetadata{
		{Key: "depth", Value: "120.5", Type: models.MetadataTypeNumber},
	}
	suite.Require().NoError(suite.repo.Create(file))

	found, err := suite.repo.GetByID(file.ID)
	suite.Require().NoError(err)
	suite.Require().Len(found.Metadata, 1)
	suite.Equal(models.MetadataTypeNumber, found.Metadata[0].Type)
}

func (suite *MediaRepositoryTestSuite) TestList_Filters() {
	caveID := uint(9)
	attached := testutils.NewMediaFileFactory().ForCave(caveID)
	suite.Require().NoError(suite.repo.Create(attached))

	loose := testutils.NewMediaFileFactory().Create()
	loose.UploadedBy = "other@test.com"
	suite.Require().NoError(suite.repo.Create(loose))

	files, total, err := suite.repo.List(&caveID, "", 20, 0)
	suite.NoError(err)
	suite.Equal(int64(1), total)
	suite.Require().Len(files, 1)
	suite.Equal(attached.ID, files[0].ID)

	files, total, err = suite.repo.List(nil, "other@test.com", 20, 0)
	suite.NoError(err)
	suite.Equal(int64(1), total)
	suite.Equal(loose.ID, files[0].ID)

	_, total, err = suite.repo.List(nil, "", 20, 0)
	suite.NoError(err)
	suite.Equal(int64(2), total)
}

func (suite *MediaRepositoryTestSuite) TestDelete_CascadesMetadata() {
	file := testutils.NewMediaFileFactory().Create()
	file.Metadata = []models.MediaMetadata{
		{Key: "team", Value: "north", Type: models.MetadataTypeString},
	}
	suite.Require().NoError(suite.repo.Create(file))

	suite.Require().NoError(suite.repo.Delete(file.ID))

	_, err := suite.repo.GetByID(file.ID)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)

	var count int64
	suite.NoError(suite.base.DB.Model(&models.MediaMetadata{}).
		Where("media_file_id = ?", file.ID).Count(&count).Error)
	suite.Zero(count)
}

func (suite *MediaRepositoryTestSuite) TestGetByFilename() {
	file := testutils.NewMediaFileFactory().Create()
	suite.Require().NoError(suite.repo.Create(file))

	found, err := suite.repo.GetByFilename(file.Filename)
	suite.NoError(err)
	suite.Equal(file.ID, found.ID)
}
