package service_test

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"cavemap-backend/internal/clients"
	"cavemap-backend/internal/database/models"
	apperrors "cavemap-backend/internal/errors"
	"cavemap-backend/internal/mocks"
	"cavemap-backend/internal/service"
	"cavemap-backend/internal/storage"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type MediaServiceTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	repo        *mocks.MockMediaRepositoryInterface
	caveClient  *mocks.MockCaveServiceClient
	groupClient *mocks.MockGroupServiceClient
	storeDir    string
	svc         *service.MediaService
}

func (s *MediaServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.repo = mocks.NewMockMediaRepositoryInterface(s.ctrl)
	s.caveClient = mocks.NewMockCaveServiceClient(s.ctrl)
	s.groupClient = mocks.NewMockGroupServiceClient(s.ctrl)

	s.storeDir = s.T().TempDir()
	store, err := storage.NewLocalStore(s.storeDir)
	s.Require().NoError(err)

	s.svc = service.NewMediaService(s.repo, store, s.caveClient, s.groupClient)
}

func (s *MediaServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestMediaServiceTestSuite(t *testing.T) {
	suite.Run(t, new(MediaServiceTestSuite))
}

func (s *MediaServiceTestSuite) blobCount() int {
	entries, err := os.ReadDir(s.storeDir)
	s.Require().NoError(err)
	return len(entries)
}

func (s *MediaServiceTestSuite) TestUploadFile_StoresBlobAndRecord() {
	var created *models.MediaFile
	s.repo.EXPECT().Create(gomock.Any()).DoAndReturn(func(file *models.MediaFile) error {
		file.ID = 1
		created = file
		return nil
	})

	resp, err := s.svc.UploadFile(context.Background(), &service.UploadMediaRequest{
		OriginalFilename: "survey.jpg",
		ContentType:      "image/jpeg",
		Size:             11,
		Metadata:         map[string]string{"depth": "120.5", "verified": "true", "team": "north"},
	}, strings.NewReader("jpeg bytes!"), "uploader@test.com")

	s.NoError(err)
	s.Equal(uint(1), resp.ID)
	s.Equal("survey.jpg", resp.OriginalFilename)
	s.Equal(1, s.blobCount())
	s.True(strings.HasSuffix(created.Filename, ".jpg"))

	types := map[string]models.MetadataType{}
	for _, m := range created.Metadata {
		types[m.Key] = m.Type
	}
	s.Equal(models.MetadataTypeNumber, types["depth"])
	s.Equal(models.MetadataTypeBoolean, types["verified"])
	s.Equal(models.MetadataTypeString, types["team"])
}

func (s *MediaServiceTestSuite) TestUploadFile_RequiresFilename() {
	_, err := s.svc.UploadFile(context.Background(), &service.UploadMediaRequest{},
		strings.NewReader(""), "uploader@test.com")
	s.Error(err)
	s.True(apperrors.IsValidation(err))
	s.Zero(s.blobCount())
}

func (s *MediaServiceTestSuite) TestUploadFile_RecordFailureRemovesBlob() {
	s.repo.EXPECT().Create(gomock.Any()).Return(errors.New("db down"))

	_, err := s.svc.UploadFile(context.Background(), &service.UploadMediaRequest{
		OriginalFilename: "survey.jpg",
	}, strings.NewReader("x"), "uploader@test.com")
	s.Error(err)
	s.Zero(s.blobCount())
}

func (s *MediaServiceTestSuite) TestUploadFile_CaveAttachByOwner() {
	caveID := uint(9)
	s.caveClient.EXPECT().GetCave(gomock.Any(), caveID).
		Return(&clients.CaveSummary{CaveID: caveID, Name: "Krubera", OwnerEmail: "owner@test.com"}, nil)
	s.repo.EXPECT().Create(gomock.Any()).Return(nil)

	_, err := s.svc.UploadFile(context.Background(), &service.UploadMediaRequest{
		OriginalFilename: "map.pdf",
		CaveID:           &caveID,
	}, strings.NewReader("pdf"), "owner@test.com")
	s.NoError(err)
}

func (s *MediaServiceTestSuite) TestUploadFile_CaveAttachByGroupMember() {
	caveID := uint(9)
	s.caveClient.EXPECT().GetCave(gomock.Any(), caveID).
		Return(&clients.CaveSummary{CaveID: caveID, Name: "Krubera", OwnerEmail: "owner@test.com"}, nil)
	s.groupClient.EXPECT().CheckCavePermission(gomock.Any(), caveID, "member@test.com").
		Return(true, nil)
	s.repo.EXPECT().Create(gomock.Any()).Return(nil)

	_, err := s.svc.UploadFile(context.Background(), &service.UploadMediaRequest{
		OriginalFilename: "map.pdf",
		CaveID:           &caveID,
	}, strings.NewReader("pdf"), "member@test.com")
	s.NoError(err)
}

func (s *MediaServiceTestSuite) TestUploadFile_CaveLookupFailureDenies() {
	caveID := uint(9)
	s.caveClient.EXPECT().GetCave(gomock.Any(), caveID).
		Return(nil, errors.New("cave service unreachable"))

	_, err := s.svc.UploadFile(context.Background(), &service.UploadMediaRequest{
		OriginalFilename: "map.pdf",
		CaveID:           &caveID,
	}, strings.NewReader("pdf"), "member@test.com")
	s.ErrorIs(err, apperrors.ErrEditNotAllowed)
	s.Zero(s.blobCount(), "nothing may be stored on a denied upload")
}

func (s *MediaServiceTestSuite) TestDeleteFile_UploaderOnly() {
	file := &models.MediaFile{ID: 3, Filename: "blob.jpg", UploadedBy: "uploader@test.com"}
	s.repo.EXPECT().GetByID(uint(3)).Return(file, nil)

	err := s.svc.DeleteFile(context.Background(), 3, "someone-else@test.com")
	s.ErrorIs(err, apperrors.ErrEditNotAllowed)
}

func (s *MediaServiceTestSuite) TestDeleteFile_RemovesRecordAndBlob() {
	store, err := storage.NewLocalStore(s.storeDir)
	s.Require().NoError(err)
	_, err = store.Save(context.Background(), "blob.jpg", "image/jpeg", strings.NewReader("x"))
	s.Require().NoError(err)

	file := &models.MediaFile{ID: 3, Filename: "blob.jpg", UploadedBy: "uploader@test.com"}
	s.repo.EXPECT().GetByID(uint(3)).Return(file, nil)
	s.repo.EXPECT().Delete(uint(3)).Return(nil)

	s.NoError(s.svc.DeleteFile(context.Background(), 3, "uploader@test.com"))
	_, statErr := os.Stat(filepath.Join(s.storeDir, "blob.jpg"))
	s.True(os.IsNotExist(statErr))
}

func (s *MediaServiceTestSuite) TestHandleCaveDeletedEvent_UnionsEventAndLiveRows() {
	caveID := uint(9)
	// The event lists file 10; file 11 was attached after the event was
	// assembled and only shows up in the live listing.
	s.repo.EXPECT().List(&caveID, "", 200, 0).Return([]models.MediaFile{
		{ID: 11, Filename: "late.jpg", CaveID: &caveID},
	}, int64(1), nil)
	s.repo.EXPECT().GetByID(uint(10)).
		Return(&models.MediaFile{ID: 10, Filename: "listed.jpg", CaveID: &caveID}, nil)
	s.repo.EXPECT().GetByID(uint(11)).
		Return(&models.MediaFile{ID: 11, Filename: "late.jpg", CaveID: &caveID}, nil)
	s.repo.EXPECT().Delete(uint(10)).Return(nil)
	s.repo.EXPECT().Delete(uint(11)).Return(nil)

	body := []byte(`{"event":"cave.deleted","caveId":9,"caveName":"Krubera","ownerEmail":"owner@test.com","mediaFileIds":[10]}`)
	s.NoError(s.svc.HandleCaveDeletedEvent(context.Background(), body))
}

func (s *MediaServiceTestSuite) TestHandleCaveDeletedEvent_RedeliveryIsHarmless() {
	caveID := uint(9)
	s.repo.EXPECT().List(&caveID, "", 200, 0).Return(nil, int64(0), nil)
	s.repo.EXPECT().GetByID(uint(10)).Return(nil, gorm.ErrRecordNotFound)

	body := []byte(`{"event":"cave.deleted","caveId":9,"mediaFileIds":[10]}`)
	s.NoError(s.svc.HandleCaveDeletedEvent(context.Background(), body))
}

func (s *MediaServiceTestSuite) TestHandleCaveDeletedEvent_PagesThroughLargeCaves() {
	caveID := uint(9)

	// A full first page must not end the listing; the straggler on the
	// second page gets cleaned up too.
	firstPage := make([]models.MediaFile, 200)
	for i := range firstPage {
		firstPage[i] = models.MediaFile{ID: uint(1000 + i), Filename: fmt.Sprintf("bulk-%d.jpg", i), CaveID: &caveID}
	}
	straggler := models.MediaFile{ID: 2000, Filename: "straggler.jpg", CaveID: &caveID}

	s.repo.EXPECT().List(&caveID, "", 200, 0).Return(firstPage, int64(201), nil)
	s.repo.EXPECT().List(&caveID, "", 200, 200).Return([]models.MediaFile{straggler}, int64(201), nil)

	for i := range firstPage {
		file := firstPage[i]
		s.repo.EXPECT().GetByID(file.ID).Return(&file, nil)
		s.repo.EXPECT().Delete(file.ID).Return(nil)
	}
	s.repo.EXPECT().GetByID(straggler.ID).Return(&straggler, nil)
	s.repo.EXPECT().Delete(straggler.ID).Return(nil)

	body := []byte(`{"event":"cave.deleted","caveId":9,"caveName":"Krubera","ownerEmail":"owner@test.com"}`)
	s.NoError(s.svc.HandleCaveDeletedEvent(context.Background(), body))
}

func (s *MediaServiceTestSuite) TestHandleCaveDeletedEvent_RejectsMissingCaveID() {
	err := s.svc.HandleCaveDeletedEvent(context.Background(), []byte(`{"event":"cave.deleted"}`))
	s.Error(err)
	s.Contains(err.Error(), "caveId")
}

func (s *MediaServiceTestSuite) TestListFiles_ClampsPagination() {
	s.repo.EXPECT().List(gomock.Nil(), "", 20, 0).Return([]models.MediaFile{}, int64(0), nil)

	_, _, err := s.svc.ListFiles(nil, "", -1, -1)
	s.NoError(err)
}
