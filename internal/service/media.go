package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"time"

	"cavemap-backend/internal/clients"
	"cavemap-backend/internal/database/models"
	apperrors "cavemap-backend/internal/errors"
	"cavemap-backend/internal/events"
	"cavemap-backend/internal/logger"
	"cavemap-backend/internal/repository"
	"cavemap-backend/internal/storage"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MediaService handles business logic for media files
type MediaService struct {
	repo        repository.MediaRepositoryInterface
	store       storage.BlobStore
	caveClient  clients.CaveServiceClient
	groupClient clients.GroupServiceClient
	log         *logger.Logger
}

// NewMediaService creates a new media service
func NewMediaService(
	repo repository.MediaRepositoryInterface,
	store storage.BlobStore,
	caveClient clients.CaveServiceClient,
	groupClient clients.GroupServiceClient,
) *MediaService {
	return &MediaService{
		repo:        repo,
		store:       store,
		caveClient:  caveClient,
		groupClient: groupClient,
		log:         logger.New(),
	}
}

// UploadMediaRequest carries the non-blob fields of an upload
type UploadMediaRequest struct {
	OriginalFilename string
	ContentType      string
	Size             int64
	CaveID           *uint
	Metadata         map[string]string
}

// MediaMetadataResponse represents one metadata entry in responses
type MediaMetadataResponse struct {
	Key   string `json:"key"`
	Value string `json:"value"`
	Type  string `json:"type"`
}

// MediaFileResponse represents the response data for a media file
type MediaFileResponse struct {
	ID               uint                    `json:"id"`
	Filename         string                  `json:"filename"`
	OriginalFilename string                  `json:"original_filename"`
	FileSize         int64                   `json:"file_size"`
	ContentType      string                  `json:"content_type"`
	UploadedBy       string                  `json:"uploaded_by"`
	UploadedAt       time.Time               `json:"uploaded_at"`
	CaveID           *uint                   `json:"cave_id,omitempty"`
	Metadata         []MediaMetadataResponse `json:"metadata,omitempty"`
}

// UploadFile stores a blob and records it. When the upload is attached to
// a cave the uploader must hold edit rights on that cave; a failed rights
// check denies the upload.
func (s *MediaService) UploadFile(ctx context.Context, req *UploadMediaRequest, data io.Reader, uploaderEmail string) (*MediaFileResponse, error) {
	if req.OriginalFilename == "" {
		return nil, apperrors.NewValidationError("filename", "is required")
	}

	if req.CaveID != nil {
		if err := s.authorizeCaveAttach(ctx, *req.CaveID, uploaderEmail); err != nil {
			return nil, err
		}
	}

	storedName := uuid.NewString() + filepath.Ext(req.OriginalFilename)
	path, err := s.store.Save(ctx, storedName, req.ContentType, data)
	if err != nil {
		return nil, fmt.Errorf("failed to store blob: %w", err)
	}

	file := &models.MediaFile{
		Filename:         storedName,
		OriginalFilename: req.OriginalFilename,
		FilePath:         path,
		FileSize:         req.Size,
		ContentType:      req.ContentType,
		UploadedBy:       uploaderEmail,
		UploadedAt:       time.Now().UTC(),
		CaveID:           req.CaveID,
	}
	for key, value := range req.Metadata {
		file.Metadata = append(file.Metadata, models.MediaMetadata{
			Key:   key,
			Value: value,
			Type:  inferMetadataType(value),
		})
	}

	if err := s.repo.Create(file); err != nil {
		// Orphaned blobs are worse than a retried upload.
		if _, delErr := s.store.Delete(ctx, storedName); delErr != nil {
			s.log.WithError(delErr).Warnf("failed to remove blob %s after record failure", storedName)
		}
		return nil, err
	}
	s.log.Infof("stored media file %d (%s) uploaded by %s", file.ID, file.OriginalFilename, uploaderEmail)

	return toMediaResponse(file), nil
}

// GetFileByID retrieves a media file record
func (s *MediaService) GetFileByID(id uint) (*MediaFileResponse, error) {
	file, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrMediaFileNotFound
		}
		return nil, err
	}
	return toMediaResponse(file), nil
}

// OpenFile returns the record and a reader over the stored blob
func (s *MediaService) OpenFile(ctx context.Context, id uint) (*MediaFileResponse, io.ReadCloser, error) {
	file, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, apperrors.ErrMediaFileNotFound
		}
		return nil, nil, err
	}

	reader, err := s.store.Open(ctx, file.Filename)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open blob %s: %w", file.Filename, err)
	}
	return toMediaResponse(file), reader, nil
}

// ListFiles retrieves media files filtered by cave and uploader
func (s *MediaService) ListFiles(caveID *uint, uploadedBy string, limit, offset int) ([]MediaFileResponse, int64, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	files, total, err := s.repo.List(caveID, uploadedBy, limit, offset)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]MediaFileResponse, 0, len(files))
	for i := range files {
		responses = append(responses, *toMediaResponse(&files[i]))
	}
	return responses, total, nil
}

// DeleteFile removes a media file record and its blob. Only the uploader
// may delete a file.
func (s *MediaService) DeleteFile(ctx context.Context, id uint, actorEmail string) error {
	file, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrMediaFileNotFound
		}
		return err
	}
	if file.UploadedBy != actorEmail {
		return apperrors.ErrEditNotAllowed
	}
	return s.remove(ctx, file)
}

// HandleCaveDeletedEvent removes the media files of a deleted cave: the
// ids listed in the event plus any rows still pointing at the cave.
// Already-removed files are skipped, so a redelivered event is harmless.
func (s *MediaService) HandleCaveDeletedEvent(ctx context.Context, body []byte) error {
	var event events.CaveDeletedEvent
	if err := json.Unmarshal(body, &event); err != nil {
		return fmt.Errorf("malformed cave.deleted payload: %w", err)
	}
	if event.CaveID == 0 {
		return fmt.Errorf("cave.deleted payload missing caveId")
	}
	s.log.Infof("cleaning up media for deleted cave %d (%d listed file(s))", event.CaveID, len(event.MediaFileIDs))

	ids := make(map[uint]struct{}, len(event.MediaFileIDs))
	for _, id := range event.MediaFileIDs {
		ids[id] = struct{}{}
	}

	// Catch files attached to the cave after the event was assembled,
	// paging until the listing is exhausted.
	const pageSize = 200
	for offset := 0; ; offset += pageSize {
		files, _, err := s.repo.List(&event.CaveID, "", pageSize, offset)
		if err != nil {
			return fmt.Errorf("failed to list media for cave %d: %w", event.CaveID, err)
		}
		for i := range files {
			ids[files[i].ID] = struct{}{}
		}
		if len(files) < pageSize {
			break
		}
	}

	for id := range ids {
		file, err := s.repo.GetByID(id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				continue
			}
			s.log.WithError(err).Errorf("failed to load media file %d during cave cleanup", id)
			continue
		}
		if err := s.remove(ctx, file); err != nil {
			s.log.WithError(err).Errorf("failed to remove media file %d during cave cleanup", id)
		}
	}
	return nil
}

func (s *MediaService) remove(ctx context.Context, file *models.MediaFile) error {
	if err := s.repo.Delete(file.ID); err != nil {
		return err
	}
	if removed, err := s.store.Delete(ctx, file.Filename); err != nil {
		s.log.WithError(err).Warnf("blob %s could not be removed, record is gone", file.Filename)
	} else if !removed {
		s.log.Debugf("blob %s was already absent", file.Filename)
	}
	s.log.Infof("deleted media file %d (%s)", file.ID, file.OriginalFilename)
	return nil
}

// authorizeCaveAttach checks that the uploader may edit the cave: the
// cave's owner always can, anyone else needs group-granted rights. Any
// lookup failure denies.
func (s *MediaService) authorizeCaveAttach(ctx context.Context, caveID uint, email string) error {
	cave, err := s.caveClient.GetCave(ctx, caveID)
	if err != nil {
		s.log.WithError(err).Warnf("cave %d lookup failed, denying attach", caveID)
		return apperrors.ErrEditNotAllowed
	}
	if cave.OwnerEmail == email {
		return nil
	}

	canEdit, err := s.groupClient.CheckCavePermission(ctx, caveID, email)
	if err != nil {
		s.log.WithError(err).Warnf("permission check failed for cave %d, denying attach", caveID)
		return apperrors.ErrEditNotAllowed
	}
	if !canEdit {
		return apperrors.ErrEditNotAllowed
	}
	return nil
}

func inferMetadataType(value string) models.MetadataType {
	if _, err := strconv.ParseFloat(value, 64); err == nil {
		return models.MetadataTypeNumber
	}
	if _, err := strconv.ParseBool(value); err == nil {
		return models.MetadataTypeBoolean
	}
	return models.MetadataTypeString
}

func toMediaResponse(file *models.MediaFile) *MediaFileResponse {
	resp := &MediaFileResponse{
		ID:               file.ID,
		Filename:         file.Filename,
		OriginalFilename: file.OriginalFilename,
		FileSize:         file.FileSize,
		ContentType:      file.ContentType,
		UploadedBy:       file.UploadedBy,
		UploadedAt:       file.UploadedAt,
		CaveID:           file.CaveID,
	}
	for _, m := range file.Metadata {
		resp.Metadata = append(resp.Metadata, MediaMetadataResponse{
			Key:   m.Key,
			Value: m.Value,
			Type:  string(m.Type),
		})
	}
	return resp
}
