package repository

import (
	"cavemap-backend/internal/database/models"

	"gorm.io/gorm"
)

// MediaRepository handles database operations for media files
type MediaRepository struct {
	db *gorm.DB
}

// NewMediaRepository creates a new media repository
func NewMediaRepository(db *gorm.DB) *MediaRepository {
	return &MediaRepository{db: db}
}

// Create creates a new media file record
func (r *MediaRepository) Create(file *models.MediaFile) error {
	return r.db.Create(file).Error
}

// GetByID retrieves a media file by ID with its metadata
func (r *MediaRepository) GetByID(id uint) (*models.MediaFile, error) {
	var file models.MediaFile
	err := r.db.Preload("Metadata").First(&file, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &file, nil
}

// GetByFilename retrieves a media file by its unique storage filename
func (r *MediaRepository) GetByFilename(filename string) (*models.MediaFile, error) {
	var file models.MediaFile
	err := r.db.First(&file, "filename = ?", filename).Error
	if err != nil {
		return nil, err
	}
	return &file, nil
}

// List retrieves media files with optional cave and uploader filters
func (r *MediaRepository) List(caveID *uint, uploadedBy string, limit, offset int) ([]models.MediaFile, int64, error) {
	query := r.db.Model(&models.MediaFile{})
	if caveID != nil {
		query = query.Where("cave_id = ?", *caveID)
	}
	if uploadedBy != "" {
		query = query.Where("uploaded_by = ?", uploadedBy)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var files []models.MediaFile
	err := query.Preload("Metadata").
		Limit(limit).Offset(offset).Order("uploaded_at DESC").Find(&files).Error
	if err != nil {
		return nil, 0, err
	}

	return files, total, nil
}

// Update persists changes to a media file record
func (r *MediaRepository) Update(file *models.MediaFile) error {
	return r.db.Save(file).Error
}

// Delete removes a media file record; metadata rows are cascade deleted
func (r *MediaRepository) Delete(id uint) error {
	if err := r.db.Where("media_file_id = ?", id).Delete(&models.MediaMetadata{}).Error; err != nil {
		return err
	}
	return r.db.Delete(&models.MediaFile{}, "id = ?", id).Error
}

// CreateMetadata attaches metadata entries to a media file
func (r *MediaRepository) CreateMetadata(entries []models.MediaMetadata) error {
	if len(entries) == 0 {
		return nil
	}
	return r.db.Create(&entries).Error
}
