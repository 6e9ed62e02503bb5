package repository

import (
	"cavemap-backend/internal/database/models"

	"gorm.io/gorm"
)

// CaveRepository handles database operations for caves
type CaveRepository struct {
	db *gorm.DB
}

// NewCaveRepository creates a new cave repository
func NewCaveRepository(db *gorm.DB) *CaveRepository {
	return &CaveRepository{db: db}
}

// Create creates a new cave together with its entrances
func (r *CaveRepository) Create(cave *models.Cave) error {
	return r.db.Create(cave).Error
}

// GetByID retrieves a cave by ID with its entrances
func (r *CaveRepository) GetByID(id uint) (*models.Cave, error) {
	var cave models.Cave
	err := r.db.Preload("Entrances").First(&cave, "cave_id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &cave, nil
}

// GetByName retrieves a cave by its unique name
func (r *CaveRepository) GetByName(name string) (*models.Cave, error) {
	var cave models.Cave
	err := r.db.First(&cave, "name = ?", name).Error
	if err != nil {
		return nil, err
	}
	return &cave, nil
}

// GetAll retrieves all caves with pagination
func (r *CaveRepository) GetAll(limit, offset int) ([]models.Cave, int64, error) {
	var caves []models.Cave
	var total int64

	if err := r.db.Model(&models.Cave{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Preload("Entrances").Limit(limit).Offset(offset).Order("cave_id").Find(&caves).Error
	if err != nil {
		return nil, 0, err
	}

	return caves, total, nil
}

// GetByOwner retrieves all caves owned by the given user
func (r *CaveRepository) GetByOwner(email string) ([]models.Cave, error) {
	var caves []models.Cave
	err := r.db.Where("owner_email = ?", email).Find(&caves).Error
	if err != nil {
		return nil, err
	}
	return caves, nil
}

// Update persists changes to a cave
func (r *CaveRepository) Update(cave *models.Cave) error {
	return r.db.Save(cave).Error
}

// UpdateOwner sets a new owner for a cave
func (r *CaveRepository) UpdateOwner(id uint, ownerEmail string) error {
	return r.db.Model(&models.Cave{}).Where("cave_id = ?", id).
		Update("owner_email", ownerEmail).Error
}

// Delete removes a cave; entrances and media links are cascade deleted
func (r *CaveRepository) Delete(id uint) error {
	if err := r.db.Where("cave_id = ?", id).Delete(&models.Entrance{}).Error; err != nil {
		return err
	}
	if err := r.db.Where("cave_id = ?", id).Delete(&models.CaveMedia{}).Error; err != nil {
		return err
	}
	return r.db.Delete(&models.Cave{}, "cave_id = ?", id).Error
}

// MediaFileIDs returns the media file ids linked to a cave
func (r *CaveRepository) MediaFileIDs(caveID uint) ([]uint, error) {
	var ids []uint
	err := r.db.Model(&models.CaveMedia{}).Where("cave_id = ?", caveID).
		Pluck("media_file_id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}
