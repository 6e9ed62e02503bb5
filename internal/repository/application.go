package repository

import (
	"cavemap-backend/internal/database/models"

	"gorm.io/gorm"
)

// ApplicationRepository handles database operations for join applications
type ApplicationRepository struct {
	db *gorm.DB
}

// NewApplicationRepository creates a new application repository
func NewApplicationRepository(db *gorm.DB) *ApplicationRepository {
	return &ApplicationRepository{db: db}
}

// Create creates a new application
func (r *ApplicationRepository) Create(application *models.GroupApplication) error {
	return r.db.Create(application).Error
}

// GetByID retrieves an application by ID
func (r *ApplicationRepository) GetByID(id uint) (*models.GroupApplication, error) {
	var application models.GroupApplication
	err := r.db.First(&application, "application_id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &application, nil
}

// GetPending retrieves a pending application by a user to a group
func (r *ApplicationRepository) GetPending(groupID uint, applicantEmail string) (*models.GroupApplication, error) {
	var application models.GroupApplication
	err := r.db.First(&application,
		"group_id = ? AND applicant_email = ? AND status = ?",
		groupID, applicantEmail, models.ApplicationStatusPending).Error
	if err != nil {
		return nil, err
	}
	return &application, nil
}

// ListByGroup retrieves all applications for a group
func (r *ApplicationRepository) ListByGroup(groupID uint) ([]models.GroupApplication, error) {
	var applications []models.GroupApplication
	err := r.db.Where("group_id = ?", groupID).
		Order("created_at DESC").Find(&applications).Error
	if err != nil {
		return nil, err
	}
	return applications, nil
}

// Update persists changes to an application
func (r *ApplicationRepository) Update(application *models.GroupApplication) error {
	return r.db.Save(application).Error
}
