package repository

import (
	"cavemap-backend/internal/database/models"

	"gorm.io/gorm"
)

// InvitationRepository handles database operations for group invitations
type InvitationRepository struct {
	db *gorm.DB
}

// NewInvitationRepository creates a new invitation repository
func NewInvitationRepository(db *gorm.DB) *InvitationRepository {
	return &InvitationRepository{db: db}
}

// Create creates a new invitation
func (r *InvitationRepository) Create(invitation *models.GroupInvitation) error {
	return r.db.Create(invitation).Error
}

// GetByID retrieves an invitation by ID
func (r *InvitationRepository) GetByID(id uint) (*models.GroupInvitation, error) {
	var invitation models.GroupInvitation
	err := r.db.First(&invitation, "invitation_id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &invitation, nil
}

// GetPending retrieves a pending invitation for a user in a group
func (r *InvitationRepository) GetPending(groupID uint, inviteeEmail string) (*models.GroupInvitation, error) {
	var invitation models.GroupInvitation
	err := r.db.First(&invitation,
		"group_id = ? AND invitee_email = ? AND status = ?",
		groupID, inviteeEmail, models.InvitationStatusPending).Error
	if err != nil {
		return nil, err
	}
	return &invitation, nil
}

// ListByGroup retrieves all invitations for a group
func (r *InvitationRepository) ListByGroup(groupID uint) ([]models.GroupInvitation, error) {
	var invitations []models.GroupInvitation
	err := r.db.Where("group_id = ?", groupID).
		Order("created_at DESC").Find(&invitations).Error
	if err != nil {
		return nil, err
	}
	return invitations, nil
}

// ListByInvitee retrieves all invitations addressed to a user
func (r *InvitationRepository) ListByInvitee(email string) ([]models.GroupInvitation, error) {
	var invitations []models.GroupInvitation
	err := r.db.Preload("Group").Where("invitee_email = ?", email).
		Order("created_at DESC").Find(&invitations).Error
	if err != nil {
		return nil, err
	}
	return invitations, nil
}

// Update persists changes to an invitation
func (r *InvitationRepository) Update(invitation *models.GroupInvitation) error {
	return r.db.Save(invitation).Error
}
