package repository

import (
	"cavemap-backend/internal/database/models"

	"gorm.io/gorm"
)

// GroupRepository handles database operations for groups
type GroupRepository struct {
	db *gorm.DB
}

// NewGroupRepository creates a new group repository
func NewGroupRepository(db *gorm.DB) *GroupRepository {
	return &GroupRepository{db: db}
}

// Create creates a new group
func (r *GroupRepository) Create(group *models.Group) error {
	return r.db.Create(group).Error
}

// GetByID retrieves an active group by ID with members and cave assignments
func (r *GroupRepository) GetByID(id uint) (*models.Group, error) {
	var group models.Group
	err := r.db.Preload("Members").Preload("Caves").
		First(&group, "group_id = ? AND is_active = ?", id, true).Error
	if err != nil {
		return nil, err
	}
	return &group, nil
}

// GetByName retrieves an active group by name, case-insensitively
func (r *GroupRepository) GetByName(name string) (*models.Group, error) {
	var group models.Group
	err := r.db.First(&group, "LOWER(name) = LOWER(?) AND is_active = ?", name, true).Error
	if err != nil {
		return nil, err
	}
	return &group, nil
}

// GetAll retrieves all active groups with pagination
func (r *GroupRepository) GetAll(limit, offset int) ([]models.Group, int64, error) {
	var groups []models.Group
	var total int64

	if err := r.db.Model(&models.Group{}).Where("is_active = ?", true).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Preload("Members").Where("is_active = ?", true).
		Limit(limit).Offset(offset).Order("group_id").Find(&groups).Error
	if err != nil {
		return nil, 0, err
	}

	return groups, total, nil
}

// GetOwnedBy retrieves all active groups where the given user holds the OWNER role
func (r *GroupRepository) GetOwnedBy(email string) ([]models.Group, error) {
	var groups []models.Group
	err := r.db.Joins("JOIN group_members ON group_members.group_id = groups.group_id").
		Where("group_members.user_email = ? AND group_members.role = ? AND groups.is_active = ?",
			email, models.MemberRoleOwner, true).
		Find(&groups).Error
	if err != nil {
		return nil, err
	}
	return groups, nil
}

// Update persists changes to a group
func (r *GroupRepository) Update(group *models.Group) error {
	return r.db.Save(group).Error
}

// SoftDelete marks a group inactive and removes its invitations and cave
// assignments so they do not linger after deletion
func (r *GroupRepository) SoftDelete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Group{}).Where("group_id = ?", id).
			Update("is_active", false).Error; err != nil {
			return err
		}
		if err := tx.Where("group_id = ?", id).Delete(&models.GroupInvitation{}).Error; err != nil {
			return err
		}
		return tx.Where("group_id = ?", id).Delete(&models.GroupCave{}).Error
	})
}

// DeleteCascade hard-deletes a group and every dependent row. Used by the
// user-deletion resolver when a group loses its last member; the caller is
// expected to run it inside an ambient transaction.
func (r *GroupRepository) DeleteCascade(id uint) error {
	if err := r.db.Where("group_id = ?", id).Delete(&models.GroupMember{}).Error; err != nil {
		return err
	}
	if err := r.db.Where("group_id = ?", id).Delete(&models.GroupInvitation{}).Error; err != nil {
		return err
	}
	if err := r.db.Where("group_id = ?", id).Delete(&models.GroupApplication{}).Error; err != nil {
		return err
	}
	if err := r.db.Where("group_id = ?", id).Delete(&models.GroupCave{}).Error; err != nil {
		return err
	}
	return r.db.Delete(&models.Group{}, "group_id = ?", id).Error
}
