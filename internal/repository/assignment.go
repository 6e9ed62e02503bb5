package repository

import (
	"cavemap-backend/internal/database/models"

	"gorm.io/gorm"
)

// AssignmentRepository handles database operations for cave assignments
type AssignmentRepository struct {
	db *gorm.DB
}

// NewAssignmentRepository creates a new assignment repository
func NewAssignmentRepository(db *gorm.DB) *AssignmentRepository {
	return &AssignmentRepository{db: db}
}

// Create creates a new cave assignment
func (r *AssignmentRepository) Create(assignment *models.GroupCave) error {
	return r.db.Create(assignment).Error
}

// GetByCaveID retrieves the assignment for a cave. A cave is assigned to
// at most one group globally.
func (r *AssignmentRepository) GetByCaveID(caveID uint) (*models.GroupCave, error) {
	var assignment models.GroupCave
	err := r.db.First(&assignment, "cave_id = ?", caveID).Error
	if err != nil {
		return nil, err
	}
	return &assignment, nil
}

// GetByGroupAndCave retrieves the assignment of a cave within a group
func (r *AssignmentRepository) GetByGroupAndCave(groupID, caveID uint) (*models.GroupCave, error) {
	var assignment models.GroupCave
	err := r.db.First(&assignment, "group_id = ? AND cave_id = ?", groupID, caveID).Error
	if err != nil {
		return nil, err
	}
	return &assignment, nil
}

// ListByGroup retrieves all cave assignments of a group, newest first
func (r *AssignmentRepository) ListByGroup(groupID uint) ([]models.GroupCave, error) {
	var assignments []models.GroupCave
	err := r.db.Where("group_id = ?", groupID).
		Order("assigned_at DESC").Find(&assignments).Error
	if err != nil {
		return nil, err
	}
	return assignments, nil
}

// GroupIDsForCave returns the ids of the active groups a cave is assigned to
func (r *AssignmentRepository) GroupIDsForCave(caveID uint) ([]uint, error) {
	var ids []uint
	err := r.db.Model(&models.GroupCave{}).
		Joins("JOIN groups ON groups.group_id = group_caves.group_id").
		Where("group_caves.cave_id = ? AND groups.is_active = ?", caveID, true).
		Pluck("group_caves.group_id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}

// Delete removes a single assignment
func (r *AssignmentRepository) Delete(id uint) error {
	return r.db.Delete(&models.GroupCave{}, "id = ?", id).Error
}

// DeleteByCaveID removes every assignment of a cave and reports how many
// rows were removed. Deleting an already-absent assignment is a no-op.
func (r *AssignmentRepository) DeleteByCaveID(caveID uint) (int64, error) {
	result := r.db.Where("cave_id = ?", caveID).Delete(&models.GroupCave{})
	return result.RowsAffected, result.Error
}

// DeleteByGroup removes every assignment belonging to a group
func (r *AssignmentRepository) DeleteByGroup(groupID uint) error {
	return r.db.Where("group_id = ?", groupID).Delete(&models.GroupCave{}).Error
}

// ReassignAssignedBy rewrites the assigned_by attribution from one identity
// to another, preserving the assignment records themselves
func (r *AssignmentRepository) ReassignAssignedBy(oldEmail, newEmail string) (int64, error) {
	result := r.db.Model(&models.GroupCave{}).
		Where("assigned_by = ?", oldEmail).
		Update("assigned_by", newEmail)
	return result.RowsAffected, result.Error
}
