package repository

import (
	"cavemap-backend/internal/database/models"

	"gorm.io/gorm"
)

// MemberRepository handles database operations for group members
type MemberRepository struct {
	db *gorm.DB
}

// NewMemberRepository creates a new member repository
func NewMemberRepository(db *gorm.DB) *MemberRepository {
	return &MemberRepository{db: db}
}

// Create creates a new group membership
func (r *MemberRepository) Create(member *models.GroupMember) error {
	return r.db.Create(member).Error
}

// GetByID retrieves a membership by its id
func (r *MemberRepository) GetByID(memberID uint) (*models.GroupMember, error) {
	var member models.GroupMember
	err := r.db.First(&member, "member_id = ?", memberID).Error
	if err != nil {
		return nil, err
	}
	return &member, nil
}

// GetByGroupAndEmail retrieves a user's membership in a group
func (r *MemberRepository) GetByGroupAndEmail(groupID uint, email string) (*models.GroupMember, error) {
	var member models.GroupMember
	err := r.db.First(&member, "group_id = ? AND user_email = ?", groupID, email).Error
	if err != nil {
		return nil, err
	}
	return &member, nil
}

// ListByGroup retrieves all members of a group ordered by join time.
// The ascending order is relied on by the inheritance resolvers.
func (r *MemberRepository) ListByGroup(groupID uint) ([]models.GroupMember, error) {
	var members []models.GroupMember
	err := r.db.Where("group_id = ?", groupID).
		Order("joined_at ASC, member_id ASC").Find(&members).Error
	if err != nil {
		return nil, err
	}
	return members, nil
}

// ListByGroups retrieves the members of several groups in one query
func (r *MemberRepository) ListByGroups(groupIDs []uint) ([]models.GroupMember, error) {
	if len(groupIDs) == 0 {
		return nil, nil
	}
	var members []models.GroupMember
	err := r.db.Where("group_id IN ?", groupIDs).
		Order("joined_at ASC, member_id ASC").Find(&members).Error
	if err != nil {
		return nil, err
	}
	return members, nil
}

// Update persists changes to a membership
func (r *MemberRepository) Update(member *models.GroupMember) error {
	return r.db.Save(member).Error
}

// Delete removes a membership
func (r *MemberRepository) Delete(memberID uint) error {
	return r.db.Delete(&models.GroupMember{}, "member_id = ?", memberID).Error
}

// DeleteByEmail removes every membership of a user across all groups and
// returns the number of rows removed
func (r *MemberRepository) DeleteByEmail(email string) (int64, error) {
	result := r.db.Where("user_email = ?", email).Delete(&models.GroupMember{})
	return result.RowsAffected, result.Error
}

// CountOwners counts the members holding the OWNER role in a group
func (r *MemberRepository) CountOwners(groupID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.GroupMember{}).
		Where("group_id = ? AND role = ?", groupID, models.MemberRoleOwner).
		Count(&count).Error
	return count, err
}
