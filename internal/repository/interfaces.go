package repository

import (
	"cavemap-backend/internal/database/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// CaveRepositoryInterface defines the interface for cave repository operations
type CaveRepositoryInterface interface {
	Create(cave *models.Cave) error
	GetByID(id uint) (*models.Cave, error)
	GetByName(name string) (*models.Cave, error)
	GetAll(limit, offset int) ([]models.Cave, int64, error)
	GetByOwner(email string) ([]models.Cave, error)
	Update(cave *models.Cave) error
	UpdateOwner(id uint, ownerEmail string) error
	Delete(id uint) error
	MediaFileIDs(caveID uint) ([]uint, error)
}

// GroupRepositoryInterface defines the interface for group repository operations
type GroupRepositoryInterface interface {
	Create(group *models.Group) error
	GetByID(id uint) (*models.Group, error)
	GetByName(name string) (*models.Group, error)
	GetAll(limit, offset int) ([]models.Group, int64, error)
	GetOwnedBy(email string) ([]models.Group, error)
	Update(group *models.Group) error
	SoftDelete(id uint) error
	DeleteCascade(id uint) error
}

// MemberRepositoryInterface defines the interface for group member repository operations
type MemberRepositoryInterface interface {
	Create(member *models.GroupMember) error
	GetByID(memberID uint) (*models.GroupMember, error)
	GetByGroupAndEmail(groupID uint, email string) (*models.GroupMember, error)
	ListByGroup(groupID uint) ([]models.GroupMember, error)
	ListByGroups(groupIDs []uint) ([]models.GroupMember, error)
	Update(member *models.GroupMember) error
	Delete(memberID uint) error
	DeleteByEmail(email string) (int64, error)
	CountOwners(groupID uint) (int64, error)
}

// InvitationRepositoryInterface defines the interface for invitation repository operations
type InvitationRepositoryInterface interface {
	Create(invitation *models.GroupInvitation) error
	GetByID(id uint) (*models.GroupInvitation, error)
	GetPending(groupID uint, inviteeEmail string) (*models.GroupInvitation, error)
	ListByGroup(groupID uint) ([]models.GroupInvitation, error)
	ListByInvitee(email string) ([]models.GroupInvitation, error)
	Update(invitation *models.GroupInvitation) error
}

// ApplicationRepositoryInterface defines the interface for application repository operations
type ApplicationRepositoryInterface interface {
	Create(application *models.GroupApplication) error
	GetByID(id uint) (*models.GroupApplication, error)
	GetPending(groupID uint, applicantEmail string) (*models.GroupApplication, error)
	ListByGroup(groupID uint) ([]models.GroupApplication, error)
	Update(application *models.GroupApplication) error
}

// AssignmentRepositoryInterface defines the interface for cave assignment repository operations
type AssignmentRepositoryInterface interface {
	Create(assignment *models.GroupCave) error
	GetByCaveID(caveID uint) (*models.GroupCave, error)
	GetByGroupAndCave(groupID, caveID uint) (*models.GroupCave, error)
	ListByGroup(groupID uint) ([]models.GroupCave, error)
	GroupIDsForCave(caveID uint) ([]uint, error)
	Delete(id uint) error
	DeleteByCaveID(caveID uint) (int64, error)
	DeleteByGroup(groupID uint) error
	ReassignAssignedBy(oldEmail, newEmail string) (int64, error)
}

// MediaRepositoryInterface defines the interface for media file repository operations
type MediaRepositoryInterface interface {
	Create(file *models.MediaFile) error
	GetByID(id uint) (*models.MediaFile, error)
	GetByFilename(filename string) (*models.MediaFile, error)
	List(caveID *uint, uploadedBy string, limit, offset int) ([]models.MediaFile, int64, error)
	Update(file *models.MediaFile) error
	Delete(id uint) error
	CreateMetadata(entries []models.MediaMetadata) error
}
