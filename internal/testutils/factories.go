package testutils

import (
	"fmt"
	"time"

	"cavemap-backend/internal/database/models"

	"github.com/google/uuid"
)

// CaveFactory provides methods to create test Cave data
type CaveFactory struct{}

// NewCaveFactory creates a new CaveFactory
func NewCaveFactory() *CaveFactory {
	return &CaveFactory{}
}

// Create creates a test Cave with default values. Names are unique per
// call to satisfy the unique index.
func (f *CaveFactory) Create() *models.Cave {
	depth := 120.5
	length := 842.0
	return &models.Cave{
		Name:       "Test Cave " + uuid.NewString()[:8],
		Code:       "TC-01",
		OwnerEmail: "owner@test.com",
		DepthM:     &depth,
		LengthM:    &length,
		Zone:       "North Ridge",
	}
}

// WithOwner sets a custom owner for the cave
func (f *CaveFactory) WithOwner(email string) *models.Cave {
	cave := f.Create()
	cave.OwnerEmail = email
	return cave
}

// WithName sets a custom name for the cave
func (f *CaveFactory) WithName(name string) *models.Cave {
	cave := f.Create()
	cave.Name = name
	return cave
}

// WithEntrances attaches n entrances to the cave
func (f *CaveFactory) WithEntrances(n int) *models.Cave {
	cave := f.Create()
	for i := 0; i < n; i++ {
		cave.Entrances = append(cave.Entrances, models.Entrance{
			Name:     fmt.Sprintf("Entrance %d", i+1),
			GPSNorth: 46.35 + float64(i)*0.001,
			GPSEast:  13.71 + float64(i)*0.001,
		})
	}
	return cave
}

// GroupFactory provides methods to create test Group data
type GroupFactory struct{}

// NewGroupFactory creates a new GroupFactory
func NewGroupFactory() *GroupFactory {
	return &GroupFactory{}
}

// Create creates a test Group with default values
func (f *GroupFactory) Create() *models.Group {
	return &models.Group{
		Name:        "Test Group " + uuid.NewString()[:8],
		Description: "An expedition group for testing",
		JoinPolicy:  models.JoinPolicyInviteOnly,
		IsActive:    true,
	}
}

// WithPolicy sets a custom join policy
func (f *GroupFactory) WithPolicy(policy models.JoinPolicy) *models.Group {
	group := f.Create()
	group.JoinPolicy = policy
	return group
}

// MemberFactory provides methods to create test GroupMember data
type MemberFactory struct{}

// NewMemberFactory creates a new MemberFactory
func NewMemberFactory() *MemberFactory {
	return &MemberFactory{}
}

// Create creates a test member with default values
func (f *MemberFactory) Create(groupID uint, email string, role models.MemberRole) *models.GroupMember {
	return &models.GroupMember{
		GroupID:   groupID,
		UserEmail: email,
		Role:      role,
		JoinedAt:  time.Now().UTC(),
	}
}

// JoinedAt creates a member with an explicit join time, for tests that
// depend on join order
func (f *MemberFactory) JoinedAt(groupID uint, email string, role models.MemberRole, joined time.Time) *models.GroupMember {
	member := f.Create(groupID, email, role)
	member.JoinedAt = joined
	return member
}

// InvitationFactory provides methods to create test GroupInvitation data
type InvitationFactory struct{}

// NewInvitationFactory creates a new InvitationFactory
func NewInvitationFactory() *InvitationFactory {
	return &InvitationFactory{}
}

// Create creates a pending invitation with default values
func (f *InvitationFactory) Create(groupID uint, inviteeEmail string) *models.GroupInvitation {
	expires := time.Now().UTC().Add(7 * 24 * time.Hour)
	return &models.GroupInvitation{
		GroupID:      groupID,
		InviterEmail: "admin@test.com",
		InviteeEmail: inviteeEmail,
		Role:         models.MemberRoleMember,
		Status:       models.InvitationStatusPending,
		ExpiresAt:    &expires,
	}
}

// ApplicationFactory provides methods to create test GroupApplication data
type ApplicationFactory struct{}

// NewApplicationFactory creates a new ApplicationFactory
func NewApplicationFactory() *ApplicationFactory {
	return &ApplicationFactory{}
}

// Create creates a pending application with default values
func (f *ApplicationFactory) Create(groupID uint, applicantEmail string) *models.GroupApplication {
	return &models.GroupApplication{
		GroupID:        groupID,
		ApplicantEmail: applicantEmail,
		Message:        "I would like to join",
		Status:         models.ApplicationStatusPending,
	}
}

// AssignmentFactory provides methods to create test GroupCave data
type AssignmentFactory struct{}

// NewAssignmentFactory creates a new AssignmentFactory
func NewAssignmentFactory() *AssignmentFactory {
	return &AssignmentFactory{}
}

// Create creates a cave assignment with default values
func (f *AssignmentFactory) Create(groupID, caveID uint) *models.GroupCave {
	return &models.GroupCave{
		GroupID:    groupID,
		CaveID:     caveID,
		AssignedAt: time.Now().UTC(),
		AssignedBy: "admin@test.com",
	}
}

// MediaFileFactory provides methods to create test MediaFile data
type MediaFileFactory struct{}

// NewMediaFileFactory creates a new MediaFileFactory
func NewMediaFileFactory() *MediaFileFactory {
	return &MediaFileFactory{}
}

// Create creates a media file record with default values
func (f *MediaFileFactory) Create() *models.MediaFile {
	name := uuid.NewString() + ".jpg"
	return &models.MediaFile{
		Filename:         name,
		OriginalFilename: "survey-photo.jpg",
		FilePath:         "/tmp/media/" + name,
		FileSize:         2048,
		ContentType:      "image/jpeg",
		UploadedBy:       "uploader@test.com",
		UploadedAt:       time.Now().UTC(),
	}
}

// ForCave creates a media file attached to a cave
func (f *MediaFileFactory) ForCave(caveID uint) *models.MediaFile {
	file := f.Create()
	file.CaveID = &caveID
	return file
}
