package models

import (
	"time"
)

// MemberRole represents the role of a member within a group
type MemberRole string

const (
	MemberRoleOwner  MemberRole = "owner"  // Full control, can delete the group
	MemberRoleAdmin  MemberRole = "admin"  // Can manage members and caves
	MemberRoleMember MemberRole = "member" // Can view and contribute
)

// IsValid checks if the MemberRole is valid
func (r MemberRole) IsValid() bool {
	switch r {
	case MemberRoleOwner, MemberRoleAdmin, MemberRoleMember:
		return true
	}
	return false
}

// Priority returns the inheritance ranking weight of the role.
// Higher values win when a cave owner has to be replaced.
func (r MemberRole) Priority() int {
	switch r {
	case MemberRoleOwner:
		return 3
	case MemberRoleAdmin:
		return 2
	case MemberRoleMember:
		return 1
	}
	return 0
}

// JoinPolicy represents how users can join a group
type JoinPolicy string

const (
	JoinPolicyOpen        JoinPolicy = "open"        // Anyone can join directly
	JoinPolicyApplication JoinPolicy = "application" // Users apply, admins approve
	JoinPolicyInviteOnly  JoinPolicy = "invite_only" // Only by invitation
)

// IsValid checks if the JoinPolicy is valid
func (p JoinPolicy) IsValid() bool {
	switch p {
	case JoinPolicyOpen, JoinPolicyApplication, JoinPolicyInviteOnly:
		return true
	}
	return false
}

// InvitationStatus represents the status of a group invitation
type InvitationStatus string

const (
	InvitationStatusPending  InvitationStatus = "pending"
	InvitationStatusAccepted InvitationStatus = "accepted"
	InvitationStatusDeclined InvitationStatus = "declined"
	InvitationStatusExpired  InvitationStatus = "expired"
)

// ApplicationStatus represents the status of a join application
type ApplicationStatus string

const (
	ApplicationStatusPending  ApplicationStatus = "pending"
	ApplicationStatusApproved ApplicationStatus = "approved"
	ApplicationStatusRejected ApplicationStatus = "rejected"
)

// SystemIdentity is the sentinel identity that replaces references to
// deleted users on records that outlive them.
const SystemIdentity = "system@cavemap.internal"

// Group represents an expedition group that manages caves and members
type Group struct {
	GroupID     uint       `json:"group_id" gorm:"primaryKey;autoIncrement"`
	Name        string     `json:"name" gorm:"size:255;not null" validate:"required,max=255"`
	Description string     `json:"description" gorm:"type:text"`
	JoinPolicy  JoinPolicy `json:"join_policy" gorm:"type:varchar(20);not null;default:'invite_only'"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	IsActive    bool       `json:"is_active" gorm:"default:true"`

	// Relationships
	Members      []GroupMember      `json:"members,omitempty" gorm:"foreignKey:GroupID;constraint:OnDelete:CASCADE"`
	Invitations  []GroupInvitation  `json:"invitations,omitempty" gorm:"foreignKey:GroupID;constraint:OnDelete:CASCADE"`
	Applications []GroupApplication `json:"applications,omitempty" gorm:"foreignKey:GroupID;constraint:OnDelete:CASCADE"`
	Caves        []GroupCave        `json:"caves,omitempty" gorm:"foreignKey:GroupID;constraint:OnDelete:CASCADE"`
}

// GroupMember links a user to a group with a role
type GroupMember struct {
	MemberID  uint       `json:"member_id" gorm:"primaryKey;autoIncrement"`
	GroupID   uint       `json:"group_id" gorm:"not null;index"`
	UserEmail string     `json:"user_email" gorm:"size:255;not null;index" validate:"required,email"`
	Role      MemberRole `json:"role" gorm:"type:varchar(20);not null;default:'member'"`
	JoinedAt  time.Time  `json:"joined_at"`

	Group *Group `json:"-" gorm:"foreignKey:GroupID"`
}

// GroupInvitation represents an invitation to join a group
type GroupInvitation struct {
	InvitationID uint             `json:"invitation_id" gorm:"primaryKey;autoIncrement"`
	GroupID      uint             `json:"group_id" gorm:"not null;index"`
	InviterEmail string           `json:"inviter_email" gorm:"size:255;not null" validate:"required,email"`
	InviteeEmail string           `json:"invitee_email" gorm:"size:255;not null;index" validate:"required,email"`
	Role         MemberRole       `json:"role" gorm:"type:varchar(20);not null;default:'member'"`
	Status       InvitationStatus `json:"status" gorm:"type:varchar(20);not null;default:'pending'"`
	CreatedAt    time.Time        `json:"created_at"`
	ExpiresAt    *time.Time       `json:"expires_at,omitempty"`
	RespondedAt  *time.Time       `json:"responded_at,omitempty"`

	Group *Group `json:"-" gorm:"foreignKey:GroupID"`
}

// GroupApplication represents a request to join an application-based group
type GroupApplication struct {
	ApplicationID  uint              `json:"application_id" gorm:"primaryKey;autoIncrement"`
	GroupID        uint              `json:"group_id" gorm:"not null;index"`
	ApplicantEmail string            `json:"applicant_email" gorm:"size:255;not null;index" validate:"required,email"`
	Message        string            `json:"message" gorm:"type:text"`
	Status         ApplicationStatus `json:"status" gorm:"type:varchar(20);not null;default:'pending'"`
	CreatedAt      time.Time         `json:"created_at"`
	ReviewedAt     *time.Time        `json:"reviewed_at,omitempty"`
	ReviewedBy     string            `json:"reviewed_by,omitempty" gorm:"size:255"`

	Group *Group `json:"-" gorm:"foreignKey:GroupID"`
}

// GroupCave links a cave to the single group responsible for it.
// CaveID references a cave in the cave service; a cave appears in at
// most one assignment row globally.
type GroupCave struct {
	ID         uint      `json:"id" gorm:"primaryKey;autoIncrement"`
	GroupID    uint      `json:"group_id" gorm:"not null;index"`
	CaveID     uint      `json:"cave_id" gorm:"not null;uniqueIndex"`
	AssignedAt time.Time `json:"assigned_at"`
	AssignedBy string    `json:"assigned_by" gorm:"size:255;not null"`

	Group *Group `json:"-" gorm:"foreignKey:GroupID"`
}
