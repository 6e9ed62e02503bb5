package models

import (
	"time"
)

// Cave represents a surveyed cave record. A cave is owned by exactly one
// user at a time; ownership is reassigned or the record deleted when the
// owner is removed.
type Cave struct {
	CaveID     uint      `json:"cave_id" gorm:"primaryKey;autoIncrement"`
	Name       string    `json:"name" gorm:"size:255;not null;uniqueIndex" validate:"required,max=255"`
	Code       string    `json:"code" gorm:"size:50"`
	OwnerEmail string    `json:"owner_email" gorm:"size:255;not null;index" validate:"required,email"`
	DepthM     *float64  `json:"depth_m,omitempty"`
	LengthM    *float64  `json:"length_m,omitempty"`
	Zone       string    `json:"zone" gorm:"size:100"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`

	// Relationships
	Entrances []Entrance  `json:"entrances,omitempty" gorm:"foreignKey:CaveID;constraint:OnDelete:CASCADE"`
	Media     []CaveMedia `json:"media,omitempty" gorm:"foreignKey:CaveID;constraint:OnDelete:CASCADE"`
}

// Entrance represents a surveyed entrance of a cave
type Entrance struct {
	EntranceID uint     `json:"entrance_id" gorm:"primaryKey;autoIncrement"`
	CaveID     uint     `json:"cave_id" gorm:"not null;index"`
	Name       string   `json:"name" gorm:"size:255"`
	GPSNorth   float64  `json:"gps_n" gorm:"column:gps_n;not null" validate:"required"`
	GPSEast    float64  `json:"gps_e" gorm:"column:gps_e;not null" validate:"required"`
	ASLMeters  *float64 `json:"asl_m,omitempty" gorm:"column:asl_m"`

	Cave *Cave `json:"-" gorm:"foreignKey:CaveID"`
}

// CaveMedia links a cave to a media file held by the media service.
// MediaFileID references the media service's database; the link is used
// to fan the ids out on cave deletion so the media service can clean up.
type CaveMedia struct {
	ID          uint      `json:"id" gorm:"primaryKey;autoIncrement"`
	CaveID      uint      `json:"cave_id" gorm:"not null;index"`
	MediaFileID uint      `json:"media_file_id" gorm:"not null;index"`
	CreatedAt   time.Time `json:"created_at"`

	Cave *Cave `json:"-" gorm:"foreignKey:CaveID"`
}
