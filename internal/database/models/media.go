package models

import (
	"time"
)

// MetadataType identifies how a metadata value should be parsed
type MetadataType string

const (
	MetadataTypeString  MetadataType = "string"
	MetadataTypeNumber  MetadataType = "number"
	MetadataTypeBoolean MetadataType = "boolean"
)

// IsValid checks if the MetadataType is valid
func (t MetadataType) IsValid() bool {
	switch t {
	case MetadataTypeString, MetadataTypeNumber, MetadataTypeBoolean:
		return true
	}
	return false
}

// MediaFile represents an uploaded media file. The blob itself lives in
// the configured blob store; the row holds metadata and the storage key.
type MediaFile struct {
	ID               uint      `json:"id" gorm:"primaryKey;autoIncrement"`
	Filename         string    `json:"filename" gorm:"size:255;not null;uniqueIndex"`
	OriginalFilename string    `json:"original_filename" gorm:"size:255;not null"`
	FilePath         string    `json:"file_path" gorm:"size:1024;not null"`
	FileSize         int64     `json:"file_size" gorm:"not null"`
	ContentType      string    `json:"content_type" gorm:"size:255;not null"`
	UploadedBy       string    `json:"uploaded_by" gorm:"size:255;not null;index" validate:"required,email"`
	UploadedAt       time.Time `json:"uploaded_at"`
	CaveID           *uint     `json:"cave_id,omitempty" gorm:"index"`

	// Relationships
	Metadata []MediaMetadata `json:"metadata,omitempty" gorm:"foreignKey:MediaFileID;constraint:OnDelete:CASCADE"`
}

// MediaMetadata holds a typed key/value pair attached to a media file
type MediaMetadata struct {
	ID          uint         `json:"id" gorm:"primaryKey;autoIncrement"`
	MediaFileID uint         `json:"media_file_id" gorm:"not null;index"`
	Key         string       `json:"key" gorm:"size:255;not null"`
	Value       string       `json:"value" gorm:"type:text;not null"`
	Type        MetadataType `json:"type" gorm:"column:metadata_type;type:varchar(20);not null;default:'string'"`

	MediaFile *MediaFile `json:"-" gorm:"foreignKey:MediaFileID"`
}
