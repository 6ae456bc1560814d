package model

import (
	"time"

	"github.com/google/uuid"
)

// Note rows have no soft-delete column: deletion is permanent.
type Note struct {
	Id          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Title       string    `gorm:"type:varchar(255);not null"`
	Content     string    `gorm:"type:text"`
	IsAudioNote bool      `gorm:"not null;default:false"`
	IsFavorite  bool      `gorm:"not null;default:false"`
	ImageURL    *string   `gorm:"type:text"`
	UserId      uuid.UUID `gorm:"type:uuid;not null;index"`
	CreatedAt   time.Time `gorm:"autoCreateTime"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime"`
}

func (Note) TableName() string {
	return "notes"
}
