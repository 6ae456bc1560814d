package entity

import (
	"time"

	"github.com/google/uuid"
)

// Note is the domain-level note. UserId is stamped once at creation and
// never changes; every read and write is filtered by (Id, UserId).
type Note struct {
	Id          uuid.UUID
	Title       string
	Content     string
	IsAudioNote bool
	IsFavorite  bool
	ImageURL    *string
	UserId      uuid.UUID
	CreatedAt   time.Time
	UpdatedAt   *time.Time
}
