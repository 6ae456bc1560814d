package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateNoteRequest struct {
	Title       string  `json:"title" validate:"required,max=255"`
	Content     string  `json:"content"`
	IsAudioNote bool    `json:"isAudioNote"`
	IsFavorite  bool    `json:"isFavorite"`
	ImageURL    *string `json:"imageUrl"`
}

// UpdateNoteRequest carries patch semantics: a nil field is left
// unchanged, only fields present in the request body are applied.
type UpdateNoteRequest struct {
	Id          uuid.UUID `json:"-"`
	Title       *string   `json:"title" validate:"omitempty,max=255"`
	Content     *string   `json:"content"`
	IsAudioNote *bool     `json:"isAudioNote"`
	IsFavorite  *bool     `json:"isFavorite"`
	ImageURL    *string   `json:"imageUrl"`
}

type NoteResponse struct {
	Id          uuid.UUID  `json:"id"`
	Title       string     `json:"title"`
	Content     string     `json:"content"`
	IsAudioNote bool       `json:"isAudioNote"`
	IsFavorite  bool       `json:"isFavorite"`
	ImageURL    *string    `json:"imageUrl,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   *time.Time `json:"updatedAt,omitempty"`
}

type UploadImageResponse struct {
	ImageURL string `json:"imageUrl"`
}
