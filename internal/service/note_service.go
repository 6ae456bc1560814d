package service

import (
	"context"
	"io"
	"time"

	"github.com/shreyansh1410/aiNotes/internal/dto"
	"github.com/shreyansh1410/aiNotes/internal/entity"
	"github.com/shreyansh1410/aiNotes/internal/pkg/apperr"
	"github.com/shreyansh1410/aiNotes/internal/pkg/logger"
	"github.com/shreyansh1410/aiNotes/internal/repository/specification"
	"github.com/shreyansh1410/aiNotes/internal/repository/unitofwork"
	"github.com/shreyansh1410/aiNotes/internal/storage"

	"github.com/google/uuid"
)

type INoteService interface {
	Create(ctx context.Context, userId uuid.UUID, req *dto.CreateNoteRequest) (*dto.NoteResponse, error)
	List(ctx context.Context, userId uuid.UUID) ([]*dto.NoteResponse, error)
	Update(ctx context.Context, userId uuid.UUID, req *dto.UpdateNoteRequest) (*dto.NoteResponse, error)
	Delete(ctx context.Context, userId uuid.UUID, id uuid.UUID) error
	UploadImage(ctx context.Context, userId uuid.UUID, filename string, r io.Reader) (string, error)
}

type noteService struct {
	uowFactory unitofwork.RepositoryFactory
	blobStore  storage.BlobStore
	logger     logger.ILogger
}

func NewNoteService(uowFactory unitofwork.RepositoryFactory, blobStore storage.BlobStore, log logger.ILogger) INoteService {
	return &noteService{
		uowFactory: uowFactory,
		blobStore:  blobStore,
		logger:     log,
	}
}

func (s *noteService) Create(ctx context.Context, userId uuid.UUID, req *dto.CreateNoteRequest) (*dto.NoteResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	note := entity.Note{
		Id:          uuid.New(),
		Title:       req.Title,
		Content:     req.Content,
		IsAudioNote: req.IsAudioNote,
		IsFavorite:  req.IsFavorite,
		ImageURL:    req.ImageURL,
		UserId:      userId,
		CreatedAt:   time.Now(),
	}

	if err := uow.NoteRepository().Create(ctx, &note); err != nil {
		return nil, err
	}

	s.logger.Info("note", "note created", map[string]interface{}{
		"note_id": note.Id.String(),
		"user_id": userId.String(),
	})

	return toNoteResponse(&note), nil
}

func (s *noteService) List(ctx context.Context, userId uuid.UUID) ([]*dto.NoteResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	notes, err := uow.NoteRepository().FindAll(ctx,
		specification.OwnedBy{UserID: userId},
		specification.OrderBy{Field: "created_at"},
	)
	if err != nil {
		return nil, err
	}

	res := make([]*dto.NoteResponse, len(notes))
	for i, n := range notes {
		res[i] = toNoteResponse(n)
	}
	return res, nil
}

func (s *noteService) Update(ctx context.Context, userId uuid.UUID, req *dto.UpdateNoteRequest) (*dto.NoteResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	note, err := uow.NoteRepository().FindOne(ctx,
		specification.ByID{ID: req.Id},
		specification.OwnedBy{UserID: userId},
	)
	if err != nil {
		return nil, err
	}
	// A note owned by someone else must look exactly like a missing one.
	if note == nil {
		return nil, apperr.ErrNotFound
	}

	// Patch semantics: only fields present in the request change.
	if req.Title != nil {
		note.Title = *req.Title
	}
	if req.Content != nil {
		note.Content = *req.Content
	}
	if req.IsAudioNote != nil {
		note.IsAudioNote = *req.IsAudioNote
	}
	if req.IsFavorite != nil {
		note.IsFavorite = *req.IsFavorite
	}
	if req.ImageURL != nil {
		note.ImageURL = req.ImageURL
	}
	now := time.Now()
	note.UpdatedAt = &now

	if err := uow.NoteRepository().Update(ctx, note); err != nil {
		return nil, err
	}

	return toNoteResponse(note), nil
}

func (s *noteService) Delete(ctx context.Context, userId uuid.UUID, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	note, err := uow.NoteRepository().FindOne(ctx,
		specification.ByID{ID: id},
		specification.OwnedBy{UserID: userId},
	)
	if err != nil {
		return err
	}
	if note == nil {
		return apperr.ErrNotFound
	}

	if err := uow.NoteRepository().Delete(ctx, note.Id); err != nil {
		return err
	}

	s.logger.Info("note", "note deleted", map[string]interface{}{
		"note_id": id.String(),
		"user_id": userId.String(),
	})
	return nil
}

func (s *noteService) UploadImage(ctx context.Context, userId uuid.UUID, filename string, r io.Reader) (string, error) {
	url, err := s.blobStore.Save(ctx, filename, r)
	if err != nil {
		return "", err
	}

	s.logger.Info("note", "image uploaded", map[string]interface{}{
		"user_id": userId.String(),
		"url":     url,
	})
	return url, nil
}

func toNoteResponse(n *entity.Note) *dto.NoteResponse {
	return &dto.NoteResponse{
		Id:          n.Id,
		Title:       n.Title,
		Content:     n.Content,
		IsAudioNote: n.IsAudioNote,
		IsFavorite:  n.IsFavorite,
		ImageURL:    n.ImageURL,
		CreatedAt:   n.CreatedAt,
		UpdatedAt:   n.UpdatedAt,
	}
}
