package service

import (
	"context"
	"time"

	"github.com/shreyansh1410/aiNotes/internal/dto"
	"github.com/shreyansh1410/aiNotes/internal/entity"
	"github.com/shreyansh1410/aiNotes/internal/pkg/apperr"
	"github.com/shreyansh1410/aiNotes/internal/pkg/logger"
	"github.com/shreyansh1410/aiNotes/internal/repository/specification"
	"github.com/shreyansh1410/aiNotes/internal/repository/unitofwork"
	"github.com/shreyansh1410/aiNotes/internal/token"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type IAuthService interface {
	Signup(ctx context.Context, req *dto.SignupRequest) (*dto.AuthResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error)
}

type authService struct {
	uowFactory   unitofwork.RepositoryFactory
	tokenService *token.Service
	logger       logger.ILogger
}

func NewAuthService(uowFactory unitofwork.RepositoryFactory, tokenService *token.Service, log logger.ILogger) IAuthService {
	return &authService{
		uowFactory:   uowFactory,
		tokenService: tokenService,
		logger:       log,
	}
}

func (s *authService) Signup(ctx context.Context, req *dto.SignupRequest) (*dto.AuthResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	// 1. Check for existing user by email or username
	existing, err := uow.UserRepository().FindOne(ctx, specification.ByEmail{Email: req.Email})
	if err != nil {
		return nil, err
	}
	if existing == nil {
		existing, err = uow.UserRepository().FindOne(ctx, specification.ByUsername{Username: req.Username})
		if err != nil {
			return nil, err
		}
	}
	if existing != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "User already exists")
	}

	// 2. Hash password
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	// 3. Create user
	user := &entity.User{
		Id:           uuid.New(),
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: string(hash),
		CreatedAt:    time.Now(),
	}
	if err := uow.UserRepository().Create(ctx, user); err != nil {
		return nil, err
	}

	// 4. Issue credential immediately, no separate login round trip
	signed, err := s.tokenService.Issue(user.Id)
	if err != nil {
		return nil, err
	}

	s.logger.Info("auth", "user signed up", map[string]interface{}{"user_id": user.Id.String()})

	return &dto.AuthResponse{Token: signed, UserId: user.Id}, nil
}

func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.ByEmail{Email: req.Email})
	if err != nil {
		return nil, err
	}
	// Unknown email and wrong password produce the same failure.
	if user == nil {
		return nil, apperr.ErrUnauthenticated
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, apperr.ErrUnauthenticated
	}

	signed, err := s.tokenService.Issue(user.Id)
	if err != nil {
		return nil, err
	}

	s.logger.Info("auth", "user logged in", map[string]interface{}{"user_id": user.Id.String()})

	return &dto.AuthResponse{Token: signed, UserId: user.Id}, nil
}
