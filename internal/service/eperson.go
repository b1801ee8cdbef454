package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"eperson-backend/internal/database/models"
	apperrors "eperson-backend/internal/errors"
	"eperson-backend/internal/logger"
	"eperson-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// EPersonService handles business logic for epeople
type EPersonService struct {
	repo      repository.EPersonRepositoryInterface
	validator *validator.Validate
}

// NewEPersonService creates a new eperson service
func NewEPersonService(repo repository.EPersonRepositoryInterface, validator *validator.Validate) *EPersonService {
	return &EPersonService{
		repo:      repo,
		validator: validator,
	}
}

// CreateEPersonRequest represents the request to create an eperson
type CreateEPersonRequest struct {
	Email     string `json:"email" validate:"required,email,max=255"`
	FirstName string `json:"first_name" validate:"max=100"`
	LastName  string `json:"last_name" validate:"max=100"`
	CanLogIn  *bool  `json:"can_log_in"`
}

// EPersonResponse represents the response for eperson operations
type EPersonResponse struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	CanLogIn  bool      `json:"can_log_in"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Create creates a new eperson
func (s *EPersonService) Create(ctx context.Context, req *CreateEPersonRequest) (*EPersonResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	existing, err := s.repo.GetByEmail(ctx, email)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing eperson: %w", err)
	}
	if existing != nil {
		return nil, apperrors.ErrEPersonExists
	}

	eperson := &models.EPerson{
		Email:     email,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		CanLogIn:  true,
	}
	if req.CanLogIn != nil {
		eperson.CanLogIn = *req.CanLogIn
	}
	if err := s.repo.Create(ctx, eperson); err != nil {
		return nil, fmt.Errorf("failed to create eperson: %w", err)
	}

	logger.WithContext(ctx).WithField("eperson_id", eperson.ID).Info("eperson created")
	return toEPersonResponse(eperson), nil
}

// GetByID retrieves an eperson by ID
func (s *EPersonService) GetByID(ctx context.Context, id uuid.UUID) (*EPersonResponse, error) {
	eperson, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, translate(err, apperrors.ErrEPersonNotFound, "get eperson")
	}
	return toEPersonResponse(eperson), nil
}

// GetByEmail retrieves an eperson by email, compared case-insensitively
func (s *EPersonService) GetByEmail(ctx context.Context, email string) (*EPersonResponse, error) {
	eperson, err := s.repo.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		return nil, translate(err, apperrors.ErrEPersonNotFound, "get eperson")
	}
	return toEPersonResponse(eperson), nil
}

func toEPersonResponse(eperson *models.EPerson) *EPersonResponse {
	return &EPersonResponse{
		ID:        eperson.ID,
		Email:     eperson.Email,
		FirstName: eperson.FirstName,
		LastName:  eperson.LastName,
		CanLogIn:  eperson.CanLogIn,
		CreatedAt: eperson.CreatedAt,
		UpdatedAt: eperson.UpdatedAt,
	}
}
