package repository

import (
	"context"

	"eperson-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// EPersonRepository handles database operations for epeople
type EPersonRepository struct {
	db *gorm.DB
}

// NewEPersonRepository creates a new eperson repository
func NewEPersonRepository(db *gorm.DB) *EPersonRepository {
	return &EPersonRepository{db: db}
}

// WithTx returns a repository bound to the caller's transaction
func (r *EPersonRepository) WithTx(tx *gorm.DB) EPersonRepositoryInterface {
	return &EPersonRepository{db: tx}
}

// Create creates a new eperson
func (r *EPersonRepository) Create(ctx context.Context, eperson *models.EPerson) error {
	return r.db.WithContext(ctx).Create(eperson).Error
}

// GetByID retrieves an eperson by ID
func (r *EPersonRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.EPerson, error) {
	var eperson models.EPerson
	err := r.db.WithContext(ctx).First(&eperson, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &eperson, nil
}

// GetByEmail retrieves an eperson by email
func (r *EPersonRepository) GetByEmail(ctx context.Context, email string) (*models.EPerson, error) {
	var eperson models.EPerson
	err := r.db.WithContext(ctx).First(&eperson, "email = ?", email).Error
	if err != nil {
		return nil, err
	}
	return &eperson, nil
}
