package repository

import (
	"context"

	"eperson-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const cacheInsertBatchSize = 500

// Group2GroupCacheRepository handles the materialized closure of group nesting
type Group2GroupCacheRepository struct {
	db *gorm.DB
}

// NewGroup2GroupCacheRepository creates a new cache repository
func NewGroup2GroupCacheRepository(db *gorm.DB) *Group2GroupCacheRepository {
	return &Group2GroupCacheRepository{db: db}
}

// WithTx returns a repository bound to the caller's transaction
func (r *Group2GroupCacheRepository) WithTx(tx *gorm.DB) Group2GroupCacheRepositoryInterface {
	return &Group2GroupCacheRepository{db: tx}
}

// GetAll returns every cached (ancestor, descendant) pair
func (r *Group2GroupCacheRepository) GetAll(ctx context.Context) ([]models.Group2GroupCache, error) {
	var rows []models.Group2GroupCache
	if err := r.db.WithContext(ctx).Order("parent_id").Order("child_id").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// IsAncestor reports whether descendant is nested at any depth below ancestor
func (r *Group2GroupCacheRepository) IsAncestor(ctx context.Context, ancestor, descendant uuid.UUID) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&models.Group2GroupCache{}).
		Where("parent_id = ? AND child_id = ?", ancestor, descendant).
		Count(&n).Error
	return n > 0, err
}

// Replace swaps the whole cache content for rows
func (r *Group2GroupCacheRepository) Replace(ctx context.Context, rows []models.Group2GroupCache) error {
	db := r.db.WithContext(ctx)
	if err := db.Exec("DELETE FROM group2group_cache").Error; err != nil {
		return err
	}
	if len(rows) == 0 {
		return nil
	}
	return db.CreateInBatches(rows, cacheInsertBatchSize).Error
}
