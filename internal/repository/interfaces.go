package repository

import (
	"context"

	"eperson-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// GroupRepositoryInterface defines the interface for group repository operations
type GroupRepositoryInterface interface {
	WithTx(tx *gorm.DB) GroupRepositoryInterface
	Create(ctx context.Context, group *models.Group) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Group, error)
	Rename(ctx context.Context, id uuid.UUID, name string) error
	FindByName(ctx context.Context, name string) (*models.Group, error)
	FindByNameAndEPerson(ctx context.Context, name string, epersonID uuid.UUID) (*models.Group, error)
	FindByEPerson(ctx context.Context, epersonID uuid.UUID) ([]models.Group, error)
	FindByMetadataField(ctx context.Context, value string, field *models.MetadataField) (*models.Group, error)
	FindAll(ctx context.Context, sortFields []models.MetadataField, sortColumn string) ([]models.Group, error)
	Search(ctx context.Context, query string, queryFields []models.MetadataField, offset, limit int) ([]models.Group, error)
	SearchResultCount(ctx context.Context, query string, queryFields []models.MetadataField) (int64, error)
	Delete(ctx context.Context, group *models.Group) error
	GetGroup2GroupResults(ctx context.Context) ([]models.GroupPair, error)
	GetEmptyGroups(ctx context.Context) ([]models.Group, error)
	CountRows(ctx context.Context) (int64, error)
	IsMember(ctx context.Context, groupID, epersonID uuid.UUID) (bool, error)
	AddMember(ctx context.Context, group *models.Group, eperson *models.EPerson) error
	RemoveMember(ctx context.Context, group *models.Group, eperson *models.EPerson) error
	GetMembers(ctx context.Context, group *models.Group) ([]models.EPerson, error)
	HasSubgroup(ctx context.Context, parentID, childID uuid.UUID) (bool, error)
	AddSubgroup(ctx context.Context, parent, child *models.Group) error
	RemoveSubgroup(ctx context.Context, parent, child *models.Group) error
	GetSubgroups(ctx context.Context, group *models.Group) ([]models.Group, error)
}

// Group2GroupCacheRepositoryInterface defines the interface for the group nesting cache
type Group2GroupCacheRepositoryInterface interface {
	WithTx(tx *gorm.DB) Group2GroupCacheRepositoryInterface
	GetAll(ctx context.Context) ([]models.Group2GroupCache, error)
	IsAncestor(ctx context.Context, ancestor, descendant uuid.UUID) (bool, error)
	Replace(ctx context.Context, rows []models.Group2GroupCache) error
}

// EPersonRepositoryInterface defines the interface for eperson repository operations
type EPersonRepositoryInterface interface {
	WithTx(tx *gorm.DB) EPersonRepositoryInterface
	Create(ctx context.Context, eperson *models.EPerson) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.EPerson, error)
	GetByEmail(ctx context.Context, email string) (*models.EPerson, error)
}

// MetadataRepositoryInterface defines the interface for metadata registry and value operations
type MetadataRepositoryInterface interface {
	WithTx(tx *gorm.DB) MetadataRepositoryInterface
	CreateSchema(ctx context.Context, schema *models.MetadataSchema) error
	GetSchema(ctx context.Context, shortID string) (*models.MetadataSchema, error)
	CreateField(ctx context.Context, field *models.MetadataField) error
	FindField(ctx context.Context, schema, element string, qualifier *string) (*models.MetadataField, error)
	FindFieldByName(ctx context.Context, name string) (*models.MetadataField, error)
	SetValue(ctx context.Context, dsoID uuid.UUID, field *models.MetadataField, value string) error
	AddValue(ctx context.Context, dsoID uuid.UUID, field *models.MetadataField, value string) error
	GetValues(ctx context.Context, dsoID uuid.UUID) ([]models.MetadataValue, error)
	DeleteValues(ctx context.Context, dsoID uuid.UUID) error
}

// Repositories bundles the repositories a unit of work needs
type Repositories struct {
	Groups   GroupRepositoryInterface
	Cache    Group2GroupCacheRepositoryInterface
	EPeople  EPersonRepositoryInterface
	Metadata MetadataRepositoryInterface
}

// Transactor runs fn with repositories bound to a single transaction.
// The transaction commits when fn returns nil and rolls back otherwise.
type Transactor interface {
	WithinTransaction(ctx context.Context, fn func(repos *Repositories) error) error
}
