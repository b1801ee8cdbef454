package service

import (
	"context"

	"eperson-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// GroupServiceInterface defines the interface for group service
type GroupServiceInterface interface {
	Create(ctx context.Context, req *CreateGroupRequest) (*GroupResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*GroupDetailsResponse, error)
	GetByName(ctx context.Context, name string) (*GroupResponse, error)
	GetByMetadata(ctx context.Context, fieldName, value string) (*GroupResponse, error)
	List(ctx context.Context, sortFieldNames []string, sortColumn string) ([]GroupResponse, error)
	Search(ctx context.Context, query string, page, pageSize int) (*GroupListResponse, error)
	Count(ctx context.Context) (int64, error)
	GetEmptyGroups(ctx context.Context) ([]GroupResponse, error)
	Rename(ctx context.Context, id uuid.UUID, req *UpdateGroupRequest) (*GroupResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
	AddMember(ctx context.Context, groupID, epersonID uuid.UUID) error
	RemoveMember(ctx context.Context, groupID, epersonID uuid.UUID) error
	AddSubgroup(ctx context.Context, parentID, childID uuid.UUID) error
	RemoveSubgroup(ctx context.Context, parentID, childID uuid.UUID) error
	ListByEPerson(ctx context.Context, epersonID uuid.UUID) ([]GroupResponse, error)
	IsMember(ctx context.Context, groupName string, epersonID uuid.UUID) (bool, error)
	GetGroup2GroupResults(ctx context.Context) ([]models.GroupPair, error)
	RebuildCache(ctx context.Context) (int, error)
}

// EPersonServiceInterface defines the interface for eperson service
type EPersonServiceInterface interface {
	Create(ctx context.Context, req *CreateEPersonRequest) (*EPersonResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*EPersonResponse, error)
	GetByEmail(ctx context.Context, email string) (*EPersonResponse, error)
}
