package testutils

import (
	"fmt"
	"sync/atomic"
	"time"

	"eperson-backend/internal/database/models"

	"github.com/google/uuid"
)

var sequence atomic.Int64

func next() int64 {
	return sequence.Add(1)
}

// GroupFactory provides methods to create test Group data
type GroupFactory struct{}

// NewGroupFactory creates a new GroupFactory
func NewGroupFactory() *GroupFactory {
	return &GroupFactory{}
}

// Create creates a test Group with default values and a unique name
func (f *GroupFactory) Create() *models.Group {
	return &models.Group{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Name: fmt.Sprintf("Test Group %d", next()),
	}
}

// WithName sets a custom name for the group
func (f *GroupFactory) WithName(name string) *models.Group {
	group := f.Create()
	group.Name = name
	return group
}

// Permanent creates a permanent group
func (f *GroupFactory) Permanent(name string) *models.Group {
	group := f.WithName(name)
	group.Permanent = true
	return group
}

// EPersonFactory provides methods to create test EPerson data
type EPersonFactory struct{}

// NewEPersonFactory creates a new EPersonFactory
func NewEPersonFactory() *EPersonFactory {
	return &EPersonFactory{}
}

// Create creates a test EPerson with a unique email
func (f *EPersonFactory) Create() *models.EPerson {
	n := next()
	return &models.EPerson{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Email:     fmt.Sprintf("eperson%d@example.org", n),
		FirstName: "Test",
		LastName:  fmt.Sprintf("Person %d", n),
		CanLogIn:  true,
	}
}

// WithEmail sets a custom email for the eperson
func (f *EPersonFactory) WithEmail(email string) *models.EPerson {
	eperson := f.Create()
	eperson.Email = email
	return eperson
}

// MetadataFieldFactory provides methods to create test MetadataField data
type MetadataFieldFactory struct{}

// NewMetadataFieldFactory creates a new MetadataFieldFactory
func NewMetadataFieldFactory() *MetadataFieldFactory {
	return &MetadataFieldFactory{}
}

// Create creates an unqualified test field in schemaID with a unique element
func (f *MetadataFieldFactory) Create(schemaID uint) *models.MetadataField {
	return &models.MetadataField{
		SchemaID:  schemaID,
		Element:   fmt.Sprintf("test%d", next()),
		ScopeNote: "created by tests",
	}
}

// WithQualifier creates a qualified test field in schemaID
func (f *MetadataFieldFactory) WithQualifier(schemaID uint, qualifier string) *models.MetadataField {
	field := f.Create(schemaID)
	field.Qualifier = &qualifier
	return field
}

// FactorySet provides access to all factories
type FactorySet struct {
	Group         *GroupFactory
	EPerson       *EPersonFactory
	MetadataField *MetadataFieldFactory
}

// NewFactorySet creates a new FactorySet with all factories initialized
func NewFactorySet() *FactorySet {
	return &FactorySet{
		Group:         NewGroupFactory(),
		EPerson:       NewEPersonFactory(),
		MetadataField: NewMetadataFieldFactory(),
	}
}
