package repository

import (
	"context"

	"eperson-backend/internal/database/models"
	apperrors "eperson-backend/internal/errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MetadataRepository handles the metadata registry and metadata values
type MetadataRepository struct {
	db *gorm.DB
}

// NewMetadataRepository creates a new metadata repository
func NewMetadataRepository(db *gorm.DB) *MetadataRepository {
	return &MetadataRepository{db: db}
}

// WithTx returns a repository bound to the caller's transaction
func (r *MetadataRepository) WithTx(tx *gorm.DB) MetadataRepositoryInterface {
	return &MetadataRepository{db: tx}
}

// CreateSchema creates a new metadata schema
func (r *MetadataRepository) CreateSchema(ctx context.Context, schema *models.MetadataSchema) error {
	return r.db.WithContext(ctx).Create(schema).Error
}

// GetSchema retrieves a schema by its short id, e.g. "dc"
func (r *MetadataRepository) GetSchema(ctx context.Context, shortID string) (*models.MetadataSchema, error) {
	var schema models.MetadataSchema
	if err := r.db.WithContext(ctx).First(&schema, "short_id = ?", shortID).Error; err != nil {
		return nil, err
	}
	return &schema, nil
}

// CreateField creates a new metadata field in an existing schema
func (r *MetadataRepository) CreateField(ctx context.Context, field *models.MetadataField) error {
	return r.db.WithContext(ctx).Omit("Schema").Create(field).Error
}

// FindField retrieves a field by schema, element and optional qualifier
func (r *MetadataRepository) FindField(ctx context.Context, schema, element string, qualifier *string) (*models.MetadataField, error) {
	var field models.MetadataField
	q := r.db.WithContext(ctx).
		Preload("Schema").
		Joins("JOIN metadata_schemas AS ms ON ms.id = metadata_fields.schema_id").
		Where("ms.short_id = ? AND metadata_fields.element = ?", schema, element)
	if qualifier == nil || *qualifier == "" {
		q = q.Where("metadata_fields.qualifier IS NULL")
	} else {
		q = q.Where("metadata_fields.qualifier = ?", *qualifier)
	}
	if err := q.First(&field).Error; err != nil {
		return nil, err
	}
	return &field, nil
}

// FindFieldByName retrieves a field by its "schema.element[.qualifier]" name
func (r *MetadataRepository) FindFieldByName(ctx context.Context, name string) (*models.MetadataField, error) {
	schema, element, qualifier, ok := models.ParseFieldName(name)
	if !ok {
		return nil, apperrors.NewValidationError("field", "malformed metadata field name "+name)
	}
	return r.FindField(ctx, schema, element, qualifier)
}

// SetValue replaces every value of field on the object with a single value
func (r *MetadataRepository) SetValue(ctx context.Context, dsoID uuid.UUID, field *models.MetadataField, value string) error {
	db := r.db.WithContext(ctx)
	if err := db.Where("dspace_object_id = ? AND metadata_field_id = ?", dsoID, field.ID).
		Delete(&models.MetadataValue{}).Error; err != nil {
		return err
	}
	return db.Omit("MetadataField").Create(&models.MetadataValue{
		DSpaceObjectID:  dsoID,
		MetadataFieldID: field.ID,
		TextValue:       value,
	}).Error
}

// AddValue appends a value of field after the existing ones
func (r *MetadataRepository) AddValue(ctx context.Context, dsoID uuid.UUID, field *models.MetadataField, value string) error {
	db := r.db.WithContext(ctx)
	var n int64
	if err := db.Model(&models.MetadataValue{}).
		Where("dspace_object_id = ? AND metadata_field_id = ?", dsoID, field.ID).
		Count(&n).Error; err != nil {
		return err
	}
	return db.Omit("MetadataField").Create(&models.MetadataValue{
		DSpaceObjectID:  dsoID,
		MetadataFieldID: field.ID,
		TextValue:       value,
		Place:           int(n),
	}).Error
}

// GetValues returns the values attached to the object, in field and place order
func (r *MetadataRepository) GetValues(ctx context.Context, dsoID uuid.UUID) ([]models.MetadataValue, error) {
	var values []models.MetadataValue
	err := r.db.WithContext(ctx).
		Preload("MetadataField.Schema").
		Where("dspace_object_id = ?", dsoID).
		Order("metadata_field_id").
		Order("place").
		Find(&values).Error
	if err != nil {
		return nil, err
	}
	return values, nil
}

// DeleteValues removes every value attached to the object
func (r *MetadataRepository) DeleteValues(ctx context.Context, dsoID uuid.UUID) error {
	return r.db.WithContext(ctx).Where("dspace_object_id = ?", dsoID).Delete(&models.MetadataValue{}).Error
}
