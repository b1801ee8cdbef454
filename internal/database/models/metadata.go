package models

import (
	"strings"

	"github.com/google/uuid"
)

// Well known schema
const (
	DCSchema          = "dc"
	DCSchemaNamespace = "http://dublincore.org/documents/dcmi-terms/"
)

// MetadataSchema is a namespace of metadata fields, e.g. "dc"
type MetadataSchema struct {
	ID        uint   `json:"id" gorm:"primaryKey;autoIncrement"`
	ShortID   string `json:"short_id" gorm:"uniqueIndex;not null;size:32"`
	Namespace string `json:"namespace" gorm:"size:256"`
}

// TableName returns the table name for MetadataSchema
func (MetadataSchema) TableName() string {
	return "metadata_schemas"
}

// MetadataField is a typed, named attribute slot such as dc.title or dc.description
type MetadataField struct {
	ID        uint    `json:"id" gorm:"primaryKey;autoIncrement"`
	SchemaID  uint    `json:"schema_id" gorm:"not null;uniqueIndex:idx_metadata_field_name"`
	Element   string  `json:"element" gorm:"not null;size:64;uniqueIndex:idx_metadata_field_name"`
	Qualifier *string `json:"qualifier,omitempty" gorm:"size:64;uniqueIndex:idx_metadata_field_name"`
	ScopeNote string  `json:"scope_note" gorm:"type:text"`

	Schema MetadataSchema `json:"schema" gorm:"foreignKey:SchemaID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for MetadataField
func (MetadataField) TableName() string {
	return "metadata_fields"
}

// String returns schema.element[.qualifier]. Schema must be loaded.
func (f MetadataField) String() string {
	parts := []string{f.Schema.ShortID, f.Element}
	if f.Qualifier != nil && *f.Qualifier != "" {
		parts = append(parts, *f.Qualifier)
	}
	return strings.Join(parts, ".")
}

// MetadataValue is one value of a metadata field attached to a repository object
type MetadataValue struct {
	ID              uint      `json:"id" gorm:"primaryKey;autoIncrement"`
	DSpaceObjectID  uuid.UUID `json:"dspace_object_id" gorm:"column:dspace_object_id;type:uuid;not null;index"`
	MetadataFieldID uint      `json:"metadata_field_id" gorm:"not null;index"`
	TextValue       string    `json:"text_value" gorm:"type:text"`
	TextLang        string    `json:"text_lang" gorm:"size:24"`
	Place           int       `json:"place" gorm:"not null;default:0"`

	MetadataField MetadataField `json:"-" gorm:"foreignKey:MetadataFieldID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for MetadataValue
func (MetadataValue) TableName() string {
	return "metadata_values"
}

// ParseFieldName splits "schema.element[.qualifier]"
func ParseFieldName(name string) (schema, element string, qualifier *string, ok bool) {
	parts := strings.Split(name, ".")
	if len(parts) < 2 || len(parts) > 3 {
		return "", "", nil, false
	}
	for _, p := range parts {
		if p == "" {
			return "", "", nil, false
		}
	}
	if len(parts) == 3 {
		q := parts[2]
		qualifier = &q
	}
	return parts[0], parts[1], qualifier, true
}
