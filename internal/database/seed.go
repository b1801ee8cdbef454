package database

import (
	_ "embed"
	"fmt"
	"os"

	"eperson-backend/internal/database/models"

	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
)

//go:embed registry.yaml
var defaultRegistry []byte

// Registry is the metadata registry document
type Registry struct {
	Schemas []RegistrySchema `yaml:"schemas"`
}

type RegistrySchema struct {
	ShortID   string          `yaml:"short_id"`
	Namespace string          `yaml:"namespace"`
	Fields    []RegistryField `yaml:"fields"`
}

type RegistryField struct {
	Element   string `yaml:"element"`
	Qualifier string `yaml:"qualifier,omitempty"`
	ScopeNote string `yaml:"scope_note,omitempty"`
}

// LoadRegistry parses the registry at path, or the embedded default when path is empty
func LoadRegistry(path string) (*Registry, error) {
	data := defaultRegistry
	if path != "" {
		var err error
		data, err = os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read metadata registry %s: %w", path, err)
		}
	}
	var reg Registry
	if err := yaml.Unmarshal(data, &reg); err != nil {
		return nil, fmt.Errorf("parse metadata registry: %w", err)
	}
	return &reg, nil
}

// SeedRegistry creates the schemas and fields of reg that do not exist yet
func SeedRegistry(db *gorm.DB, reg *Registry) error {
	return db.Transaction(func(tx *gorm.DB) error {
		for _, s := range reg.Schemas {
			schema := models.MetadataSchema{ShortID: s.ShortID}
			if err := tx.Where(models.MetadataSchema{ShortID: s.ShortID}).
				Attrs(models.MetadataSchema{Namespace: s.Namespace}).
				FirstOrCreate(&schema).Error; err != nil {
				return fmt.Errorf("seed schema %s: %w", s.ShortID, err)
			}
			for _, f := range s.Fields {
				q := tx.Model(&models.MetadataField{}).
					Where("schema_id = ? AND element = ?", schema.ID, f.Element)
				if f.Qualifier == "" {
					q = q.Where("qualifier IS NULL")
				} else {
					q = q.Where("qualifier = ?", f.Qualifier)
				}
				var n int64
				if err := q.Count(&n).Error; err != nil {
					return fmt.Errorf("seed field %s.%s: %w", s.ShortID, f.Element, err)
				}
				if n > 0 {
					continue
				}
				field := models.MetadataField{SchemaID: schema.ID, Element: f.Element, ScopeNote: f.ScopeNote}
				if f.Qualifier != "" {
					qualifier := f.Qualifier
					field.Qualifier = &qualifier
				}
				if err := tx.Omit("Schema").Create(&field).Error; err != nil {
					return fmt.Errorf("seed field %s.%s: %w", s.ShortID, f.Element, err)
				}
			}
		}
		return nil
	})
}
