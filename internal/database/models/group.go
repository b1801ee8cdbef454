package models

import (
	"github.com/google/uuid"
)

// Group is a named collection of epeople which may also contain other groups
type Group struct {
	BaseModel
	Name      string `json:"name" gorm:"size:250;not null;index" validate:"required,min=1,max=250"`
	Permanent bool   `json:"permanent" gorm:"not null;default:false"`

	// Relationships
	EPeople []EPerson `json:"epeople,omitempty" gorm:"many2many:group_epersons;joinForeignKey:GroupID;joinReferences:EpersonID"`
	Groups  []Group   `json:"groups,omitempty" gorm:"many2many:group2group;joinForeignKey:ParentID;joinReferences:ChildID"`
}

// TableName returns the table name for Group
func (Group) TableName() string {
	return "groups"
}

// Group2GroupCache is one row of the transitive closure over group2group:
// ChildID is nested, directly or indirectly, somewhere below ParentID.
type Group2GroupCache struct {
	ParentID uuid.UUID `json:"parent_id" gorm:"type:uuid;primaryKey"`
	ChildID  uuid.UUID `json:"child_id" gorm:"type:uuid;primaryKey;index"`
}

// TableName returns the table name for Group2GroupCache
func (Group2GroupCache) TableName() string {
	return "group2group_cache"
}

// GroupPair is a flattened (parent, child) nesting edge
type GroupPair struct {
	ParentID uuid.UUID `json:"parent_id"`
	ChildID  uuid.UUID `json:"child_id"`
}
