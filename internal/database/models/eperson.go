package models

// EPerson is a user account. Groups only reference it by ID.
type EPerson struct {
	BaseModel
	Email     string `json:"email" gorm:"uniqueIndex;not null;size:255" validate:"required,email,max=255"`
	FirstName string `json:"first_name" gorm:"size:100" validate:"max=100"`
	LastName  string `json:"last_name" gorm:"size:100" validate:"max=100"`
	CanLogIn  bool   `json:"can_log_in" gorm:"not null"`
}

// TableName returns the table name for EPerson
func (EPerson) TableName() string {
	return "epersons"
}
