package errors

import (
	"errors"
	"fmt"
)

// NotFoundError is returned when a lookup by id, name or email finds nothing
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return e.Entity + " not found"
}

// Is matches any NotFoundError for the same entity
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	return ok && e.Entity == t.Entity
}

// AlreadyExistsError is returned when a unique name or email is taken
type AlreadyExistsError struct {
	Entity  string
	Context string // e.g. "with this name"
}

func (e *AlreadyExistsError) Error() string {
	if e.Context == "" {
		return e.Entity + " already exists"
	}
	return fmt.Sprintf("%s already exists %s", e.Entity, e.Context)
}

// Is matches any AlreadyExistsError for the same entity
func (e *AlreadyExistsError) Is(target error) bool {
	t, ok := target.(*AlreadyExistsError)
	return ok && e.Entity == t.Entity
}

// ConflictError is returned when a change clashes with the current group graph
type ConflictError struct {
	Reason string
}

func (e *ConflictError) Error() string {
	return e.Reason
}

// ValidationError reports bad caller input
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return "validation error: " + e.Message
	}
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// ConfigurationError reports a server side setting that cannot be honored
type ConfigurationError struct {
	Message string
}

func (e *ConfigurationError) Error() string {
	return e.Message
}

var (
	ErrGroupNotFound          = &NotFoundError{Entity: "group"}
	ErrEPersonNotFound        = &NotFoundError{Entity: "eperson"}
	ErrMetadataFieldNotFound  = &NotFoundError{Entity: "metadata field"}
	ErrMetadataSchemaNotFound = &NotFoundError{Entity: "metadata schema"}

	ErrGroupExists         = &AlreadyExistsError{Entity: "group", Context: "with this name"}
	ErrEPersonExists       = &AlreadyExistsError{Entity: "eperson", Context: "with this email"}
	ErrMetadataFieldExists = &AlreadyExistsError{Entity: "metadata field", Context: "in this schema"}
)

var (
	ErrMemberAlreadyAssigned   = &ConflictError{Reason: "eperson is already a member of this group"}
	ErrMemberNotAssigned       = &ConflictError{Reason: "eperson is not a member of this group"}
	ErrSubgroupAlreadyAssigned = &ConflictError{Reason: "group is already a subgroup of this group"}
	ErrSubgroupNotAssigned     = &ConflictError{Reason: "group is not a subgroup of this group"}
	ErrGroupCycle              = &ConflictError{Reason: "group cannot be nested inside itself or one of its descendants"}
	ErrPermanentGroup          = &ConflictError{Reason: "permanent group cannot be deleted"}
)

var (
	ErrMultipleResults         = errors.New("query returned more than one result")
	ErrInvalidSortColumn       = errors.New("invalid sort column")
	ErrInvalidPaginationParams = errors.New("invalid pagination parameters")
)

// IsNotFound reports whether err wraps a NotFoundError
func IsNotFound(err error) bool {
	var target *NotFoundError
	return errors.As(err, &target)
}

// IsAlreadyExists reports whether err wraps an AlreadyExistsError
func IsAlreadyExists(err error) bool {
	var target *AlreadyExistsError
	return errors.As(err, &target)
}

// IsConflict reports errors caused by the current state of the group graph,
// duplicates included
func IsConflict(err error) bool {
	var target *ConflictError
	return errors.As(err, &target) || IsAlreadyExists(err)
}

// IsValidation reports whether err wraps a ValidationError
func IsValidation(err error) bool {
	var target *ValidationError
	return errors.As(err, &target)
}

// IsConfiguration reports whether err wraps a ConfigurationError
func IsConfiguration(err error) bool {
	var target *ConfigurationError
	return errors.As(err, &target)
}

func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

func NewConfigurationError(message string) error {
	return &ConfigurationError{Message: message}
}
