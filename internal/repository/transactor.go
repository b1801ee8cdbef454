package repository

import (
	"context"

	"gorm.io/gorm"
)

// GormTransactor implements Transactor on a gorm connection
type GormTransactor struct {
	db    *gorm.DB
	repos *Repositories
}

// NewRepositories builds every repository on db
func NewRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		Groups:   NewGroupRepository(db),
		Cache:    NewGroup2GroupCacheRepository(db),
		EPeople:  NewEPersonRepository(db),
		Metadata: NewMetadataRepository(db),
	}
}

// NewGormTransactor creates a transactor that rebinds repos to each transaction
func NewGormTransactor(db *gorm.DB, repos *Repositories) *GormTransactor {
	return &GormTransactor{db: db, repos: repos}
}

// WithinTransaction runs fn inside a database transaction
func (t *GormTransactor) WithinTransaction(ctx context.Context, fn func(repos *Repositories) error) error {
	return t.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&Repositories{
			Groups:   t.repos.Groups.WithTx(tx),
			Cache:    t.repos.Cache.WithTx(tx),
			EPeople:  t.repos.EPeople.WithTx(tx),
			Metadata: t.repos.Metadata.WithTx(tx),
		})
	})
}
