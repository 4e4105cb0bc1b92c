package repositories

import (
	"context"

	"gorm.io/gorm"
)

// Repositories groups the repositories that take part in multi-step writes.
type Repositories struct {
	Users         UserRepository
	Orders        OrderRepository
	Notifications NotificationRepository
	Products      ProductRepository
}

// Store runs a unit of work. Every repository handed to fn shares one
// transaction; returning an error from fn rolls all of it back.
type Store interface {
	Transaction(ctx context.Context, fn func(repos Repositories) error) error
}

// GORMStore is the GORM implementation of Store.
type GORMStore struct {
	db *gorm.DB
}

// NewGORMStore creates a new GORMStore.
func NewGORMStore(db *gorm.DB) *GORMStore {
	return &GORMStore{db: db}
}

// Transaction runs fn inside one database transaction.
func (s *GORMStore) Transaction(ctx context.Context, fn func(repos Repositories) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(newRepositories(tx))
	})
}

// Repositories returns repositories bound to the store's connection, outside
// any transaction.
func (s *GORMStore) Repositories() Repositories {
	return newRepositories(s.db)
}

func newRepositories(db *gorm.DB) Repositories {
	return Repositories{
		Users:         NewGORMUserRepository(db),
		Orders:        NewGORMOrderRepository(db),
		Notifications: NewGORMNotificationRepository(db),
		Products:      NewGORMProductRepository(db),
	}
}
