package repository

import (
	"sync"
	"time"

	"storefront/models"
)

// UserRepository is the fixed in-memory user directory.
type UserRepository struct {
	mu    sync.RWMutex
	users []models.User
}

func NewUserRepository(seed []models.User) *UserRepository {
	return &UserRepository{
		users: append([]models.User(nil), seed...),
	}
}

func (r *UserRepository) List() []models.User {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]models.User(nil), r.users...)
}

func (r *UserRepository) Get(id string) (models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, u := range r.users {
		if u.ID == id {
			return u, nil
		}
	}
	return models.User{}, ErrNotFound
}

// FindByRole returns the first user carrying the given role, matching the
// role-selection login flow.
func (r *UserRepository) FindByRole(role models.Role) (models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, u := range r.users {
		if u.Role == role {
			return u, nil
		}
	}
	return models.User{}, ErrNotFound
}

func (r *UserRepository) TouchLastActive(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.users {
		if r.users[i].ID == id {
			r.users[i].LastActive = time.Now().UTC()
			return nil
		}
	}
	return ErrNotFound
}
