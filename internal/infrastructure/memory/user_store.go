package memory

import (
	"context"
	"sync"

	"github.com/will-aam/stock/internal/domain"
	"github.com/will-aam/stock/internal/domain/entity"
	"github.com/will-aam/stock/internal/domain/repository"
)

var _ repository.UserRepository = (*UserStore)(nil)

// UserStore usuarios en memoria, indexados por email.
type UserStore struct {
	mu      sync.RWMutex
	byEmail map[string]*entity.User
}

// NewUserStore construye el almacén vacío.
func NewUserStore() *UserStore {
	return &UserStore{byEmail: make(map[string]*entity.User)}
}

// Create persiste un usuario nuevo; ErrEmailAlreadyExists si el email existe.
func (s *UserStore) Create(_ context.Context, user *entity.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.byEmail[user.Email]; ok {
		return domain.ErrEmailAlreadyExists
	}
	cp := *user
	s.byEmail[cp.Email] = &cp
	return nil
}

// FindByEmail devuelve el usuario o nil si no existe.
func (s *UserStore) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.byEmail[email]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}
