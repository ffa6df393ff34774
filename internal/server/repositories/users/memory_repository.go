package users

import (
	"context"
	"sync"
	"time"

	"github.com/dmitrijs2005/authkeeper/internal/common"
	"github.com/dmitrijs2005/authkeeper/internal/server/models"
	"github.com/google/uuid"
)

// MemoryRepository keeps users in process memory. It backs the server when
// no DSN is configured and serves as the store in service tests.
type MemoryRepository struct {
	mu      sync.RWMutex
	byLogin map[string]*models.User
	now     func() time.Time
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		byLogin: make(map[string]*models.User),
		now:     time.Now,
	}
}

func (r *MemoryRepository) Create(ctx context.Context, user *models.User) (*models.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byLogin[user.Login]; ok {
		return nil, common.ErrorAlreadyExists
	}

	created := &models.User{
		ID:           uuid.NewString(),
		Login:        user.Login,
		Name:         user.Name,
		PasswordHash: user.PasswordHash,
		CreatedAt:    r.now().UTC(),
	}
	r.byLogin[created.Login] = created

	return clone(created), nil
}

func (r *MemoryRepository) GetUserByLogin(ctx context.Context, login string) (*models.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.byLogin[login]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return clone(u), nil
}

func (r *MemoryRepository) GetUserByExternalID(ctx context.Context, externalID int64) (*models.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	if u := r.findByExternalID(externalID); u != nil {
		return clone(u), nil
	}
	return nil, common.ErrorNotFound
}

func (r *MemoryRepository) SetExternalID(ctx context.Context, login string, externalID *int64) (*models.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.byLogin[login]
	if !ok {
		return nil, common.ErrorNotFound
	}

	if externalID != nil {
		if holder := r.findByExternalID(*externalID); holder != nil && holder.Login != login {
			return nil, common.ErrorAlreadyExists
		}
		id := *externalID
		u.ExternalID = &id
	} else {
		u.ExternalID = nil
	}

	return clone(u), nil
}

func (r *MemoryRepository) Update(ctx context.Context, login, name, passwordHash string) (*models.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.byLogin[login]
	if !ok {
		return nil, common.ErrorNotFound
	}
	u.Name = name
	u.PasswordHash = passwordHash

	return clone(u), nil
}

func (r *MemoryRepository) findByExternalID(externalID int64) *models.User {
	for _, u := range r.byLogin {
		if u.ExternalID != nil && *u.ExternalID == externalID {
			return u
		}
	}
	return nil
}

func clone(u *models.User) *models.User {
	c := *u
	if u.ExternalID != nil {
		id := *u.ExternalID
		c.ExternalID = &id
	}
	return &c
}
