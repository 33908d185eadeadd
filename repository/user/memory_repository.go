package user

import (
	"context"
	"sync"
	"time"

	"github.com/gotrabandhus/gotrabandhus/model"
)

// Memory is the in-memory UserRepository used for development and tests when
// no database is configured. Data does not survive a restart.
type Memory struct {
	mu      sync.RWMutex
	nextID  uint64
	byID    map[uint64]*model.UserEntity
	byEmail map[string]uint64
}

func NewMemoryUserRepository() *Memory {
	return &Memory{
		byID:    make(map[uint64]*model.UserEntity),
		byEmail: make(map[string]uint64),
	}
}

func (m *Memory) Create(_ context.Context, data *model.UserEntity) (*model.UserEntity, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.byEmail[data.Email]; exists {
		return nil, ErrDuplicate
	}

	m.nextID++
	data.ID = m.nextID
	data.CreatedAt = time.Now()

	stored := *data
	m.byID[stored.ID] = &stored
	m.byEmail[stored.Email] = stored.ID

	return data, nil
}

func (m *Memory) Get(_ context.Context, filter *model.UserFilter) (*model.UserEntity, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var stored *model.UserEntity
	if filter.ID != 0 {
		stored = m.byID[filter.ID]
	} else if filter.Email != "" {
		if id, ok := m.byEmail[filter.Email]; ok {
			stored = m.byID[id]
		}
	}
	if stored == nil {
		return nil, nil
	}

	entity := *stored
	return &entity, nil
}

func (m *Memory) Update(_ context.Context, data *model.UserEntity) (*model.UserEntity, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	current, ok := m.byID[data.ID]
	if !ok {
		return nil, nil
	}

	if id, exists := m.byEmail[data.Email]; exists && id != data.ID {
		return nil, ErrDuplicate
	}

	now := time.Now()
	data.UpdatedAt = &now

	if current.Email != data.Email {
		delete(m.byEmail, current.Email)
		m.byEmail[data.Email] = data.ID
	}

	stored := *data
	m.byID[stored.ID] = &stored

	return data, nil
}
