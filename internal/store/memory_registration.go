package store

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-face-register/models"
)

// memoryRegistrationRepository keeps registrations in a map. It is used by
// the receiver when no database DSN is configured.
type memoryRegistrationRepository struct {
	mu     sync.RWMutex
	items  map[models.SessionID]models.Registration
	frames map[models.SessionID][]models.Frame
	now    func() time.Time
}

func NewMemoryRegistrationRepository() RegistrationRepository {
	return &memoryRegistrationRepository{
		items:  make(map[models.SessionID]models.Registration),
		frames: make(map[models.SessionID][]models.Frame),
		now:    time.Now,
	}
}

func (m *memoryRegistrationRepository) Save(_ context.Context, reg models.Registration, frames []models.Frame) (models.Registration, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.items[reg.UserID]; ok {
		return models.Registration{}, ErrUserAlreadyRegistered
	}

	stored := make([]models.Frame, len(frames))
	for i, f := range frames {
		f.Data = append([]byte(nil), f.Data...)
		stored[i] = f
	}

	reg.CreatedAt = m.now().UTC()
	m.items[reg.UserID] = reg
	m.frames[reg.UserID] = stored
	return reg, nil
}

func (m *memoryRegistrationRepository) Get(_ context.Context, userID models.SessionID) (models.Registration, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	reg, ok := m.items[userID]
	if !ok {
		return models.Registration{}, ErrRegistrationNotFound
	}
	return reg, nil
}

func (m *memoryRegistrationRepository) Count(_ context.Context) (int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return len(m.items), nil
}
