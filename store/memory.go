package store

import (
	"context"
	"sync"

	"github.com/stablemgr/stableapi/models"
)

// Memory is the default non-durable backend: an ordered slice guarded by a
// single mutex. The mutex serializes every operation, so read-modify-write
// callers get last-writer-wins rather than interleaved corruption.
type Memory struct {
	mu     sync.Mutex
	horses []models.Horse
}

// NewMemory returns an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{}
}

func (m *Memory) ListActive(ctx context.Context) ([]models.Horse, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]models.Horse, 0, len(m.horses))
	for _, h := range m.horses {
		if h.Status != models.StatusForged {
			out = append(out, h.Clone())
		}
	}
	return out, nil
}

func (m *Memory) Get(ctx context.Context, id string) (models.Horse, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, h := range m.horses {
		if h.ID == id {
			if h.Status == models.StatusForged {
				return models.Horse{}, ErrNotFound
			}
			return h.Clone(), nil
		}
	}
	return models.Horse{}, ErrNotFound
}

func (m *Memory) Lookup(ctx context.Context, id string) (models.Horse, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, h := range m.horses {
		if h.ID == id {
			return h.Clone(), nil
		}
	}
	return models.Horse{}, ErrNotFound
}

func (m *Memory) Insert(ctx context.Context, h models.Horse) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.horses = append(m.horses, h.Clone())
	return nil
}

func (m *Memory) Replace(ctx context.Context, id string, h models.Horse) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i := range m.horses {
		if m.horses[i].ID == id {
			m.horses[i] = h.Clone()
			return nil
		}
	}
	return ErrNotFound
}

func (m *Memory) NextOrder(ctx context.Context) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	highest := 0
	found := false
	for _, h := range m.horses {
		if h.Status == models.StatusForged || h.Order == nil {
			continue
		}
		if !found || *h.Order > highest {
			highest = *h.Order
			found = true
		}
	}
	if !found {
		return 0, nil
	}
	return highest + 1, nil
}
