package sessions

import (
	"context"
	"sync"

	"github.com/KirkDiggler/caverns/internal/entities"
	"github.com/KirkDiggler/caverns/internal/errors"
)

// InMemoryRepository implements Repository using in-memory storage
type InMemoryRepository struct {
	mu    sync.RWMutex
	store map[string]*entities.CombatSession
}

var _ Repository = (*InMemoryRepository)(nil)

// NewInMemory creates a new in-memory repository
func NewInMemory() *InMemoryRepository {
	return &InMemoryRepository{
		store: make(map[string]*entities.CombatSession),
	}
}

// Create stores a new session
func (r *InMemoryRepository) Create(ctx context.Context, input *CreateInput) (*CreateOutput, error) {
	if input == nil || input.Session == nil {
		return nil, errors.InvalidArgument("session is required")
	}

	if input.Session.ID == "" {
		return nil, errors.InvalidArgument("session ID is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.store[input.Session.ID]; exists {
		return nil, errors.AlreadyExistsf("session %s already exists", input.Session.ID)
	}

	r.store[input.Session.ID] = copySession(input.Session)

	return &CreateOutput{Session: copySession(input.Session)}, nil
}

// Get retrieves a session by ID
func (r *InMemoryRepository) Get(ctx context.Context, input *GetInput) (*GetOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	if input.SessionID == "" {
		return nil, errors.InvalidArgument("session ID is required")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	session, exists := r.store[input.SessionID]
	if !exists {
		return nil, errors.NotFound("session not found")
	}

	return &GetOutput{Session: copySession(session)}, nil
}

// Update replaces an existing session
func (r *InMemoryRepository) Update(ctx context.Context, input *UpdateInput) (*UpdateOutput, error) {
	if input == nil || input.Session == nil {
		return nil, errors.InvalidArgument("session is required")
	}

	if input.Session.ID == "" {
		return nil, errors.InvalidArgument("session ID is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.store[input.Session.ID]; !exists {
		return nil, errors.NotFound("session not found")
	}

	r.store[input.Session.ID] = copySession(input.Session)

	return &UpdateOutput{Session: copySession(input.Session)}, nil
}

// Delete removes a session
func (r *InMemoryRepository) Delete(ctx context.Context, input *DeleteInput) (*DeleteOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	if input.SessionID == "" {
		return nil, errors.InvalidArgument("session ID is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.store[input.SessionID]; !exists {
		return nil, errors.NotFound("session not found")
	}

	delete(r.store, input.SessionID)

	return &DeleteOutput{Success: true}, nil
}

// copySession clones the session and its characters so callers can never
// mutate stored state through shared pointers
func copySession(session *entities.CombatSession) *entities.CombatSession {
	clone := *session
	if session.Hero != nil {
		hero := *session.Hero
		clone.Hero = &hero
	}
	if session.Monster != nil {
		monster := *session.Monster
		clone.Monster = &monster
	}
	return &clone
}
