package sessions

//go:generate mockgen -destination=mock/mock_repository.go -package=sessionmock github.com/KirkDiggler/caverns/internal/repositories/sessions Repository

import (
	"context"

	"github.com/KirkDiggler/caverns/internal/entities"
)

// Repository defines the storage interface for combat sessions
type Repository interface {
	// Create stores a new session
	Create(ctx context.Context, input *CreateInput) (*CreateOutput, error)

	// Get retrieves a session by ID
	Get(ctx context.Context, input *GetInput) (*GetOutput, error)

	// Update replaces an existing session
	Update(ctx context.Context, input *UpdateInput) (*UpdateOutput, error)

	// Delete removes a session
	Delete(ctx context.Context, input *DeleteInput) (*DeleteOutput, error)
}

// CreateInput defines the request for storing a new session
type CreateInput struct {
	Session *entities.CombatSession
}

// CreateOutput defines the response for storing a new session
type CreateOutput struct {
	Session *entities.CombatSession
}

// GetInput defines the request for retrieving a session
type GetInput struct {
	SessionID string
}

// GetOutput defines the response for retrieving a session
type GetOutput struct {
	Session *entities.CombatSession
}

// UpdateInput defines the request for replacing a session
type UpdateInput struct {
	Session *entities.CombatSession
}

// UpdateOutput defines the response for replacing a session
type UpdateOutput struct {
	Session *entities.CombatSession
}

// DeleteInput defines the request for deleting a session
type DeleteInput struct {
	SessionID string
}

// DeleteOutput defines the response for deleting a session
type DeleteOutput struct {
	Success bool
}
