// Package catalog provides read-only access to the monster templates the
// game can spawn. The catalog is immutable for the process lifetime and is
// always injected, never reached as ambient state.
package catalog

//go:generate mockgen -destination=mock/mock_repository.go -package=catalogmock github.com/KirkDiggler/caverns/internal/repositories/catalog Repository

import (
	"context"

	"github.com/KirkDiggler/caverns/internal/entities"
)

// Repository defines read access to the monster catalog
type Repository interface {
	// Get retrieves a template by monster name
	Get(ctx context.Context, input *GetInput) (*GetOutput, error)

	// List returns all templates in name order
	List(ctx context.Context, input *ListInput) (*ListOutput, error)
}

// GetInput defines the request for retrieving a template
type GetInput struct {
	Name string
}

// GetOutput defines the response for retrieving a template
type GetOutput struct {
	Template *entities.MonsterTemplate
}

// ListInput defines the request for listing all templates
type ListInput struct{}

// ListOutput defines the response for listing all templates
type ListOutput struct {
	Templates []*entities.MonsterTemplate
}
