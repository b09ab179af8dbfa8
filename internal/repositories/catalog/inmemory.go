package catalog

import (
	"context"
	"sort"

	"github.com/KirkDiggler/caverns/internal/entities"
	"github.com/KirkDiggler/caverns/internal/errors"
)

// InMemoryRepository implements Repository over a fixed template table
type InMemoryRepository struct {
	templates map[string]entities.MonsterTemplate
	names     []string
}

var _ Repository = (*InMemoryRepository)(nil)

// NewInMemory creates a repository seeded with the given templates. The
// slice is copied; the repository never changes after construction.
func NewInMemory(templates []entities.MonsterTemplate) (*InMemoryRepository, error) {
	if len(templates) == 0 {
		return nil, errors.InvalidArgument("at least one monster template is required")
	}

	byName := make(map[string]entities.MonsterTemplate, len(templates))
	names := make([]string, 0, len(templates))
	for _, template := range templates {
		vb := errors.NewValidationBuilder()
		errors.ValidateRequired("name", template.Name, vb)
		if template.Health <= 0 {
			vb.InvalidField("health", "must be positive")
		}
		if template.AttackPower < 0 {
			vb.InvalidField("attack_power", "must not be negative")
		}
		if err := vb.Build(); err != nil {
			return nil, errors.Wrapf(err, "invalid template %q", template.Name)
		}

		if _, exists := byName[template.Name]; exists {
			return nil, errors.AlreadyExistsf("duplicate monster template %q", template.Name)
		}
		byName[template.Name] = template
		names = append(names, template.Name)
	}
	sort.Strings(names)

	return &InMemoryRepository{
		templates: byName,
		names:     names,
	}, nil
}

// Get retrieves a template by monster name
func (r *InMemoryRepository) Get(ctx context.Context, input *GetInput) (*GetOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	if input.Name == "" {
		return nil, errors.InvalidArgument("monster name is required")
	}

	template, exists := r.templates[input.Name]
	if !exists {
		return nil, errors.NotFoundf("monster template %q not found", input.Name)
	}

	// Return a copy to keep the catalog immutable
	return &GetOutput{Template: &template}, nil
}

// List returns all templates in name order
func (r *InMemoryRepository) List(ctx context.Context, input *ListInput) (*ListOutput, error) {
	templates := make([]*entities.MonsterTemplate, 0, len(r.names))
	for _, name := range r.names {
		template := r.templates[name]
		templates = append(templates, &template)
	}

	return &ListOutput{Templates: templates}, nil
}
