package adventure

import (
	"github.com/KirkDiggler/caverns/internal/entities"
)

// PathOption pairs a path with the zone it leads to, in menu order
type PathOption struct {
	Path Path
	Zone *entities.Zone
}

// CreateHeroInput defines the request for creating a hero
type CreateHeroInput struct {
	Name string
}

// CreateHeroOutput defines the response for creating a hero
type CreateHeroOutput struct {
	Hero *entities.Character
}

// ListPathsInput defines the request for listing the available paths
type ListPathsInput struct{}

// ListPathsOutput defines the response for listing the available paths
type ListPathsOutput struct {
	Options []*PathOption
}

// SelectPathInput defines the request for choosing a path
type SelectPathInput struct {
	Path Path
}

// SelectPathOutput defines the response for choosing a path
type SelectPathOutput struct {
	Zone *entities.Zone
}

// SpawnEncounterInput defines the request for spawning a monster in a zone
type SpawnEncounterInput struct {
	Zone *entities.Zone
}

// SpawnEncounterOutput defines the response for spawning a monster
type SpawnEncounterOutput struct {
	Monster *entities.Character
}

// GrantVictorySpoilsInput defines the request for awarding a won fight
type GrantVictorySpoilsInput struct {
	Hero       *entities.Character
	EnemyLevel int
}

// GrantVictorySpoilsOutput defines the response for awarding a won fight
type GrantVictorySpoilsOutput struct {
	Hero         *entities.Character
	XPAwarded    int
	LevelsGained int
}
