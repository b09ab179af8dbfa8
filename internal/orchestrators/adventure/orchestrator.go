// Package adventure implements the adventure orchestrator: hero creation,
// path selection, encounter spawning, and the spoils of victory.
package adventure

//go:generate mockgen -destination=mock/mock_service.go -package=adventuremock github.com/KirkDiggler/caverns/internal/orchestrators/adventure Service

import (
	"context"
	"log/slog"
	"strings"

	"github.com/KirkDiggler/rpg-toolkit/dice"
	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/KirkDiggler/caverns/internal/entities"
	"github.com/KirkDiggler/caverns/internal/errors"
	"github.com/KirkDiggler/caverns/internal/pkg/idgen"
	"github.com/KirkDiggler/caverns/internal/repositories/catalog"
	"github.com/KirkDiggler/caverns/internal/rules"
)

// MaxHeroNameLength caps hero names at something a status line can carry
const MaxHeroNameLength = 40

// Service defines the interface for adventure operations
type Service interface {
	// CreateHero mints a fresh hero with the fixed base stats
	CreateHero(ctx context.Context, input *CreateHeroInput) (*CreateHeroOutput, error)

	// ListPaths returns the available paths in menu order
	ListPaths(ctx context.Context, input *ListPathsInput) (*ListPathsOutput, error)

	// SelectPath resolves a path choice to its zone
	SelectPath(ctx context.Context, input *SelectPathInput) (*SelectPathOutput, error)

	// SpawnEncounter picks a monster for a hostile zone
	SpawnEncounter(ctx context.Context, input *SpawnEncounterInput) (*SpawnEncounterOutput, error)

	// GrantVictorySpoils awards XP for a won fight and applies any level-ups
	GrantVictorySpoils(ctx context.Context, input *GrantVictorySpoilsInput) (*GrantVictorySpoilsOutput, error)
}

// Config holds the dependencies for the adventure orchestrator
type Config struct {
	CatalogRepo catalog.Repository
	DiceRoller  dice.Roller
	IDGenerator idgen.Generator
	EventBus    events.EventBus
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.CatalogRepo == nil {
		vb.RequiredField("CatalogRepo")
	}
	if c.DiceRoller == nil {
		vb.RequiredField("DiceRoller")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}
	if c.EventBus == nil {
		vb.RequiredField("EventBus")
	}

	return vb.Build()
}

type orchestrator struct {
	catalogRepo catalog.Repository
	diceRoller  dice.Roller
	idGen       idgen.Generator
	eventBus    events.EventBus
}

// NewOrchestrator creates a new adventure orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &orchestrator{
		catalogRepo: cfg.CatalogRepo,
		diceRoller:  cfg.DiceRoller,
		idGen:       cfg.IDGenerator,
		eventBus:    cfg.EventBus,
	}, nil
}

// CreateHero mints a fresh hero with the fixed base stats
func (o *orchestrator) CreateHero(ctx context.Context, input *CreateHeroInput) (*CreateHeroOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	name := strings.TrimSpace(input.Name)

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("name", name, vb)
	errors.ValidateMaxLength("name", name, MaxHeroNameLength, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	hero := entities.NewHero(o.idGen.Generate(), name)

	slog.Info("Hero created",
		"hero_id", hero.ID,
		"name", hero.Name,
	)

	return &CreateHeroOutput{Hero: hero}, nil
}

// ListPaths returns the available paths in menu order
func (o *orchestrator) ListPaths(ctx context.Context, input *ListPathsInput) (*ListPathsOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	options := make([]*PathOption, 0, len(pathOrder))
	for _, path := range pathOrder {
		zone, _ := zoneForPath(path)
		options = append(options, &PathOption{Path: path, Zone: zone})
	}

	return &ListPathsOutput{Options: options}, nil
}

// SelectPath resolves a path choice to its zone
func (o *orchestrator) SelectPath(ctx context.Context, input *SelectPathInput) (*SelectPathOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	zone, ok := zoneForPath(input.Path)
	if !ok {
		return nil, errors.InvalidArgumentf("unknown path %q, valid paths: %s, %s",
			input.Path, PathForest, PathCave)
	}

	slog.Info("Path selected",
		"path", input.Path,
		"zone", zone.Name,
		"danger_level", zone.DangerLevel,
	)

	event := events.NewGameEvent(EventPathSelected, nil, nil)
	event.Context().Set(ContextKeyPath, string(input.Path))
	event.Context().Set(ContextKeyZoneName, zone.Name)
	event.Context().Set(ContextKeyDangerLevel, zone.DangerLevel)
	o.publish(ctx, event)

	return &SelectPathOutput{Zone: zone}, nil
}

// SpawnEncounter picks a monster for a hostile zone. The die decides which
// of the zone's monsters shows up; the zone's danger level scales its stats
// and sets its level.
func (o *orchestrator) SpawnEncounter(ctx context.Context, input *SpawnEncounterInput) (*SpawnEncounterOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.Zone == nil {
		return nil, errors.InvalidArgument("zone is required")
	}
	if !input.Zone.Hostile() {
		return nil, errors.FailedPreconditionf("%s is safe ground, nothing to fight", input.Zone.Name)
	}
	if len(input.Zone.MonsterNames) == 0 {
		return nil, errors.InvalidArgumentf("zone %s has no monsters to spawn", input.Zone.Name)
	}

	roll, err := o.diceRoller.Roll(len(input.Zone.MonsterNames))
	if err != nil {
		return nil, errors.Wrap(err, "failed to roll for a monster")
	}
	name := input.Zone.MonsterNames[roll-1]

	getOutput, err := o.catalogRepo.Get(ctx, &catalog.GetInput{Name: name})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load monster template %q", name)
	}

	template := *getOutput.Template
	template.Health, template.AttackPower = rules.ScaleForDanger(
		template.Health, template.AttackPower, input.Zone.DangerLevel)

	monster := entities.NewMonster(o.idGen.Generate(), template)
	// Monster level tracks the zone's danger level
	monster.Level = input.Zone.DangerLevel

	slog.Info("Encounter spawned",
		"zone", input.Zone.Name,
		"monster", monster.Name,
		"health", monster.Health,
		"attack_power", monster.AttackPower,
	)

	event := events.NewGameEvent(EventEncounterSpawned, monster, nil)
	event.Context().Set(ContextKeyZoneName, input.Zone.Name)
	event.Context().Set(ContextKeyMonsterName, monster.Name)
	event.Context().Set(ContextKeyMonsterHealth, monster.Health)
	event.Context().Set(ContextKeyAttackPower, monster.AttackPower)
	o.publish(ctx, event)

	return &SpawnEncounterOutput{Monster: monster}, nil
}

// GrantVictorySpoils awards XP for a won fight and applies any level-ups.
// Each level gained raises max and current health by the same fixed amount
// and attack power by its own fixed amount.
func (o *orchestrator) GrantVictorySpoils(ctx context.Context, input *GrantVictorySpoilsInput) (*GrantVictorySpoilsOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.Hero == nil {
		return nil, errors.InvalidArgument("hero is required")
	}
	if input.Hero.Kind != entities.KindHero {
		return nil, errors.InvalidArgumentf("%s is not a hero", input.Hero.Name)
	}
	if input.EnemyLevel < 1 {
		return nil, errors.InvalidArgument("enemy level must be at least 1")
	}

	hero := input.Hero
	awarded := rules.XPReward(input.EnemyLevel, hero.Level)
	hero.XP += awarded

	newLevel := rules.LevelForXP(hero.XP)
	levelsGained := newLevel - hero.Level
	if levelsGained > 0 {
		hero.Level = newLevel
		hero.MaxHealth += levelsGained * rules.HealthPerLevel
		hero.Health += levelsGained * rules.HealthPerLevel
		hero.AttackPower += levelsGained * rules.AttackPerLevel
	}

	slog.Info("Victory spoils granted",
		"hero_id", hero.ID,
		"xp_awarded", awarded,
		"levels_gained", levelsGained,
		"level", hero.Level,
	)

	if levelsGained > 0 {
		event := events.NewGameEvent(EventHeroLeveled, hero, nil)
		event.Context().Set(ContextKeyHeroName, hero.Name)
		event.Context().Set(ContextKeyLevel, hero.Level)
		event.Context().Set(ContextKeyLevelsGained, levelsGained)
		event.Context().Set(ContextKeyXPAwarded, awarded)
		o.publish(ctx, event)
	}

	return &GrantVictorySpoilsOutput{
		Hero:         hero,
		XPAwarded:    awarded,
		LevelsGained: levelsGained,
	}, nil
}

// publish sends an event to the bus. Narration must never break the game
// flow, so publish failures are logged and swallowed.
func (o *orchestrator) publish(ctx context.Context, event events.Event) {
	if err := o.eventBus.Publish(ctx, event); err != nil {
		slog.Warn("Failed to publish adventure event",
			"event_type", event.Type(),
			"error", err,
		)
	}
}
