// Package combat implements the combat orchestrator: the turn loop that
// resolves player actions and monster counters until one side falls.
package combat

//go:generate mockgen -destination=mock/mock_service.go -package=combatmock github.com/KirkDiggler/caverns/internal/orchestrators/combat Service

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/KirkDiggler/caverns/internal/entities"
	"github.com/KirkDiggler/caverns/internal/errors"
	"github.com/KirkDiggler/caverns/internal/pkg/clock"
	"github.com/KirkDiggler/caverns/internal/pkg/idgen"
	"github.com/KirkDiggler/caverns/internal/repositories/sessions"
)

// Service defines the interface for combat operations
type Service interface {
	// StartCombat opens a session pitting a hero against a monster
	StartCombat(ctx context.Context, input *StartCombatInput) (*StartCombatOutput, error)

	// ExecuteTurn resolves one full round: the player's action, the
	// monster's counter, and the outcome check
	ExecuteTurn(ctx context.Context, input *ExecuteTurnInput) (*ExecuteTurnOutput, error)

	// GetSession retrieves a combat session by ID
	GetSession(ctx context.Context, input *GetSessionInput) (*GetSessionOutput, error)
}

// Config holds the dependencies for the combat orchestrator
type Config struct {
	SessionRepo sessions.Repository
	EventBus    events.EventBus
	IDGenerator idgen.Generator
	Clock       clock.Clock
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.SessionRepo == nil {
		vb.RequiredField("SessionRepo")
	}
	if c.EventBus == nil {
		vb.RequiredField("EventBus")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}
	if c.Clock == nil {
		vb.RequiredField("Clock")
	}

	return vb.Build()
}

type orchestrator struct {
	sessionRepo sessions.Repository
	eventBus    events.EventBus
	idGen       idgen.Generator
	clock       clock.Clock
}

// NewOrchestrator creates a new combat orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &orchestrator{
		sessionRepo: cfg.SessionRepo,
		eventBus:    cfg.EventBus,
		idGen:       cfg.IDGenerator,
		clock:       cfg.Clock,
	}, nil
}

// StartCombat opens a session pitting a hero against a monster
func (o *orchestrator) StartCombat(ctx context.Context, input *StartCombatInput) (*StartCombatOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.Hero == nil {
		return nil, errors.InvalidArgument("hero is required")
	}
	if input.Monster == nil {
		return nil, errors.InvalidArgument("monster is required")
	}
	if input.Hero.Kind != entities.KindHero {
		return nil, errors.InvalidArgumentf("%s is not a hero", input.Hero.Name)
	}
	if input.Monster.Kind != entities.KindMonster {
		return nil, errors.InvalidArgumentf("%s is not a monster", input.Monster.Name)
	}
	if input.Hero.Defeated() {
		return nil, errors.InvalidArgumentf("%s cannot fight at zero health", input.Hero.Name)
	}
	if input.Monster.Defeated() {
		return nil, errors.InvalidArgumentf("%s is already defeated", input.Monster.Name)
	}

	now := o.clock.Now().Unix()
	session := &entities.CombatSession{
		ID:        o.idGen.Generate(),
		Hero:      input.Hero,
		Monster:   input.Monster,
		Round:     1,
		Outcome:   entities.OutcomeOngoing,
		CreatedAt: now,
		UpdatedAt: now,
	}

	createOutput, err := o.sessionRepo.Create(ctx, &sessions.CreateInput{Session: session})
	if err != nil {
		return nil, errors.Wrap(err, "failed to store combat session")
	}

	slog.Info("Combat started",
		"session_id", session.ID,
		"hero", session.Hero.Name,
		"monster", session.Monster.Name,
	)

	event := events.NewGameEvent(EventCombatStarted, session.Hero, session.Monster)
	event.Context().Set(ContextKeySessionID, session.ID)
	event.Context().Set(ContextKeyHeroName, session.Hero.Name)
	event.Context().Set(ContextKeyMonsterName, session.Monster.Name)
	event.Context().Set(ContextKeyHeroHealth, session.Hero.Health)
	event.Context().Set(ContextKeyMonsterHealth, session.Monster.Health)
	o.publish(ctx, event)

	return &StartCombatOutput{Session: createOutput.Session}, nil
}

// ExecuteTurn resolves one full round of combat. The player's action lands
// first, the monster counters if it survived, and the outcome check closes
// the session or advances the round. The round is resolved and persisted as
// a unit; callers never observe a half-finished round.
func (o *orchestrator) ExecuteTurn(ctx context.Context, input *ExecuteTurnInput) (*ExecuteTurnOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.SessionID == "" {
		return nil, errors.InvalidArgument("session ID is required")
	}
	if input.Action != ActionAttack && input.Action != ActionDefend {
		return nil, errors.InvalidArgumentf("unknown action %q, valid actions: %s, %s",
			input.Action, ActionAttack, ActionDefend)
	}

	getOutput, err := o.sessionRepo.Get(ctx, &sessions.GetInput{SessionID: input.SessionID})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get combat session %s", input.SessionID)
	}
	session := getOutput.Session

	if session.Finished() {
		return nil, errors.FailedPreconditionf("combat session %s already ended in %s",
			session.ID, session.Outcome)
	}

	report := &TurnReport{
		Round:  session.Round,
		Action: input.Action,
	}

	o.resolvePlayerAction(ctx, session, input.Action, report)
	o.resolveMonsterCounter(ctx, session, report)
	o.checkOutcome(session, report)

	session.UpdatedAt = o.clock.Now().Unix()
	updateOutput, err := o.sessionRepo.Update(ctx, &sessions.UpdateInput{Session: session})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to update combat session %s", session.ID)
	}

	if session.Finished() {
		slog.Info("Combat ended",
			"session_id", session.ID,
			"outcome", session.Outcome,
			"rounds", report.Round,
			"hero_health", session.Hero.Health,
		)

		event := events.NewGameEvent(EventCombatEnded, session.Hero, session.Monster)
		event.Context().Set(ContextKeySessionID, session.ID)
		event.Context().Set(ContextKeyOutcome, string(session.Outcome))
		event.Context().Set(ContextKeyHeroName, session.Hero.Name)
		event.Context().Set(ContextKeyMonsterName, session.Monster.Name)
		event.Context().Set(ContextKeyHeroHealth, session.Hero.Health)
		event.Context().Set(ContextKeyMonsterHealth, session.Monster.Health)
		o.publish(ctx, event)
	}

	return &ExecuteTurnOutput{
		Session: updateOutput.Session,
		Report:  report,
	}, nil
}

// GetSession retrieves a combat session by ID
func (o *orchestrator) GetSession(ctx context.Context, input *GetSessionInput) (*GetSessionOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.SessionID == "" {
		return nil, errors.InvalidArgument("session ID is required")
	}

	getOutput, err := o.sessionRepo.Get(ctx, &sessions.GetInput{SessionID: input.SessionID})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get combat session %s", input.SessionID)
	}

	return &GetSessionOutput{Session: getOutput.Session}, nil
}

// resolvePlayerAction applies the player's choice. Attack lands immediately;
// defend arms the session's single-use defending flag. Monsters never defend,
// so an attack always deals full damage.
func (o *orchestrator) resolvePlayerAction(ctx context.Context, session *entities.CombatSession, action Action, report *TurnReport) {
	switch action {
	case ActionAttack:
		report.HeroDamage = session.Hero.DealDamage(session.Monster, false)

		event := events.NewGameEvent(EventTurnAttack, session.Hero, session.Monster)
		event.Context().Set(ContextKeySessionID, session.ID)
		event.Context().Set(ContextKeyRound, session.Round)
		event.Context().Set(ContextKeyDamage, report.HeroDamage)
		event.Context().Set(ContextKeyMonsterName, session.Monster.Name)
		event.Context().Set(ContextKeyMonsterHealth, session.Monster.Health)
		o.publish(ctx, event)
	case ActionDefend:
		session.HeroDefending = true

		event := events.NewGameEvent(EventTurnDefend, session.Hero, session.Monster)
		event.Context().Set(ContextKeySessionID, session.ID)
		event.Context().Set(ContextKeyRound, session.Round)
		event.Context().Set(ContextKeyHeroName, session.Hero.Name)
		o.publish(ctx, event)
	}
}

// resolveMonsterCounter lets the monster strike back. A monster that fell
// this round never counters. The defending flag covers exactly one counter
// and resets as soon as it is consulted, whether or not it mattered.
func (o *orchestrator) resolveMonsterCounter(ctx context.Context, session *entities.CombatSession, report *TurnReport) {
	if session.Monster.Defeated() {
		return
	}

	defended := session.HeroDefending
	session.HeroDefending = false

	report.Countered = true
	report.CounterHalved = defended
	report.CounterDamage = session.Monster.DealDamage(session.Hero, defended)

	event := events.NewGameEvent(EventTurnCounter, session.Monster, session.Hero)
	event.Context().Set(ContextKeySessionID, session.ID)
	event.Context().Set(ContextKeyRound, session.Round)
	event.Context().Set(ContextKeyDamage, report.CounterDamage)
	event.Context().Set(ContextKeyDefended, defended)
	event.Context().Set(ContextKeyMonsterName, session.Monster.Name)
	event.Context().Set(ContextKeyHeroHealth, session.Hero.Health)
	o.publish(ctx, event)
}

// checkOutcome closes the session when a side has fallen, checking the
// monster first, and otherwise advances to the next round
func (o *orchestrator) checkOutcome(session *entities.CombatSession, report *TurnReport) {
	switch {
	case session.Monster.Defeated():
		session.Outcome = entities.OutcomeVictory
	case session.Hero.Defeated():
		session.Outcome = entities.OutcomeDefeat
	default:
		session.Round++
	}
	report.Outcome = session.Outcome
}

// publish sends an event to the bus. Narration must never break the turn
// loop, so publish failures are logged and swallowed.
func (o *orchestrator) publish(ctx context.Context, event events.Event) {
	if err := o.eventBus.Publish(ctx, event); err != nil {
		slog.Warn("Failed to publish combat event",
			"event_type", event.Type(),
			"error", err,
		)
	}
}
