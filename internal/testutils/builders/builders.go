// Package builders provides test data builders for creating test fixtures
package builders

import (
	"time"

	"github.com/KirkDiggler/caverns/internal/entities"
)

// CharacterBuilder provides a fluent interface for building test Character instances
type CharacterBuilder struct {
	character *entities.Character
}

// NewHeroBuilder creates a builder preloaded with hero defaults
func NewHeroBuilder() *CharacterBuilder {
	return &CharacterBuilder{
		character: entities.NewHero("char_test_hero", "Testa"),
	}
}

// NewMonsterBuilder creates a builder preloaded with a classic Goblin
func NewMonsterBuilder() *CharacterBuilder {
	return &CharacterBuilder{
		character: entities.NewMonster("char_test_monster", entities.MonsterTemplate{
			Name:        "Goblin",
			Health:      60,
			AttackPower: 12,
		}),
	}
}

// WithID sets the character ID
func (b *CharacterBuilder) WithID(id string) *CharacterBuilder {
	b.character.ID = id
	return b
}

// WithName sets the character name
func (b *CharacterBuilder) WithName(name string) *CharacterBuilder {
	b.character.Name = name
	return b
}

// WithHealth sets current health
func (b *CharacterBuilder) WithHealth(health int) *CharacterBuilder {
	b.character.Health = health
	return b
}

// WithMaxHealth sets maximum health
func (b *CharacterBuilder) WithMaxHealth(maxHealth int) *CharacterBuilder {
	b.character.MaxHealth = maxHealth
	return b
}

// WithAttackPower sets attack power
func (b *CharacterBuilder) WithAttackPower(attackPower int) *CharacterBuilder {
	b.character.AttackPower = attackPower
	return b
}

// WithLevel sets the character level
func (b *CharacterBuilder) WithLevel(level int) *CharacterBuilder {
	b.character.Level = level
	return b
}

// WithXP sets accumulated experience
func (b *CharacterBuilder) WithXP(xp int) *CharacterBuilder {
	b.character.XP = xp
	return b
}

// Build returns the built character
func (b *CharacterBuilder) Build() *entities.Character {
	return b.character
}

// SessionBuilder provides a fluent interface for building test CombatSession instances
type SessionBuilder struct {
	session *entities.CombatSession
}

// NewSessionBuilder creates a builder with a fresh hero-versus-Goblin session
func NewSessionBuilder() *SessionBuilder {
	now := time.Now().Unix()
	return &SessionBuilder{
		session: &entities.CombatSession{
			ID:        "sess_test_1",
			Hero:      NewHeroBuilder().Build(),
			Monster:   NewMonsterBuilder().Build(),
			Round:     1,
			Outcome:   entities.OutcomeOngoing,
			CreatedAt: now,
			UpdatedAt: now,
		},
	}
}

// WithID sets the session ID
func (b *SessionBuilder) WithID(id string) *SessionBuilder {
	b.session.ID = id
	return b
}

// WithHero sets the hero
func (b *SessionBuilder) WithHero(hero *entities.Character) *SessionBuilder {
	b.session.Hero = hero
	return b
}

// WithMonster sets the monster
func (b *SessionBuilder) WithMonster(monster *entities.Character) *SessionBuilder {
	b.session.Monster = monster
	return b
}

// WithRound sets the round counter
func (b *SessionBuilder) WithRound(round int) *SessionBuilder {
	b.session.Round = round
	return b
}

// WithHeroDefending sets the defend flag
func (b *SessionBuilder) WithHeroDefending(defending bool) *SessionBuilder {
	b.session.HeroDefending = defending
	return b
}

// WithOutcome sets the session outcome
func (b *SessionBuilder) WithOutcome(outcome entities.Outcome) *SessionBuilder {
	b.session.Outcome = outcome
	return b
}

// Build returns the built session
func (b *SessionBuilder) Build() *entities.CombatSession {
	return b.session
}
