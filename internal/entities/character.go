package entities

import (
	"github.com/KirkDiggler/rpg-toolkit/core"

	"github.com/KirkDiggler/caverns/internal/rules"
)

// CharacterKind distinguishes the player's hero from catalog monsters
type CharacterKind string

// Character kinds
const (
	KindHero    CharacterKind = "hero"
	KindMonster CharacterKind = "monster"
)

// Base stats every new hero starts with
const (
	HeroBaseHealth = 100
	HeroBaseAttack = 15
)

// Character represents any combat participant, hero or monster. Both share
// the same stats and behavior; Kind only matters for display and events.
type Character struct {
	ID          string
	Name        string
	Kind        CharacterKind
	Health      int
	MaxHealth   int
	AttackPower int
	Level       int
	XP          int
}

// Verify that Character can ride the event bus as an event participant
var _ core.Entity = (*Character)(nil)

// NewHero creates a level-1 hero with the base stats
func NewHero(id, name string) *Character {
	return &Character{
		ID:          id,
		Name:        name,
		Kind:        KindHero,
		Health:      HeroBaseHealth,
		MaxHealth:   HeroBaseHealth,
		AttackPower: HeroBaseAttack,
		Level:       1,
	}
}

// NewMonster creates a monster from a catalog template
func NewMonster(id string, template MonsterTemplate) *Character {
	return &Character{
		ID:          id,
		Name:        template.Name,
		Kind:        KindMonster,
		Health:      template.Health,
		MaxHealth:   template.Health,
		AttackPower: template.AttackPower,
		Level:       1,
	}
}

// GetID returns the character's ID
func (c *Character) GetID() string {
	return c.ID
}

// GetType returns the entity type for rpg-toolkit
func (c *Character) GetType() string {
	return string(c.Kind)
}

// ApplyDamage subtracts health, clamping at 0, and returns the amount
// actually absorbed
func (c *Character) ApplyDamage(amount int) int {
	if amount < 0 {
		amount = 0
	}
	taken := amount
	if taken > c.Health {
		taken = c.Health
	}
	c.Health -= taken
	return taken
}

// DealDamage applies this character's attack to the target and returns the
// effective damage: full attack power, halved (rounded down) when the target
// is defending.
func (c *Character) DealDamage(target *Character, targetDefending bool) int {
	damage := rules.EffectiveDamage(c.AttackPower, targetDefending)
	target.ApplyDamage(damage)
	return damage
}

// Defeated reports whether the character is out of the fight
func (c *Character) Defeated() bool {
	return c.Health == 0
}
