package entities_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/caverns/internal/entities"
)

func TestNewHero(t *testing.T) {
	hero := entities.NewHero("char_1", "Fenwick")

	assert.Equal(t, "char_1", hero.ID)
	assert.Equal(t, "Fenwick", hero.Name)
	assert.Equal(t, entities.KindHero, hero.Kind)
	assert.Equal(t, 100, hero.Health)
	assert.Equal(t, 100, hero.MaxHealth)
	assert.Equal(t, 15, hero.AttackPower)
	assert.Equal(t, 1, hero.Level)
	assert.Equal(t, 0, hero.XP)
}

func TestNewMonster(t *testing.T) {
	template := entities.MonsterTemplate{Name: "Goblin", Health: 60, AttackPower: 12}
	monster := entities.NewMonster("char_2", template)

	assert.Equal(t, "char_2", monster.ID)
	assert.Equal(t, "Goblin", monster.Name)
	assert.Equal(t, entities.KindMonster, monster.Kind)
	assert.Equal(t, 60, monster.Health)
	assert.Equal(t, 60, monster.MaxHealth)
	assert.Equal(t, 12, monster.AttackPower)
}

func TestEntityInterface(t *testing.T) {
	hero := entities.NewHero("char_1", "Fenwick")
	monster := entities.NewMonster("char_2", entities.MonsterTemplate{Name: "Orc", Health: 60, AttackPower: 12})

	assert.Equal(t, "char_1", hero.GetID())
	assert.Equal(t, "hero", hero.GetType())
	assert.Equal(t, "monster", monster.GetType())
}

func TestApplyDamage(t *testing.T) {
	testCases := []struct {
		name       string
		health     int
		amount     int
		wantTaken  int
		wantHealth int
	}{
		{"normal hit", 100, 12, 12, 88},
		{"clamps at zero", 10, 25, 10, 0},
		{"exact kill", 12, 12, 12, 0},
		{"zero damage", 50, 0, 0, 50},
		{"negative treated as zero", 50, -7, 0, 50},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			c := entities.NewHero("char_1", "Fenwick")
			c.Health = tc.health

			taken := c.ApplyDamage(tc.amount)

			assert.Equal(t, tc.wantTaken, taken)
			assert.Equal(t, tc.wantHealth, c.Health)
			assert.GreaterOrEqual(t, c.Health, 0)
		})
	}
}

func TestDealDamage(t *testing.T) {
	t.Run("full damage against non-defender", func(t *testing.T) {
		monster := entities.NewMonster("char_2", entities.MonsterTemplate{Name: "Goblin", Health: 60, AttackPower: 12})
		hero := entities.NewHero("char_1", "Fenwick")

		dealt := hero.DealDamage(monster, false)

		assert.Equal(t, 15, dealt)
		assert.Equal(t, 45, monster.Health)
	})

	t.Run("halved against defender with floor", func(t *testing.T) {
		monster := entities.NewMonster("char_2", entities.MonsterTemplate{Name: "Goblin", Health: 60, AttackPower: 15})
		hero := entities.NewHero("char_1", "Fenwick")

		dealt := monster.DealDamage(hero, true)

		assert.Equal(t, 7, dealt)
		assert.Equal(t, 93, hero.Health)
	})

	t.Run("reports effective damage even when clamped", func(t *testing.T) {
		monster := entities.NewMonster("char_2", entities.MonsterTemplate{Name: "Goblin", Health: 5, AttackPower: 12})
		hero := entities.NewHero("char_1", "Fenwick")

		dealt := hero.DealDamage(monster, false)

		assert.Equal(t, 15, dealt)
		assert.Equal(t, 0, monster.Health)
	})
}

func TestDefeated(t *testing.T) {
	c := entities.NewHero("char_1", "Fenwick")
	require.False(t, c.Defeated())

	c.ApplyDamage(99)
	assert.False(t, c.Defeated())

	c.ApplyDamage(1)
	assert.True(t, c.Defeated())
}

func TestZoneHostile(t *testing.T) {
	safe := &entities.Zone{ID: "forest", Name: "Forest Trail", DangerLevel: 0}
	hostile := &entities.Zone{ID: "cave", Name: "Dark Cave", DangerLevel: 1}

	assert.False(t, safe.Hostile())
	assert.True(t, hostile.Hostile())
}

func TestCombatSessionFinished(t *testing.T) {
	session := &entities.CombatSession{Outcome: entities.OutcomeOngoing}
	assert.False(t, session.Finished())

	session.Outcome = entities.OutcomeVictory
	assert.True(t, session.Finished())

	session.Outcome = entities.OutcomeDefeat
	assert.True(t, session.Finished())
}
