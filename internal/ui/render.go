package ui

import (
	"context"

	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/KirkDiggler/caverns/internal/entities"
	"github.com/KirkDiggler/caverns/internal/orchestrators/adventure"
	"github.com/KirkDiggler/caverns/internal/orchestrators/combat"
)

// subscribe hooks a renderer onto every topic the game publishes
func (c *Console) subscribe(bus events.EventBus) {
	bus.SubscribeFunc(adventure.EventPathSelected, 0, c.renderPathSelected)
	bus.SubscribeFunc(adventure.EventEncounterSpawned, 0, c.renderEncounterSpawned)
	bus.SubscribeFunc(adventure.EventHeroLeveled, 0, c.renderHeroLeveled)
	bus.SubscribeFunc(combat.EventCombatStarted, 0, c.renderCombatStarted)
	bus.SubscribeFunc(combat.EventTurnAttack, 0, c.renderAttack)
	bus.SubscribeFunc(combat.EventTurnDefend, 0, c.renderDefend)
	bus.SubscribeFunc(combat.EventTurnCounter, 0, c.renderCounter)
	bus.SubscribeFunc(combat.EventCombatEnded, 0, c.renderCombatEnded)
}

func (c *Console) renderPathSelected(_ context.Context, e events.Event) error {
	c.info.Fprintf(c.out, "\nYou head for the %s.\n", ctxString(e, adventure.ContextKeyZoneName))
	return nil
}

func (c *Console) renderEncounterSpawned(_ context.Context, e events.Event) error {
	c.info.Fprintf(c.out, "Something shuffles in the dark... %s, by the sound of it.\n",
		ctxString(e, adventure.ContextKeyMonsterName))
	return nil
}

func (c *Console) renderHeroLeveled(_ context.Context, e events.Event) error {
	c.success.Fprintf(c.out, "LEVEL UP! %s reaches level %d.\n",
		ctxString(e, adventure.ContextKeyHeroName),
		ctxInt(e, adventure.ContextKeyLevel))
	return nil
}

func (c *Console) renderCombatStarted(_ context.Context, e events.Event) error {
	c.danger.Fprintf(c.out, "\nA %s blocks your way! It has %d health and bad intentions.\n",
		ctxString(e, combat.ContextKeyMonsterName),
		ctxInt(e, combat.ContextKeyMonsterHealth))
	return nil
}

func (c *Console) renderAttack(_ context.Context, e events.Event) error {
	c.danger.Fprintf(c.out, "You strike the %s for %d damage. It has %d health left.\n",
		ctxString(e, combat.ContextKeyMonsterName),
		ctxInt(e, combat.ContextKeyDamage),
		ctxInt(e, combat.ContextKeyMonsterHealth))
	return nil
}

func (c *Console) renderDefend(_ context.Context, _ events.Event) error {
	c.caution.Fprintln(c.out, "You plant your feet and raise your guard.")
	return nil
}

func (c *Console) renderCounter(_ context.Context, e events.Event) error {
	monster := ctxString(e, combat.ContextKeyMonsterName)
	damage := ctxInt(e, combat.ContextKeyDamage)

	if ctxBool(e, combat.ContextKeyDefended) {
		c.caution.Fprintf(c.out, "The %s hits back for %d damage. Your guard takes the worst of it.\n", monster, damage)
	} else {
		c.danger.Fprintf(c.out, "The %s hits back for %d damage.\n", monster, damage)
	}
	c.info.Fprintf(c.out, "You have %d health left.\n", ctxInt(e, combat.ContextKeyHeroHealth))
	return nil
}

func (c *Console) renderCombatEnded(_ context.Context, e events.Event) error {
	switch entities.Outcome(ctxString(e, combat.ContextKeyOutcome)) {
	case entities.OutcomeVictory:
		c.success.Fprintf(c.out, "\nThe %s falls!\n", ctxString(e, combat.ContextKeyMonsterName))
	case entities.OutcomeDefeat:
		c.danger.Fprintf(c.out, "\n%s is overwhelmed. The cave grows quiet again.\n",
			ctxString(e, combat.ContextKeyHeroName))
	}
	return nil
}

// Context values arrive as any; renderers degrade to zero values rather
// than failing the publish.

func ctxString(e events.Event, key string) string {
	value, ok := e.Context().Get(key)
	if !ok {
		return ""
	}
	s, _ := value.(string)
	return s
}

func ctxInt(e events.Event, key string) int {
	value, ok := e.Context().Get(key)
	if !ok {
		return 0
	}
	n, _ := value.(int)
	return n
}

func ctxBool(e events.Event, key string) bool {
	value, ok := e.Context().Get(key)
	if !ok {
		return false
	}
	b, _ := value.(bool)
	return b
}
