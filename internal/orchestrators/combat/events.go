package combat

// Event topics published on the event bus as a fight unfolds. The console
// subscribes to these to narrate combat; the turn loop itself never depends
// on a subscriber being present.
const (
	EventCombatStarted = "combat.started"
	EventTurnAttack    = "combat.turn.attack"
	EventTurnDefend    = "combat.turn.defend"
	EventTurnCounter   = "combat.turn.counter"
	EventCombatEnded   = "combat.ended"
)

// Context keys carried by combat events
const (
	ContextKeySessionID     = "session_id"
	ContextKeyRound         = "round"
	ContextKeyDamage        = "damage"
	ContextKeyDefended      = "defended"
	ContextKeyHeroName      = "hero_name"
	ContextKeyMonsterName   = "monster_name"
	ContextKeyHeroHealth    = "hero_health"
	ContextKeyMonsterHealth = "monster_health"
	ContextKeyOutcome       = "outcome"
)
