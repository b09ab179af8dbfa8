package adventure

// Event topics published as the adventure unfolds
const (
	EventPathSelected     = "adventure.path.selected"
	EventEncounterSpawned = "adventure.encounter.spawned"
	EventHeroLeveled      = "adventure.hero.leveled"
)

// Context keys carried by adventure events
const (
	ContextKeyPath          = "path"
	ContextKeyZoneName      = "zone_name"
	ContextKeyDangerLevel   = "danger_level"
	ContextKeyMonsterName   = "monster_name"
	ContextKeyMonsterHealth = "monster_health"
	ContextKeyAttackPower   = "attack_power"
	ContextKeyHeroName      = "hero_name"
	ContextKeyLevel         = "level"
	ContextKeyLevelsGained  = "levels_gained"
	ContextKeyXPAwarded     = "xp_awarded"
)
