// Package rules holds the fixed combat and progression tables: the damage
// formula, XP thresholds and rewards, and zone danger scaling. Everything
// here is a pure function over ints.
package rules

// Stat growth applied for each level gained
const (
	HealthPerLevel = 10
	AttackPerLevel = 2
)

// Base XP for defeating an enemy of the hero's own level
const baseXPReward = 25

// Bonus stats applied to monsters per danger level above 1
const (
	dangerHealthBonus = 10
	dangerAttackBonus = 2
)

// Cumulative XP thresholds for levels 1-10; levels beyond the table cost
// another 500 XP each
var xpRequirements = [...]int{0, 100, 250, 450, 700, 1000, 1350, 1750, 2200, 2700}

const xpPerExtraLevel = 500

// EffectiveDamage computes the damage an attack deals: full attack power,
// or half rounded down when the target is defending.
func EffectiveDamage(attack int, defending bool) int {
	if defending {
		return attack / 2
	}
	return attack
}

// XPForLevel returns the total XP required to hold the given level.
func XPForLevel(level int) int {
	if level <= 1 {
		return 0
	}
	if level <= len(xpRequirements) {
		return xpRequirements[level-1]
	}
	return xpRequirements[len(xpRequirements)-1] + (level-len(xpRequirements))*xpPerExtraLevel
}

// LevelForXP returns the highest level whose requirement is covered by xp.
// Exact inverse of XPForLevel; never below 1.
func LevelForXP(xp int) int {
	level := 1
	for XPForLevel(level+1) <= xp {
		level++
	}
	return level
}

// XPToNextLevel returns the XP still missing for the next level, never
// negative.
func XPToNextLevel(level, xp int) int {
	missing := XPForLevel(level+1) - xp
	if missing < 0 {
		return 0
	}
	return missing
}

// XPReward returns the XP for defeating an enemy, scaled by the level
// difference: tougher enemies pay 1.5x plus 0.2x per level above the hero,
// weaker ones pay 0.1x less per level below, floored at 0.1x.
func XPReward(enemyLevel, heroLevel int) int {
	diff := enemyLevel - heroLevel

	multiplier := 1.0
	switch {
	case diff > 0:
		multiplier = 1.5 + float64(diff)*0.2
	case diff < 0:
		multiplier = 1.0 + float64(diff)*0.1
		if multiplier < 0.1 {
			multiplier = 0.1
		}
	}

	return int(baseXPReward * multiplier)
}

// ScaleForDanger raises monster stats for zones above danger level 1.
// Danger 1 and below pass stats through unchanged.
func ScaleForDanger(health, attack, danger int) (int, int) {
	if danger <= 1 {
		return health, attack
	}
	steps := danger - 1
	return health + dangerHealthBonus*steps, attack + dangerAttackBonus*steps
}
