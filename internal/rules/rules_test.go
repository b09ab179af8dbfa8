package rules_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/KirkDiggler/caverns/internal/rules"
)

func TestEffectiveDamage(t *testing.T) {
	testCases := []struct {
		name      string
		attack    int
		defending bool
		expected  int
	}{
		{"full damage when not defending", 12, false, 12},
		{"halved when defending", 12, true, 6},
		{"odd attack floors when defending", 15, true, 7},
		{"one floors to zero when defending", 1, true, 0},
		{"zero attack deals nothing", 0, false, 0},
		{"zero attack deals nothing defending", 0, true, 0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, rules.EffectiveDamage(tc.attack, tc.defending))
		})
	}
}

func TestXPForLevel(t *testing.T) {
	testCases := []struct {
		level    int
		expected int
	}{
		{1, 0},
		{2, 100},
		{3, 250},
		{4, 450},
		{5, 700},
		{10, 2700},
		{11, 3200},
		{12, 3700},
		{0, 0},
		{-3, 0},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.expected, rules.XPForLevel(tc.level), "level %d", tc.level)
	}
}

func TestLevelForXP(t *testing.T) {
	testCases := []struct {
		xp       int
		expected int
	}{
		{0, 1},
		{99, 1},
		{100, 2},
		{249, 2},
		{250, 3},
		{2700, 10},
		{3199, 10},
		{3200, 11},
		{-10, 1},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.expected, rules.LevelForXP(tc.xp), "xp %d", tc.xp)
	}
}

func TestLevelForXPInvertsXPForLevel(t *testing.T) {
	for level := 1; level <= 15; level++ {
		threshold := rules.XPForLevel(level)
		assert.Equal(t, level, rules.LevelForXP(threshold), "at threshold for level %d", level)
		if level > 1 {
			assert.Equal(t, level-1, rules.LevelForXP(threshold-1), "just below threshold for level %d", level)
		}
	}
}

func TestXPToNextLevel(t *testing.T) {
	assert.Equal(t, 100, rules.XPToNextLevel(1, 0))
	assert.Equal(t, 58, rules.XPToNextLevel(1, 42))
	assert.Equal(t, 0, rules.XPToNextLevel(1, 100))
	assert.Equal(t, 0, rules.XPToNextLevel(1, 500))
}

func TestXPReward(t *testing.T) {
	testCases := []struct {
		name       string
		enemyLevel int
		heroLevel  int
		expected   int
	}{
		{"even match", 1, 1, 25},
		{"enemy one above", 2, 1, 42},
		{"enemy two above", 3, 1, 47},
		{"enemy one below", 1, 2, 22},
		{"enemy five below", 1, 6, 12},
		{"floor at one tenth", 1, 20, 2},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, rules.XPReward(tc.enemyLevel, tc.heroLevel))
		})
	}
}

func TestScaleForDanger(t *testing.T) {
	testCases := []struct {
		name           string
		health, attack int
		danger         int
		wantHealth     int
		wantAttack     int
	}{
		{"danger one is identity", 60, 12, 1, 60, 12},
		{"danger zero is identity", 60, 12, 0, 60, 12},
		{"danger two adds one step", 60, 12, 2, 70, 14},
		{"danger four adds three steps", 60, 12, 4, 90, 18},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			health, attack := rules.ScaleForDanger(tc.health, tc.attack, tc.danger)
			assert.Equal(t, tc.wantHealth, health)
			assert.Equal(t, tc.wantAttack, attack)
		})
	}
}
