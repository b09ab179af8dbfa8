package ui_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/KirkDiggler/rpg-toolkit/events"
	"github.com/fatih/color"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/caverns/internal/entities"
	"github.com/KirkDiggler/caverns/internal/errors"
	"github.com/KirkDiggler/caverns/internal/orchestrators/adventure"
	"github.com/KirkDiggler/caverns/internal/orchestrators/combat"
	"github.com/KirkDiggler/caverns/internal/testutils/builders"
	"github.com/KirkDiggler/caverns/internal/ui"
)

type ConsoleTestSuite struct {
	suite.Suite
	bus events.EventBus
	out *bytes.Buffer
	ctx context.Context
}

func (s *ConsoleTestSuite) SetupTest() {
	color.NoColor = true
	s.bus = events.NewBus()
	s.out = &bytes.Buffer{}
	s.ctx = context.Background()
}

// newConsole builds a console reading from the scripted input
func (s *ConsoleTestSuite) newConsole(input string) *ui.Console {
	console, err := ui.NewConsole(&ui.Config{
		Reader:   strings.NewReader(input),
		Writer:   s.out,
		EventBus: s.bus,
	})
	s.Require().NoError(err)
	return console
}

// publish pushes an event through the bus so the subscribed renderers fire
func (s *ConsoleTestSuite) publish(e events.Event) {
	s.Require().NoError(s.bus.Publish(s.ctx, e))
}

func (s *ConsoleTestSuite) pathOptions() []*adventure.PathOption {
	return []*adventure.PathOption{
		{Path: adventure.PathForest, Zone: &entities.Zone{Name: "Sunlit Forest", Description: "A quiet road."}},
		{Path: adventure.PathCave, Zone: &entities.Zone{Name: "Dark Cave", Description: "Cold air.", DangerLevel: 1}},
	}
}

func (s *ConsoleTestSuite) TestPromptHeroName() {
	console := s.newConsole("Saria\n")

	name, err := console.PromptHeroName()
	s.Require().NoError(err)
	s.Equal("Saria", name)
	s.NotContains(s.out.String(), "needs a name")
}

func (s *ConsoleTestSuite) TestPromptHeroName_RepromptsOnBlank() {
	console := s.newConsole("\n   \nSaria\n")

	name, err := console.PromptHeroName()
	s.Require().NoError(err)
	s.Equal("Saria", name)
	s.Equal(2, strings.Count(s.out.String(), "needs a name"))
}

func (s *ConsoleTestSuite) TestPromptHeroName_InputClosed() {
	console := s.newConsole("")

	_, err := console.PromptHeroName()
	s.Error(err)
	s.True(errors.IsCanceled(err))
}

func (s *ConsoleTestSuite) TestPromptPath_ByNumber() {
	console := s.newConsole("2\n")

	path, err := console.PromptPath(s.pathOptions())
	s.Require().NoError(err)
	s.Equal(adventure.PathCave, path)

	s.Contains(s.out.String(), "1) Sunlit Forest - A quiet road.")
	s.Contains(s.out.String(), "2) Dark Cave - Cold air.")
}

func (s *ConsoleTestSuite) TestPromptPath_ByName() {
	console := s.newConsole("FOREST\n")

	path, err := console.PromptPath(s.pathOptions())
	s.Require().NoError(err)
	s.Equal(adventure.PathForest, path)
}

func (s *ConsoleTestSuite) TestPromptPath_RepromptsOnNonsense() {
	console := s.newConsole("9\nswamp\n1\n")

	path, err := console.PromptPath(s.pathOptions())
	s.Require().NoError(err)
	s.Equal(adventure.PathForest, path)
	s.Equal(2, strings.Count(s.out.String(), "Pick a number between 1 and 2."))
}

func (s *ConsoleTestSuite) TestPromptAction() {
	testCases := []struct {
		input string
		want  combat.Action
	}{
		{input: "a\n", want: combat.ActionAttack},
		{input: "attack\n", want: combat.ActionAttack},
		{input: "1\n", want: combat.ActionAttack},
		{input: "A\n", want: combat.ActionAttack},
		{input: "d\n", want: combat.ActionDefend},
		{input: "defend\n", want: combat.ActionDefend},
		{input: "2\n", want: combat.ActionDefend},
	}

	for _, tc := range testCases {
		s.Run(strings.TrimSpace(tc.input), func() {
			console := s.newConsole(tc.input)

			action, err := console.PromptAction(builders.NewSessionBuilder().Build())
			s.Require().NoError(err)
			s.Equal(tc.want, action)
		})
	}
}

func (s *ConsoleTestSuite) TestPromptAction_StatusLine() {
	console := s.newConsole("a\n")

	_, err := console.PromptAction(builders.NewSessionBuilder().Build())
	s.Require().NoError(err)
	s.Contains(s.out.String(), "Round 1  Testa 100/100 HP  |  Goblin 60/60 HP")
}

func (s *ConsoleTestSuite) TestPromptAction_RepromptsOnNonsense() {
	console := s.newConsole("flee\nrun\nd\n")

	action, err := console.PromptAction(builders.NewSessionBuilder().Build())
	s.Require().NoError(err)
	s.Equal(combat.ActionDefend, action)
	s.Equal(2, strings.Count(s.out.String(), "You can attack or defend."))
}

func (s *ConsoleTestSuite) TestRenderCombatStarted() {
	s.newConsole("")

	event := events.NewGameEvent(combat.EventCombatStarted, nil, nil)
	event.Context().Set(combat.ContextKeyMonsterName, "Goblin")
	event.Context().Set(combat.ContextKeyMonsterHealth, 60)
	s.publish(event)

	s.Contains(s.out.String(), "A Goblin blocks your way! It has 60 health")
}

func (s *ConsoleTestSuite) TestRenderAttack() {
	s.newConsole("")

	event := events.NewGameEvent(combat.EventTurnAttack, nil, nil)
	event.Context().Set(combat.ContextKeyMonsterName, "Goblin")
	event.Context().Set(combat.ContextKeyDamage, 15)
	event.Context().Set(combat.ContextKeyMonsterHealth, 45)
	s.publish(event)

	s.Contains(s.out.String(), "You strike the Goblin for 15 damage. It has 45 health left.")
}

func (s *ConsoleTestSuite) TestRenderDefend() {
	s.newConsole("")

	s.publish(events.NewGameEvent(combat.EventTurnDefend, nil, nil))

	s.Contains(s.out.String(), "You plant your feet and raise your guard.")
}

func (s *ConsoleTestSuite) TestRenderCounter() {
	s.newConsole("")

	event := events.NewGameEvent(combat.EventTurnCounter, nil, nil)
	event.Context().Set(combat.ContextKeyMonsterName, "Goblin")
	event.Context().Set(combat.ContextKeyDamage, 12)
	event.Context().Set(combat.ContextKeyDefended, false)
	event.Context().Set(combat.ContextKeyHeroHealth, 88)
	s.publish(event)

	s.Contains(s.out.String(), "The Goblin hits back for 12 damage.")
	s.Contains(s.out.String(), "You have 88 health left.")
	s.NotContains(s.out.String(), "guard takes the worst of it")
}

func (s *ConsoleTestSuite) TestRenderCounter_Defended() {
	s.newConsole("")

	event := events.NewGameEvent(combat.EventTurnCounter, nil, nil)
	event.Context().Set(combat.ContextKeyMonsterName, "Goblin")
	event.Context().Set(combat.ContextKeyDamage, 6)
	event.Context().Set(combat.ContextKeyDefended, true)
	event.Context().Set(combat.ContextKeyHeroHealth, 94)
	s.publish(event)

	s.Contains(s.out.String(), "The Goblin hits back for 6 damage. Your guard takes the worst of it.")
	s.Contains(s.out.String(), "You have 94 health left.")
}

func (s *ConsoleTestSuite) TestRenderCombatEnded() {
	s.newConsole("")

	victory := events.NewGameEvent(combat.EventCombatEnded, nil, nil)
	victory.Context().Set(combat.ContextKeyOutcome, string(entities.OutcomeVictory))
	victory.Context().Set(combat.ContextKeyMonsterName, "Goblin")
	s.publish(victory)
	s.Contains(s.out.String(), "The Goblin falls!")

	defeat := events.NewGameEvent(combat.EventCombatEnded, nil, nil)
	defeat.Context().Set(combat.ContextKeyOutcome, string(entities.OutcomeDefeat))
	defeat.Context().Set(combat.ContextKeyHeroName, "Testa")
	s.publish(defeat)
	s.Contains(s.out.String(), "Testa is overwhelmed. The cave grows quiet again.")
}

func (s *ConsoleTestSuite) TestRenderAdventureBeats() {
	s.newConsole("")

	selected := events.NewGameEvent(adventure.EventPathSelected, nil, nil)
	selected.Context().Set(adventure.ContextKeyZoneName, "Dark Cave")
	s.publish(selected)
	s.Contains(s.out.String(), "You head for the Dark Cave.")

	spawned := events.NewGameEvent(adventure.EventEncounterSpawned, nil, nil)
	spawned.Context().Set(adventure.ContextKeyMonsterName, "Ogre")
	s.publish(spawned)
	s.Contains(s.out.String(), "Ogre, by the sound of it.")

	leveled := events.NewGameEvent(adventure.EventHeroLeveled, nil, nil)
	leveled.Context().Set(adventure.ContextKeyHeroName, "Testa")
	leveled.Context().Set(adventure.ContextKeyLevel, 2)
	s.publish(leveled)
	s.Contains(s.out.String(), "LEVEL UP! Testa reaches level 2.")
}

func (s *ConsoleTestSuite) TestWelcome() {
	console := s.newConsole("")

	console.Welcome()

	s.Contains(s.out.String(), "CAVERNS")
	s.Contains(s.out.String(), "Travelers keep vanishing.")
}

func (s *ConsoleTestSuite) TestSafeEnding() {
	console := s.newConsole("")

	console.SafeEnding()

	s.Contains(s.out.String(), "You arrive home unhurt.")
}

func (s *ConsoleTestSuite) TestVictoryTale() {
	console := s.newConsole("")

	console.VictoryTale(&adventure.GrantVictorySpoilsOutput{
		Hero:      builders.NewHeroBuilder().WithXP(25).Build(),
		XPAwarded: 25,
	})

	s.Contains(s.out.String(), "You gain 25 XP.")
	s.Contains(s.out.String(), "75 XP to the next level.")
	s.Contains(s.out.String(), "manual of swordsmanship")
	s.Contains(s.out.String(), "You walk out of the cave into daylight.")
}

func (s *ConsoleTestSuite) TestVictoryTale_LevelUpSkipsCountdown() {
	console := s.newConsole("")

	console.VictoryTale(&adventure.GrantVictorySpoilsOutput{
		Hero:         builders.NewHeroBuilder().WithLevel(2).WithXP(115).Build(),
		XPAwarded:    115,
		LevelsGained: 1,
	})

	s.Contains(s.out.String(), "You gain 115 XP.")
	s.NotContains(s.out.String(), "to the next level")
}

func (s *ConsoleTestSuite) TestWarnf() {
	console := s.newConsole("")

	console.Warnf("That name will not do: %s\n", "too long")

	s.Contains(s.out.String(), "That name will not do: too long")
}

func (s *ConsoleTestSuite) TestNewConsole_MissingDependencies() {
	testCases := []struct {
		name  string
		cfg   *ui.Config
		field string
	}{
		{
			name:  "missing reader",
			cfg:   &ui.Config{Writer: s.out, EventBus: s.bus},
			field: "Reader",
		},
		{
			name:  "missing writer",
			cfg:   &ui.Config{Reader: strings.NewReader(""), EventBus: s.bus},
			field: "Writer",
		},
		{
			name:  "missing event bus",
			cfg:   &ui.Config{Reader: strings.NewReader(""), Writer: s.out},
			field: "EventBus",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			console, err := ui.NewConsole(tc.cfg)
			s.Error(err)
			s.Nil(console)
			s.Contains(err.Error(), tc.field)
		})
	}
}

func TestConsoleSuite(t *testing.T) {
	suite.Run(t, new(ConsoleTestSuite))
}
