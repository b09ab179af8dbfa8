// Package ui renders the terminal adventure: prompts over an injected
// reader, narration driven by the event bus. The game flow never prints
// directly; it publishes events and the console tells the story.
package ui

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/KirkDiggler/rpg-toolkit/events"
	"github.com/fatih/color"

	"github.com/KirkDiggler/caverns/internal/entities"
	"github.com/KirkDiggler/caverns/internal/errors"
	"github.com/KirkDiggler/caverns/internal/orchestrators/adventure"
	"github.com/KirkDiggler/caverns/internal/orchestrators/combat"
	"github.com/KirkDiggler/caverns/internal/rules"
)

// Config holds the dependencies for the console
type Config struct {
	Reader   io.Reader
	Writer   io.Writer
	EventBus events.EventBus
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Reader == nil {
		vb.RequiredField("Reader")
	}
	if c.Writer == nil {
		vb.RequiredField("Writer")
	}
	if c.EventBus == nil {
		vb.RequiredField("EventBus")
	}

	return vb.Build()
}

// Console prompts the player and narrates events. Construction subscribes
// it to every combat and adventure topic on the bus.
type Console struct {
	in  *bufio.Scanner
	out io.Writer

	info    *color.Color
	caution *color.Color
	danger  *color.Color
	success *color.Color
}

// NewConsole creates a console and subscribes its renderers to the bus
func NewConsole(cfg *Config) (*Console, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	c := &Console{
		in:      bufio.NewScanner(cfg.Reader),
		out:     cfg.Writer,
		info:    color.New(color.FgCyan),
		caution: color.New(color.FgYellow),
		danger:  color.New(color.FgRed),
		success: color.New(color.FgGreen),
	}
	c.subscribe(cfg.EventBus)

	return c, nil
}

// Welcome prints the opening banner
func (c *Console) Welcome() {
	c.info.Fprintln(c.out, "==============================")
	c.info.Fprintln(c.out, "          CAVERNS")
	c.info.Fprintln(c.out, "==============================")
	c.info.Fprintln(c.out, "The road home runs past the old cave. Travelers keep vanishing.")
}

// PromptHeroName asks until the player gives a non-empty name
func (c *Console) PromptHeroName() (string, error) {
	for {
		c.info.Fprint(c.out, "\nWhat is your name, adventurer? ")
		line, err := c.readLine()
		if err != nil {
			return "", err
		}

		name := strings.TrimSpace(line)
		if name != "" {
			return name, nil
		}
		c.caution.Fprintln(c.out, "Even a nameless wanderer needs a name here.")
	}
}

// PromptPath shows the numbered path menu and asks until the player picks a
// valid entry, by number or by name
func (c *Console) PromptPath(options []*adventure.PathOption) (adventure.Path, error) {
	for {
		c.info.Fprintln(c.out, "\nTwo ways lie before you:")
		for i, option := range options {
			c.info.Fprintf(c.out, "  %d) %s - %s\n", i+1, option.Zone.Name, option.Zone.Description)
		}
		c.info.Fprint(c.out, "Choose your path: ")

		line, err := c.readLine()
		if err != nil {
			return "", err
		}
		answer := strings.ToLower(strings.TrimSpace(line))

		if n, err := strconv.Atoi(answer); err == nil && n >= 1 && n <= len(options) {
			return options[n-1].Path, nil
		}
		for _, option := range options {
			if answer == string(option.Path) {
				return option.Path, nil
			}
		}

		c.caution.Fprintf(c.out, "Pick a number between 1 and %d.\n", len(options))
	}
}

// PromptAction prints the round status line and asks until the player picks
// attack or defend. There is no third option, and no default.
func (c *Console) PromptAction(session *entities.CombatSession) (combat.Action, error) {
	for {
		c.info.Fprintf(c.out, "\nRound %d  %s %d/%d HP  |  %s %d/%d HP\n",
			session.Round,
			session.Hero.Name, session.Hero.Health, session.Hero.MaxHealth,
			session.Monster.Name, session.Monster.Health, session.Monster.MaxHealth,
		)
		c.info.Fprint(c.out, "[a]ttack or [d]efend? ")

		line, err := c.readLine()
		if err != nil {
			return "", err
		}

		switch strings.ToLower(strings.TrimSpace(line)) {
		case "a", "attack", "1":
			return combat.ActionAttack, nil
		case "d", "defend", "2":
			return combat.ActionDefend, nil
		}
		c.caution.Fprintln(c.out, "You can attack or defend. Nothing else has ever worked down here.")
	}
}

// SafeEnding prints the peaceful forest ending
func (c *Console) SafeEnding() {
	c.info.Fprintln(c.out, "The birds are loud, the sun is warm, and nothing tries to kill you.")
	c.success.Fprintln(c.out, "\nYou arrive home unhurt. Some adventures are quiet ones. THE END.")
}

// VictoryTale prints the spoils of a won fight and the walk back out
func (c *Console) VictoryTale(spoils *adventure.GrantVictorySpoilsOutput) {
	c.success.Fprintf(c.out, "You gain %d XP.\n", spoils.XPAwarded)
	if spoils.Hero != nil && spoils.LevelsGained == 0 {
		c.info.Fprintf(c.out, "%d XP to the next level.\n",
			rules.XPToNextLevel(spoils.Hero.Level, spoils.Hero.XP))
	}
	c.info.Fprintln(c.out, "Among the bones you find a water-stained manual of swordsmanship. You pocket it for the road.")
	c.success.Fprintln(c.out, "\nYou walk out of the cave into daylight. THE END.")
}

// Warnf prints a cautionary line, for the game flow to surface rejected input
func (c *Console) Warnf(format string, args ...any) {
	c.caution.Fprintf(c.out, format, args...)
}

// readLine pulls the next input line, reporting a closed input stream as a
// Canceled error so the game can bow out cleanly
func (c *Console) readLine() (string, error) {
	if !c.in.Scan() {
		if err := c.in.Err(); err != nil {
			return "", errors.Wrap(err, "failed to read input")
		}
		return "", errors.Canceled("input closed")
	}
	return c.in.Text(), nil
}
