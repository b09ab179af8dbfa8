package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/KirkDiggler/rpg-toolkit/dice"
	"github.com/KirkDiggler/rpg-toolkit/events"
	"github.com/spf13/cobra"

	"github.com/KirkDiggler/caverns/internal/config"
	"github.com/KirkDiggler/caverns/internal/entities"
	"github.com/KirkDiggler/caverns/internal/errors"
	"github.com/KirkDiggler/caverns/internal/orchestrators/adventure"
	"github.com/KirkDiggler/caverns/internal/orchestrators/combat"
	"github.com/KirkDiggler/caverns/internal/pkg/clock"
	"github.com/KirkDiggler/caverns/internal/pkg/idgen"
	"github.com/KirkDiggler/caverns/internal/pkg/roller"
	"github.com/KirkDiggler/caverns/internal/repositories/catalog"
	"github.com/KirkDiggler/caverns/internal/repositories/sessions"
	"github.com/KirkDiggler/caverns/internal/ui"
)

var (
	heroName string
	diceSeed int64
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play through one adventure",
	Long:  `Play one run of the game: name your hero, pick a path, and see whether you make it home.`,
	RunE:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&heroName, "name", "", "hero name (skips the prompt)")
	playCmd.Flags().Int64Var(&diceSeed, "seed", 0, "dice seed for a reproducible run (0 picks one at random)")
}

// gameDeps bundles what one run of the game needs.
type gameDeps struct {
	console    *ui.Console
	adventures adventure.Service
	combats    combat.Service
}

func runPlay(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	deps, err := buildGame(cfg, diceSeed)
	if err != nil {
		return err
	}

	if err := runGame(cmd.Context(), deps, heroName); err != nil {
		// The player closing stdin is a way of leaving, not a failure.
		if errors.IsCanceled(err) {
			return nil
		}
		return err
	}
	return nil
}

func buildGame(cfg *config.Config, seed int64) (*gameDeps, error) {
	templates, err := catalog.ByName(cfg.Catalog)
	if err != nil {
		return nil, err
	}

	catalogRepo, err := catalog.NewInMemory(templates)
	if err != nil {
		return nil, errors.Wrap(err, "failed to build the monster catalog")
	}

	diceRoller, err := buildRoller(seed)
	if err != nil {
		return nil, err
	}

	bus := events.NewBus()

	console, err := ui.NewConsole(&ui.Config{
		Reader:   os.Stdin,
		Writer:   os.Stdout,
		EventBus: bus,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to build the console")
	}

	adventures, err := adventure.NewOrchestrator(&adventure.Config{
		CatalogRepo: catalogRepo,
		DiceRoller:  diceRoller,
		IDGenerator: idgen.NewPrefixed("char"),
		EventBus:    bus,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to build the adventure service")
	}

	combats, err := combat.NewOrchestrator(&combat.Config{
		SessionRepo: sessions.NewInMemory(),
		EventBus:    bus,
		IDGenerator: idgen.NewPrefixed("sess"),
		Clock:       clock.New(),
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to build the combat service")
	}

	slog.Info("Game assembled",
		"catalog", cfg.Catalog,
	)

	return &gameDeps{
		console:    console,
		adventures: adventures,
		combats:    combats,
	}, nil
}

// buildRoller picks a crypto seed when none is given and logs it, so any
// run can be replayed with --seed.
func buildRoller(seed int64) (dice.Roller, error) {
	if seed == 0 {
		fresh, err := roller.NewSeed()
		if err != nil {
			return nil, errors.Wrap(err, "failed to seed the dice")
		}
		seed = fresh
	}

	slog.Info("Dice seeded",
		"seed", seed,
	)

	return roller.NewSeeded(seed), nil
}

func runGame(ctx context.Context, deps *gameDeps, name string) error {
	deps.console.Welcome()

	hero, err := recruitHero(ctx, deps, name)
	if err != nil {
		return err
	}

	paths, err := deps.adventures.ListPaths(ctx, &adventure.ListPathsInput{})
	if err != nil {
		return err
	}

	path, err := deps.console.PromptPath(paths.Options)
	if err != nil {
		return err
	}

	selected, err := deps.adventures.SelectPath(ctx, &adventure.SelectPathInput{Path: path})
	if err != nil {
		return err
	}

	if !selected.Zone.Hostile() {
		deps.console.SafeEnding()
		return nil
	}

	return delveInto(ctx, deps, hero, selected.Zone)
}

// recruitHero keeps asking until the adventure service accepts a name.
func recruitHero(ctx context.Context, deps *gameDeps, name string) (*entities.Character, error) {
	for {
		if name == "" {
			var err error
			name, err = deps.console.PromptHeroName()
			if err != nil {
				return nil, err
			}
		}

		created, err := deps.adventures.CreateHero(ctx, &adventure.CreateHeroInput{Name: name})
		if err == nil {
			return created.Hero, nil
		}
		if !errors.IsInvalidArgument(err) {
			return nil, err
		}

		deps.console.Warnf("That name will not do: %d letters at most, and not just spaces.\n",
			adventure.MaxHeroNameLength)
		name = ""
	}
}

func delveInto(ctx context.Context, deps *gameDeps, hero *entities.Character, zone *entities.Zone) error {
	spawned, err := deps.adventures.SpawnEncounter(ctx, &adventure.SpawnEncounterInput{Zone: zone})
	if err != nil {
		return err
	}

	started, err := deps.combats.StartCombat(ctx, &combat.StartCombatInput{
		Hero:    hero,
		Monster: spawned.Monster,
	})
	if err != nil {
		return err
	}

	session := started.Session
	for !session.Finished() {
		action, err := deps.console.PromptAction(session)
		if err != nil {
			return err
		}

		turn, err := deps.combats.ExecuteTurn(ctx, &combat.ExecuteTurnInput{
			SessionID: session.ID,
			Action:    action,
		})
		if err != nil {
			return err
		}
		session = turn.Session
	}

	if session.Outcome != entities.OutcomeVictory {
		return nil
	}

	// The hero we sent in was copied into the session; the session carries
	// the one that actually took the hits.
	spoils, err := deps.adventures.GrantVictorySpoils(ctx, &adventure.GrantVictorySpoilsInput{
		Hero:       session.Hero,
		EnemyLevel: session.Monster.Level,
	})
	if err != nil {
		return err
	}

	deps.console.VictoryTale(spoils)
	return nil
}
