package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/KirkDiggler/caverns/internal/entities"
	"github.com/KirkDiggler/caverns/internal/orchestrators/adventure"
	"github.com/KirkDiggler/caverns/internal/orchestrators/combat"
	"github.com/KirkDiggler/caverns/internal/pkg/clock"
	"github.com/KirkDiggler/caverns/internal/pkg/idgen"
	"github.com/KirkDiggler/caverns/internal/pkg/roller"
	"github.com/KirkDiggler/caverns/internal/repositories/catalog"
	"github.com/KirkDiggler/caverns/internal/repositories/sessions"
)

// Plays the cave over and over with a simple policy and prints win rates,
// so catalog tweaks can be sanity-checked before they ship.

const trials = 1000

func main() {
	// The orchestrators narrate every run at info level; that is noise here.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn})))

	catalogName := os.Getenv("CAVERNS_CATALOG")
	if catalogName == "" {
		catalogName = "classic"
	}

	templates, err := catalog.ByName(catalogName)
	if err != nil {
		log.Fatal("Unknown catalog:", err)
	}

	fmt.Println("Simulating cave runs against catalog:", catalogName)

	ctx := context.Background()
	var wins, totalRounds, totalRemaining int

	for seed := int64(1); seed <= trials; seed++ {
		outcome, rounds, remaining, err := playOnce(ctx, templates, seed)
		if err != nil {
			log.Fatal("Simulation failed:", err)
		}

		if outcome == entities.OutcomeVictory {
			wins++
			totalRemaining += remaining
		}
		totalRounds += rounds
	}

	fmt.Printf("\n%d runs: %d hero wins (%.1f%%)\n", trials, wins, float64(wins)*100/float64(trials))
	fmt.Printf("Average rounds per fight: %.1f\n", float64(totalRounds)/float64(trials))
	if wins > 0 {
		fmt.Printf("Average hero health after a win: %.1f\n", float64(totalRemaining)/float64(wins))
	}
}

// playOnce runs a single hero through the cave. The policy attacks unless a
// counter would be fatal and attacking cannot end the fight first.
func playOnce(ctx context.Context, templates []entities.MonsterTemplate, seed int64) (entities.Outcome, int, int, error) {
	catalogRepo, err := catalog.NewInMemory(templates)
	if err != nil {
		return "", 0, 0, err
	}

	bus := events.NewBus()

	adventures, err := adventure.NewOrchestrator(&adventure.Config{
		CatalogRepo: catalogRepo,
		DiceRoller:  roller.NewSeeded(seed),
		IDGenerator: idgen.NewSequential("char"),
		EventBus:    bus,
	})
	if err != nil {
		return "", 0, 0, err
	}

	combats, err := combat.NewOrchestrator(&combat.Config{
		SessionRepo: sessions.NewInMemory(),
		EventBus:    bus,
		IDGenerator: idgen.NewSequential("sess"),
		Clock:       clock.New(),
	})
	if err != nil {
		return "", 0, 0, err
	}

	created, err := adventures.CreateHero(ctx, &adventure.CreateHeroInput{Name: "Simulant"})
	if err != nil {
		return "", 0, 0, err
	}

	selected, err := adventures.SelectPath(ctx, &adventure.SelectPathInput{Path: adventure.PathCave})
	if err != nil {
		return "", 0, 0, err
	}

	spawned, err := adventures.SpawnEncounter(ctx, &adventure.SpawnEncounterInput{Zone: selected.Zone})
	if err != nil {
		return "", 0, 0, err
	}

	started, err := combats.StartCombat(ctx, &combat.StartCombatInput{
		Hero:    created.Hero,
		Monster: spawned.Monster,
	})
	if err != nil {
		return "", 0, 0, err
	}

	session := started.Session
	for !session.Finished() {
		action := combat.ActionAttack
		if session.Hero.Health <= session.Monster.AttackPower && session.Monster.Health > session.Hero.AttackPower {
			action = combat.ActionDefend
		}

		turn, err := combats.ExecuteTurn(ctx, &combat.ExecuteTurnInput{
			SessionID: session.ID,
			Action:    action,
		})
		if err != nil {
			return "", 0, 0, err
		}
		session = turn.Session
	}

	return session.Outcome, session.Round, session.Hero.Health, nil
}
