package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/caverns/internal/config"
	"github.com/KirkDiggler/caverns/internal/errors"
	"github.com/KirkDiggler/caverns/internal/repositories/catalog"
)

var bestiaryCmd = &cobra.Command{
	Use:   "bestiary",
	Short: "List the monsters in the configured catalog",
	Long:  `List every monster the configured catalog can spawn, with its stats. Set CAVERNS_CATALOG to switch catalogs.`,
	RunE:  runBestiary,
}

func runBestiary(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	templates, err := catalog.ByName(cfg.Catalog)
	if err != nil {
		return err
	}

	repo, err := catalog.NewInMemory(templates)
	if err != nil {
		return errors.Wrap(err, "failed to build the monster catalog")
	}

	listed, err := repo.List(cmd.Context(), &catalog.ListInput{})
	if err != nil {
		return err
	}

	fmt.Printf("Catalog: %s\n\n", cfg.Catalog)
	fmt.Printf("%-12s %8s %8s\n", "NAME", "HEALTH", "ATTACK")
	for _, template := range listed.Templates {
		fmt.Printf("%-12s %8d %8d\n", template.Name, template.Health, template.AttackPower)
	}

	return nil
}
