package catalog

import (
	"sort"
	"strings"

	"github.com/KirkDiggler/caverns/internal/entities"
	"github.com/KirkDiggler/caverns/internal/errors"
)

// Built-in catalog names
const (
	CatalogClassic = "classic"
	CatalogElite   = "elite"
)

// builtins maps catalog names to their template tables
var builtins = map[string]func() []entities.MonsterTemplate{
	CatalogClassic: Classic,
	CatalogElite:   Elite,
}

// Classic returns the standard monster table. All four share the same
// stats; differentiation is purely flavor.
func Classic() []entities.MonsterTemplate {
	return []entities.MonsterTemplate{
		{Name: "Goblin", Health: 60, AttackPower: 12},
		{Name: "Ogre", Health: 60, AttackPower: 12},
		{Name: "Orc", Health: 60, AttackPower: 12},
		{Name: "Slime", Health: 60, AttackPower: 12},
	}
}

// Elite returns a harder table with per-monster stats
func Elite() []entities.MonsterTemplate {
	return []entities.MonsterTemplate{
		{Name: "Goblin", Health: 50, AttackPower: 10},
		{Name: "Ogre", Health: 90, AttackPower: 18},
		{Name: "Orc", Health: 70, AttackPower: 14},
		{Name: "Slime", Health: 40, AttackPower: 8},
	}
}

// ByName returns the built-in catalog with the given name
func ByName(name string) ([]entities.MonsterTemplate, error) {
	builtin, exists := builtins[name]
	if !exists {
		return nil, errors.InvalidArgumentf("unknown catalog %q, valid catalogs: %s",
			name, strings.Join(Names(), ", "))
	}
	return builtin(), nil
}

// Names lists the built-in catalog names in order
func Names() []string {
	names := make([]string, 0, len(builtins))
	for name := range builtins {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
