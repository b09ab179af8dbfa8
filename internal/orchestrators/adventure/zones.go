package adventure

import (
	"github.com/KirkDiggler/caverns/internal/entities"
)

// Path identifies one of the routes out of town
type Path string

// Paths the player can take
const (
	PathForest Path = "forest"
	PathCave   Path = "cave"
)

// pathOrder fixes the menu order of the paths
var pathOrder = []Path{PathForest, PathCave}

// Zone presets. The cave lists every catalog monster by name; both built-in
// catalogs carry the same four names, so the presets work with either.
var (
	forestZone = entities.Zone{
		ID:          "zone_forest",
		Name:        "Sunlit Forest",
		Description: "A quiet road winds between old oaks. Nothing here wants you dead.",
		DangerLevel: 0,
	}

	caveZone = entities.Zone{
		ID:           "zone_cave",
		Name:         "Dark Cave",
		Description:  "A jagged mouth in the hillside breathes cold air. Something moves inside.",
		DangerLevel:  1,
		MonsterNames: []string{"Goblin", "Ogre", "Orc", "Slime"},
	}
)

// zoneForPath maps a path to a copy of its zone preset
func zoneForPath(path Path) (*entities.Zone, bool) {
	switch path {
	case PathForest:
		return copyZone(&forestZone), true
	case PathCave:
		return copyZone(&caveZone), true
	}
	return nil, false
}

// copyZone clones a zone so callers can never mutate the presets
func copyZone(zone *entities.Zone) *entities.Zone {
	clone := *zone
	clone.MonsterNames = append([]string(nil), zone.MonsterNames...)
	return &clone
}
