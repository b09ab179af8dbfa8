package entities

// Zone is a region the hero can travel to. Hostile zones spawn a monster
// drawn from MonsterNames, with stats scaled by DangerLevel.
type Zone struct {
	ID           string
	Name         string
	Description  string
	DangerLevel  int
	MonsterNames []string
}

// Hostile reports whether entering the zone triggers combat
func (z *Zone) Hostile() bool {
	return z.DangerLevel > 0
}
