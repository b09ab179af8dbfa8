package entities

// Outcome is the terminal state of a combat session, or ongoing
type Outcome string

// Combat outcomes
const (
	OutcomeOngoing Outcome = "ongoing"
	OutcomeVictory Outcome = "victory"
	OutcomeDefeat  Outcome = "defeat"
)

// CombatSession pairs a hero and a monster for the duration of one fight.
// HeroDefending is single-use: a defend action sets it, the next monster
// counter consumes it, and it always resets after being consulted.
type CombatSession struct {
	ID            string
	Hero          *Character
	Monster       *Character
	Round         int
	HeroDefending bool
	Outcome       Outcome
	CreatedAt     int64
	UpdatedAt     int64
}

// Finished reports whether the session reached a terminal outcome
func (s *CombatSession) Finished() bool {
	return s.Outcome != OutcomeOngoing
}
