package combat

import (
	"github.com/KirkDiggler/caverns/internal/entities"
)

// Action is a combat choice the player can make on their turn
type Action string

// Player actions
const (
	ActionAttack Action = "attack"
	ActionDefend Action = "defend"
)

// TurnReport summarizes everything that happened in one resolved round
type TurnReport struct {
	Round         int
	Action        Action
	HeroDamage    int
	Countered     bool
	CounterDamage int
	CounterHalved bool
	Outcome       entities.Outcome
}

// StartCombatInput defines the request for opening a combat session
type StartCombatInput struct {
	Hero    *entities.Character
	Monster *entities.Character
}

// StartCombatOutput defines the response for opening a combat session.
// The session tracks its own copies of the participants; read combat
// state back from the session rather than the characters passed in.
type StartCombatOutput struct {
	Session *entities.CombatSession
}

// ExecuteTurnInput defines the request for resolving one combat round
type ExecuteTurnInput struct {
	SessionID string
	Action    Action
}

// ExecuteTurnOutput defines the response for resolving one combat round
type ExecuteTurnOutput struct {
	Session *entities.CombatSession
	Report  *TurnReport
}

// GetSessionInput defines the request for retrieving a combat session
type GetSessionInput struct {
	SessionID string
}

// GetSessionOutput defines the response for retrieving a combat session
type GetSessionOutput struct {
	Session *entities.CombatSession
}
