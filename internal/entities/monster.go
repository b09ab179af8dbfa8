package entities

// MonsterTemplate is a catalog entry: the base stats a monster spawns with
type MonsterTemplate struct {
	Name        string
	Health      int
	AttackPower int
}
