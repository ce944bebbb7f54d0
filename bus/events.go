package bus

// CombatantEnteredEvent is published when a combatant takes the field.
type CombatantEnteredEvent struct {
	BattlerID int
	Slot      int
}

// TurnStartEvent is published before any action resolves in a turn.
type TurnStartEvent struct {
	TurnNumber int
}

// TurnEndEvent is published after end-of-turn effects resolve.
type TurnEndEvent struct {
	TurnNumber int
}

// DamageDealtEvent is published whenever a move reduces a combatant's HP.
type DamageDealtEvent struct {
	AttackerBattlerID int
	DefenderBattlerID int
	Amount            int
}

// FaintEvent is published the instant a combatant's HP reaches 0.
type FaintEvent struct {
	BattlerID int
	Slot      int
}
