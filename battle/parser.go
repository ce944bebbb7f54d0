package battle

import (
	"strings"

	"github.com/FrostyKingzly/PokebotRANKED/data"
)

// ParseCommand maps free text to an action descriptor using activeCombatant's
// move list. It returns nil when the text doesn't resolve to a switch intent
// or a known move.
//
// A switch intent is signaled by returning an Action with Kind ActionSwitch
// and PartySlot -1: the caller is expected to resolve the
// target slot (the text alone doesn't name one).
func ParseCommand(text string, battlerID int, activeCombatant *Combatant, moves data.MovesDB) *Action {
	lower := strings.ToLower(text)

	if strings.Contains(lower, "switch") || strings.Contains(lower, "swap") || strings.Contains(lower, "go ") {
		return &Action{BattlerID: battlerID, Kind: ActionSwitch, PartySlot: -1}
	}

	for _, slot := range activeCombatant.Moves {
		if strings.Contains(lower, strings.ToLower(slot.MoveID)) {
			return &Action{BattlerID: battlerID, Kind: ActionMove, MoveID: slot.MoveID}
		}
		if move, ok := moves.GetMove(slot.MoveID); ok && strings.Contains(lower, strings.ToLower(move.Name)) {
			return &Action{BattlerID: battlerID, Kind: ActionMove, MoveID: slot.MoveID}
		}
	}

	return nil
}
