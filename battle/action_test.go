package battle

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewSwitchAction_SetsKindAndSlot(t *testing.T) {
	a := NewSwitchAction(7, 2)

	assert.Equal(t, 7, a.BattlerID)
	assert.Equal(t, ActionSwitch, a.Kind)
	assert.Equal(t, 2, a.PartySlot)
}
