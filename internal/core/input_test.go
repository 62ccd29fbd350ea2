package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInputFrameKeepsArrivalOrder(t *testing.T) {
	f := NewInputFrame(ActionPause, ActionNone, ActionJump)
	f.Set(ActionJump)

	assert.Equal(t, []Action{ActionPause, ActionJump, ActionJump}, f.Actions())
	assert.True(t, f.Has(ActionJump))
	assert.False(t, f.Has(ActionStart))

	f.Clear()
	assert.Empty(t, f.Actions())
	assert.False(t, f.Has(ActionPause))
}

func TestInputFrameActionsIsACopy(t *testing.T) {
	f := NewInputFrame(ActionStart)
	got := f.Actions()
	got[0] = ActionQuit

	assert.True(t, f.Has(ActionStart))
}

func TestActionString(t *testing.T) {
	assert.Equal(t, "Jump", ActionJump.String())
	assert.Equal(t, "Start", ActionStart.String())
	assert.Equal(t, "Unknown", Action(99).String())
}

func TestParseColor(t *testing.T) {
	assert.Equal(t, ColorPink, ParseColor("pink"))
	assert.Equal(t, ColorBlue, ParseColor("blue"))
	assert.Equal(t, ColorDefault, ParseColor("chartreuse"))
}
