//go:build unit

package model

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAction_Informational(t *testing.T) {
	assert.False(t, Action{Kind: ActionAssign}.Informational())
	assert.False(t, Action{Kind: ActionReassign}.Informational())
	assert.True(t, Action{Kind: ActionFlagConflict}.Informational())
	assert.True(t, Action{Kind: ActionFlagBlocked}.Informational())
}

func TestActionResult_Success(t *testing.T) {
	assert.True(t, ActionResult{}.Success())
	assert.False(t, ActionResult{Err: errors.New("boom")}.Success())
}
