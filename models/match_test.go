package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatchLoserTeamID(t *testing.T) {
	home, away := 7, 9
	match := &Match{HomeTeamID: &home, AwayTeamID: &away}

	assert.Nil(t, match.LoserTeamID(), "no winner recorded yet")

	match.WinnerTeamID = &home
	assert.Equal(t, 9, *match.LoserTeamID())

	match.WinnerTeamID = &away
	assert.Equal(t, 7, *match.LoserTeamID())
}
