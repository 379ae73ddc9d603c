package main

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"dungeon-crawler/internal/config"
	"dungeon-crawler/internal/game"
	"dungeon-crawler/internal/geom"
)

func key(r rune) *tcell.EventKey { return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone) }

func TestKeyReaderMoves(t *testing.T) {
	tests := []struct {
		name string
		ev   *tcell.EventKey
		want geom.Coord
	}{
		{"k", key('k'), geom.Coord{X: 0, Y: -1}},
		{"n", key('n'), geom.Coord{X: 1, Y: 1}},
		{"y", key('y'), geom.Coord{X: -1, Y: -1}},
		{"left arrow", tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone), geom.Coord{X: -1, Y: 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var k keyReader
			cmd := k.read(tt.ev)
			require.True(t, cmd.ready)
			assert.Equal(t, game.Move(tt.want), cmd.intent)
		})
	}
}

func TestKeyReaderSlotVerbs(t *testing.T) {
	tests := []struct {
		verb rune
		want game.IntentKind
	}{
		{'a', game.IntentUse},
		{'e', game.IntentEquip},
		{'d', game.IntentDelete},
		{'p', game.IntentBuy},
	}
	for _, tt := range tests {
		t.Run(string(tt.verb), func(t *testing.T) {
			var k keyReader
			cmd := k.read(key(tt.verb))
			assert.False(t, cmd.ready)
			assert.NotEmpty(t, cmd.prompt)

			cmd = k.read(key('x'))
			assert.False(t, cmd.ready, "non-digit keeps asking")

			cmd = k.read(key('3'))
			require.True(t, cmd.ready)
			assert.Equal(t, game.Intent{Kind: tt.want, Item: 3}, cmd.intent)
			assert.Equal(t, stageIdle, k.stage)
		})
	}
}

func TestKeyReaderThrowReadsDirection(t *testing.T) {
	var k keyReader
	k.read(key('t'))
	cmd := k.read(key('1'))
	assert.False(t, cmd.ready)
	cmd = k.read(key('l'))
	require.True(t, cmd.ready)
	assert.Equal(t, game.Intent{Kind: game.IntentThrow, Item: 1, Dir: geom.Coord{X: 1, Y: 0}}, cmd.intent)
}

func TestKeyReaderEscapeCancels(t *testing.T) {
	var k keyReader
	k.read(key('t'))
	cmd := k.read(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone))
	assert.False(t, cmd.ready)
	assert.False(t, cmd.quit)
	assert.Equal(t, stageIdle, k.stage)

	cmd = k.read(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone))
	assert.True(t, cmd.quit)
}

func TestKeyReaderSuicideNeedsConfirmation(t *testing.T) {
	var k keyReader
	k.read(key('S'))
	cmd := k.read(key('n'))
	assert.False(t, cmd.ready)

	k.read(key('S'))
	cmd = k.read(key('y'))
	require.True(t, cmd.ready)
	assert.Equal(t, game.IntentSuicide, cmd.intent.Kind)
}

func TestKillBreakdown(t *testing.T) {
	kills, total := killBreakdown(map[string]int{"Goblin": 2, "Bat": 2, "Ork": 5})
	assert.Equal(t, 9, total)
	assert.Equal(t, []killEntry{{"Ork", 5}, {"Bat", 2}, {"Goblin", 2}}, kills)
}

func newTestApp(t *testing.T) (*app, tcell.SimulationScreen, *game.Session) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	screen.SetSize(100, 40)
	t.Cleanup(screen.Fini)

	cfg, err := config.Default()
	require.NoError(t, err)
	cfg.Game.Seed = 7
	s, err := game.New(cfg.Game)
	require.NoError(t, err)
	return newApp(screen, cfg.Game, zap.NewNop()), screen, s
}

func TestPlayQuits(t *testing.T) {
	a, screen, s := newTestApp(t)
	screen.InjectKey(tcell.KeyRune, '.', tcell.ModNone)
	screen.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)

	assert.True(t, a.play(s))
	assert.Equal(t, 1, s.Round())
	assert.False(t, s.Over())
}

func TestPlayEndsWithSession(t *testing.T) {
	a, screen, s := newTestApp(t)
	screen.InjectKey(tcell.KeyRune, 'S', tcell.ModNone)
	screen.InjectKey(tcell.KeyRune, 'y', tcell.ModNone)

	assert.False(t, a.play(s))
	assert.Equal(t, game.StateGameOver, s.State())
	assert.Contains(t, a.messages, "--- Game Over ---")
}

func TestAddMessageKeepsHistoryBounded(t *testing.T) {
	var a app
	for range maxMessages + 10 {
		a.addMessage("m")
	}
	assert.Len(t, a.messages, maxMessages)
}
