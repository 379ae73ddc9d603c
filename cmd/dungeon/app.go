package main

import (
	"cmp"
	"fmt"
	"maps"
	"slices"
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"dungeon-crawler/internal/config"
	"dungeon-crawler/internal/game"
	"dungeon-crawler/internal/render"
)

// maxMessages bounds the on-screen message history.
const maxMessages = 50

const helpLine = "hjklyubn/arrows move  . wait  a use  e equip  r unequip  t throw  d drop  p buy  x describe  q quit"

// app is the terminal front end: it owns the screen, polls keys and feeds
// intents to one session at a time.
type app struct {
	screen   tcell.Screen
	renderer *render.Renderer
	cfg      config.GameConfig
	log      *zap.Logger
	keys     keyReader
	messages []string
}

func newApp(screen tcell.Screen, cfg config.GameConfig, log *zap.Logger) *app {
	return &app{
		screen:   screen,
		renderer: render.NewRenderer(screen),
		cfg:      cfg,
		log:      log,
	}
}

// run plays sessions until the player quits.
func (a *app) run() error {
	for {
		s, err := game.New(a.cfg, game.WithLogger(a.log))
		if err != nil {
			return fmt.Errorf("new session: %w", err)
		}
		a.messages = nil
		a.keys = keyReader{}
		a.addMessage(helpLine)
		if quit := a.play(s); quit {
			a.log.Info("player quit", zap.Stringer("session", s.ID), zap.Int("round", s.Round()))
			return nil
		}

		runLog := s.RunLog()
		if err := game.SaveRunLog(runLog); err != nil {
			a.log.Error("saving run log", zap.Error(err))
		}
		if !a.showEndScreen(runLog) {
			return nil
		}
		a.cfg.Seed = time.Now().UnixNano()
	}
}

// play runs one session to its end. It reports whether the player quit.
func (a *app) play(s *game.Session) bool {
	for !s.Over() {
		a.drain(s)
		a.renderer.DrawFrame(s.View(), a.messages)

		switch ev := a.screen.PollEvent().(type) {
		case nil:
			return true
		case *tcell.EventResize:
			a.screen.Sync()
			a.renderer.Resize()
		case *tcell.EventKey:
			cmd := a.keys.read(ev)
			if cmd.quit {
				return true
			}
			if cmd.prompt != "" {
				a.addMessage(cmd.prompt)
			}
			if cmd.ready {
				s.HandleIntent(cmd.intent)
			}
		}
	}
	a.drain(s)
	return false
}

func (a *app) drain(s *game.Session) {
	for _, msg := range s.ReadMessages() {
		a.addMessage(msg)
	}
}

func (a *app) addMessage(msg string) {
	a.messages = append(a.messages, msg)
	if len(a.messages) > maxMessages {
		a.messages = a.messages[len(a.messages)-maxMessages:]
	}
}

type killEntry struct {
	name  string
	count int
}

// killBreakdown sorts kills by count, most first, then by name.
func killBreakdown(kills map[string]int) ([]killEntry, int) {
	entries := make([]killEntry, 0, len(kills))
	total := 0
	for _, name := range slices.Sorted(maps.Keys(kills)) {
		entries = append(entries, killEntry{name, kills[name]})
		total += kills[name]
	}
	slices.SortStableFunc(entries, func(a, b killEntry) int { return cmp.Compare(b.count, a.count) })
	return entries, total
}

// showEndScreen renders the run summary and returns true if the player
// wants to try again, false to quit.
func (a *app) showEndScreen(log game.RunLog) bool {
	kills, totalKills := killBreakdown(log.EnemiesKilled)
	totalItems := 0
	for _, c := range log.ItemsUsed {
		totalItems += c
	}

	white := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	gold := tcell.StyleDefault.Foreground(tcell.ColorYellow)
	gray := tcell.StyleDefault.Foreground(tcell.ColorGray)
	dim := tcell.StyleDefault.Foreground(tcell.ColorLightYellow)
	green := tcell.StyleDefault.Foreground(tcell.ColorGreen)
	red := tcell.StyleDefault.Foreground(tcell.ColorRed)

	for {
		a.screen.Clear()
		sw, _ := a.screen.Size()
		text := a.renderer.DrawText

		sep := func(y int) {
			for x := 0; x < sw; x++ {
				a.screen.SetContent(x, y, '─', nil, gray)
			}
		}
		label := func(y int, l, v string) {
			text(2, y, l, dim)
			text(22, y, v, white)
		}

		y := 1
		sep(y)
		y += 2

		if log.Victory {
			text(2, y, "THE DUNGEON IS YOURS", gold)
			text(sw-len("[VICTORY]")-1, y, "[VICTORY]", green)
		} else {
			text(2, y, "THE DUNGEON CLAIMS YOU", gold)
			text(sw-len("[DEFEAT]")-1, y, "[DEFEAT]", red)
		}
		y += 2

		label(y, "Floor Reached:", fmt.Sprintf("%d", log.FloorsReached))
		y++
		label(y, "Level:", fmt.Sprintf("%d", log.Level))
		y++
		label(y, "Gold:", fmt.Sprintf("%d", log.Gold))
		y++
		label(y, "Turns Survived:", fmt.Sprintf("%d", log.TurnsPlayed))
		y += 2

		label(y, "Enemies Slain:", fmt.Sprintf("%d", totalKills))
		y++
		if len(kills) > 0 {
			parts := make([]string, len(kills))
			for i, e := range kills {
				parts[i] = fmt.Sprintf("%s×%d", e.name, e.count)
			}
			text(4, y, strings.Join(parts, "  "), dim)
			y++
		}
		y++

		label(y, "Items Used:", fmt.Sprintf("%d", totalItems))
		y++
		label(y, "Damage Dealt:", fmt.Sprintf("%d", log.DamageDealt))
		y++
		label(y, "Damage Taken:", fmt.Sprintf("%d", log.DamageTaken))
		y += 2

		if !log.Victory && log.CauseOfDeath != "" {
			label(y, "Killed By:", log.CauseOfDeath)
		}
		y += 2

		sep(y)
		y += 2
		text(2, y, "[R] Try Again", green)
		text(18, y, "[Q] Quit", red)

		a.screen.Show()

		switch ev := a.screen.PollEvent().(type) {
		case nil:
			return false
		case *tcell.EventResize:
			a.screen.Sync()
			a.renderer.Resize()
		case *tcell.EventKey:
			switch {
			case ev.Key() == tcell.KeyEscape, ev.Rune() == 'q', ev.Rune() == 'Q':
				return false
			case ev.Rune() == 'r', ev.Rune() == 'R':
				return true
			}
		}
	}
}
