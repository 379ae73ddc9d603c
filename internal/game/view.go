package game

import (
	"github.com/google/uuid"

	"dungeon-crawler/internal/entity"
	"dungeon-crawler/internal/gamemap"
	"dungeon-crawler/internal/geom"
)

// EntityKind tells the presentation layer how to draw an entity.
type EntityKind uint8

const (
	KindMonster EntityKind = iota
	KindHero
	KindItem
	KindWeapon
	KindObject
)

// EntityView is a read-only row of the snapshot.
type EntityView struct {
	ID    uuid.UUID
	Kind  EntityKind
	Name  string
	Glyph string
	Pos   geom.Coord
	HP    int
	MaxHP int
}

// HeroView is the hero's stat block.
type HeroView struct {
	Name       string
	HP, MaxHP  int
	Strength   int
	Level      int
	XP         int
	Threshold  int
	Gold       int
	Stomach    int
	MaxStomach int
	Weapon     string
	Inventory  []string
	Effects    []string
}

// View is a copy of everything the presentation layer draws. Mutating it
// has no effect on the session.
type View struct {
	Floor, Floors int
	Round         int
	State         State
	Size          int
	Tiles         [][]gamemap.Tile
	Entities      []EntityView
	Hero          HeroView
	Offers        []string
}

// InBounds reports whether c lies on the snapshot's grid.
func (v View) InBounds(c geom.Coord) bool {
	return c.X >= 0 && c.Y >= 0 && c.Y < len(v.Tiles) && c.X < len(v.Tiles[c.Y])
}

// View takes a snapshot of the current floor and the hero.
func (s *Session) View() View {
	m := s.Map()
	v := View{
		Floor:  s.current,
		Floors: len(s.floors),
		Round:  s.round,
		State:  s.state,
		Size:   m.Size,
		Tiles:  make([][]gamemap.Tile, m.Size),
		Hero:   s.heroView(),
	}
	for y := range m.Size {
		v.Tiles[y] = append([]gamemap.Tile(nil), m.Tiles[y]...)
	}
	for _, e := range m.Entities() {
		pos, _ := m.Pos(e)
		row := EntityView{ID: e.Ident().ID, Name: e.Ident().Name, Glyph: e.Glyph(), Pos: pos}
		switch o := e.(type) {
		case *entity.Creature:
			row.Kind = KindMonster
			if o.IsHero() {
				row.Kind = KindHero
			}
			row.HP, row.MaxHP = o.HP, o.MaxHP
		case *entity.Equipment:
			row.Kind = KindItem
			if o.IsWeapon() {
				row.Kind = KindWeapon
			}
		case *entity.RoomObject:
			row.Kind = KindObject
		}
		v.Entities = append(v.Entities, row)
	}
	for _, o := range s.offers {
		v.Offers = append(v.Offers, o.Name)
	}
	return v
}

func (s *Session) heroView() HeroView {
	c := s.hero
	h := c.Hero
	hv := HeroView{
		Name:       c.Name,
		HP:         c.HP,
		MaxHP:      c.MaxHP,
		Strength:   c.Strength,
		Level:      h.Level,
		XP:         h.XP,
		Threshold:  h.Threshold(),
		Gold:       h.Gold,
		Stomach:    h.Stomach,
		MaxStomach: h.MaxStomach,
	}
	if c.Weapon != nil {
		hv.Weapon = c.Weapon.Name
	}
	for _, e := range c.Items.Items() {
		hv.Inventory = append(hv.Inventory, e.Name)
	}
	for _, e := range s.effects.For(c) {
		hv.Effects = append(hv.Effects, e.Kind.String())
	}
	return hv
}
