// Package entity defines everything that can occupy a map cell: creatures
// (the hero included), equipment (weapons included) and room objects such as
// stairs and the merchant.
package entity

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// ErrWrongElementType is returned when an operation is given the wrong kind
// of entity, e.g. equipping something that is not a weapon.
var ErrWrongElementType = errors.New("wrong element type")

// Notifier receives player-facing messages.
type Notifier interface {
	Notify(msg string)
}

// Base carries the fields every entity shares.
type Base struct {
	ID     uuid.UUID
	Name   string
	Abbrev string
}

func newBase(name, abbrev string) Base {
	return Base{ID: uuid.New(), Name: name, Abbrev: abbrev}
}

// Glyph returns the single-cell symbol for the entity. An empty Abbrev falls
// back to the first letter of the name.
func (b *Base) Glyph() string {
	if b.Abbrev != "" {
		return b.Abbrev
	}
	for _, r := range b.Name {
		return string(r)
	}
	return "?"
}

// Ident exposes the shared fields.
func (b *Base) Ident() *Base { return b }

func (b *Base) sealed() {}

// Entity is implemented by *Creature, *Equipment and *RoomObject only.
type Entity interface {
	Glyph() string
	Ident() *Base
	sealed()
}

// Describe returns the short description shown in messages:
// "<name>(hp)" for creatures and "<name>" for everything else.
func Describe(e Entity) string {
	switch v := e.(type) {
	case *Creature:
		hp := v.HP
		if hp < 0 {
			hp = 0
		}
		return fmt.Sprintf("<%s>(%d)", v.Name, hp)
	default:
		return "<" + e.Ident().Name + ">"
	}
}
