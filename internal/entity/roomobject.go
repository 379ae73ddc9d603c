package entity

// RoomKind identifies what a room object does when the hero bumps into it.
type RoomKind uint8

const (
	RoomUpstairs RoomKind = iota + 1
	RoomDownstairs
	RoomMerchant
)

func (k RoomKind) String() string {
	switch k {
	case RoomUpstairs:
		return "upstairs"
	case RoomDownstairs:
		return "downstairs"
	case RoomMerchant:
		return "merchant"
	}
	return "unknown"
}

// RoomObject is a fixed feature of a room. It is used, never picked up.
type RoomObject struct {
	Base
	Kind RoomKind
}

func NewRoomObject(name, abbrev string, kind RoomKind) *RoomObject {
	return &RoomObject{Base: newBase(name, abbrev), Kind: kind}
}
