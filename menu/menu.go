// Package menu is the title screen: a two-item selection with a flickering
// cursor.
package menu

import "github.com/plus3/blockfall/game"

type Item int

const (
	ItemStart Item = iota
	ItemExit
	numItems
)

func (i Item) String() string {
	switch i {
	case ItemStart:
		return "START GAME"
	case ItemExit:
		return "EXIT"
	default:
		return "?"
	}
}

// Key is a menu input.
type Key int

const (
	KeyUp Key = iota
	KeyDown
	KeyEnter
)

// Action is what the front end should do after a key press.
type Action int

const (
	ActionNone Action = iota
	ActionStart
	ActionExit
)

// Menu tracks the selected item. It is driven one frame at a time by the
// front end.
type Menu struct {
	selected Item
	cursor   Flicker
	cues     []game.Cue
}

func New() *Menu {
	return &Menu{cursor: NewFlicker(DefaultFlickerTimeout)}
}

// Items returns the menu labels in display order.
func Items() []Item {
	return []Item{ItemStart, ItemExit}
}

// Press handles one key and reports the resulting action. Up and Down both
// move the selection and wrap around.
func (m *Menu) Press(k Key) Action {
	switch k {
	case KeyUp:
		m.selected = (m.selected + numItems - 1) % numItems
		m.cues = append(m.cues, game.CueMenuMove)
	case KeyDown:
		m.selected = (m.selected + 1) % numItems
		m.cues = append(m.cues, game.CueMenuMove)
	case KeyEnter:
		m.cues = append(m.cues, game.CueMenuChoose)
		if m.selected == ItemExit {
			return ActionExit
		}
		return ActionStart
	}
	return ActionNone
}

// Frame advances the cursor animation by one frame and reports whether the
// cursor is drawn this frame.
func (m *Menu) Frame() bool {
	return m.cursor.Next()
}

func (m *Menu) Selected() Item { return m.selected }

// DrainCues returns the cues emitted since the last call.
func (m *Menu) DrainCues() []game.Cue {
	out := m.cues
	m.cues = nil
	return out
}
