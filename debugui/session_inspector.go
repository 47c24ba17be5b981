package debugui

import (
	"fmt"
	"strings"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/blockfall/game"
)

// Field is one labelled value shown by the inspector.
type Field struct {
	Name  string
	Value string
}

// Summarize lists the session state shown in the inspector.
func Summarize(s *game.Session) []Field {
	if s == nil {
		return nil
	}
	stats := s.Stats()
	cur := s.Current()
	return []Field{
		{"Score", fmt.Sprintf("%d", s.Score())},
		{"High Score", fmt.Sprintf("%d", s.HighScore())},
		{"Level", fmt.Sprintf("%d", s.Level())},
		{"Lines", fmt.Sprintf("%d", s.Board().Lines())},
		{"Fall Interval", fmt.Sprintf("%.3f s", s.FallInterval())},
		{"Elapsed", game.FormatElapsed(s.Elapsed())},
		{"Current", fmt.Sprintf("%s r%d @ %d,%d", cur.Kind(), cur.Rotation(), cur.Anchor().X, cur.Anchor().Y)},
		{"Next", s.Next().Kind().String()},
		{"Pieces", fmt.Sprintf("%d", stats.Pieces)},
		{"Locks", fmt.Sprintf("%d", stats.Locks)},
		{"State", sessionState(s)},
	}
}

func sessionState(s *game.Session) string {
	switch {
	case s.Quit():
		return "quit"
	case s.GameOver():
		return "game over"
	case s.Paused():
		return "paused"
	default:
		return "running"
	}
}

// BoardText renders the locked grid as rows of '.' and kind letters.
func BoardText(s *game.Session) string {
	var b strings.Builder
	for _, row := range s.Board().Cells() {
		for _, v := range row {
			if v == game.Empty {
				b.WriteByte('.')
				continue
			}
			b.WriteString(game.Kind(v).String())
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// SessionInspector shows live session state and lets the developer issue
// commands. It implements frame.InputSource for the commands it collects.
type SessionInspector struct {
	pending []game.Command
}

func NewSessionInspector() *SessionInspector {
	return &SessionInspector{}
}

func (si *SessionInspector) Poll() []game.Command {
	out := si.pending
	si.pending = nil
	return out
}

func (si *SessionInspector) Render(s *game.Session) {
	imgui.SetNextWindowPosV(imgui.NewVec2(650, 300), imgui.CondOnce, imgui.NewVec2(0, 0))
	if !imgui.BeginV("Session Inspector", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	if s == nil {
		imgui.Text("No session")
		imgui.End()
		return
	}

	const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
	if imgui.BeginTableV("SessionFields", 2, tableFlags, imgui.NewVec2(0, 0), 0) {
		imgui.TableSetupColumn("Field")
		imgui.TableSetupColumn("Value")
		imgui.TableHeadersRow()
		for _, f := range Summarize(s) {
			imgui.TableNextRow()
			imgui.TableNextColumn()
			imgui.Text(f.Name)
			imgui.TableNextColumn()
			imgui.Text(f.Value)
		}
		imgui.EndTable()
	}

	if imgui.TreeNodeStr("Clears") {
		stats := s.Stats()
		for n := 1; n <= 4; n++ {
			imgui.BulletText(fmt.Sprintf("%d rows: %d", n, stats.LocksClearing(n)))
		}
		imgui.TreePop()
	}

	if imgui.TreeNodeStr("Board") {
		imgui.Text(BoardText(s))
		imgui.TreePop()
	}

	imgui.Separator()
	if imgui.Button("Pause") {
		si.pending = append(si.pending, game.CommandPauseToggle)
	}
	imgui.SameLine()
	if imgui.Button("Hard Drop") {
		si.pending = append(si.pending, game.CommandHardDropBegin)
	}
	imgui.SameLine()
	if imgui.Button("Quit") {
		si.pending = append(si.pending, game.CommandQuit)
	}

	imgui.End()
}
