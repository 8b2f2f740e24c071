package debugui

import (
	"fmt"
	"strings"
	"time"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/blockfall/tetris"
)

// GameInspector shows the live state of a game and lets a developer pause
// it, single-step it or restart it.
type GameInspector struct {
	Game *tetris.Game

	// Paused points at the frontend's pause flag. The pause controls are
	// hidden when it is nil.
	Paused *bool
	// StepRequested is set when the Step button is pressed and cleared by
	// the frontend once it has advanced the game.
	StepRequested bool
	// OnRestart replaces the default restart, which reuses the current seed.
	OnRestart func()

	fall IntervalField
}

func NewGameInspector(game *tetris.Game) *GameInspector {
	gi := &GameInspector{Game: game}
	gi.fall.Sync(game.FallInterval())
	return gi
}

// IntervalField holds an editable millisecond value that follows a duration
// owned elsewhere, such as the fall interval a level up changes.
type IntervalField struct {
	Millis int32

	editing bool
}

// Sync loads current unless the field is being edited.
func (f *IntervalField) Sync(current time.Duration) {
	if !f.editing {
		f.Millis = int32(current / time.Millisecond)
	}
}

// SetEditing records whether the widget is active this frame.
func (f *IntervalField) SetEditing(active bool) {
	f.editing = active
}

// Interval returns the edited value, clamped to at least one millisecond.
func (f *IntervalField) Interval() time.Duration {
	if f.Millis < 1 {
		f.Millis = 1
	}
	return time.Duration(f.Millis) * time.Millisecond
}

func (gi *GameInspector) Render() {
	game := gi.Game

	imgui.SetNextWindowPosV(imgui.NewVec2(10, 10), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(300, 310), imgui.CondOnce)

	if !imgui.BeginV("Game Inspector", nil, 0) {
		imgui.End()
		return
	}

	if game.Phase() == tetris.GameOver {
		imgui.TextColored(imgui.NewVec4(1.0, 0.3, 0.3, 1.0), "GAME OVER")
	} else if gi.Paused != nil && *gi.Paused {
		imgui.TextColored(imgui.NewVec4(1.0, 0.8, 0.0, 1.0), "PAUSED")
	}

	imgui.Text(fmt.Sprintf("Phase: %s", game.Phase()))
	if piece, ok := game.ActivePiece(); ok {
		imgui.Text(fmt.Sprintf("Piece: %s", piece))
	} else {
		imgui.Text("Piece: none")
	}
	imgui.Text(fmt.Sprintf("Seed: %d", game.Seed()))
	imgui.Text(fmt.Sprintf("Next: %s", kindList(game.Preview(5))))

	imgui.Separator()
	fall, lock := game.Timers()
	imgui.Text(fmt.Sprintf("Fall timer: %s / %s", fall, game.FallInterval()))
	imgui.ProgressBarV(float32(game.LockProgress()), imgui.NewVec2(-1, 0), fmt.Sprintf("lock %s", lock))

	gi.fall.Sync(game.FallInterval())
	imgui.SetNextItemWidth(150)
	changed := imgui.InputInt("fall ms", &gi.fall.Millis)
	gi.fall.SetEditing(imgui.IsItemActive())
	if changed {
		game.SetFallInterval(gi.fall.Interval())
	}

	imgui.Separator()
	if gi.Paused != nil {
		if *gi.Paused {
			if imgui.Button("Resume") {
				*gi.Paused = false
			}
			imgui.SameLine()
			if imgui.Button("Step") {
				gi.StepRequested = true
			}
		} else if imgui.Button("Pause") {
			*gi.Paused = true
		}
		imgui.SameLine()
	}
	if imgui.Button("Restart") {
		if gi.OnRestart != nil {
			gi.OnRestart()
		} else {
			game.Reset(game.Seed())
		}
	}

	gi.renderStats(game.Stats())

	imgui.End()
}

func (gi *GameInspector) renderStats(stats tetris.StatsSnapshot) {
	if !imgui.TreeNodeStr("Statistics") {
		return
	}

	imgui.Text(fmt.Sprintf("Locks: %d  Lines: %d", stats.Locks, stats.Lines))
	imgui.Text(fmt.Sprintf("Hard drop rows: %d", stats.HardDropRows))

	const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
	if imgui.BeginTableV("SpawnTable", 2, tableFlags, imgui.NewVec2(0, 0), 0) {
		imgui.TableSetupColumn("Kind")
		imgui.TableSetupColumn("Spawns")
		imgui.TableHeadersRow()

		for _, kind := range tetris.Kinds {
			imgui.TableNextRow()
			imgui.TableNextColumn()
			imgui.Text(kind.String())
			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%d", stats.Spawns[kind]))
		}

		imgui.EndTable()
	}

	for size := 1; size <= tetris.MaxClear; size++ {
		imgui.BulletText(fmt.Sprintf("%d-line clears: %d", size, stats.ClearsBySize[size]))
	}

	imgui.TreePop()
}

func kindList(kinds []tetris.Kind) string {
	names := make([]string, len(kinds))
	for i, k := range kinds {
		names[i] = k.String()
	}
	return strings.Join(names, " ")
}
