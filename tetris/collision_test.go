package tetris_test

import (
	"testing"

	"github.com/plus3/blockfall/tetris"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsLegal(t *testing.T) {
	g := gridFrom(10, 20,
		"....#.....",
	)

	tests := []struct {
		name  string
		piece tetris.Piece
		legal bool
	}{
		{"open board", tetris.NewPiece(tetris.O, tetris.Point{X: 0, Y: 5}), true},
		{"past left wall", tetris.NewPiece(tetris.T, tetris.Point{X: 0, Y: 5}), false},
		{"past right wall", tetris.NewPiece(tetris.O, tetris.Point{X: 9, Y: 5}), false},
		{"below floor", tetris.NewPiece(tetris.O, tetris.Point{X: 0, Y: -1}), false},
		{"above ceiling", tetris.NewPiece(tetris.O, tetris.Point{X: 0, Y: 19}), false},
		{"on filled cell", tetris.NewPiece(tetris.O, tetris.Point{X: 3, Y: 0}), false},
		{"resting on filled cell", tetris.NewPiece(tetris.O, tetris.Point{X: 3, Y: 1}), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.legal, tetris.IsLegal(tt.piece, g))
		})
	}
}

func TestResolverTranslate(t *testing.T) {
	g := tetris.NewGrid(10, 20)
	r := tetris.NewResolver(nil)
	p := tetris.NewPiece(tetris.O, tetris.Point{X: 8, Y: 0})

	_, ok := r.Translate(p, 1, 0, g)
	assert.False(t, ok)

	_, ok = r.Translate(p, 0, -1, g)
	assert.False(t, ok)

	moved, ok := r.Translate(p, -1, 0, g)
	require.True(t, ok)
	assert.Equal(t, 7, moved.Anchor.X)
}

func TestRotateWallKick(t *testing.T) {
	g := tetris.NewGrid(10, 20)
	// T pointing right against the left wall; turning back to spawn
	// orientation pokes through the wall.
	p := tetris.Piece{Kind: tetris.T, Rotation: tetris.R90, Anchor: tetris.Point{X: 0, Y: 10}}
	require.True(t, tetris.IsLegal(p, g))

	tests := []struct {
		kicks  tetris.KickPolicy
		ok     bool
		anchor tetris.Point
	}{
		{tetris.KicksNone, false, tetris.Point{X: 0, Y: 10}},
		{tetris.KicksSimple, true, tetris.Point{X: 1, Y: 10}},
		{tetris.KicksSRS, true, tetris.Point{X: 1, Y: 10}},
	}

	for _, tt := range tests {
		t.Run(tt.kicks.Name(), func(t *testing.T) {
			got, ok := tetris.NewResolver(tt.kicks).Rotate(p, tetris.CCW, g)

			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.anchor, got.Anchor)
			if ok {
				assert.Equal(t, tetris.R0, got.Rotation)
				assert.True(t, tetris.IsLegal(got, g))
			} else {
				assert.Equal(t, p, got)
			}
		})
	}
}

func TestRotateNaiveWhenUnobstructed(t *testing.T) {
	g := tetris.NewGrid(10, 20)
	for _, kicks := range []tetris.KickPolicy{tetris.KicksNone, tetris.KicksSimple, tetris.KicksSRS} {
		r := tetris.NewResolver(kicks)
		for _, k := range tetris.Kinds {
			start := tetris.NewPiece(k, tetris.Point{X: 4, Y: 10})
			p := start
			for i := 0; i < 4; i++ {
				var ok bool
				p, ok = r.Rotate(p, tetris.CW, g)
				require.True(t, ok, "%s %s step %d", kicks.Name(), k, i)
				assert.Equal(t, start.Anchor, p.Anchor)
			}
			assert.Equal(t, start, p)
		}
	}
}

func TestSRSFloorKickForI(t *testing.T) {
	g := tetris.NewGrid(10, 20)
	p := tetris.NewPiece(tetris.I, tetris.Point{X: 4, Y: 0})

	got, ok := tetris.NewResolver(tetris.KicksSRS).Rotate(p, tetris.CW, g)
	require.True(t, ok)
	assert.Equal(t, tetris.Piece{Kind: tetris.I, Rotation: tetris.R90, Anchor: tetris.Point{X: 5, Y: 2}}, got)

	_, ok = tetris.NewResolver(tetris.KicksNone).Rotate(p, tetris.CW, g)
	assert.False(t, ok)
}

func TestRotateBoxedIn(t *testing.T) {
	g := gridFrom(5, 5,
		"##.##",
		"##.##",
		"##.##",
		"##.##",
		"##.##",
	)
	p := tetris.Piece{Kind: tetris.I, Rotation: tetris.R270, Anchor: tetris.Point{X: 2, Y: 2}}
	require.True(t, tetris.IsLegal(p, g))

	for _, kicks := range []tetris.KickPolicy{tetris.KicksNone, tetris.KicksSimple, tetris.KicksSRS} {
		got, ok := tetris.NewResolver(kicks).Rotate(p, tetris.CW, g)
		assert.False(t, ok, kicks.Name())
		assert.Equal(t, p, got)
	}
}

func TestSRSKicksAreInverse(t *testing.T) {
	for _, k := range []tetris.Kind{tetris.I, tetris.T} {
		for _, r := range rotations {
			cw := tetris.KicksSRS.Kicks(k, r, r.Turn(tetris.CW))
			back := tetris.KicksSRS.Kicks(k, r.Turn(tetris.CW), r)
			require.Len(t, back, len(cw))
			for i := range cw {
				assert.Equal(t, tetris.Point{X: -cw[i].X, Y: -cw[i].Y}, back[i])
			}
		}
	}
}

func TestDropDistance(t *testing.T) {
	g := gridFrom(10, 20,
		"....#.....",
		"....#.....",
	)
	r := tetris.NewResolver(nil)

	assert.Equal(t, 18, r.DropDistance(tetris.NewPiece(tetris.O, tetris.Point{X: 0, Y: 18}), g))
	assert.Equal(t, 16, r.DropDistance(tetris.NewPiece(tetris.O, tetris.Point{X: 4, Y: 18}), g))
}

func TestParseKicks(t *testing.T) {
	for _, name := range []string{"none", "simple", "srs"} {
		k, err := tetris.ParseKicks(name)
		require.NoError(t, err)
		assert.Equal(t, name, k.Name())
	}

	_, err := tetris.ParseKicks("ars")
	assert.Error(t, err)
}
