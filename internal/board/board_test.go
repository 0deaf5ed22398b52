package board

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPoint_PenUp(t *testing.T) {
	assert.True(t, PenUp.IsPenUp())
	assert.False(t, Pt(0, 0).IsPenUp())
	assert.False(t, Point{}.IsPenUp(), "zero value is the origin sample")
	assert.Equal(t, "up", PenUp.String())
	assert.Equal(t, "(3,4)", Pt(3, 4).String())
}

func TestSquaredDistance(t *testing.T) {
	tests := []struct {
		name string
		p, q Point
		want int
	}{
		{"same point", Pt(7, 7), Pt(7, 7), 0},
		{"3-4-5", Pt(0, 0), Pt(3, 4), 25},
		{"negative coords", Pt(-2, -2), Pt(1, 2), 25},
		{"sentinel left", PenUp, Pt(100, 100), 0},
		{"sentinel right", Pt(100, 100), PenUp, 0},
		{"both sentinels", PenUp, PenUp, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, SquaredDistance(tt.p, tt.q))
		})
	}
}

func TestGrid_Dimensions(t *testing.T) {
	g := newGrid(1280, 720, 20)
	require.Equal(t, 65, g.cols)
	require.Equal(t, 37, g.rows)

	g = newGrid(1290, 710, 20)
	require.Equal(t, 66, g.cols, "ceil(1290/20)+1")
	require.Equal(t, 37, g.rows, "ceil(710/20)+1")
}

func TestAppendSample_IndexesExpectedCell(t *testing.T) {
	b := New()
	samples := []Point{Pt(0, 0), Pt(19, 19), Pt(20, 20), Pt(639, 359), Pt(1280, 720), Pt(1279, 0)}
	for _, p := range samples {
		require.NoError(t, b.AppendSample(p))
	}
	for i, p := range samples {
		c := cell{p.X / DefaultGridSize, p.Y / DefaultGridSize}
		require.Contains(t, b.grid.query(c), i, "sample %v should be in cell %v", p, c)
	}
	require.Equal(t, len(samples), b.grid.occupied())
}

func TestAppendSample_OutOfBoundsKeptButNotIndexed(t *testing.T) {
	b := New()
	require.NoError(t, b.AppendSample(Pt(-1, 5)))
	require.NoError(t, b.AppendSample(Pt(5, -1)))
	require.NoError(t, b.AppendSample(Pt(1281, 5)))
	require.NoError(t, b.AppendSample(Pt(5, 721)))
	require.Equal(t, 4, b.Len())
	require.Zero(t, b.grid.occupied())
}

func TestAppendPenUp_NotIndexed(t *testing.T) {
	b := New()
	require.NoError(t, b.AppendSample(Pt(10, 10)))
	require.NoError(t, b.AppendPenUp())
	require.Equal(t, 2, b.Len())
	require.True(t, b.At(1).IsPenUp())
	require.Equal(t, 1, b.grid.occupied())
}

func TestBeginStroke_BreaksOnlyAfterRealSample(t *testing.T) {
	b := New()
	require.NoError(t, b.BeginStroke())
	require.Zero(t, b.Len(), "nothing to separate on an empty board")

	fill(t, b, Pt(10, 10), Pt(20, 20))
	box, err := b.Bounds(LastTrace)
	require.NoError(t, err, "a finished stroke is still the last trace")
	require.Equal(t, 0, box.MinX)

	require.NoError(t, b.BeginStroke())
	require.NoError(t, b.BeginStroke())
	require.Equal(t, 3, b.Len(), "only one sentinel between strokes")
	require.True(t, b.At(2).IsPenUp())

	fill(t, b, Pt(30, 30))
	require.NoError(t, b.Erase(Pt(30, 30), 0))
	require.NoError(t, b.BeginStroke())
	require.Equal(t, 4, b.Len(), "an erased tail already ends the run")
}

func TestClear_EmptiesHistoryAndGrid(t *testing.T) {
	b := New()
	for i := 0; i < 50; i++ {
		require.NoError(t, b.AppendSample(Pt(i*20, i*10)))
	}
	require.NoError(t, b.AppendPenUp())
	require.NoError(t, b.Clear())

	require.Zero(t, b.Len())
	for i, c := range b.grid.cells {
		require.Empty(t, c, "cell %d", i)
	}

	require.NoError(t, b.AppendSample(Pt(5, 5)))
	require.Equal(t, 1, b.Len())
	require.Contains(t, b.grid.query(cell{0, 0}), 0)
}

func TestDisabled_AppendThenReenable(t *testing.T) {
	b := New()
	before := b.Len()

	b.SetEnabled(false)
	require.False(t, b.Enabled())
	require.ErrorIs(t, b.AppendSample(Pt(5, 5)), ErrDisabled)
	require.Equal(t, before, b.Len())

	b.SetEnabled(true)
	require.NoError(t, b.AppendSample(Pt(5, 5)))
	require.Equal(t, before+1, b.Len())
}

func TestDisabled_GatesEveryOperation(t *testing.T) {
	b := New()
	require.NoError(t, b.AppendSample(Pt(10, 10)))
	require.NoError(t, b.AppendSample(Pt(50, 50)))
	b.SetEnabled(false)

	require.ErrorIs(t, b.AppendPenUp(), ErrDisabled)
	require.ErrorIs(t, b.BeginStroke(), ErrDisabled)
	require.ErrorIs(t, b.Clear(), ErrDisabled)
	require.ErrorIs(t, b.Erase(Pt(10, 10), 15), ErrDisabled)
	require.ErrorIs(t, b.RenderAll(&recorder{}), ErrDisabled)
	require.ErrorIs(t, b.SetColor(Red), ErrDisabled)
	require.ErrorIs(t, b.SetBridge(BridgeLegacy), ErrDisabled)
	_, err := b.Export(AllTraces)
	require.ErrorIs(t, err, ErrDisabled)
	_, err = b.Bounds(AllTraces)
	require.ErrorIs(t, err, ErrDisabled)
	_, err = b.Strokes()
	require.ErrorIs(t, err, ErrDisabled)

	require.Equal(t, 2, b.Len())
	require.False(t, b.At(0).IsPenUp(), "erase must not run while disabled")
	require.Equal(t, Purple, b.Color())
}

func TestStrokes(t *testing.T) {
	b := New()
	for _, p := range []Point{PenUp, Pt(1, 1), Pt(5, 3), PenUp, PenUp, Pt(9, 9), Pt(2, 12), Pt(4, 4)} {
		if p.IsPenUp() {
			require.NoError(t, b.AppendPenUp())
		} else {
			require.NoError(t, b.AppendSample(p))
		}
	}
	strokes, err := b.Strokes()
	require.NoError(t, err)
	require.Len(t, strokes, 2)

	assert.Equal(t, Stroke{Start: 1, End: 3, Bounds: Rect{MinX: 1, MinY: 1, MaxX: 5, MaxY: 3}}, strokes[0])
	assert.Equal(t, Stroke{Start: 5, End: 8, Bounds: Rect{MinX: 2, MinY: 4, MaxX: 9, MaxY: 12}}, strokes[1])
	assert.Equal(t, 3, strokes[1].Len())
}

func TestOptions_IgnoreNonPositive(t *testing.T) {
	b := New(WithCanvas(0, 10), WithGridSize(-1), WithStrokeWidth(0), WithColor(Color(42)))
	w, h := b.Size()
	assert.Equal(t, DefaultWidth, w)
	assert.Equal(t, DefaultHeight, h)
	assert.Equal(t, DefaultGridSize, b.grid.size)
	assert.Equal(t, DefaultStrokeWidth, b.opts.strokeWidth)
	assert.Equal(t, Purple, b.Color())
}
