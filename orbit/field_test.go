package orbit

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/ZenXLab/cropxoninnovations-sub001/catalog"
	"github.com/ZenXLab/cropxoninnovations-sub001/parameter"
	"github.com/ZenXLab/cropxoninnovations-sub001/vmath"
)

func newField(t *testing.T, w, h float64, tune func(*Tuning)) *Field {
	t.Helper()
	tuning := DefaultTuning()
	if tune != nil {
		tune(&tuning)
	}
	f := New(catalog.Default(), tuning, nil)
	f.Resize(w, h)
	return f
}

func tickFrames(f *Field, n int) {
	for i := 0; i < n; i++ {
		f.Tick(parameter.FrameDuration)
	}
}

func TestTwelveEntitiesTrackRotatingSlots(t *testing.T) {
	f := newField(t, 400, 400, nil)
	require.Equal(t, 12, f.Len())
	require.True(t, f.Spinning())

	tickFrames(f, 1000)

	for i := 0; i < f.Len(); i++ {
		d := f.Position(i).Dist(f.SlotTarget(i))
		assert.Less(t, d, 2.0, "entity %s lags its slot by %f", f.Entity(i).ID, d)
	}
	assert.InDelta(t, 1000*parameter.AngularSpeed, f.Angle(), 1e-9)
}

func TestConvergesToHeldTarget(t *testing.T) {
	f := newField(t, 200, 200, nil)
	f.ToggleSpin()
	require.False(t, f.Spinning())

	n := f.Node(3)
	target := n.Target
	n.Pos = n.Pos.Add(vmath.V2(30, -20))

	const window = 30
	prevPeak := math.Inf(1)
	for w := 0; w < 15; w++ {
		peak := 0.0
		for i := 0; i < window; i++ {
			f.Tick(parameter.FrameDuration)
			peak = math.Max(peak, f.Position(3).Dist(target))
		}
		if peak > 1e-6 {
			require.Less(t, peak, prevPeak, "window %d", w)
		}
		prevPeak = peak
	}
	assert.Less(t, f.Position(3).Dist(target), 1e-6)
	assert.Less(t, f.Node(3).Vel.Len(), 1e-6)
}

func TestRotationIsPeriodic(t *testing.T) {
	const period = 600
	f := newField(t, 100, 100, func(tu *Tuning) {
		tu.AngularSpeed = 2 * math.Pi / period
	})

	start := make([]vmath.Vec2, f.Len())
	for i := range start {
		start[i] = f.Position(i)
	}

	tickFrames(f, period)
	first := make([]vmath.Vec2, f.Len())
	for i := range first {
		first[i] = f.Position(i)
		// Within the steady-state damping lag of the starting slot
		assert.Less(t, first[i].Dist(start[i]), 2.0)
	}

	tickFrames(f, period)
	for i := range first {
		assert.Less(t, f.Position(i).Dist(first[i]), 1e-6, "entity %d drifted between periods", i)
	}
}

func TestDampingTimeScaleIndependentOfTickSplit(t *testing.T) {
	a := newField(t, 200, 200, nil)
	b := newField(t, 200, 200, nil)
	a.ToggleSpin()
	b.ToggleSpin()
	a.Node(0).Pos = a.Node(0).Pos.Add(vmath.V2(10, 0))
	b.Node(0).Pos = b.Node(0).Pos.Add(vmath.V2(10, 0))

	tickFrames(a, 300)
	for i := 0; i < 600; i++ {
		b.Tick(parameter.FrameDuration / 2)
	}
	// Both settle onto the same held target
	assert.Less(t, a.Position(0).Dist(b.Position(0)), 1e-3)
}

func TestTickIgnoresNonPositiveDelta(t *testing.T) {
	f := newField(t, 200, 200, nil)
	f.Tick(0)
	f.Tick(-parameter.FrameDuration)
	assert.Equal(t, uint64(0), f.Frame())
	assert.Equal(t, 0.0, f.Angle())
}

func TestNonFiniteStateResetsToSlot(t *testing.T) {
	cases := []struct {
		name    string
		corrupt func(n *Node)
	}{
		{"nan position", func(n *Node) { n.Pos.X = math.NaN() }},
		{"inf velocity", func(n *Node) { n.Vel.Y = math.Inf(1) }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			core, logs := observer.New(zapcore.WarnLevel)
			f := New(catalog.Default(), DefaultTuning(), zap.New(core))
			f.Resize(300, 200)
			f.ToggleSpin()
			tickFrames(f, 5)

			const i = 3
			tc.corrupt(f.Node(i))
			f.Tick(parameter.FrameDuration)

			n := f.Node(i)
			assert.Equal(t, f.SlotTarget(i), n.Pos)
			assert.Equal(t, vmath.Vec2{}, n.Vel)
			for j := 0; j < f.Len(); j++ {
				assert.True(t, f.Position(j).Finite(), "node %d", j)
			}

			entries := logs.FilterMessage("non-finite node state reset").All()
			require.Len(t, entries, 1)
			assert.Equal(t, f.Entity(i).ID, entries[0].ContextMap()["entity"])
		})
	}
}

func TestResizeRelaysSlots(t *testing.T) {
	f := newField(t, 200, 100, nil)
	assert.InDelta(t, 50*parameter.OrbitFill, f.Radius(), 1e-12)
	assert.Equal(t, vmath.V2(100, 50), f.Center())

	f.Resize(300, 300)
	for i := 0; i < f.Len(); i++ {
		d := f.Position(i).Dist(f.Center())
		assert.InDelta(t, f.Radius(), d, 1e-9)
		assert.Equal(t, vmath.Vec2{}, f.Node(i).Vel)
	}
}

func TestSetCatalogKeepsFocusByID(t *testing.T) {
	f := newField(t, 200, 200, nil)
	f.Next()
	f.Next()
	f.Next()
	require.Equal(t, 2, f.Focused())
	focusedID := f.Entity(2).ID

	zero := 0
	cat := &catalog.Catalog{Entities: []catalog.Entity{
		{ID: "fresh", Name: "Fresh", Color: "#ffffff", Slot: &zero},
		*f.Entity(2),
	}}
	cat.Entities[1].Slot = nil
	require.NoError(t, cat.Normalize(parameter.DefaultNodeRadius))

	f.SetCatalog(cat)
	require.Equal(t, 2, f.Len())
	require.NotEqual(t, None, f.Focused())
	assert.Equal(t, focusedID, f.Entity(f.Focused()).ID)
}
