package visitor

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ZenXLab/cropxoninnovations-sub001/vmath"
)

type ring struct {
	center vmath.Vec2
	points []vmath.Vec2
}

func newRing(n int, radius float64) *ring {
	r := &ring{center: vmath.V2(100, 100)}
	for i := 0; i < n; i++ {
		r.points = append(r.points, vmath.Polar(r.center, radius, vmath.SlotAngle(i, n)))
	}
	return r
}

func (r *ring) Len() int                  { return len(r.points) }
func (r *ring) Position(i int) vmath.Vec2 { return r.points[i] }
func (r *ring) Center() vmath.Vec2        { return r.center }

type visitEvent struct {
	index int
	ok    bool
}

var allowed = map[State][]State{
	StateWaiting: {StateWaiting, StateFlying},
	StateFlying:  {StateFlying, StateLanding},
	StateLanding: {StateResting},
	StateResting: {StateResting, StateFlying},
}

func TestWaitsBeforeFirstFlight(t *testing.T) {
	cfg := DefaultConfig()
	r := newRing(6, 40)
	a := New(cfg, 7, r.Center())

	for i := 0; i < int(cfg.WaitFrames)-1; i++ {
		a.Step(1, r)
		require.Equal(t, StateWaiting, a.State(), "frame %d", i)
		require.Less(t, a.Pos.Dist(r.Center()), cfg.DriftRadius*1.5)
	}
	a.Step(1, r)
	assert.Equal(t, StateFlying, a.State())
	assert.GreaterOrEqual(t, a.Target(), 0)
	assert.Less(t, a.Target(), r.Len())
}

func TestCycleInvariants(t *testing.T) {
	r := newRing(5, 40)
	a := New(DefaultConfig(), 12345, r.Center())

	var events []visitEvent
	a.OnVisit(func(i int, ok bool) { events = append(events, visitEvent{i, ok}) })

	prev := a.State()
	var rested []int
	restStart := false
	for frame := 0; frame < 30000; frame++ {
		a.Step(1, r)
		s := a.State()
		assert.Contains(t, allowed[prev], s, "illegal transition %s -> %s at frame %d", prev, s, frame)
		if prev != StateWaiting {
			require.NotEqual(t, StateWaiting, s, "waiting re-entered at frame %d", frame)
		}
		if s == StateResting && prev != StateResting {
			rested = append(rested, a.Target())
			restStart = true
		}
		if idx, ok := a.Visiting(); ok {
			assert.Equal(t, a.Target(), idx)
		}
		require.True(t, a.Pos.Finite())
		prev = s
	}
	require.True(t, restStart, "visitor never rested")
	require.Greater(t, len(rested), 10)

	for i := 1; i < len(rested); i++ {
		assert.NotEqual(t, rested[i-1], rested[i], "same target twice in a row at visit %d", i)
	}

	// Set/clear alternate, once per rest
	require.NotEmpty(t, events)
	for i, ev := range events {
		assert.Equal(t, i%2 == 0, ev.ok, "event %d", i)
		if !ev.ok {
			assert.Equal(t, events[i-1].index, ev.index)
		}
	}
	sets := (len(events) + 1) / 2
	assert.Equal(t, len(rested), sets)
	assert.Equal(t, uint64(len(rested)), a.Visits())
}

func TestLandingSnapsToHoverPoint(t *testing.T) {
	cfg := DefaultConfig()
	r := newRing(3, 30)
	a := New(cfg, 3, r.Center())

	for i := 0; i < 5000 && a.State() != StateLanding; i++ {
		a.Step(1, r)
	}
	require.Equal(t, StateLanding, a.State())

	a.Step(1, r)
	require.Equal(t, StateResting, a.State())
	hover := r.Position(a.Target()).Add(vmath.V2(0, -cfg.HoverOffset))
	assert.Less(t, a.Pos.Dist(hover), cfg.RestBobAmp+1e-9)
	assert.Equal(t, vmath.Vec2{}, a.Vel)
}

func TestSingleTargetRevisits(t *testing.T) {
	r := newRing(1, 30)
	a := New(DefaultConfig(), 9, r.Center())
	rests := 0
	prev := a.State()
	for i := 0; i < 5000; i++ {
		a.Step(1, r)
		if a.State() == StateResting && prev != StateResting {
			rests++
			assert.Equal(t, 0, a.Target())
		}
		prev = a.State()
	}
	assert.Greater(t, rests, 1)
}

func TestEmptyRingKeepsWaiting(t *testing.T) {
	r := newRing(0, 30)
	a := New(DefaultConfig(), 1, r.Center())
	for i := 0; i < 1000; i++ {
		a.Step(1, r)
	}
	assert.Equal(t, StateWaiting, a.State())
	assert.Equal(t, -1, a.Target())
}

func TestShrinkWhileRestingClearsVisit(t *testing.T) {
	r := newRing(4, 30)
	a := New(DefaultConfig(), 77, r.Center())

	var events []visitEvent
	a.OnVisit(func(i int, ok bool) { events = append(events, visitEvent{i, ok}) })

	for i := 0; i < 5000; i++ {
		a.Step(1, r)
		if a.State() == StateResting && a.Target() > 0 {
			break
		}
	}
	require.Equal(t, StateResting, a.State())
	require.Greater(t, a.Target(), 0)

	r.points = r.points[:1]
	a.Step(1, r)

	assert.Equal(t, StateFlying, a.State())
	assert.Equal(t, 0, a.Target())
	require.GreaterOrEqual(t, len(events), 2)
	assert.False(t, events[len(events)-1].ok)
}

func TestRetargetSkipsLastRest(t *testing.T) {
	r := newRing(4, 30)
	a := New(DefaultConfig(), 9, r.Center())
	for i := 0; i < 5000 && a.State() != StateResting; i++ {
		a.Step(1, r)
	}
	require.Equal(t, StateResting, a.State())
	last := a.Target()

	for i := 0; i < 200; i++ {
		a.Retarget(r.Len(), last)
		require.Equal(t, StateFlying, a.State())
		require.NotEqual(t, last, a.Target())
	}

	// A single node is revisited even when skipped
	a.Retarget(1, 0)
	assert.Equal(t, 0, a.Target())
}

func TestWingPhaseStaysBounded(t *testing.T) {
	r := newRing(3, 30)
	a := New(DefaultConfig(), 5, r.Center())
	for i := 0; i < 10000; i++ {
		a.Step(1, r)
		require.GreaterOrEqual(t, a.WingPhase, 0.0)
		require.Less(t, a.WingPhase, 2*math.Pi)
	}
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "resting", StateResting.String())
	assert.Equal(t, "unknown", State(42).String())
}
