package render

import (
	"math"
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ZenXLab/cropxoninnovations-sub001/catalog"
	"github.com/ZenXLab/cropxoninnovations-sub001/parameter"
	"github.com/ZenXLab/cropxoninnovations-sub001/scene"
	"github.com/ZenXLab/cropxoninnovations-sub001/vmath"
)

type fakeScreen struct {
	w, h  int
	cells map[[2]int]rune
	shown int
}

func newFakeScreen(w, h int) *fakeScreen {
	return &fakeScreen{w: w, h: h, cells: make(map[[2]int]rune)}
}

func (s *fakeScreen) SetContent(x, y int, r rune, _ []rune, _ tcell.Style) {
	s.cells[[2]int{x, y}] = r
}

func (s *fakeScreen) Show() { s.shown++ }

func (s *fakeScreen) row(y int) string {
	var sb strings.Builder
	for x := 0; x < s.w; x++ {
		r, ok := s.cells[[2]int{x, y}]
		if !ok {
			continue
		}
		sb.WriteRune(r)
	}
	return sb.String()
}

func (s *fakeScreen) contains(text string) bool {
	for y := 0; y < s.h; y++ {
		if strings.Contains(s.row(y), text) {
			return true
		}
	}
	return false
}

func newScene(t *testing.T, l Layout) *scene.Scene {
	t.Helper()
	w, h := l.WorldSize()
	return scene.New(catalog.Default(), w, h, scene.DefaultOptions())
}

func TestComputeLayout(t *testing.T) {
	wide := ComputeLayout(120, 40)
	assert.Equal(t, parameter.PanelWidth, wide.PanelWidth)
	assert.Equal(t, 120-parameter.PanelWidth, wide.CanvasWidth)
	assert.Equal(t, wide.CanvasWidth, wide.PanelX)
	assert.Equal(t, 39, wide.CanvasHeight)
	assert.Equal(t, 39, wide.StatusY)

	narrow := ComputeLayout(60, 20)
	assert.Zero(t, narrow.PanelWidth)
	assert.Equal(t, 60, narrow.CanvasWidth)

	ww, wh := wide.WorldSize()
	assert.Equal(t, float64(wide.CanvasWidth), ww)
	assert.Equal(t, 39*parameter.CellAspect, wh)
}

func TestDrawPlacesHubNodesAndStatus(t *testing.T) {
	r := NewRenderer(200, 60, 60)
	w, h := r.Layout().WorldSize()
	opts := scene.DefaultOptions()
	// Keep the visitor parked at the hub so it cannot cover a label
	opts.Visitor.WaitFrames = 1e9
	sc := scene.New(catalog.Default(), w, h, opts)
	for i := 0; i < 120; i++ {
		sc.Tick(parameter.FrameDuration)
	}

	r.Draw(sc, Status{})
	scr := newFakeScreen(200, 60)
	r.Flush(scr)
	assert.Equal(t, 1, scr.shown)

	hx, hy := vmath.WorldToCell(sc.Field.Center(), parameter.CellAspect)
	assert.Contains(t, []rune{'◆', '•'}, r.Buffer().At(hx, hy).Rune)
	for _, e := range sc.Field.Catalog().Entities {
		assert.True(t, scr.contains(e.Name), "label %s", e.Name)
	}
	status := scr.row(r.Layout().StatusY)
	assert.Contains(t, status, "frame 120")
	assert.Contains(t, status, "♪ on")
}

func TestPanelShowsHighlightedEntity(t *testing.T) {
	r := NewRenderer(120, 40, 60)
	sc := newScene(t, r.Layout())
	sc.Field.Next()
	sc.Tick(parameter.FrameDuration)

	e, ok := sc.Detail()
	require.True(t, ok)

	r.Draw(sc, Status{Muted: true})
	scr := newFakeScreen(120, 40)
	r.Flush(scr)

	assert.True(t, scr.contains("● "+e.Name))
	assert.True(t, scr.contains(strings.ToUpper(e.Category)))
	assert.Contains(t, scr.row(r.Layout().StatusY), "♪ off")
	assert.Contains(t, scr.row(r.Layout().StatusY), "paused")
}

func TestPanelHiddenOnNarrowScreen(t *testing.T) {
	r := NewRenderer(60, 24, 60)
	sc := newScene(t, r.Layout())
	sc.Field.Next()
	r.Draw(sc, Status{})
	scr := newFakeScreen(60, 24)
	r.Flush(scr)
	assert.False(t, scr.contains("●"))
}

func TestHoverScaleEases(t *testing.T) {
	r := NewRenderer(120, 40, 60)
	sc := newScene(t, r.Layout())
	sc.Field.Next()
	focused := sc.Field.Focused()

	for i := 0; i < 60; i++ {
		r.Draw(sc, Status{})
	}
	assert.InDelta(t, parameter.HoverScale, r.Scale(focused), 0.05)
	assert.InDelta(t, 1.0, r.Scale((focused+1)%sc.Field.Len()), 0.05)

	sc.Field.Cancel()
	for i := 0; i < 60; i++ {
		r.Draw(sc, Status{})
	}
	assert.InDelta(t, 1.0, r.Scale(focused), 0.05)
}

func TestDrawSkipsNonFinitePositions(t *testing.T) {
	r := NewRenderer(100, 30, 60)
	sc := newScene(t, r.Layout())
	sc.Field.Node(0).Pos.X = math.NaN()
	sc.Visitor.Pos.Y = math.Inf(1)

	assert.NotPanics(t, func() {
		r.Draw(sc, Status{})
		r.Flush(newFakeScreen(100, 30))
	})
}

func TestResizeRelayout(t *testing.T) {
	r := NewRenderer(120, 40, 60)
	r.Resize(70, 20)
	w, h := r.Buffer().Size()
	assert.Equal(t, 70, w)
	assert.Equal(t, 20, h)
	assert.Equal(t, 19, r.Layout().StatusY)

	sc := newScene(t, r.Layout())
	assert.NotPanics(t, func() { r.Draw(sc, Status{}) })
}

func TestTinyScreen(t *testing.T) {
	r := NewRenderer(1, 1, 0)
	sc := scene.New(catalog.Default(), 1, 0, scene.DefaultOptions())
	sc.Tick(time.Second)
	assert.NotPanics(t, func() {
		r.Draw(sc, Status{})
		r.Flush(newFakeScreen(1, 1))
	})
}
