// Package app runs the interactive visualization on a tcell screen
package app

import (
	"context"
	"errors"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/ZenXLab/cropxoninnovations-sub001/catalog"
	"github.com/ZenXLab/cropxoninnovations-sub001/config"
	"github.com/ZenXLab/cropxoninnovations-sub001/input"
	"github.com/ZenXLab/cropxoninnovations-sub001/parameter"
	"github.com/ZenXLab/cropxoninnovations-sub001/render"
	"github.com/ZenXLab/cropxoninnovations-sub001/scene"
	"github.com/ZenXLab/cropxoninnovations-sub001/terminal"
	"github.com/ZenXLab/cropxoninnovations-sub001/vmath"
)

// eventQueueSize buffers input between the poller and the frame loop
const eventQueueSize = 256

// Chimer plays the landing sound; audio.Player satisfies it
type Chimer interface {
	Chime()
	ToggleMute() bool
	Muted() bool
}

// Options configures Run
type Options struct {
	Config  config.Config
	Catalog *catalog.Catalog

	// CatalogPath is watched for edits when non-empty and Config.Watch is set
	CatalogPath string

	Logger *zap.Logger
	Audio  Chimer
}

// App owns the scene, renderer and input translator of one screen
type App struct {
	screen tcell.Screen
	opts   Options
	log    *zap.Logger
	audio  Chimer

	scene    *scene.Scene
	renderer *render.Renderer
	input    *input.Translator
}

// New lays out the screen and builds the scene
func New(screen tcell.Screen, opts Options) (*App, error) {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	cat := opts.Catalog
	if cat == nil {
		cat = catalog.Default()
	}
	chimer := opts.Audio
	if chimer == nil {
		chimer = &silent{muted: opts.Config.Mute}
	}

	keys, err := opts.Config.KeyTable()
	if err != nil {
		return nil, err
	}

	w, h := screen.Size()
	r := render.NewRenderer(w, h, opts.Config.FPS)
	l := r.Layout()
	ww, wh := l.WorldSize()

	so := opts.Config.SceneOptions()
	so.Logger = log
	sc := scene.New(cat, ww, wh, so)

	a := &App{
		screen:   screen,
		opts:     opts,
		log:      log,
		audio:    chimer,
		scene:    sc,
		renderer: r,
		input:    input.NewTranslator(keys, l.CanvasWidth, l.CanvasHeight),
	}
	sc.OnLand(func(*catalog.Entity) { a.audio.Chime() })
	return a, nil
}

// Scene exposes the running scene
func (a *App) Scene() *scene.Scene { return a.scene }

// Run convenience: New followed by App.Run
func Run(ctx context.Context, screen tcell.Screen, opts Options) error {
	a, err := New(screen, opts)
	if err != nil {
		return err
	}
	return a.Run(ctx)
}

// Run drives input polling, catalog watching and the frame loop until ctx
// is cancelled or a quit intent arrives. The caller owns screen.Fini.
func (a *App) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	g, gctx := errgroup.WithContext(ctx)
	events := make(chan tcell.Event, eventQueueSize)
	reloads := make(chan *catalog.Catalog, 1)

	g.Go(func() error {
		return a.poll(gctx, events)
	})

	if a.opts.CatalogPath != "" && a.opts.Config.Watch {
		g.Go(func() error {
			return catalog.Watch(gctx, a.opts.CatalogPath, a.opts.Config.Orbit.NodeRadius, a.log, func(c *catalog.Catalog) {
				// Latest wins when the loop is behind
				select {
				case <-reloads:
				default:
				}
				select {
				case reloads <- c:
				case <-gctx.Done():
				}
			})
		})
	}

	g.Go(func() error {
		defer func() {
			cancel()
			// PollEvent only returns on a new event
			_ = a.screen.PostEvent(tcell.NewEventInterrupt(nil))
		}()
		return a.loop(gctx, events, reloads)
	})

	a.log.Info("app started",
		zap.String("scene", a.scene.ID),
		zap.Int("fps", a.opts.Config.FPS),
		zap.Int("entities", a.scene.Field.Len()))

	err := g.Wait()
	if errors.Is(err, context.Canceled) {
		err = nil
	}
	a.log.Info("app stopped",
		zap.Uint64("frames", a.scene.Field.Frame()),
		zap.Uint64("visits", a.scene.Visitor.Visits()),
		zap.Error(err))
	return err
}

// poll forwards screen events until the context ends
func (a *App) poll(ctx context.Context, events chan<- tcell.Event) error {
	defer func() {
		if r := recover(); r != nil {
			terminal.Crash(os.Stdout, "EVENT POLLER", r)
			os.Exit(1)
		}
	}()

	for {
		ev := a.screen.PollEvent()
		if ev == nil || ctx.Err() != nil {
			return nil
		}
		select {
		case events <- ev:
		case <-ctx.Done():
			return nil
		}
	}
}

// loop is the fixed-rate frame scheduler
func (a *App) loop(ctx context.Context, events <-chan tcell.Event, reloads <-chan *catalog.Catalog) error {
	defer func() {
		if r := recover(); r != nil {
			terminal.Crash(os.Stdout, "FRAME LOOP", r)
			os.Exit(1)
		}
	}()

	fps := a.opts.Config.FPS
	if fps <= 0 {
		fps = parameter.DefaultFPS
	}
	ticker := time.NewTicker(time.Second / time.Duration(fps))
	defer ticker.Stop()

	a.draw()
	last := time.Now()

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev := <-events:
			if a.handle(ev) {
				a.log.Info("quit requested")
				return nil
			}

		case c := <-reloads:
			a.scene.SetCatalog(c)

		case now := <-ticker.C:
			dt := now.Sub(last)
			last = now
			a.scene.Tick(dt)
			a.draw()
		}
	}
}

func (a *App) draw() {
	a.renderer.Draw(a.scene, render.Status{Muted: a.audio.Muted()})
	a.renderer.Flush(a.screen)
}

// handle applies one event; returns true on quit
func (a *App) handle(ev tcell.Event) bool {
	in := a.input.Translate(ev)
	f := a.scene.Field

	switch in.Type {
	case input.IntentQuit:
		return true

	case input.IntentResize:
		a.resize(in.Width, in.Height)

	case input.IntentToggleMute:
		muted := a.audio.ToggleMute()
		a.log.Debug("mute toggled", zap.Bool("muted", muted))

	case input.IntentNext:
		f.Next()
	case input.IntentPrev:
		f.Prev()
	case input.IntentSelect:
		f.Select()
	case input.IntentCancel:
		f.Cancel()
	case input.IntentToggleSpin:
		f.ToggleSpin()

	case input.IntentPointerMove:
		f.PointerMove(cellWorld(in.Cell))
	case input.IntentPointerLeave:
		f.PointerLeave()
	case input.IntentClick:
		f.Click(cellWorld(in.Cell))
	}
	return false
}

func (a *App) resize(w, h int) {
	a.screen.Sync()
	a.renderer.Resize(w, h)
	l := a.renderer.Layout()
	a.scene.Resize(l.WorldSize())
	a.input.SetCanvas(l.CanvasWidth, l.CanvasHeight)
	a.log.Debug("resized", zap.Int("width", w), zap.Int("height", h))
}

func cellWorld(c [2]int) vmath.Vec2 {
	return vmath.CellToWorld(c[0], c[1], parameter.CellAspect)
}

// silent stands in when no speaker is available
type silent struct{ muted bool }

func (s *silent) Chime()           {}
func (s *silent) ToggleMute() bool { s.muted = !s.muted; return s.muted }
func (s *silent) Muted() bool      { return s.muted }
