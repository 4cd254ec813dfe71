package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/dasher/assets"
	"github.com/milk9111/dasher/ecs"
	"github.com/milk9111/dasher/ecs/component"
	"github.com/milk9111/dasher/ecs/entity"
	"github.com/milk9111/dasher/ecs/system"
	"github.com/milk9111/dasher/prefabs"
	"github.com/milk9111/dasher/storage"
	"golang.design/x/clipboard"
)

type Options struct {
	TexturesDir string
	SoundsDir   string
	DBPath      string
	Debug       bool
}

type Game struct {
	logger *log.Logger
	specs  prefabs.Specs

	world     *ecs.World
	scheduler *ecs.Scheduler
	render    *system.RenderSystem

	textures *assets.Textures
	sounds   *assets.Sounds
	store    *storage.Store
	watcher  *prefabs.Watcher

	pauseUI  *ebitenui.UI
	paused   bool
	quit     bool
	recorded bool
	canCopy  bool
}

// RunGame opens the window and blocks until it is closed. Textures and
// sounds are released on every return path.
func RunGame(opts Options, logger *log.Logger) error {
	specs, err := prefabs.LoadAll()
	if err != nil {
		return err
	}

	textures := assets.NewTextures(opts.TexturesDir, logger)
	defer textures.Close()
	sounds := assets.NewSounds(opts.SoundsDir, logger)
	defer sounds.Close()

	g, err := NewGame(opts, specs, textures, sounds, logger)
	if err != nil {
		return err
	}
	defer g.Close()

	window := specs.World.Window
	ebiten.SetWindowSize(window.Width, window.Height)
	ebiten.SetWindowTitle(window.Title)
	if window.TPS > 0 {
		ebiten.SetTPS(window.TPS)
	}

	logger.Info("starting", "textures", opts.TexturesDir, "sounds", opts.SoundsDir, "debug", opts.Debug)
	return ebiten.RunGame(g)
}

func NewGame(opts Options, specs prefabs.Specs, textures *assets.Textures, sounds *assets.Sounds, logger *log.Logger) (*Game, error) {
	g := &Game{
		logger:    logger,
		specs:     specs,
		scheduler: newScheduler(logger),
		render:    system.NewRenderSystem(opts.Debug),
		textures:  textures,
		sounds:    sounds,
	}
	g.pauseUI = NewPauseUI(g, specs.World.Window)

	if err := g.restart(); err != nil {
		return nil, err
	}

	store, err := storage.Open(opts.DBPath)
	if err != nil {
		logger.Warn("run history disabled", "err", err)
	} else {
		g.store = store
	}

	if err := clipboard.Init(); err != nil {
		logger.Warn("clipboard unavailable", "err", err)
	} else {
		g.canCopy = true
	}

	if opts.Debug {
		g.watcher = newPrefabWatcher(logger)
	}
	return g, nil
}

func newScheduler(logger *log.Logger) *ecs.Scheduler {
	return ecs.NewScheduler(
		system.NewInputSystem(),
		system.NewParallaxSystem(),
		system.NewGravitySystem(),
		system.NewScrollSystem(),
		system.NewHazardSystem(),
		system.NewOutcomeSystem(),
		system.NewAnimationSystem(),
		system.NewAudioSystem(logger),
	)
}

func newPrefabWatcher(logger *log.Logger) *prefabs.Watcher {
	dirs := []string{prefabs.Dir, filepath.Join(prefabs.Dir, "scripts")}
	var existing []string
	for _, dir := range dirs {
		if info, err := os.Stat(dir); err == nil && info.IsDir() {
			existing = append(existing, dir)
		}
	}
	if len(existing) == 0 {
		logger.Debug("no prefab directory on disk, hot reload off")
		return nil
	}
	w, err := prefabs.NewWatcher(existing...)
	if err != nil {
		logger.Warn("prefab watcher disabled", "err", err)
		return nil
	}
	logger.Info("watching prefabs", "dirs", existing)
	return w
}

// restart throws the current world away and builds a new run from the
// current specs.
func (g *Game) restart() error {
	w, err := entity.BuildWorld(g.specs, g.textures, g.sounds, g.logger)
	if err != nil {
		return fmt.Errorf("game: build world: %w", err)
	}
	g.world = w
	g.recorded = false
	g.paused = false
	return nil
}

func (g *Game) Close() {
	if g.watcher != nil {
		if err := g.watcher.Close(); err != nil {
			g.logger.Warn("close watcher", "err", err)
		}
	}
	if g.store != nil {
		if err := g.store.Close(); err != nil {
			g.logger.Warn("close run history", "err", err)
		}
	}
}

func (g *Game) Update() error {
	if g.quit {
		return ebiten.Termination
	}

	g.reloadPrefabs()

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyP) {
		g.paused = !g.paused
	}
	if g.paused {
		g.pauseUI.Update()
		return nil
	}

	run := g.run()
	if run != nil && run.Outcome.Terminal() {
		if inpututil.IsKeyJustPressed(ebiten.KeyR) {
			return g.restartOrLog()
		}
		if inpututil.IsKeyJustPressed(ebiten.KeyC) {
			g.copyResult(run)
		}
	}

	g.tick()

	if run != nil && run.Outcome.Terminal() && !g.recorded {
		g.recorded = true
		g.record(run)
	}
	return nil
}

func (g *Game) tick() {
	if e, ok := ecs.First(g.world, component.FrameClockComponent.Kind()); ok {
		if clock, ok := ecs.Get(g.world, e, component.FrameClockComponent.Kind()); ok {
			clock.Delta = 1 / float64(ebiten.TPS())
			clock.Ticks++
		}
	}
	g.scheduler.Update(g.world)
}

func (g *Game) run() *component.Run {
	e, ok := ecs.First(g.world, component.RunComponent.Kind())
	if !ok {
		return nil
	}
	run, _ := ecs.Get(g.world, e, component.RunComponent.Kind())
	return run
}

func (g *Game) restartOrLog() error {
	if err := g.restart(); err != nil {
		g.logger.Error("restart failed", "err", err)
		return err
	}
	return nil
}

func (g *Game) reloadPrefabs() {
	if g.watcher == nil {
		return
	}
	names, errs := g.watcher.Poll()
	for _, err := range errs {
		g.logger.Warn("prefab watcher", "err", err)
	}
	if len(names) == 0 {
		return
	}

	specs, err := prefabs.LoadAll()
	if err != nil {
		g.logger.Warn("prefab reload rejected", "files", names, "err", err)
		return
	}
	g.specs = specs
	if err := g.restart(); err != nil {
		g.logger.Warn("prefab reload failed", "err", err)
		return
	}
	g.logger.Info("prefabs reloaded", "files", names)
}

func (g *Game) record(run *component.Run) {
	rec := recordFor(run)
	g.logger.Info("run finished", "outcome", rec.Outcome, "secs", fmt.Sprintf("%.2f", rec.Duration), "passed", rec.Passed)
	if g.store == nil {
		return
	}
	if _, err := g.store.SaveRun(rec); err != nil {
		g.logger.Warn("save run", "err", err)
	}
}

func (g *Game) copyResult(run *component.Run) {
	if !g.canCopy {
		return
	}
	clipboard.Write(clipboard.FmtText, []byte(summary(run)))
	g.logger.Debug("result copied")
}

func recordFor(run *component.Run) storage.RunRecord {
	return storage.RunRecord{
		Outcome:   run.Outcome.String(),
		Duration:  run.Elapsed,
		Distance:  run.Distance,
		Passed:    run.Passed,
		Obstacles: run.Obstacles,
	}
}

func summary(run *component.Run) string {
	return fmt.Sprintf("Dapper Dasher: %s in %.1fs, %d/%d nebulae passed", run.Outcome, run.Elapsed, run.Passed, run.Obstacles)
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.render.Draw(g.world, screen)
	if g.paused {
		g.pauseUI.Draw(screen)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.specs.World.Window.Width, g.specs.World.Window.Height
}
