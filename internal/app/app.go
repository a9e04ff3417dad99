// Package app wires the window, the GL resources and the scene composer into
// the interactive frame loop and the offline capture path.
package app

import (
	"fmt"
	"path/filepath"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/bodyfield/internal/assets"
	"github.com/Faultbox/bodyfield/internal/config"
	"github.com/Faultbox/bodyfield/internal/engine/camera"
	"github.com/Faultbox/bodyfield/internal/engine/capture"
	"github.com/Faultbox/bodyfield/internal/engine/clock"
	"github.com/Faultbox/bodyfield/internal/engine/framebuffer"
	"github.com/Faultbox/bodyfield/internal/engine/input"
	"github.com/Faultbox/bodyfield/internal/engine/mesh"
	"github.com/Faultbox/bodyfield/internal/engine/render"
	"github.com/Faultbox/bodyfield/internal/engine/renderer"
	"github.com/Faultbox/bodyfield/internal/engine/scene"
	"github.com/Faultbox/bodyfield/internal/engine/shader"
	"github.com/Faultbox/bodyfield/internal/engine/window"
	"github.com/Faultbox/bodyfield/internal/logger"
)

// Title is the window title.
const Title = "bodyfield"

// App owns every resource of a running session.
type App struct {
	cfg *config.Config
	log *zap.Logger

	window   *window.Window
	renderer *renderer.Renderer
	input    *input.Input
	assets   *assets.Manager
	program  *shader.Program
	shapes   []*mesh.Shape

	camera   *camera.FirstPerson
	clock    *clock.Clock
	composer *scene.Composer

	pointerReleased bool
}

// New opens the window and loads every resource. Nothing is left open when
// it returns an error.
func New(cfg *config.Config) (_ *App, err error) {
	a := &App{
		cfg:    cfg,
		log:    logger.Named("app"),
		input:  input.New(),
		camera: camera.NewFirstPerson(),
		clock:  clock.New(),
	}
	defer func() {
		if err != nil {
			a.Close()
		}
	}()

	a.log.Info("initializing",
		zap.String("resources", cfg.Scene.ResourceDir),
		zap.Int("width", cfg.Graphics.Width),
		zap.Int("height", cfg.Graphics.Height),
		zap.Bool("offline", cfg.Capture.Offline),
	)

	a.window, err = window.New(window.Config{
		Title:      Title,
		Width:      cfg.Graphics.Width,
		Height:     cfg.Graphics.Height,
		Fullscreen: cfg.Graphics.Fullscreen && !cfg.Capture.Offline,
		VSync:      cfg.Graphics.VSync,
		Hidden:     cfg.Capture.Offline,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	// The renderer loads GL entry points, so it must follow the context.
	w, h := a.window.DrawableSize()
	a.renderer, err = renderer.New(renderer.Config{Width: w, Height: h})
	if err != nil {
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	a.assets = assets.NewManager(cfg.Scene.ResourceDir, logger.Named("assets"))

	a.program, err = a.loadProgram()
	if err != nil {
		return nil, err
	}

	meshes, err := a.loadMeshes()
	if err != nil {
		return nil, err
	}

	contents := BuildContents(cfg.Scene, meshes, newRand(cfg.Scene.Seed))
	a.composer = scene.NewComposer(a.program, a.renderer, a.camera, contents)
	a.log.Info("scene built", zap.Int("bodies", len(contents.Bodies)))

	if cfg.Dev.WatchAssets && !cfg.Capture.Offline {
		if err := a.assets.Watch(); err != nil {
			a.log.Warn("asset hot reload disabled", zap.Error(err))
		}
	}

	if !cfg.Capture.Offline {
		a.input.Start()
		a.window.SetRelativeMouse(true)
	}
	return a, nil
}

func (a *App) loadProgram() (*shader.Program, error) {
	vs, fs, err := a.shaderSources()
	if err != nil {
		return nil, err
	}
	return buildProgram(a.log, vs, fs, shader.NewProgram)
}

func (a *App) shaderSources() (vs, fs string, err error) {
	vs, err = a.assets.LoadText(shader.BlinnPhongVertexFile, shader.BlinnPhongVertex)
	if err != nil {
		return "", "", err
	}
	fs, err = a.assets.LoadText(shader.BlinnPhongFragmentFile, shader.BlinnPhongFragment)
	if err != nil {
		return "", "", err
	}
	return vs, fs, nil
}

func (a *App) loadMeshes() (Meshes, error) {
	var m Meshes
	targets := []struct {
		name string
		dst  *render.Drawable
	}{
		{BunnyMesh, &m.Bunny},
		{TeapotMesh, &m.Teapot},
		{SphereMesh, &m.Sphere},
		{GroundMesh, &m.Ground},
		{ArrowMesh, &m.Arrow},
	}

	for _, t := range targets {
		data, err := mesh.LoadOBJ(a.assets.Path(t.name))
		if err != nil {
			return Meshes{}, err
		}
		shape := mesh.Upload(data)
		a.shapes = append(a.shapes, shape)
		*t.dst = shape
		a.log.Debug("mesh loaded",
			zap.String("name", t.name),
			zap.Int("triangles", data.TriangleCount()),
		)
	}
	return m, nil
}

// Run renders until the user quits, or renders a single capture when offline.
func (a *App) Run() error {
	a.clock.Start()
	if a.cfg.Capture.Offline {
		return a.captureFrame()
	}

	a.log.Info("starting frame loop")

	a.renderer.Resize(a.window.DrawableSize())

	frames := 0
	fpsTimer := time.Now()
	for {
		if a.input.Update() {
			break
		}

		state := a.handleInput()
		a.reloadShaders()

		// Window events are in screen units; the drawable may be larger on high-DPI.
		if ww, wh, ok := a.input.Resized(); ok {
			a.log.Debug("window resized", zap.Int("width", ww), zap.Int("height", wh))
			a.renderer.Resize(a.window.DrawableSize())
		}

		w, h := a.renderer.Size()
		a.renderer.Begin()
		a.composer.Render(a.frame(state, w, h))
		a.window.SwapBuffers()

		frames++
		if elapsed := time.Since(fpsTimer); elapsed >= time.Second {
			a.log.Debug("fps",
				zap.Int("frames", frames),
				zap.Duration("frame_time", elapsed/time.Duration(frames)),
			)
			a.window.SetTitle(fpsTitle(frames, elapsed))
			frames = 0
			fpsTimer = time.Now()
		}
	}

	a.log.Info("frame loop finished")
	return nil
}

// fpsTitle is the window title shown while the loop runs.
func fpsTitle(frames int, elapsed time.Duration) string {
	fps := float64(frames) / elapsed.Seconds()
	return fmt.Sprintf("%s - %.0f fps", Title, fps)
}

func (a *App) frame(state toggleState, width, height int) scene.Frame {
	return scene.Frame{
		Time:    a.clock.Elapsed(),
		Width:   width,
		Height:  height,
		Animate: state.Animate,
		Minimap: state.Minimap,
		Cull:    state.Cull,
	}
}

// handleInput applies toggles, mouse look and keyboard movement.
func (a *App) handleInput() toggleState {
	state := toggles(a.cfg.Scene, a.input.Toggled)

	if state.PointerReleased != a.pointerReleased {
		a.pointerReleased = state.PointerReleased
		a.window.SetRelativeMouse(!a.pointerReleased)
	}
	if !a.pointerReleased {
		a.camera.Turn(a.input.MouseDelta())
	}
	steer(a.camera, a.input.Chars())
	return state
}

// reloadShaders rebuilds the program when a .glsl file changed on disk. A
// failed build keeps the running program.
func (a *App) reloadShaders() {
	changes := a.assets.Changes()
	if changes == nil {
		return
	}

	dirty := false
drain:
	for {
		select {
		case name, ok := <-changes:
			if !ok {
				break drain
			}
			if filepath.Ext(name) == ".glsl" {
				dirty = true
			}
		default:
			break drain
		}
	}
	if !dirty {
		return
	}

	vs, fs, err := a.shaderSources()
	if err != nil {
		a.log.Warn("shader reload skipped", zap.Error(err))
		return
	}
	if !a.program.Changed(vs, fs) {
		return
	}
	if err := a.program.Reload(vs, fs); err != nil {
		a.log.Warn("shader reload failed, keeping previous program", zap.Error(err))
		return
	}
	a.log.Info("shaders reloaded")
}

// captureFrame renders one frame into an offscreen target of the configured
// size and writes it to the capture path.
func (a *App) captureFrame() error {
	width, height := a.cfg.Graphics.Width, a.cfg.Graphics.Height

	fb, err := framebuffer.New(width, height)
	if err != nil {
		return fmt.Errorf("creating capture target: %w", err)
	}
	defer fb.Destroy()

	restore := fb.Bind()
	a.renderer.Resize(width, height)
	a.renderer.Begin()
	a.composer.Render(a.frame(toggles(a.cfg.Scene, func(byte) bool { return false }), width, height))
	pixels := fb.ReadPixels()
	restore()

	if err := capture.Save(a.cfg.Capture.Output, pixels, width, height); err != nil {
		return fmt.Errorf("writing capture: %w", err)
	}
	a.log.Info("wrote capture", zap.String("path", a.cfg.Capture.Output))
	return nil
}

// Close releases everything New acquired.
func (a *App) Close() {
	a.log.Info("closing")

	for _, s := range a.shapes {
		s.Release()
	}
	a.shapes = nil
	if a.program != nil {
		a.program.Release()
	}
	if a.assets != nil {
		hits, misses := a.assets.Cache().Stats()
		a.log.Debug("asset cache", zap.Int("hits", hits), zap.Int("misses", misses))
		a.assets.Close()
	}
	if a.window != nil {
		a.window.Close()
	}
}
