package ebitenview

import (
	"fmt"
	"image"
	"image/color"
	"log/slog"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/phanxgames/panzoom"
)

// Defaults applied by New for zero Config fields.
const (
	DefaultWheelPixels   = 40.0
	DefaultMarkerRadius  = 6.0
	DefaultDoubleClick   = 300 * time.Millisecond
	DefaultScreenshotDir = "screenshots"
	defaultDragDeadZone  = 4.0 // pixels
)

// Config holds the viewer window and input settings.
type Config struct {
	Title  string
	Width  int
	Height int

	// WheelPixels converts one wheel notch into scroll pixels.
	WheelPixels float64
	// MarkerRadius is the rendered marker dot radius in screen pixels, also
	// used as the click hit radius.
	MarkerRadius float64
	// DoubleClick is the maximum gap between two clicks of a double-click.
	DoubleClick time.Duration

	Zoom        panzoom.ZoomConfig
	MarkerSpace panzoom.Space

	// Container reports the viewport container rect. Nil means the full
	// window as reported by Layout.
	Container panzoom.ContainerFunc

	ShowDebug     bool
	ClearColor    color.Color
	ScreenshotDir string
}

// Viewer is an ebiten.Game that renders one image inside a pan/zoom
// viewport with a marker overlay.
type Viewer struct {
	cfg     Config
	log     *slog.Logger
	vp      *panzoom.Viewport
	markers *panzoom.MarkerStore
	snap    panzoom.Snapshot
	sub     panzoom.Subscription

	image *ebiten.Image

	containerFn      panzoom.ContainerFunc
	layoutW, layoutH int

	// Input subscription owners; real input is polled only while non-empty.
	inputOwners []uint32
	nextInputID uint32

	input           pointerState
	tick            uint64
	injectQueue     []inputFrame
	runner          *TestRunner
	screenshotQueue []string
}

// New creates a viewer. Zero Config fields take the package defaults and a
// nil logger discards all output.
func New(cfg Config, logger *slog.Logger) *Viewer {
	if cfg.Width <= 0 {
		cfg.Width = 800
	}
	if cfg.Height <= 0 {
		cfg.Height = 600
	}
	if cfg.WheelPixels <= 0 {
		cfg.WheelPixels = DefaultWheelPixels
	}
	if cfg.MarkerRadius <= 0 {
		cfg.MarkerRadius = DefaultMarkerRadius
	}
	if cfg.DoubleClick <= 0 {
		cfg.DoubleClick = DefaultDoubleClick
	}
	if cfg.Zoom == (panzoom.ZoomConfig{}) {
		cfg.Zoom = panzoom.DefaultZoomConfig()
	}
	if cfg.ClearColor == nil {
		cfg.ClearColor = color.RGBA{R: 0x1a, G: 0x1a, B: 0x1a, A: 0xff}
	}
	if cfg.ScreenshotDir == "" {
		cfg.ScreenshotDir = DefaultScreenshotDir
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	v := &Viewer{
		cfg:     cfg,
		log:     logger,
		markers: panzoom.NewMarkerStore(cfg.MarkerSpace),
		layoutW: cfg.Width,
		layoutH: cfg.Height,
	}
	v.containerFn = cfg.Container
	if v.containerFn == nil {
		v.containerFn = v.windowRect
	}
	v.vp = panzoom.NewViewport(v.containerFn, cfg.Zoom)
	v.snap = v.vp.Snapshot()
	v.sub = v.vp.Subscribe(v.onCommit)
	return v
}

// Viewport returns the underlying view controller.
func (v *Viewer) Viewport() *panzoom.Viewport { return v.vp }

// Markers returns the marker store.
func (v *Viewer) Markers() *panzoom.MarkerStore { return v.markers }

// SetImage replaces the displayed image and reports its natural size to the
// viewport.
func (v *Viewer) SetImage(img image.Image) {
	b := img.Bounds()
	v.image = ebiten.NewImageFromImage(img)
	v.vp.OnImageLoad(float64(b.Dx()), float64(b.Dy()))
	v.log.Info("image loaded", "width", b.Dx(), "height", b.Dy())
}

// Close detaches the viewer from its viewport.
func (v *Viewer) Close() {
	v.sub.Remove()
}

func (v *Viewer) windowRect() panzoom.Rect {
	return panzoom.Rect{Width: float64(v.layoutW), Height: float64(v.layoutH)}
}

func (v *Viewer) container() panzoom.Rect {
	return v.containerFn()
}

func (v *Viewer) onCommit(s panzoom.Snapshot) {
	v.snap = s
	v.log.Debug("view committed",
		"scale", s.Scale, "offsetX", s.Offset.X, "offsetY", s.Offset.Y)
}

// --- Input subscription ---

// InputHandle keeps real input polling alive until Remove is called.
type InputHandle struct {
	id uint32
	v  *Viewer
}

// Activate starts polling mouse and keyboard input. Every call must be
// paired with Remove on the returned handle.
func (v *Viewer) Activate() InputHandle {
	v.nextInputID++
	v.inputOwners = append(v.inputOwners, v.nextInputID)
	return InputHandle{id: v.nextInputID, v: v}
}

// Remove releases the input subscription. Calling it more than once, or on
// the zero InputHandle, is a no-op.
func (h InputHandle) Remove() {
	if h.v == nil {
		return
	}
	owners := h.v.inputOwners
	for i := range owners {
		if owners[i] == h.id {
			copy(owners[i:], owners[i+1:])
			h.v.inputOwners = owners[:len(owners)-1]
			if len(h.v.inputOwners) == 0 {
				h.v.input = pointerState{}
			}
			return
		}
	}
}

// InputActive reports whether real input is being polled.
func (v *Viewer) InputActive() bool {
	return len(v.inputOwners) > 0
}

// --- ebiten.Game ---

// Update advances the script runner, then processes one injected frame or,
// when none is queued, the real input of this frame. Once an attached script
// has finished and its screenshots are written, Update ends the game.
func (v *Viewer) Update() error {
	if v.runner != nil {
		if v.runner.Done() && len(v.screenshotQueue) == 0 {
			return ebiten.Termination
		}
		v.runner.step(v)
	}
	if v.processInjectedInput() {
		return nil
	}
	if !v.InputActive() || !ebiten.IsFocused() {
		return nil
	}
	v.processFrame(pollFrame(v.cfg.WheelPixels))
	return nil
}

// Layout records the window size used as the default container.
func (v *Viewer) Layout(outsideWidth, outsideHeight int) (int, int) {
	v.layoutW, v.layoutH = outsideWidth, outsideHeight
	return outsideWidth, outsideHeight
}

// Run opens a window and runs the viewer until it is closed or the attached
// test script finishes.
func Run(v *Viewer) error {
	ebiten.SetWindowTitle(v.cfg.Title)
	ebiten.SetWindowSize(v.cfg.Width, v.cfg.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	h := v.Activate()
	defer h.Remove()
	defer v.Close()

	if err := ebiten.RunGame(v); err != nil {
		return fmt.Errorf("run viewer: %w", err)
	}
	return nil
}
