// prism - Terminal wireframe model viewer
// Spin GLB models (or built-in shapes) around an orbit camera in your
// terminal.
//
// Controls:
//
//	Mouse drag  - Orbit camera (yaw/pitch)
//	Scroll      - Zoom in/out
//	W/S         - Pitch up/down
//	A/D         - Yaw left/right
//	Space       - Apply random spin
//	R           - Reset view
//	G           - Toggle ground grid
//	X           - Toggle coordinate axes
//	P           - Save a PNG screenshot
//	+/-         - Adjust zoom
//	Esc         - Quit
package main

import (
	"context"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/charmbracelet/harmonica"
	uv "github.com/charmbracelet/ultraviolet"

	"github.com/taigrr/prism/pkg/math3d"
	"github.com/taigrr/prism/pkg/models"
	"github.com/taigrr/prism/pkg/render"
)

var (
	targetFPS = flag.Int("fps", 60, "Target FPS")
	bgColor   = flag.String("bg", "20,20,30", "Background color (R,G,B)")
	fgColor   = flag.String("fg", "0,255,128", "Wireframe color (R,G,B)")
	shape     = flag.String("shape", "cube", "Built-in shape when no file is given (cube|octahedron)")
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "prism - Terminal wireframe model viewer\n\n")
		fmt.Fprintf(os.Stderr, "Usage: prism [options] [model.glb]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nControls:\n")
		fmt.Fprintf(os.Stderr, "  Mouse drag  - Orbit camera\n")
		fmt.Fprintf(os.Stderr, "  Scroll      - Zoom in/out\n")
		fmt.Fprintf(os.Stderr, "  W/S/A/D     - Pitch and yaw\n")
		fmt.Fprintf(os.Stderr, "  Space       - Random spin\n")
		fmt.Fprintf(os.Stderr, "  R           - Reset view\n")
		fmt.Fprintf(os.Stderr, "  G           - Toggle grid\n")
		fmt.Fprintf(os.Stderr, "  X           - Toggle axes\n")
		fmt.Fprintf(os.Stderr, "  P           - Screenshot\n")
		fmt.Fprintf(os.Stderr, "  Esc         - Quit\n")
	}
	flag.Parse()

	if err := run(flag.Arg(0)); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// OrbitAxis tracks angular velocity for one orbit axis with spring decay.
type OrbitAxis struct {
	Velocity  float64
	velSpring harmonica.Spring
	velAccel  float64 // internal spring velocity (for animating Velocity toward 0)
}

// NewOrbitAxis creates an axis with a harmonica spring for smooth velocity
// decay.
func NewOrbitAxis(fps int) OrbitAxis {
	return OrbitAxis{
		// Frequency 4.0 = moderate speed, damping 1.0 = critically damped (no overshoot)
		velSpring: harmonica.NewSpring(harmonica.FPS(fps), 4.0, 1.0),
	}
}

// Update decays velocity toward 0 using the spring and returns the decayed
// velocity to apply this frame.
func (a *OrbitAxis) Update() float64 {
	v := a.Velocity
	a.Velocity, a.velAccel = a.velSpring.Update(a.Velocity, a.velAccel, 0)
	return v
}

// OrbitState holds yaw/pitch spin with harmonica spring physics.
type OrbitState struct {
	Yaw, Pitch OrbitAxis
	fps        int
}

func NewOrbitState(fps int) *OrbitState {
	return &OrbitState{
		Yaw:   NewOrbitAxis(fps),
		Pitch: NewOrbitAxis(fps),
		fps:   fps,
	}
}

func (o *OrbitState) ApplyImpulse(yaw, pitch float64) {
	o.Yaw.Velocity += yaw
	o.Pitch.Velocity += pitch
}

func (o *OrbitState) Reset() {
	o.Yaw = NewOrbitAxis(o.fps)
	o.Pitch = NewOrbitAxis(o.fps)
}

func loadModel(path string) (*models.Mesh, error) {
	if path == "" {
		switch *shape {
		case "cube":
			return models.Cube(), nil
		case "octahedron":
			return models.Octahedron(), nil
		default:
			return nil, fmt.Errorf("unknown shape: %s", *shape)
		}
	}

	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".glb", ".gltf":
		mesh, err := models.LoadGLB(path)
		if err != nil {
			return nil, fmt.Errorf("load model: %w", err)
		}
		return mesh, nil
	default:
		return nil, fmt.Errorf("unsupported format: %s (use .glb or .gltf)", ext)
	}
}

func parseRGB(s string, r, g, b *uint8) {
	fmt.Sscanf(s, "%d,%d,%d", r, g, b)
}

func run(modelPath string) error {
	var bgR, bgG, bgB uint8 = 20, 20, 30
	parseRGB(*bgColor, &bgR, &bgG, &bgB)
	var fgR, fgG, fgB uint8 = 0, 255, 128
	parseRGB(*fgColor, &fgR, &fgG, &fgB)
	wireColor := render.RGB(fgR, fgG, fgB)

	raw, err := loadModel(modelPath)
	if err != nil {
		return err
	}
	// Center at the origin with a unit bounding sphere so every model orbits
	// the same way.
	mesh := raw.Normalized()

	// Create terminal
	term := uv.DefaultTerminal()

	width, height, err := term.GetSize()
	if err != nil {
		return fmt.Errorf("get terminal size: %w", err)
	}

	if err := term.Start(); err != nil {
		return fmt.Errorf("start terminal: %w", err)
	}

	term.EnterAltScreen()
	term.HideCursor()
	term.Resize(width, height)

	// Enable mouse mode
	fmt.Fprint(os.Stdout, "\x1b[?1003h") // Enable any-event mouse tracking
	fmt.Fprint(os.Stdout, "\x1b[?1006h") // Enable SGR extended mouse mode

	// Half-block cells double the vertical resolution.
	fb := render.NewFramebuffer(width, height*2)

	camera := render.NewCamera()
	camera.SetAspectRatio(aspectOf(fb))
	camera.SetFOV(60)
	camera.SetClipPlanes(0.1, 100)
	camera.SetDistance(3)

	wire := render.NewWireframe(camera, fb)

	orbit := NewOrbitState(*targetFPS)
	showGrid := true
	showAxes := false

	// Context for clean shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		cancel()
	}()

	// Input state
	inputTorque := struct{ yaw, pitch float64 }{}
	const torqueStrength = 120.0 // degrees per second

	var mouseDown bool
	var lastMouseX, lastMouseY int

	// Event handler
	go func() {
		for ev := range term.Events() {
			switch ev := ev.(type) {
			case uv.WindowSizeEvent:
				width, height = ev.Width, ev.Height
				term.Erase()
				term.Resize(width, height)
				fb = render.NewFramebuffer(width, height*2)
				wire = render.NewWireframe(camera, fb)
				camera.SetAspectRatio(aspectOf(fb))

			case uv.KeyPressEvent:
				switch {
				case ev.MatchString("escape"), ev.MatchString("ctrl+c"):
					cancel()
					return
				case ev.MatchString("r"):
					orbit.Reset()
					camera.SetOrientation(math3d.QIdentity())
					camera.SetDistance(3)
				case ev.MatchString("w", "up"):
					inputTorque.pitch = torqueStrength
				case ev.MatchString("s", "down"):
					inputTorque.pitch = -torqueStrength
				case ev.MatchString("a", "left"):
					inputTorque.yaw = -torqueStrength
				case ev.MatchString("d", "right"):
					inputTorque.yaw = torqueStrength
				case ev.MatchString("space"):
					orbit.ApplyImpulse(
						(rand.Float64()-0.5)*10,
						(rand.Float64()-0.5)*10,
					)
				case ev.MatchString("+", "="):
					camera.Zoom(0.9)
				case ev.MatchString("-", "_"):
					camera.Zoom(1.1)
				case ev.MatchString("g"):
					showGrid = !showGrid
				case ev.MatchString("x"):
					showAxes = !showAxes
				case ev.MatchString("p"):
					name := fmt.Sprintf("prism-%d.png", time.Now().Unix())
					_ = fb.SavePNG(name)
				}

			case uv.KeyReleaseEvent:
				switch {
				case ev.MatchString("w"), ev.MatchString("up"), ev.MatchString("s"), ev.MatchString("down"):
					inputTorque.pitch = 0
				case ev.MatchString("a"), ev.MatchString("left"), ev.MatchString("d"), ev.MatchString("right"):
					inputTorque.yaw = 0
				}

			case uv.MouseClickEvent:
				mouseDown = true
				lastMouseX, lastMouseY = ev.X, ev.Y

			case uv.MouseReleaseEvent:
				mouseDown = false

			case uv.MouseMotionEvent:
				if mouseDown {
					dx := ev.X - lastMouseX
					dy := ev.Y - lastMouseY
					orbit.ApplyImpulse(float64(dx)*0.8, float64(-dy)*0.8)
					lastMouseX, lastMouseY = ev.X, ev.Y
				}

			case uv.MouseWheelEvent:
				switch ev.Button {
				case uv.MouseWheelUp:
					camera.Zoom(0.9)
				case uv.MouseWheelDown:
					camera.Zoom(1.1)
				}
			}
		}
	}()

	// Main loop
	targetDuration := time.Second / time.Duration(*targetFPS)
	lastFrame := time.Now()

	cleanup := func() {
		fmt.Fprint(os.Stdout, "\x1b[?1003l")
		fmt.Fprint(os.Stdout, "\x1b[?1006l")
		term.ExitAltScreen()
		term.ShowCursor()
		term.Shutdown(context.Background())
	}

	for {
		select {
		case <-ctx.Done():
			cleanup()
			return nil
		default:
		}

		now := time.Now()
		dt := now.Sub(lastFrame).Seconds()
		lastFrame = now

		if dt > 0.1 {
			dt = 0.1
		}

		// Apply input torque and decay it (key release events unreliable)
		orbit.ApplyImpulse(inputTorque.yaw*dt, inputTorque.pitch*dt)
		inputTorque.yaw *= 0.9
		inputTorque.pitch *= 0.9

		// Springs decay the spin; apply what is left as orbit degrees.
		yawStep := orbit.Yaw.Update()
		pitchStep := orbit.Pitch.Update()
		camera.Orbit(math3d.Scalar(yawStep), math3d.Scalar(pitchStep))

		// Render
		fb.Clear(render.RGB(bgR, bgG, bgB))

		if showGrid {
			wire.DrawGrid(4, 0.5, render.RGB(50, 50, 65))
		}
		if showAxes {
			wire.DrawAxes(1.5)
		}
		wire.DrawMeshCulled(mesh, math3d.Identity(), wireColor)

		// Display
		fb.Draw(term, uv.Rect(0, 0, width, height))
		if err := term.Display(); err != nil {
			cleanup()
			return fmt.Errorf("display: %w", err)
		}

		// Frame timing
		elapsed := time.Since(now)
		if elapsed < targetDuration {
			time.Sleep(targetDuration - elapsed)
		}
	}
}

func aspectOf(fb *render.Framebuffer) math3d.Scalar {
	// Terminal cells are roughly twice as tall as wide; the half-block
	// framebuffer already compensates, so the ratio is plain width/height.
	return math3d.Scalar(fb.Width) / math3d.Scalar(fb.Height)
}
