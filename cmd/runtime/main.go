// Command runtime is the minimal windowed host: one full-window viewport
// rendered from the engine's primary flying camera.
package main

import (
	"time"

	"go.uber.org/zap"

	"github.com/dyngine/dyngine/cmd/internal/gpuhost"
	"github.com/dyngine/dyngine/cmd/internal/hostcfg"
	"github.com/dyngine/dyngine/common"
	"github.com/dyngine/dyngine/engine"
	"github.com/dyngine/dyngine/engine/input"
	"github.com/dyngine/dyngine/engine/window"
	"github.com/dyngine/dyngine/i18n"
)

// primaryDevice is the device id assigned to the window's keyboard and mouse;
// GLFW does not distinguish input devices, so the host reports everything as
// one device.
const primaryDevice input.DeviceID = 0

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	cfg, err := hostcfg.Load("config.yaml")
	if err != nil {
		logger.Warn("config load failed, using defaults", zap.Error(err))
	}

	translator, err := i18n.New(cfg.Locale)
	if err != nil {
		logger.Fatal("failed to load message catalogs", zap.Error(err))
	}

	title := cfg.Title
	if title == "" {
		title = translator.Format("window-title", nil)
	}
	win := window.NewWindow(
		window.WithTitle(title),
		window.WithWidth(cfg.Width),
		window.WithHeight(cfg.Height),
	)
	defer win.Close()

	ctx, err := gpuhost.NewContext(win.SurfaceDescriptor(), win.Width(), win.Height(), cfg.SampleCount)
	if err != nil {
		logger.Fatal("failed to initialize GPU context", zap.Error(err))
	}

	eng := engine.New(ctx.Device(), ctx.Queue(), ctx.SurfaceConfig(),
		engine.WithLogger(logger),
		engine.WithSampleCount(cfg.SampleCount),
	)
	if err := eng.Start(); err != nil {
		logger.Fatal("failed to start engine", zap.Error(err))
	}
	cameraHandle, _ := eng.PrimaryCamera()

	viewport := func() common.ViewportRegion {
		return common.ViewportRegion{
			Width:  float32(win.Width()),
			Height: float32(win.Height()),
		}
	}

	win.SetKeyCallback(func(key common.Key, pressed bool) {
		eng.HandleKeyState(primaryDevice, key, pressed)
	})
	win.SetMouseButtonCallback(func(button common.MouseButton, pressed bool) {
		eng.HandleMouseButtonEvent(primaryDevice, button, pressed)
	})
	win.SetMouseMotionCallback(func(dx, dy float64) {
		eng.HandleMouseMotion(primaryDevice, dx, dy)
	})
	win.SetScrollCallback(func(delta float32) {
		// GLFW wheel events carry no gesture phases.
		eng.HandleMouseWheel(primaryDevice, delta, common.ScrollPhaseMoved)
	})
	win.SetResizeCallback(func(width, height int) {
		if width == 0 || height == 0 {
			return
		}
		if err := ctx.Configure(width, height); err != nil {
			logger.Error("surface reconfigure failed", zap.Error(err))
			return
		}
		eng.Resize(viewport())
	})

	lastFrame := time.Now()
	win.SetUpdateCallback(func() {
		now := time.Now()
		deltaTime := now.Sub(lastFrame).Seconds()
		lastFrame = now

		surfaceTexture, view, err := ctx.AcquireFrame()
		if err != nil {
			// Usually an outdated surface mid-resize; the next configure heals it.
			logger.Warn(translator.Format("surface-lost", nil), zap.Error(err))
			return
		}

		encoder, err := ctx.Device().CreateCommandEncoder(nil)
		if err != nil {
			logger.Error("failed to create command encoder", zap.Error(err))
			view.Release()
			surfaceTexture.Release()
			return
		}

		if err := eng.Render(encoder, view, ctx.MSAAView(), viewport(), cameraHandle, deltaTime); err != nil {
			logger.Error("render failed", zap.Error(err))
		}

		commandBuffer, err := encoder.Finish(nil)
		if err == nil {
			ctx.Queue().Submit(commandBuffer)
			commandBuffer.Release()
		} else {
			logger.Error("failed to finish command encoder", zap.Error(err))
		}
		encoder.Release()

		ctx.Present()
		view.Release()
		surfaceTexture.Release()
	})

	logger.Info(translator.Format("engine-started", nil), zap.String("locale", translator.Tag().String()))
	win.ProcessMessages()
}
