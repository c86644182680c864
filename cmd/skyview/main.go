package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"skyview/config"
	"skyview/core"
	"skyview/internal/opengl"
	"skyview/scene"
)

func main() {
	configPath := flag.String("config", "skyview.yml", "Path to the YAML config file (optional)")
	shadows := flag.Bool("shadows", false, "Enable the shadow-map pass and draw the lit scene")
	skyboxDir := flag.String("skybox-dir", "", "Directory holding the six cubemap face images")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "skyview: %v\n", err)
		os.Exit(1)
	}
	cfg.ApplyOverrides(config.Overrides{Shadows: *shadows, SkyboxDir: *skyboxDir})

	logger := cfg.NewLogger()
	slog.SetDefault(logger)

	if err := run(logger, cfg); err != nil {
		logger.Error("exercise failed", "error", err)
		os.Exit(1)
	}
}

func run(logger *slog.Logger, cfg config.Config) error {
	window, err := core.NewWindow(core.WindowConfig{
		Width:         cfg.Window.Width,
		Height:        cfg.Window.Height,
		Title:         cfg.Window.Title,
		Resizable:     true,
		VSync:         cfg.Window.VSync,
		CaptureCursor: cfg.Window.CaptureCursor,
	})
	if err != nil {
		return err
	}
	defer window.Destroy()

	faces, err := scene.LoadCubemapFaces(logger, cfg.Skybox.Dir, cfg.Skybox.Faces)
	if err != nil {
		// Drawing still works; the sky samples an empty texture.
		logger.Warn("skybox has no faces", "dir", cfg.Skybox.Dir, "error", err)
	}

	fbW, fbH := window.GetFramebufferSize()
	renderer, err := opengl.NewRenderer(logger, opengl.Options{
		Width:          fbW,
		Height:         fbH,
		FOV:            cfg.Camera.FOV,
		SkyboxFOV:      cfg.Camera.SkyboxFOV,
		ShadowsEnabled: cfg.Shadows.Enabled,
		ShadowSize:     cfg.Shadows.Size,
		Faces:          faces,
		Light:          scene.DefaultLight(),
	})
	if err != nil {
		return err
	}
	defer renderer.Destroy()

	camera := scene.NewFlyCamera()
	camera.Speed = cfg.Camera.Speed
	camera.Sensitivity = cfg.Camera.Sensitivity

	window.SetResizeHandler(renderer.SetViewport)
	window.SetCursorHandler(camera.Look)

	logger.Info("render loop started",
		"width", fbW, "height", fbH,
		"shadows", renderer.ShadowsEnabled(),
		"faces", faces.Loaded())

	var clock scene.FrameClock
	for !window.ShouldClose() {
		dt := clock.Tick(window.Time())

		processInput(window, camera, dt)

		renderer.DrawFrame(opengl.FrameInput{
			View:       camera.ViewMatrix(),
			SkyboxView: camera.SkyboxView(),
			EyePos:     camera.Position,
		})

		window.PollEvents()
		window.SwapBuffers()
	}

	logger.Info("exiting")
	return nil
}

var movementKeys = []struct {
	key int
	dir scene.Direction
}{
	{core.KeyW, scene.Forward},
	{core.KeyA, scene.Left},
	{core.KeyS, scene.Backward},
	{core.KeyD, scene.Right},
}

func processInput(window *core.Window, camera *scene.FlyCamera, dt float32) {
	if window.IsKeyPressed(core.KeyEscape) {
		window.SetShouldClose(true)
	}
	for _, mk := range movementKeys {
		if window.IsKeyPressed(mk.key) {
			camera.Move(mk.dir, dt)
		}
	}
}
