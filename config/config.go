package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"skyview/scene"
)

// Config is the optional on-disk configuration. Every field has a default
// so a missing file reproduces the stock exercise.
type Config struct {
	Window   WindowConfig `yaml:"window"`
	Camera   CameraConfig `yaml:"camera"`
	Skybox   SkyboxConfig `yaml:"skybox"`
	Shadows  ShadowConfig `yaml:"shadows"`
	LogLevel string       `yaml:"log_level"`
}

type WindowConfig struct {
	Width         int    `yaml:"width"`
	Height        int    `yaml:"height"`
	Title         string `yaml:"title"`
	VSync         bool   `yaml:"vsync"`
	CaptureCursor bool   `yaml:"capture_cursor"`
}

type CameraConfig struct {
	Speed       float32 `yaml:"speed"`
	Sensitivity float32 `yaml:"sensitivity"`
	FOV         float32 `yaml:"fov"`
	SkyboxFOV   float32 `yaml:"skybox_fov"`
}

type SkyboxConfig struct {
	Dir   string   `yaml:"dir"`
	Faces []string `yaml:"faces"`
}

type ShadowConfig struct {
	Enabled bool `yaml:"enabled"`
	Size    int  `yaml:"size"`
}

func Default() Config {
	faces := make([]string, len(scene.DefaultCubemapFaces))
	copy(faces, scene.DefaultCubemapFaces)

	return Config{
		Window: WindowConfig{
			Width:         800,
			Height:        600,
			Title:         "Programming Exercise 1",
			VSync:         true,
			CaptureCursor: true,
		},
		Camera: CameraConfig{
			Speed:       scene.DefaultCameraSpeed,
			Sensitivity: scene.DefaultMouseSensitivity,
			FOV:         45,
			SkyboxFOV:   90,
		},
		Skybox: SkyboxConfig{
			Dir:   ".",
			Faces: faces,
		},
		Shadows: ShadowConfig{
			Enabled: false,
			Size:    2048,
		},
		LogLevel: "info",
	}
}

// Load reads path over the defaults. An empty path or a missing file
// yields the defaults unchanged.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config %q: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %q: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %q: %w", path, err)
	}
	return cfg, nil
}

func (c Config) Validate() error {
	var errs []error
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height))
	}
	if c.Camera.Speed < 0 {
		errs = append(errs, fmt.Errorf("camera speed must not be negative, got %v", c.Camera.Speed))
	}
	if c.Camera.Sensitivity <= 0 {
		errs = append(errs, fmt.Errorf("camera sensitivity must be positive, got %v", c.Camera.Sensitivity))
	}
	if c.Camera.FOV <= 0 || c.Camera.FOV >= 180 {
		errs = append(errs, fmt.Errorf("camera fov must be in (0,180), got %v", c.Camera.FOV))
	}
	if c.Camera.SkyboxFOV <= 0 || c.Camera.SkyboxFOV >= 180 {
		errs = append(errs, fmt.Errorf("skybox fov must be in (0,180), got %v", c.Camera.SkyboxFOV))
	}
	if len(c.Skybox.Faces) != scene.CubemapFaceCount {
		errs = append(errs, fmt.Errorf("skybox needs %d faces, got %d", scene.CubemapFaceCount, len(c.Skybox.Faces)))
	}
	if c.Shadows.Size <= 0 {
		errs = append(errs, fmt.Errorf("shadow map size must be positive, got %d", c.Shadows.Size))
	}
	if _, err := ParseLevel(c.LogLevel); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// Overrides carries command-line values layered over the file config.
// Zero values leave the config untouched.
type Overrides struct {
	Shadows   bool
	SkyboxDir string
}

func (c *Config) ApplyOverrides(o Overrides) {
	if o.Shadows {
		c.Shadows.Enabled = true
	}
	if o.SkyboxDir != "" {
		c.Skybox.Dir = o.SkyboxDir
	}
}

// ParseLevel maps a log_level string to a slog level.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return slog.LevelInfo, fmt.Errorf("unknown log level %q", s)
}

// NewLogger builds the process logger: text output on stderr at the
// configured level.
func (c Config) NewLogger() *slog.Logger {
	level, err := ParseLevel(c.LogLevel)
	if err != nil {
		level = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}
