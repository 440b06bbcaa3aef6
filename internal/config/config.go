package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/phanxgames/panzoom"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// EnvPrefix is prepended to environment overrides, e.g. PANZOOM_ZOOM_MAX.
const EnvPrefix = "PANZOOM"

// ZoomConfig holds the scale stepping settings.
type ZoomConfig struct {
	Increment float64 `json:"increment" mapstructure:"increment"`
	Min       float64 `json:"min" mapstructure:"min"`
	Max       float64 `json:"max" mapstructure:"max"`
}

// Config holds the viewer settings.
type Config struct {
	Image         string     `json:"image" mapstructure:"image"`
	Title         string     `json:"title" mapstructure:"title"`
	Width         int        `json:"width" mapstructure:"width"`
	Height        int        `json:"height" mapstructure:"height"`
	MarkerSpace   string     `json:"markerSpace" mapstructure:"markerSpace"`
	MarkerRadius  float64    `json:"markerRadius" mapstructure:"markerRadius"`
	WheelPixels   float64    `json:"wheelPixels" mapstructure:"wheelPixels"`
	DoubleClickMs int        `json:"doubleClickMs" mapstructure:"doubleClickMs"`
	Debug         bool       `json:"debug" mapstructure:"debug"`
	LogLevel      string     `json:"logLevel" mapstructure:"logLevel"`
	Script        string     `json:"script" mapstructure:"script"`
	ScreenshotDir string     `json:"screenshotDir" mapstructure:"screenshotDir"`
	Zoom          ZoomConfig `json:"zoom" mapstructure:"zoom"`
}

// flagKeys maps command line flags to config keys.
var flagKeys = map[string]string{
	"image":          "image",
	"title":          "title",
	"width":          "width",
	"height":         "height",
	"marker-space":   "markerSpace",
	"marker-radius":  "markerRadius",
	"wheel-pixels":   "wheelPixels",
	"double-click":   "doubleClickMs",
	"debug":          "debug",
	"log-level":      "logLevel",
	"script":         "script",
	"screenshot-dir": "screenshotDir",
	"zoom-increment": "zoom.increment",
	"zoom-min":       "zoom.min",
	"zoom-max":       "zoom.max",
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("image", "")
	v.SetDefault("title", "panzoom")
	v.SetDefault("width", 1024)
	v.SetDefault("height", 768)
	v.SetDefault("markerSpace", "absolute")
	v.SetDefault("markerRadius", 6.0)
	v.SetDefault("wheelPixels", 40.0)
	v.SetDefault("doubleClickMs", 300)
	v.SetDefault("debug", false)
	v.SetDefault("logLevel", "info")
	v.SetDefault("script", "")
	v.SetDefault("screenshotDir", "screenshots")

	v.SetDefault("zoom.increment", panzoom.DefaultZoomIncrement)
	v.SetDefault("zoom.min", panzoom.DefaultMinScale)
	v.SetDefault("zoom.max", panzoom.DefaultMaxScale)
}

// Flags returns the command line flags understood by Load. Values left at
// their zero default do not override the config file.
func Flags() *pflag.FlagSet {
	fs := pflag.NewFlagSet("panzoom", pflag.ContinueOnError)
	fs.StringP("config", "c", "", "config file (json, yaml or toml)")
	fs.StringP("image", "i", "", "image file to open")
	fs.String("title", "", "window title")
	fs.Int("width", 0, "window width in pixels")
	fs.Int("height", 0, "window height in pixels")
	fs.String("marker-space", "", "marker coordinate space: absolute or percentage")
	fs.Float64("marker-radius", 0, "marker dot radius in pixels")
	fs.Float64("wheel-pixels", 0, "scroll pixels per wheel notch")
	fs.Int("double-click", 0, "double-click window in milliseconds")
	fs.Bool("debug", false, "show the debug overlay")
	fs.String("log-level", "", "log level: debug, info, warn or error")
	fs.String("script", "", "JSON test script to run")
	fs.String("screenshot-dir", "", "directory for script screenshots")
	fs.Float64("zoom-increment", 0, "scale change per wheel notch")
	fs.Float64("zoom-min", 0, "minimum scale")
	fs.Float64("zoom-max", 0, "maximum scale")
	return fs
}

// Load builds the config from defaults, the optional config file named by
// the --config flag, PANZOOM_* environment variables and explicitly set
// flags, in increasing priority. fs may be nil.
func Load(fs *pflag.FlagSet) (Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if fs != nil {
		for name, key := range flagKeys {
			if f := fs.Lookup(name); f != nil && f.Changed {
				if err := v.BindPFlag(key, f); err != nil {
					return Config{}, fmt.Errorf("bind flag %s: %w", name, err)
				}
			}
		}
		if f := fs.Lookup("config"); f != nil && f.Value.String() != "" {
			v.SetConfigFile(f.Value.String())
			if err := v.ReadInConfig(); err != nil {
				return Config{}, fmt.Errorf("error reading config file: %w", err)
			}
		}
		// A positional argument names the image unless one is configured.
		if fs.NArg() > 0 && v.GetString("image") == "" {
			v.Set("image", fs.Arg(0))
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks value ranges and enumerations.
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: window size %dx%d", ErrInvalid, c.Width, c.Height)
	}
	if _, ok := panzoom.ParseSpace(c.MarkerSpace); !ok {
		return fmt.Errorf("%w: markerSpace %q", ErrInvalid, c.MarkerSpace)
	}
	if c.MarkerRadius <= 0 {
		return fmt.Errorf("%w: markerRadius %v", ErrInvalid, c.MarkerRadius)
	}
	if c.WheelPixels <= 0 {
		return fmt.Errorf("%w: wheelPixels %v", ErrInvalid, c.WheelPixels)
	}
	if c.DoubleClickMs <= 0 {
		return fmt.Errorf("%w: doubleClickMs %d", ErrInvalid, c.DoubleClickMs)
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	if err := c.PanZoom().Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	return nil
}

// PanZoom returns the zoom stepping settings.
func (c Config) PanZoom() panzoom.ZoomConfig {
	return panzoom.ZoomConfig{
		Increment: c.Zoom.Increment,
		MinScale:  c.Zoom.Min,
		MaxScale:  c.Zoom.Max,
	}
}

// Space returns the marker space. Validate must have passed.
func (c Config) Space() panzoom.Space {
	s, _ := panzoom.ParseSpace(c.MarkerSpace)
	return s
}

// DoubleClick returns the double-click window.
func (c Config) DoubleClick() time.Duration {
	return time.Duration(c.DoubleClickMs) * time.Millisecond
}

// Level parses LogLevel.
func (c Config) Level() (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("%w: logLevel %q", ErrInvalid, c.LogLevel)
	}
	return l, nil
}
