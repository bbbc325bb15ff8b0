// Package config loads user settings from TOML and the environment.
// Only presentation and collaborator settings live here; simulation
// constants stay fixed in the parameter package.
package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/lixenwraith/shooter-snake/audio"
	"github.com/lixenwraith/shooter-snake/input"
	"github.com/lixenwraith/shooter-snake/parameter"
)

// EnvPrefix prefixes every environment override
const EnvPrefix = "SHOOTER_SNAKE_"

var (
	ErrInvalidAction = errors.New("invalid key binding")
	ErrInvalidSound  = errors.New("invalid sound volume")
	ErrInvalidFormat = errors.New("invalid spectate format")
)

type AudioConfig struct {
	Enabled      bool               `toml:"enabled"`
	MasterVolume float64            `toml:"master_volume"`
	SampleRate   int                `toml:"sample_rate"`
	Volumes      map[string]float64 `toml:"volumes"`
}

type LogConfig struct {
	Debug bool   `toml:"debug"`
	Dir   string `toml:"dir"`
}

type SpectateConfig struct {
	Enabled    bool   `toml:"enabled"`
	Addr       string `toml:"addr"`
	IntervalMs int    `toml:"interval_ms"`
	Format     string `toml:"format"`
}

type RenderConfig struct {
	ColorMode string `toml:"color_mode"`
}

// Config is the root of the settings file
type Config struct {
	Seed     uint64            `toml:"seed"`
	Audio    AudioConfig       `toml:"audio"`
	Keys     map[string]string `toml:"keys"`
	Log      LogConfig         `toml:"log"`
	Spectate SpectateConfig    `toml:"spectate"`
	Render   RenderConfig      `toml:"render"`
}

// Default returns the settings used when no file exists
// Seed 0 means a time-based seed chosen at startup
func Default() *Config {
	return &Config{
		Audio: AudioConfig{
			Enabled:      true,
			MasterVolume: parameter.AudioMasterVolume,
			SampleRate:   parameter.AudioSampleRate,
			Volumes:      map[string]float64{},
		},
		Keys: map[string]string{},
		Log:  LogConfig{Dir: "logs"},
		Spectate: SpectateConfig{
			Addr:       "127.0.0.1:8080",
			IntervalMs: 100,
			Format:     "json",
		},
		Render: RenderConfig{ColorMode: "auto"},
	}
}

// Load reads path over the defaults, then applies environment overrides
// A missing file is not an error
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := cfg.decode(data); err != nil {
				return nil, fmt.Errorf("config %s: %w", path, err)
			}
		case errors.Is(err, os.ErrNotExist):
		default:
			return nil, fmt.Errorf("config read: %w", err)
		}
	}
	cfg.ApplyEnv(os.Getenv)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Parse decodes TOML over the defaults without touching the environment
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := cfg.decode(data); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) decode(data []byte) error {
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(c); err != nil {
		var strict *toml.StrictMissingError
		if errors.As(err, &strict) {
			return fmt.Errorf("unknown settings:\n%s", strict.String())
		}
		return fmt.Errorf("toml decode: %w", err)
	}
	return nil
}

// ApplyEnv overrides settings from SHOOTER_SNAKE_* variables
// Unparseable values are ignored
func (c *Config) ApplyEnv(getenv func(string) string) {
	if v := getenv(EnvPrefix + "AUDIO_ENABLED"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.Audio.Enabled = b
		}
	}
	// Master volume 0-100 converted to 0.0-1.0
	if v := getenv(EnvPrefix + "MASTER_VOLUME"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.Audio.MasterVolume = float64(n) / 100.0
		}
	}
	if v := getenv(EnvPrefix + "SAMPLE_RATE"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			c.Audio.SampleRate = n
		}
	}
	// Per-sound volumes as a JSON object, e.g. {"eat":0.5}
	if v := getenv(EnvPrefix + "SFX_VOLUMES"); v != "" {
		var volumes map[string]float64
		if err := json.Unmarshal([]byte(v), &volumes); err == nil {
			if c.Audio.Volumes == nil {
				c.Audio.Volumes = make(map[string]float64, len(volumes))
			}
			for name, vol := range volumes {
				c.Audio.Volumes[name] = vol
			}
		}
	}
	if v := getenv(EnvPrefix + "DEBUG"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.Log.Debug = b
		}
	}
	if v := getenv(EnvPrefix + "SPECTATE_ADDR"); v != "" {
		c.Spectate.Addr = v
		c.Spectate.Enabled = true
	}
	if v := getenv(EnvPrefix + "SEED"); v != "" {
		if n, err := strconv.ParseUint(v, 10, 64); err == nil {
			c.Seed = n
		}
	}
}

// Validate checks every name that must resolve to a known value
func (c *Config) Validate() error {
	if _, err := c.Keymap(); err != nil {
		return err
	}
	if _, err := c.AudioSettings(); err != nil {
		return err
	}
	switch strings.ToLower(c.Spectate.Format) {
	case "", "json", "msgpack":
	default:
		return fmt.Errorf("%w: %q", ErrInvalidFormat, c.Spectate.Format)
	}
	return nil
}

// Keymap applies the [keys] table over the default bindings
func (c *Config) Keymap() (*input.Keymap, error) {
	km, err := input.WithOverrides(input.DefaultKeymap(), c.Keys)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidAction, err)
	}
	return km, nil
}

// AudioSettings converts the [audio] section for the sound manager
func (c *Config) AudioSettings() (*audio.Config, error) {
	out := &audio.Config{
		Enabled:       c.Audio.Enabled,
		MasterVolume:  c.Audio.MasterVolume,
		SampleRate:    c.Audio.SampleRate,
		EffectVolumes: make(map[audio.SoundType]float64, len(c.Audio.Volumes)),
	}
	for name, v := range c.Audio.Volumes {
		st, err := audio.ParseSoundType(name)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidSound, err)
		}
		out.EffectVolumes[st] = v
	}
	out.Normalize()
	return out, nil
}

// Marshal encodes the settings as TOML
func (c *Config) Marshal() ([]byte, error) {
	data, err := toml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("toml encode: %w", err)
	}
	return data, nil
}

// WriteDefault writes the default settings to path, refusing to overwrite
func WriteDefault(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config %s already exists", path)
	}
	data, err := Default().Marshal()
	if err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("config dir: %w", err)
		}
	}
	return os.WriteFile(path, data, 0644)
}
