package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	ioutils "github.com/handiism/game-manager/internal/io"
	"github.com/handiism/game-manager/internal/logging"
	"github.com/kjk/common/atomicfile"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// EnvPrefix is the prefix of environment variables that override settings.
const EnvPrefix = "GAMECAT"

// FileName is the base name of the configuration file searched for by Load.
const FileName = "gamecat"

// Settings holds all configuration options.
type Settings struct {
	// DataFile is the catalog document path.
	DataFile string `mapstructure:"data_file" yaml:"data_file"`

	// Format forces the document format (xml, json, yaml).
	// Empty means "pick from the DataFile extension".
	Format string `mapstructure:"format" yaml:"format"`

	Audio AudioSettings  `mapstructure:"audio" yaml:"audio"`
	Log   logging.Config `mapstructure:"log" yaml:"log"`
	UI    UISettings     `mapstructure:"ui" yaml:"ui"`
}

// AudioSettings configures music and sound effects.
type AudioSettings struct {
	Enabled bool `mapstructure:"enabled" yaml:"enabled"`

	// Command is the external player, for example "ffplay". Empty means
	// the first known player found on PATH.
	Command string `mapstructure:"command" yaml:"command"`

	// CuesDir holds Success.wav, Error.wav, Select.wav, Back.wav and Message.wav.
	CuesDir string `mapstructure:"cues_dir" yaml:"cues_dir"`

	// Music is the background track; relative paths are resolved against CuesDir.
	Music string `mapstructure:"music" yaml:"music"`

	MusicVolume float64 `mapstructure:"music_volume" yaml:"music_volume"`
	CueVolume   float64 `mapstructure:"cue_volume" yaml:"cue_volume"`

	// CueHoldMillis is how long the UI waits for a cue to finish.
	CueHoldMillis int `mapstructure:"cue_hold_ms" yaml:"cue_hold_ms"`
}

// UISettings configures the interactive menu.
type UISettings struct {
	// PauseAfterAction keeps results on screen until a key is pressed.
	PauseAfterAction bool `mapstructure:"pause_after_action" yaml:"pause_after_action"`
}

// DefaultSettings returns settings with default values.
func DefaultSettings() *Settings {
	return &Settings{
		DataFile: "games.xml",
		Audio: AudioSettings{
			Enabled:       true,
			CuesDir:       ".",
			Music:         "Menu 2.wav",
			MusicVolume:   0.5,
			CueVolume:     1.0,
			CueHoldMillis: 700,
		},
		Log: logging.Config{
			Level:  "info",
			Format: "json",
		},
		UI: UISettings{
			PauseAfterAction: true,
		},
	}
}

// DefaultDir returns the per-user configuration directory.
func DefaultDir() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".config", "gamecat")
	}
	return filepath.Join(dir, "gamecat")
}

// Load reads settings from a YAML file and the environment.
//
// A missing file is not an error; defaults are used for everything the
// environment does not set.
func Load(path string) (*Settings, error) {
	v := viper.New()
	setDefaults(v, DefaultSettings())

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
	} else {
		v.SetConfigName(FileName)
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath(DefaultDir())
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	}

	settings := &Settings{}
	if err := v.Unmarshal(settings); err != nil {
		return nil, fmt.Errorf("config: decode: %w", err)
	}

	if err := settings.Validate(); err != nil {
		return nil, err
	}
	return settings, nil
}

// setDefaults registers every key so that environment overrides apply
// even when the file does not mention the key.
func setDefaults(v *viper.Viper, s *Settings) {
	v.SetDefault("data_file", s.DataFile)
	v.SetDefault("format", s.Format)

	v.SetDefault("audio.enabled", s.Audio.Enabled)
	v.SetDefault("audio.command", s.Audio.Command)
	v.SetDefault("audio.cues_dir", s.Audio.CuesDir)
	v.SetDefault("audio.music", s.Audio.Music)
	v.SetDefault("audio.music_volume", s.Audio.MusicVolume)
	v.SetDefault("audio.cue_volume", s.Audio.CueVolume)
	v.SetDefault("audio.cue_hold_ms", s.Audio.CueHoldMillis)

	v.SetDefault("log.level", s.Log.Level)
	v.SetDefault("log.format", s.Log.Format)
	v.SetDefault("log.output", s.Log.Output)

	v.SetDefault("ui.pause_after_action", s.UI.PauseAfterAction)
}

// Validate checks the settings for errors.
func (s *Settings) Validate() error {
	if strings.TrimSpace(s.DataFile) == "" {
		return fmt.Errorf("config: data_file is required")
	}
	switch strings.ToLower(s.Format) {
	case "", "xml", "json", "yaml", "yml":
	default:
		return fmt.Errorf("config: format %q is not one of xml, json, yaml", s.Format)
	}
	if s.Audio.MusicVolume < 0 || s.Audio.MusicVolume > 1 {
		return fmt.Errorf("config: audio.music_volume %v must be between 0 and 1", s.Audio.MusicVolume)
	}
	if s.Audio.CueVolume < 0 || s.Audio.CueVolume > 1 {
		return fmt.Errorf("config: audio.cue_volume %v must be between 0 and 1", s.Audio.CueVolume)
	}
	if s.Audio.CueHoldMillis < 0 {
		return fmt.Errorf("config: audio.cue_hold_ms must not be negative")
	}
	return nil
}

// Save writes settings to a YAML file, creating its directory if needed.
// An existing file is replaced only once the new one is fully written.
func (s *Settings) Save(path string) error {
	if err := ioutils.EnsureDir(filepath.Dir(path)); err != nil {
		return err
	}

	data, err := yaml.Marshal(s)
	if err != nil {
		return err
	}

	f, err := atomicfile.New(path)
	if err != nil {
		return err
	}
	defer f.RemoveIfNotClosed()

	if _, err := f.Write(data); err != nil {
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	return os.Chmod(path, ioutils.FileMode)
}

// CueHold returns the cue hold time as a duration.
func (s *Settings) CueHold() time.Duration {
	return time.Duration(s.Audio.CueHoldMillis) * time.Millisecond
}

// MusicPath returns the background music path, resolved against CuesDir.
func (s *Settings) MusicPath() string {
	if s.Audio.Music == "" || filepath.IsAbs(s.Audio.Music) {
		return s.Audio.Music
	}
	return filepath.Join(s.Audio.CuesDir, s.Audio.Music)
}

// LogOutput returns where logs go. When unset, logs are written to
// gamecat.log next to the catalog file.
func (s *Settings) LogOutput() string {
	if s.Log.Output != "" {
		return s.Log.Output
	}
	return filepath.Join(filepath.Dir(s.DataFile), FileName+".log")
}
