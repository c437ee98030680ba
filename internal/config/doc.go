// Package config provides configuration management for game-manager.
//
// This package handles:
//   - Loading settings from a YAML file with GAMECAT_ environment overrides
//   - Saving settings back to YAML
//   - Default configuration values
//
// # Default Settings
//
//	settings := config.DefaultSettings()
//	// Catalog in ./games.xml
//	// Audio cues from the working directory
//
// # Loading from File
//
//	settings, err := config.Load("/path/to/gamecat.yaml")
//	// A missing file yields the defaults.
//	// GAMECAT_DATA_FILE=/tmp/games.json overrides data_file,
//	// GAMECAT_AUDIO_ENABLED=false turns sound off.
//
// Passing an empty path searches for gamecat.yaml in the working directory
// and then in the user config directory (see DefaultDir).
//
// # Saving Settings
//
//	settings.DataFile = "/home/user/games.xml"
//	err := settings.Save("/path/to/gamecat.yaml")
package config
