// Package config is the single source of truth for host-level settings:
// the typed engine configuration (internal/engine.Config), the keybind
// and frontend-option surfaces the INI/CLI layers populate, and the
// logging threshold. The engine itself never parses text; this package
// validates external input and pushes typed values into engine.Config
// (spec.md 4.10), in the style of the teacher's single-source-of-truth
// config package (DefaultLimits/Load) generalized from game-tuning knobs
// to FastStack's engine/host split.
package config

import (
	"os"
	"strconv"

	"faststack/internal/engine"
)

// Level is a FastStack logging threshold (spec.md 7).
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarning
	LevelError
	LevelFatal
)

func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarning:
		return "WARNING"
	case LevelError:
		return "ERROR"
	case LevelFatal:
		return "FATAL"
	default:
		return "UNKNOWN"
	}
}

// HostConfig is everything a FastStack frontend needs beyond the engine's
// own Config: the virtual-keybind table, opaque per-frontend options, and
// the process-wide logging threshold.
type HostConfig struct {
	Game engine.Config

	LogLevel Level

	// Keybinds maps a virtual key (spec.md 6: ROTR, ROTL, ROTH, LEFT,
	// RIGHT, DOWN, UP, HOLD, QUIT, RESTART) to one or more bound physical
	// key names; multi-valued per spec.md 6's keybind.* grammar.
	Keybinds map[string][]string

	// FrontendOptions holds opaque (key, value) pairs scoped to a named
	// frontend (spec.md 6/9's "frontend-specific options" indirection);
	// the engine and this package never interpret these.
	FrontendOptions map[string]map[string]string

	NoINI      bool
	ReplayFile string
}

// VirtualKeys is the fixed set of keys the keymap collaborator
// understands (spec.md 6); the engine never sees these directly.
var VirtualKeys = []string{
	"ROTR", "ROTL", "ROTH", "LEFT", "RIGHT", "DOWN", "UP", "HOLD", "QUIT", "RESTART",
}

// Default builds a HostConfig around engine.Default() with empty
// keybind/frontend tables and INFO-level logging.
func Default() HostConfig {
	return HostConfig{
		Game:            engine.Default(),
		LogLevel:        LevelInfo,
		Keybinds:        make(map[string][]string),
		FrontendOptions: make(map[string]map[string]string),
	}
}

// FromEnv overlays a handful of environment-variable toggles onto
// Default(), mirroring the teacher's FooFromEnv() helpers (VideoFromEnv,
// ServerFromEnv): the deployment-level knobs a process manager sets
// without touching an INI file.
func FromEnv() HostConfig {
	cfg := Default()

	if seed := getEnvInt64("FASTSTACK_SEED", 0); seed != 0 {
		cfg.Game.RandomizerSeed = seed
	}
	if v := os.Getenv("FASTSTACK_NO_INI"); v == "1" || v == "true" {
		cfg.NoINI = true
	}

	return cfg
}

func getEnvInt64(key string, defaultVal int64) int64 {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.ParseInt(v, 10, 64); err == nil {
			return i
		}
	}
	return defaultVal
}
