package config

import (
	"strconv"
	"strings"

	"faststack/internal/engine"
)

// Warning is one rejected or ignored line/assignment from ParseINI,
// carrying enough context for the logging façade to report it at
// WARNING level per spec.md 7 ("Unknown config key: warning + ignore",
// "Numeric parse errors ... warning + ignore").
type Warning struct {
	Line    int
	Message string
}

const (
	maxLineLen = 512
	maxNameLen = 32
)

// ParseINI applies the custom INI-shaped grammar of spec.md 6 onto cfg,
// in document order, and returns every rejected line or assignment as a
// Warning rather than failing the parse. Grammar:
//   - `[group]` sets the active section prefix; `[]` clears it.
//   - `;` as the first non-space character marks a full-line comment.
//   - `key = v1, v2, v3` assigns the same key once per comma-separated
//     value, trailing comma tolerated; this is how multi-valued
//     `keybind.*` keys accumulate more than one physical key binding.
//   - Recognised groups: `game.*`, `keybind.*`, `frontend.<name>.*`;
//     anything else is an unrecognised key, warned and ignored.
func ParseINI(data string, cfg *HostConfig) []Warning {
	var warnings []Warning
	group := ""

	for lineNo, rawLine := range strings.Split(data, "\n") {
		line := strings.TrimRight(rawLine, "\r")
		if len(line) > maxLineLen {
			warnings = append(warnings, Warning{lineNo + 1, "line exceeds 512 bytes, ignored"})
			continue
		}

		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		if trimmed[0] == ';' {
			continue
		}

		if strings.HasPrefix(trimmed, "[") && strings.HasSuffix(trimmed, "]") {
			name := strings.TrimSpace(trimmed[1 : len(trimmed)-1])
			if name == "" {
				group = ""
				continue
			}
			if len(name) > maxNameLen {
				warnings = append(warnings, Warning{lineNo + 1, "group name exceeds 32 bytes, ignored"})
				continue
			}
			group = strings.ToLower(name)
			continue
		}

		eq := strings.IndexByte(trimmed, '=')
		if eq < 0 {
			warnings = append(warnings, Warning{lineNo + 1, "missing '=' in assignment, ignored"})
			continue
		}

		key := strings.ToLower(strings.TrimSpace(trimmed[:eq]))
		if group != "" {
			key = group + "." + key
		}
		if len(key) > maxNameLen {
			warnings = append(warnings, Warning{lineNo + 1, "key exceeds 32 bytes, ignored"})
			continue
		}

		values := strings.Split(trimmed[eq+1:], ",")
		for _, v := range values {
			v = strings.TrimSpace(v)
			if v == "" {
				continue // tolerate a trailing comma
			}
			if len(v) > maxNameLen {
				warnings = append(warnings, Warning{lineNo + 1, "value exceeds 32 bytes, ignored"})
				continue
			}
			if w := applyAssignment(cfg, key, v); w != "" {
				warnings = append(warnings, Warning{lineNo + 1, w})
			}
		}
	}

	return warnings
}

// applyAssignment routes one (key, value) pair to the engine config, the
// keybind table, or a frontend's opaque option bag, returning a non-empty
// warning message on rejection.
func applyAssignment(cfg *HostConfig, key, value string) string {
	switch {
	case strings.HasPrefix(key, "game."):
		return applyGameKey(&cfg.Game, strings.TrimPrefix(key, "game."), value)

	case strings.HasPrefix(key, "keybind."):
		vkey := strings.ToUpper(strings.TrimPrefix(key, "keybind."))
		cfg.Keybinds[vkey] = append(cfg.Keybinds[vkey], value)
		return ""

	case strings.HasPrefix(key, "frontend."):
		rest := strings.TrimPrefix(key, "frontend.")
		dot := strings.IndexByte(rest, '.')
		if dot < 0 {
			return "malformed frontend key (expected frontend.<name>.<key>), ignored"
		}
		name, optKey := rest[:dot], rest[dot+1:]
		if cfg.FrontendOptions[name] == nil {
			cfg.FrontendOptions[name] = make(map[string]string)
		}
		cfg.FrontendOptions[name][optKey] = value
		return ""

	default:
		return "unrecognised config key '" + key + "', ignored"
	}
}

// applyGameKey validates and applies one game.<key> assignment. Unknown
// enum tokens, out-of-range numerics, and non-numeric garbage are all
// warn-and-ignore per spec.md 7; the previous value is retained.
func applyGameKey(g *engine.Config, key, value string) string {
	switch key {
	case "fieldwidth":
		n, w := parseIntWarn(value)
		if w != "" {
			return w
		}
		if n <= 0 || n > engine.MaxFieldWidth {
			return "fieldWidth out of range, ignored"
		}
		g.FieldWidth = n

	case "fieldheight":
		n, w := parseIntWarn(value)
		if w != "" {
			return w
		}
		if n <= 0 || n > engine.MaxFieldHeight {
			return "fieldHeight out of range, ignored"
		}
		g.FieldHeight = n

	case "mspertick":
		n, w := parseIntWarn(value)
		if w != "" {
			return w
		}
		if n <= 0 {
			return "msPerTick must be positive, ignored"
		}
		g.MsPerTick = n

	case "msperdraw":
		n, w := parseIntWarn(value)
		if w != "" {
			return w
		}
		g.MsPerDraw = n

	case "aredelay":
		n, w := parseIntWarn(value)
		if w != "" {
			return w
		}
		if n < 0 {
			return "areDelay must be non-negative, ignored"
		}
		g.AreDelay = n

	case "arecancellable":
		b, w := parseBoolWarn(value)
		if w != "" {
			return w
		}
		g.AreCancellable = b

	case "lockstyle":
		switch strings.ToUpper(value) {
		case "ENTRY":
			g.LockStyle = engine.LockEntry
		case "STEP":
			g.LockStyle = engine.LockStep
		case "MOVE":
			g.LockStyle = engine.LockMove
		default:
			return "unknown lockStyle '" + value + "', ignored"
		}

	case "lockdelay":
		n, w := parseIntWarn(value)
		if w != "" {
			return w
		}
		if n < 0 {
			return "lockDelay must be non-negative, ignored"
		}
		g.LockDelay = n

	case "rotationsystem":
		rs, ok := parseRotationSystem(value)
		if !ok {
			return "unknown rotationSystem '" + value + "', ignored"
		}
		g.RotationSystem = rs

	case "gravity":
		f, w := parseFloatWarn(value)
		if w != "" {
			return w
		}
		g.Gravity = f

	case "softdropgravity":
		f, w := parseFloatWarn(value)
		if w != "" {
			return w
		}
		g.SoftDropGravity = f

	case "nextpiececount":
		n, w := parseIntWarn(value)
		if w != "" {
			return w
		}
		if n <= 0 || n > engine.PreviewMax {
			return "nextPieceCount out of range, ignored"
		}
		g.NextPieceCount = n

	case "goal":
		n, w := parseIntWarn(value)
		if w != "" {
			return w
		}
		if n <= 0 {
			return "goal must be positive, ignored"
		}
		g.Goal = n

	case "readyphaselength":
		n, w := parseIntWarn(value)
		if w != "" {
			return w
		}
		g.ReadyPhaseLength = n

	case "gophaselength":
		n, w := parseIntWarn(value)
		if w != "" {
			return w
		}
		g.GoPhaseLength = n

	case "infinitereadygohold":
		b, w := parseBoolWarn(value)
		if w != "" {
			return w
		}
		g.InfiniteReadyGoHold = b

	case "floorkicklimit":
		n, w := parseIntWarn(value)
		if w != "" {
			return w
		}
		g.FloorkickLimit = n

	case "initialactionstyle":
		switch strings.ToUpper(value) {
		case "NONE":
			g.InitialActionStyle = engine.InitialActionNone
		case "PERSISTENT":
			g.InitialActionStyle = engine.InitialActionPersistent
		case "TRIGGER":
			g.InitialActionStyle = engine.InitialActionTrigger
		default:
			return "unknown initialActionStyle '" + value + "', ignored"
		}

	case "oneshotsoftdrop":
		b, w := parseBoolWarn(value)
		if w != "" {
			return w
		}
		g.OneShotSoftDrop = b

	case "randomizer":
		r, ok := parseRandomizer(value)
		if !ok {
			return "unknown randomizer '" + value + "', ignored"
		}
		g.Randomizer = r

	case "randomizerseed":
		n, w := parseIntWarn(value)
		if w != "" {
			return w
		}
		g.RandomizerSeed = int64(n)

	default:
		return "unrecognised game.* key '" + key + "', ignored"
	}

	return ""
}

func parseRotationSystem(value string) (engine.RotationSystem, bool) {
	switch strings.ToUpper(value) {
	case "SIMPLE":
		return engine.RotSimple, true
	case "SEGA":
		return engine.RotSega, true
	case "SRS":
		return engine.RotSRS, true
	case "ARIKA_SRS":
		return engine.RotArikaSRS, true
	case "TGM12":
		return engine.RotTGM12, true
	case "TGM3":
		return engine.RotTGM3, true
	case "DTET":
		return engine.RotDTET, true
	default:
		return 0, false
	}
}

func parseRandomizer(value string) (engine.RandomizerType, bool) {
	switch strings.ToUpper(value) {
	case "SIMPLE":
		return engine.RandSimple, true
	case "NOSZO_BAG7":
		return engine.RandNoSZOBag7, true
	case "TGM1":
		return engine.RandTGM1, true
	case "TGM2":
		return engine.RandTGM2, true
	default:
		return 0, false
	}
}

func parseIntWarn(value string) (int, string) {
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, "expected integer, got '" + value + "', ignored"
	}
	return n, ""
}

func parseFloatWarn(value string) (float64, string) {
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, "expected number, got '" + value + "', ignored"
	}
	return f, ""
}

func parseBoolWarn(value string) (bool, string) {
	b, err := strconv.ParseBool(value)
	if err != nil {
		return false, "expected boolean, got '" + value + "', ignored"
	}
	return b, ""
}
