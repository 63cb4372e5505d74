package config

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config captures runtime configuration for the narrator.
type Config struct {
	UI      UI
	Speech  Speech
	Logging Logging
	Flags   map[string]string
	Args    []string
}

// UI configures the demo terminal front end.
type UI struct {
	Width  int
	Height int
}

// Speech configures announcement behavior.
type Speech struct {
	HistorySize int
	Sound       bool
	HintDelay   time.Duration
}

type Logging struct {
	FilePath string
	Trace    bool
	Verbose  bool
}

const (
	envWidth     = "NARRATOR_WIDTH"
	envHeight    = "NARRATOR_HEIGHT"
	envHistory   = "NARRATOR_HISTORY"
	envSound     = "NARRATOR_SOUND"
	envHintDelay = "NARRATOR_HINT_DELAY"
	envVerbose   = "NARRATOR_VERBOSE"
	envTrace     = "NARRATOR_TRACE"
	envLogFile   = "NARRATOR_LOG_FILE"
)

const defaultHistorySize = 10

// Load parses configuration from CLI arguments and environment variables.
func Load() (Config, error) {
	return LoadArgs(os.Args[1:], os.Environ())
}

// LoadArgs allows tests to supply specific args/environment.
func LoadArgs(args []string, environ []string) (Config, error) {
	env := parseEnv(environ)

	fs := flag.NewFlagSet("narrator", flag.ContinueOnError)
	fs.SetOutput(new(strings.Builder))

	width := fs.Int("width", envOrInt(env, envWidth, 0), "viewport width in cells (0 uses terminal width)")
	height := fs.Int("height", envOrInt(env, envHeight, 0), "viewport height in rows (0 uses terminal height)")
	historySize := fs.Int("history", envOrInt(env, envHistory, defaultHistorySize), "announcement history capacity")
	sound := fs.Bool("sound", envOrBool(env, envSound, true), "enable audio cues")
	hintDelay := fs.Duration("hint-delay", envOrDuration(env, envHintDelay, 10*time.Second), "idle time before a navigation hint (0 disables)")
	trace := fs.Bool("trace", envOrBool(env, envTrace, false), "enable verbose JSON trace logging")
	verbose := fs.Bool("verbose", envOrBool(env, envVerbose, false), "announce successful actions in detail")
	logFile := fs.String("log-file", envOrDefault(env, envLogFile, ""), "path to the log file")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if *width < 0 {
		return Config{}, fmt.Errorf("width must be >= 0 (got %d)", *width)
	}
	if *height < 0 {
		return Config{}, fmt.Errorf("height must be >= 0 (got %d)", *height)
	}
	if *historySize < 1 {
		return Config{}, fmt.Errorf("history capacity must be >= 1 (got %d)", *historySize)
	}
	if *hintDelay < 0 {
		return Config{}, fmt.Errorf("hint delay must be >= 0 (got %s)", *hintDelay)
	}

	cfg := Config{
		UI: UI{
			Width:  *width,
			Height: *height,
		},
		Speech: Speech{
			HistorySize: *historySize,
			Sound:       *sound,
			HintDelay:   *hintDelay,
		},
		Logging: Logging{
			FilePath: *logFile,
			Trace:    *trace,
			Verbose:  *verbose,
		},
		Flags: map[string]string{
			"width":     strconv.Itoa(*width),
			"height":    strconv.Itoa(*height),
			"history":   strconv.Itoa(*historySize),
			"sound":     strconv.FormatBool(*sound),
			"hintDelay": hintDelay.String(),
			"trace":     strconv.FormatBool(*trace),
			"verbose":   strconv.FormatBool(*verbose),
			"logFile":   *logFile,
		},
		Args: append([]string(nil), args...),
	}

	return cfg, nil
}

func parseEnv(environ []string) map[string]string {
	values := make(map[string]string, len(environ))
	for _, entry := range environ {
		if entry == "" {
			continue
		}
		parts := strings.SplitN(entry, "=", 2)
		if len(parts) != 2 {
			continue
		}
		values[parts[0]] = parts[1]
	}
	return values
}

func envOrDefault(env map[string]string, key, fallback string) string {
	if v, ok := env[key]; ok {
		return v
	}
	return fallback
}

func envOrInt(env map[string]string, key string, fallback int) int {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrBool(env map[string]string, key string, fallback bool) bool {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrDuration(env map[string]string, key string, fallback time.Duration) time.Duration {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return parsed
}

// MustLoad returns configuration or exits.
func MustLoad() Config {
	cfg, err := Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	return cfg
}
