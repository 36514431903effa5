package config

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/visualleap/gamelauncher/internal/app"
)

// Config captures runtime configuration for the application.
type Config struct {
	App     app.Config
	Logging Logging
	Send    string
	Flags   map[string]string
	Args    []string
}

type Logging struct {
	FilePath string
	Trace    bool
}

const (
	envRoot         = "GAMELAUNCHER_ROOT"
	envSettings     = "GAMELAUNCHER_SETTINGS"
	envController   = "GAMELAUNCHER_CONTROLLER"
	envNoController = "GAMELAUNCHER_NO_CONTROLLER"
	envTrace        = "GAMELAUNCHER_TRACE"
	envLogFile      = "GAMELAUNCHER_LOG_FILE"
)

// Load parses configuration from CLI arguments and environment variables.
func Load() (Config, error) {
	return LoadArgs(os.Args[1:], os.Environ())
}

// LoadArgs allows tests to supply specific args/environment.
func LoadArgs(args []string, environ []string) (Config, error) {
	env := parseEnv(environ)

	fs := flag.NewFlagSet("gamelauncher", flag.ContinueOnError)
	fs.SetOutput(new(strings.Builder))

	root := fs.String("root", envOrDefault(env, envRoot, "Data"), "shortcut folder scanned into tabs")
	settings := fs.String("settings", envOrDefault(env, envSettings, "launcher.ini"), "path to the settings file")
	controller := fs.String("controller", envOrDefault(env, envController, ""), "joystick device path (defaults to the first joystick)")
	noController := fs.Bool("no-controller", envOrBool(env, envNoController, false), "disable controller input")
	trace := fs.Bool("trace", envOrBool(env, envTrace, false), "enable verbose JSON trace logging")
	logFile := fs.String("log-file", envOrDefault(env, envLogFile, ""), "path to the log file")
	send := fs.String("send", "", "send a command (show|hide|toggle|refresh|quit) to the running instance and exit")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	cfg := Config{
		App: app.Config{
			Root:         *root,
			SettingsPath: *settings,
			PadDevice:    *controller,
			EnablePad:    !*noController,
		},
		Logging: Logging{
			FilePath: *logFile,
			Trace:    *trace,
		},
		Send: *send,
		Flags: map[string]string{
			"root":          *root,
			"settings":      *settings,
			"controller":    *controller,
			"no-controller": strconv.FormatBool(*noController),
			"trace":         strconv.FormatBool(*trace),
			"logFile":       *logFile,
			"send":          *send,
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

// MustLoad returns configuration or exits.
func MustLoad() Config {
	cfg, err := Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	return cfg
}

// Validate ensures required minimum configuration is present.
func Validate(cfg Config) error {
	if strings.TrimSpace(cfg.App.Root) == "" {
		return fmt.Errorf("shortcut folder must not be empty")
	}
	if strings.TrimSpace(cfg.App.SettingsPath) == "" {
		return fmt.Errorf("settings path must not be empty")
	}
	return nil
}
