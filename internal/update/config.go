package update

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

type RuntimeConfig struct {
	DBPath               string
	StateFilePath        string
	ExportDir            string
	AltScreen            bool
	DesktopNotifications bool
	UIDensity            int
}

func DefaultRuntimeConfig() RuntimeConfig {
	return RuntimeConfig{
		DBPath:               "taskdeck.db",
		StateFilePath:        "taskdeck_state.json",
		ExportDir:            ".",
		AltScreen:            true,
		DesktopNotifications: false,
		UIDensity:            1,
	}
}

type fileConfig struct {
	DBPath               string `yaml:"db_path"`
	StateFilePath        string `yaml:"state_file_path"`
	ExportDir            string `yaml:"export_dir"`
	AltScreen            *bool  `yaml:"alt_screen"`
	DesktopNotifications *bool  `yaml:"desktop_notifications"`
	UIDensity            int    `yaml:"ui_density"`
}

// RuntimeConfigFromFile overlays a YAML config file on top of base. Fields
// absent from the file keep their base values.
func RuntimeConfigFromFile(base RuntimeConfig, path string) (RuntimeConfig, error) {
	cfg := base
	raw, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	var fc fileConfig
	if err := yaml.Unmarshal(raw, &fc); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if strings.TrimSpace(fc.DBPath) != "" {
		cfg.DBPath = fc.DBPath
	}
	if strings.TrimSpace(fc.StateFilePath) != "" {
		cfg.StateFilePath = fc.StateFilePath
	}
	if strings.TrimSpace(fc.ExportDir) != "" {
		cfg.ExportDir = fc.ExportDir
	}
	if fc.AltScreen != nil {
		cfg.AltScreen = *fc.AltScreen
	}
	if fc.DesktopNotifications != nil {
		cfg.DesktopNotifications = *fc.DesktopNotifications
	}
	if fc.UIDensity >= 1 && fc.UIDensity <= 3 {
		cfg.UIDensity = fc.UIDensity
	}
	return cfg, nil
}

func RuntimeConfigFromEnv(base RuntimeConfig) RuntimeConfig {
	cfg := base
	if v, ok := getEnvStr("TASKDECK_DB_PATH"); ok {
		cfg.DBPath = v
	}
	if v, ok := getEnvStr("TASKDECK_STATE_FILE"); ok {
		cfg.StateFilePath = v
	}
	if v, ok := getEnvStr("TASKDECK_EXPORT_DIR"); ok {
		cfg.ExportDir = v
	}
	if v, ok := getEnvBool("TASKDECK_ALT_SCREEN"); ok {
		cfg.AltScreen = v
	}
	if v, ok := getEnvBool("TASKDECK_DESKTOP_NOTIFICATIONS"); ok {
		cfg.DesktopNotifications = v
	}
	if v, ok := getEnvInt("TASKDECK_UI_DENSITY"); ok && v >= 1 && v <= 3 {
		cfg.UIDensity = v
	}
	return cfg
}

func getEnvStr(name string) (string, bool) {
	raw := strings.TrimSpace(os.Getenv(name))
	if raw == "" {
		return "", false
	}
	return raw, true
}

func getEnvInt(name string) (int, bool) {
	raw := strings.TrimSpace(os.Getenv(name))
	if raw == "" {
		return 0, false
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return v, true
}

func getEnvBool(name string) (bool, bool) {
	raw := strings.TrimSpace(strings.ToLower(os.Getenv(name)))
	if raw == "" {
		return false, false
	}
	switch raw {
	case "1", "true", "yes", "y", "on":
		return true, true
	case "0", "false", "no", "n", "off":
		return false, true
	default:
		return false, false
	}
}
