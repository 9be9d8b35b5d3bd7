package config

import (
	"path/filepath"
	"strings"
)

// FileName is the per-project settings file, looked up in the project root.
const FileName = ".eventgen.yaml"

// Config represents per-project settings stored on disk.
// Namespaces are relative to RootNamespace and use `\` as separator.
type Config struct {
	AppPath            string `yaml:"app_path"`
	EventsFile         string `yaml:"events_file"`
	RootNamespace      string `yaml:"root_namespace"`
	EventsNamespace    string `yaml:"events_namespace"`
	ListenersNamespace string `yaml:"listeners_namespace"`
	LogLevel           string `yaml:"log_level,omitempty"`
}

// Default returns the layout of a stock CodeIgniter 4 application.
func Default() Config {
	return Config{
		AppPath:            "app",
		EventsFile:         "Config/Events.php",
		RootNamespace:      "App",
		EventsNamespace:    "Events",
		ListenersNamespace: `Events\Listeners`,
	}
}

// WithDefaults fills every empty field from Default.
func (c Config) WithDefaults() Config {
	d := Default()
	if strings.TrimSpace(c.AppPath) == "" {
		c.AppPath = d.AppPath
	}
	if strings.TrimSpace(c.EventsFile) == "" {
		c.EventsFile = d.EventsFile
	}
	if strings.TrimSpace(c.RootNamespace) == "" {
		c.RootNamespace = d.RootNamespace
	}
	if strings.TrimSpace(c.EventsNamespace) == "" {
		c.EventsNamespace = d.EventsNamespace
	}
	if strings.TrimSpace(c.ListenersNamespace) == "" {
		c.ListenersNamespace = d.ListenersNamespace
	}
	return c
}

func joinNamespace(parts ...string) string {
	var out []string
	for _, p := range parts {
		if p = strings.Trim(p, `\`); p != "" {
			out = append(out, p)
		}
	}
	return strings.Join(out, `\`)
}

// EventsFilePath is the absolute path of the registration file under root.
func (c Config) EventsFilePath(root string) string {
	return filepath.Join(root, c.AppPath, filepath.FromSlash(c.EventsFile))
}

// EventsPrefix is the fully qualified namespace of event classes.
func (c Config) EventsPrefix() string {
	return joinNamespace(c.RootNamespace, c.EventsNamespace)
}

// ListenersPrefix is the fully qualified namespace of listener classes.
func (c Config) ListenersPrefix() string {
	return joinNamespace(c.RootNamespace, c.ListenersNamespace)
}

// EventsDir is the directory holding event classes.
func (c Config) EventsDir(root string) string {
	return c.namespaceDir(root, c.EventsNamespace)
}

// ListenersDir is the directory holding listener classes.
func (c Config) ListenersDir(root string) string {
	return c.namespaceDir(root, c.ListenersNamespace)
}

func (c Config) namespaceDir(root, ns string) string {
	rel := strings.ReplaceAll(strings.Trim(ns, `\`), `\`, "/")
	return filepath.Join(root, c.AppPath, filepath.FromSlash(rel))
}
