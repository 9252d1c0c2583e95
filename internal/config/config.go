package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

const envPrefix = "STUDYPLAN_"

type Application struct {
	User     string   `koanf:"user"`
	Database Database `koanf:"db"`
	Log      Log      `koanf:"log"`
	Planner  Planner  `koanf:"planner"`
	UI       UI       `koanf:"ui"`
}

type Database struct {
	Path string `koanf:"path"`
}

type Log struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"` // text or json
}

// Planner tunes the priority tables. Priority and Blocks override the
// default per-type values key by key. The horizon is fixed.
type Planner struct {
	Priority map[string]int `koanf:"priority"`
	Blocks   map[string]int `koanf:"blocks"`
}

type UI struct {
	Color string `koanf:"color"` // auto, always or never
}

// Dir is the per-user state directory, ~/.studyplan.
func Dir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".studyplan"
	}
	return filepath.Join(home, ".studyplan")
}

// DefaultPath is where Load looks when no --config flag is given.
func DefaultPath() string {
	return filepath.Join(Dir(), "config.yaml")
}

func defaults() Application {
	user := os.Getenv("USER")
	if user == "" {
		user = "default"
	}
	return Application{
		User:     user,
		Database: Database{Path: filepath.Join(Dir(), "studyplan.db")},
		Log:      Log{Level: "warn", Format: "text"},
		UI:       UI{Color: "auto"},
	}
}

// Load layers built-in defaults, the YAML file at path (optional) and
// STUDYPLAN_* environment variables, in that order. STUDYPLAN_DB_PATH maps
// to db.path.
func Load(path string) (Application, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(defaults(), "koanf"), nil); err != nil {
		return Application{}, err
	}

	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Application{}, err
		}
	}

	err := k.Load(env.Provider(".", env.Opt{
		Prefix: envPrefix,
		TransformFunc: func(k, v string) (string, any) {
			k = strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(k, envPrefix)), "_", ".")
			return k, v
		},
	}), nil)
	if err != nil {
		return Application{}, err
	}

	var app Application
	if err := k.Unmarshal("", &app); err != nil {
		return Application{}, err
	}
	return app, nil
}
