// Package config resolves the generator configuration once at startup into an
// explicit struct. Precedence: CLI flags > environment variables > umbrella.yaml
// project file > built-in defaults. No ambient lookups happen past this layer.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/vvka-141/umbrella/internal/files/filesystem"
	"github.com/vvka-141/umbrella/pkg/umbrella"
)

// ErrConfigNotFound is returned when the project config file does not exist.
// Callers can check for this with errors.Is(err, config.ErrConfigNotFound).
var ErrConfigNotFound = errors.New("config file not found")

// ConfigFileName is the optional per-project configuration file, looked up in
// the directory of the static include list.
const ConfigFileName = "umbrella.yaml"

// Config holds the fully resolved generator settings.
type Config struct {
	// Dest is the output file path. Overwritten on success.
	Dest string
	// Template is the template file containing the placeholder tokens.
	Template string
	// IncludesDir is the root directory scanned for header files.
	IncludesDir string
	// StaticIncludes is the newline-separated static include list file.
	StaticIncludes string
	// Namespace is the directory segment at which include paths start.
	Namespace string
}

// ProjectConfig mirrors the umbrella.yaml file. All fields are optional
// defaults sitting below flags and environment variables.
type ProjectConfig struct {
	Namespace string `yaml:"namespace,omitempty"`
	Template  string `yaml:"template,omitempty"`
	Dest      string `yaml:"dest,omitempty"`
}

// LoadProject reads umbrella.yaml from dir.
func LoadProject(dir string) (*ProjectConfig, error) {
	configPath := filepath.Join(dir, ConfigFileName)
	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}

	var cfg ProjectConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", configPath, err)
	}
	return &cfg, nil
}

// EnvVars holds the environment variables recognized by the generator.
type EnvVars struct {
	HeaderDest     string // HEADER_DEST: output file path
	HeaderTemplate string // HEADER_TEMPLATE: template file path
	IncludesDir    string // INCLUDES_DIR: scan root
	StaticIncludes string // UMBRELLA_STATIC_INCLUDES: static include list file
	Namespace      string // UMBRELLA_NAMESPACE: namespace directory segment
}

// LoadFromEnvironment loads the recognized environment variables. A .env file
// in the working directory is merged in first via godotenv; real environment
// variables win over .env entries.
func LoadFromEnvironment() *EnvVars {
	_ = godotenv.Load()

	return &EnvVars{
		HeaderDest:     os.Getenv("HEADER_DEST"),
		HeaderTemplate: os.Getenv("HEADER_TEMPLATE"),
		IncludesDir:    os.Getenv("INCLUDES_DIR"),
		StaticIncludes: os.Getenv("UMBRELLA_STATIC_INCLUDES"),
		Namespace:      os.Getenv("UMBRELLA_NAMESPACE"),
	}
}

// Resolve merges flag values, environment variables, and the optional project
// file into a validated Config.
//
// The project file is looked up next to the static include list once that
// path is known; a missing project file is not an error.
func Resolve(flags Config, envVars *EnvVars) (Config, error) {
	if envVars == nil {
		envVars = &EnvVars{}
	}

	cfg := flags
	if cfg.Dest == "" {
		cfg.Dest = envVars.HeaderDest
	}
	if cfg.Template == "" {
		cfg.Template = envVars.HeaderTemplate
	}
	if cfg.IncludesDir == "" {
		cfg.IncludesDir = envVars.IncludesDir
	}
	if cfg.StaticIncludes == "" {
		cfg.StaticIncludes = envVars.StaticIncludes
	}
	if cfg.Namespace == "" {
		cfg.Namespace = envVars.Namespace
	}

	if cfg.StaticIncludes != "" {
		projectCfg, err := LoadProject(filepath.Dir(cfg.StaticIncludes))
		if err != nil && !errors.Is(err, ErrConfigNotFound) {
			return Config{}, fmt.Errorf("%w: %w", umbrella.ErrInvalidConfig, err)
		}
		if projectCfg != nil {
			if cfg.Namespace == "" {
				cfg.Namespace = projectCfg.Namespace
			}
			if cfg.Template == "" {
				cfg.Template = projectCfg.Template
			}
			if cfg.Dest == "" {
				cfg.Dest = projectCfg.Dest
			}
		}
	}

	if cfg.Namespace == "" {
		cfg.Namespace = umbrella.DefaultNamespace
	}

	return cfg, nil
}

// Validate checks that every required setting is present and points to a
// readable resource. Fatal on first failure; nothing is retried.
func (c *Config) Validate(fsProvider filesystem.FileSystemProvider) error {
	required := []struct {
		name  string
		value string
	}{
		{"HEADER_DEST", c.Dest},
		{"HEADER_TEMPLATE", c.Template},
		{"INCLUDES_DIR", c.IncludesDir},
		{"UMBRELLA_STATIC_INCLUDES", c.StaticIncludes},
	}
	for _, r := range required {
		if r.value == "" {
			return fmt.Errorf("%w: %s is required", umbrella.ErrInvalidConfig, r.name)
		}
	}

	if _, err := fsProvider.Stat(c.Template); err != nil {
		return fmt.Errorf("%w: template %q: %w", umbrella.ErrInvalidConfig, c.Template, err)
	}
	if _, err := fsProvider.Stat(c.StaticIncludes); err != nil {
		return fmt.Errorf("%w: static include list %q: %w", umbrella.ErrInvalidConfig, c.StaticIncludes, err)
	}

	info, err := fsProvider.Stat(c.IncludesDir)
	if err != nil {
		return fmt.Errorf("%w: includes directory %q: %w", umbrella.ErrInvalidConfig, c.IncludesDir, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%w: includes directory %q is not a directory", umbrella.ErrInvalidConfig, c.IncludesDir)
	}

	return nil
}
