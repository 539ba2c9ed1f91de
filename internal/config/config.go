package config

import (
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	berrors "github.com/streambingo/streambingo/pkg/errors"
)

// FileName is the optional configuration file looked up inside the state
// directory.
const FileName = "config.yaml"

// Config tunes the application. Every field has a sensible default; the
// config file is optional.
type Config struct {
	LogLevel  string          `yaml:"log_level" validate:"omitempty,loglevel"`
	Generator GeneratorConfig `yaml:"generator"`
	UI        UIConfig        `yaml:"ui"`
}

// GeneratorConfig tunes the item generator collaborator.
type GeneratorConfig struct {
	Model          string `yaml:"model"`
	TimeoutSeconds int    `yaml:"timeout_seconds" validate:"omitempty,min=1,max=300"`
}

// UIConfig tunes the terminal presentation.
type UIConfig struct {
	Unicode *bool `yaml:"unicode"`
}

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	logLevels = map[string]struct{}{
		"trace": {}, "debug": {}, "info": {}, "warn": {}, "error": {},
	}
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()
		_ = v.RegisterValidation("loglevel", func(fl validator.FieldLevel) bool {
			_, ok := logLevels[fl.Field().String()]
			return ok
		})
		validateInst = v
	})
	return validateInst
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		LogLevel: "info",
		Generator: GeneratorConfig{
			TimeoutSeconds: 60,
		},
	}
}

// Load reads config.yaml from the state directory, falling back to defaults
// when the file does not exist. A present-but-broken file is an error: the
// user wrote it on purpose.
func Load(stateDir string) (Config, error) {
	cfg := Default()

	path := filepath.Join(stateDir, FileName)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, berrors.NewConfigError(path, "failed to read config file", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Default(), berrors.NewConfigError(path, "failed to parse config file", err)
	}

	if err := validatorInstance().Struct(cfg); err != nil {
		return Default(), berrors.NewConfigError(path, "invalid configuration", err)
	}

	return cfg, nil
}

// GeneratorTimeout returns the generator timeout as a duration.
func (c Config) GeneratorTimeout() time.Duration {
	return time.Duration(c.Generator.TimeoutSeconds) * time.Second
}

// UseUnicode reports whether the TUI should render Unicode glyphs.
func (c Config) UseUnicode() bool {
	if c.UI.Unicode == nil {
		return true
	}
	return *c.UI.Unicode
}
