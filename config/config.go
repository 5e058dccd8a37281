package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

const (
	KeyJournalPath         = "journal.path"
	KeyReportIncludePaused = "report.include_paused"
)

type Config struct {
	Journal JournalConfig `mapstructure:"journal" validate:"required"`
	Report  ReportConfig  `mapstructure:"report"`
}

type JournalConfig struct {
	// Path is the location of the timeclock journal file, the sole durable
	// state of the tool.
	Path string `mapstructure:"path" validate:"required"`
}

type ReportConfig struct {
	// IncludePaused counts paused spans into log totals. Off by default:
	// a pause records absence of work.
	IncludePaused bool `mapstructure:"include_paused"`
}

// DefaultJournalPath resolves the default journal location under the user
// config directory, falling back to a dot directory in $HOME.
func DefaultJournalPath() string {
	if dir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(dir, "punch", "time.ledger")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", "time.ledger")
	}
	return filepath.Join(home, ".punch", "time.ledger")
}

// SetDefaults sets default values if not provided
func SetDefaults() {
	setDefaults(viper.GetViper())
}

// LoadAndValidate loads config from Viper and validates it
func LoadAndValidate() (*Config, error) {
	return loadAndValidateFromViper(viper.GetViper())
}

// ValidateYAMLContent validates configuration from raw YAML content.
func ValidateYAMLContent(content []byte) (*Config, error) {
	local := viper.New()
	setDefaults(local)
	local.SetConfigType("yaml")
	if err := local.ReadConfig(bytes.NewReader(content)); err != nil {
		return nil, fmt.Errorf("read config content: %w", err)
	}
	return loadAndValidateFromViper(local)
}

// ExampleYAML returns the default configuration template.
func ExampleYAML() string {
	return fmt.Sprintf(`# punch configuration
journal:
  path: %q

report:
  include_paused: false
`, DefaultJournalPath())
}

func loadAndValidateFromViper(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	validate := validator.New()
	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault(KeyJournalPath, DefaultJournalPath())
	v.SetDefault(KeyReportIncludePaused, false)
}
