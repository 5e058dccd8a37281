package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
)

func TestIgnoreMissingConfig_ToleratesAbsentConfigFile(t *testing.T) {
	t.Parallel()

	v := viper.New()
	v.AddConfigPath(t.TempDir())
	v.SetConfigType("yaml")
	v.SetConfigName(".punch")

	if err := ignoreMissingConfig(v.ReadInConfig()); err != nil {
		t.Fatalf("expected missing config file to be tolerated, got %v", err)
	}
}

func TestIgnoreMissingConfig_SurfacesMalformedConfigFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), ".punch.yaml")
	if err := os.WriteFile(path, []byte("journal: [unclosed"), 0o600); err != nil {
		t.Fatalf("seed config: %v", err)
	}

	v := viper.New()
	v.SetConfigFile(path)

	if err := ignoreMissingConfig(v.ReadInConfig()); err == nil {
		t.Fatalf("expected malformed config file error to surface")
	}
}

func TestIgnoreMissingConfig_PassesNilThrough(t *testing.T) {
	t.Parallel()

	if err := ignoreMissingConfig(nil); err != nil {
		t.Fatalf("expected nil, got %v", err)
	}
}
