package commands

import (
	"fmt"
	"path/filepath"

	"github.com/de-tools/metric-atlas/pkg/runtime/terminal/export"
	"github.com/de-tools/metric-atlas/pkg/services/interpreter"
	"github.com/spf13/viper"
)

// Deps carries the shared collaborators every subcommand needs.
type Deps struct {
	Interpreter *interpreter.Interpreter
	Reporter    *export.Reporter
	Profile     *Profile
}

// Profile is an optional configuration file with per-user defaults.
type Profile struct {
	Format     string `mapstructure:"format"`
	DatasetDir string `mapstructure:"dataset_dir"`
}

// LoadProfile loads a profile from the specified path.
func LoadProfile(profilePath string) (*Profile, error) {
	v := viper.New()
	v.SetConfigFile(profilePath)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read profile file: %w", err)
	}

	var profile Profile
	if err := v.Unmarshal(&profile); err != nil {
		return nil, fmt.Errorf("failed to parse profile: %w", err)
	}
	return &profile, nil
}

// ResolvePath resolves a relative dataset path against the profile's dataset
// directory, when one is configured.
func (p *Profile) ResolvePath(path string) string {
	if p == nil || p.DatasetDir == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(p.DatasetDir, path)
}
