package config

import (
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"github.com/petralog/lascore/errors"
)

// WriteDefault writes a config file populated with the default values
// to path, creating parent directories as needed. Fails if the file
// already exists; editing a live config is the user's business.
func WriteDefault(path string) error {
	if _, err := os.Stat(path); err == nil {
		return errors.Newf("config file %s already exists", path)
	}

	cfg := Config{
		Parser: ParserConfig{
			NullTolerance:  1e-6,
			DepthMnemonics: []string{"DEPT", "DEPTH", "MD"},
		},
		Watch: WatchConfig{
			Patterns:   []string{"*.las", "*.LAS"},
			DebounceMS: 500,
		},
		Output: OutputConfig{
			SampleCount: 5,
		},
	}

	content, err := toml.Marshal(cfg)
	if err != nil {
		return errors.Wrap(err, "failed to marshal default config")
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return errors.Wrapf(err, "failed to create config directory %s", dir)
		}
	}
	if err := os.WriteFile(path, content, 0644); err != nil {
		return errors.Wrapf(err, "failed to write config file %s", path)
	}
	return nil
}
