package config

import (
	"github.com/spf13/viper"
)

// SetDefaults configures default values for all configuration options.
func SetDefaults(v *viper.Viper) {
	// Parser defaults
	v.SetDefault("parser.null_tolerance", 1e-6)
	v.SetDefault("parser.depth_mnemonics", []string{"DEPT", "DEPTH", "MD"})

	// Watch defaults
	v.SetDefault("watch.dir", "")
	v.SetDefault("watch.patterns", []string{"*.las", "*.LAS"})
	v.SetDefault("watch.debounce_ms", 500)

	// Output defaults
	v.SetDefault("output.json", false)
	v.SetDefault("output.sample_count", 5)
}
