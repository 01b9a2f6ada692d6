package configloader

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/yaklabco/mdblock/pkg/config"
)

// Overrides holds settings whose zero value is meaningful. A nil field was
// not set by its layer; a non-nil field replaces the merged value, so a later
// layer can switch a boolean off or reset jobs to 0.
type Overrides struct {
	DetectLanguages *bool `yaml:"detect_languages"`
	FollowSymlinks  *bool `yaml:"follow_symlinks"`
	Jobs            *int  `yaml:"jobs"`
}

// apply writes every set field into cfg.
func (o Overrides) apply(cfg *config.Config) {
	if o.DetectLanguages != nil {
		cfg.DetectLanguages = *o.DetectLanguages
	}
	if o.FollowSymlinks != nil {
		cfg.FollowSymlinks = *o.FollowSymlinks
	}
	if o.Jobs != nil {
		cfg.Jobs = *o.Jobs
	}
}

// overridesFromYAML reports which zero-meaningful keys a config file sets.
// Unknown keys are left to config.FromYAML to reject.
func overridesFromYAML(data []byte) (Overrides, error) {
	var o Overrides
	if err := yaml.Unmarshal(data, &o); err != nil {
		return Overrides{}, fmt.Errorf("parse yaml: %w", err)
	}
	return o, nil
}
