// Package yaml loads extraction configuration from YAML files.
package yaml

import (
	"os"

	"github.com/svituawww/uniparser"
	yamlv3 "gopkg.in/yaml.v3"
)

// RuleConfig is the file representation of one extraction rule.
type RuleConfig struct {
	Tag        string            `yaml:"tag"`
	Attributes []string          `yaml:"attributes"`
	Text       bool              `yaml:"text"`
	ShareWith  map[string]string `yaml:"share_with"`
}

// Config is the file representation of a run configuration. Zero-value
// fields fall back to defaults at the point of use.
type Config struct {
	Concurrency int          `yaml:"concurrency"`
	OutputDir   string       `yaml:"output_dir"`
	Rules       []RuleConfig `yaml:"rules"`
}

// Parse decodes and validates a configuration document.
func Parse(data []byte) (*Config, error) {
	var conf Config
	if err := yamlv3.Unmarshal(data, &conf); err != nil {
		return nil, uniparser.Errorf(uniparser.EINVALID, "parse config: %v", err)
	}
	for i, r := range conf.Rules {
		if r.Tag == "" {
			return nil, uniparser.Errorf(uniparser.EINVALID, "rule %d: tag required", i)
		}
		if len(r.Attributes) == 0 && !r.Text {
			return nil, uniparser.Errorf(uniparser.EINVALID, "rule %d (%s): attributes or text required", i, r.Tag)
		}
	}
	if conf.Concurrency < 0 {
		return nil, uniparser.Errorf(uniparser.EINVALID, "concurrency must not be negative")
	}
	return &conf, nil
}

// Load reads and parses a configuration file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, uniparser.Errorf(uniparser.EINVALID, "read config: %v", err)
	}
	return Parse(data)
}

// RuleSet converts the configured rules to an extraction rule set.
// With no rules configured the defaults apply.
func (c *Config) RuleSet() *uniparser.RuleSet {
	if len(c.Rules) == 0 {
		return uniparser.DefaultRules()
	}
	rules := make([]uniparser.Rule, 0, len(c.Rules))
	for _, r := range c.Rules {
		rules = append(rules, uniparser.Rule{
			Tag:        r.Tag,
			Attributes: r.Attributes,
			Text:       r.Text,
			ShareWith:  r.ShareWith,
		})
	}
	return uniparser.NewRuleSet(rules)
}
