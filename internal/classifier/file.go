package classifier

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ruleSetFile - формат YAML-файла с правилами.
// Правила задаются списком, чтобы порядок объявления сохранялся.
type ruleSetFile struct {
	Fallback Category       `yaml:"fallback"`
	Rules    []ruleFileItem `yaml:"rules"`
}

type ruleFileItem struct {
	Category Category `yaml:"category"`
	Keywords []string `yaml:"keywords"`
	Color    *Color   `yaml:"color"`
}

// LoadFile читает набор правил из YAML-файла
func LoadFile(path string) (*Classifier, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read rules file %s: %w", path, err)
	}
	cl, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("rules file %s: %w", path, err)
	}
	return cl, nil
}

// Parse разбирает набор правил в формате YAML.
// Цвета, не указанные в файле, берутся из встроенной палитры.
func Parse(data []byte) (*Classifier, error) {
	var file ruleSetFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse rules: %w", err)
	}
	if len(file.Rules) == 0 {
		return nil, fmt.Errorf("parse rules: no rules defined")
	}

	palette := DefaultPalette()
	rules := make([]KeywordRule, 0, len(file.Rules))
	for _, item := range file.Rules {
		rules = append(rules, KeywordRule{Category: item.Category, Keywords: item.Keywords})
		if item.Color != nil {
			palette[item.Category] = *item.Color
		}
	}

	opts := []Option{WithPalette(palette)}
	if file.Fallback != "" {
		opts = append(opts, WithFallback(file.Fallback))
	}
	return New(rules, opts...)
}
