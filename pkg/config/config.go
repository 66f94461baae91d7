// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package config

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/walteh/textclean/pkg/text"
	"github.com/walteh/textclean/pkg/textenc"
	"gitlab.com/tozd/go/errors"
)

// 🎯 Built-in job: AnalysisView.swift carried three copies of the hero name lookup
// that now lives in HeroService.
const (
	DefaultTargetPath = "DotaA/Views/AnalysisView.swift"
	MarkerComment     = "    // getHeroName 方法已移动到 HeroService.shared.getHeroName()"
)

// DefaultMessages are printed after the built-in job succeeds.
var DefaultMessages = []string{
	"✅ AnalysisView.swift 清理完成！",
	"🔧 已删除重复的 getHeroName 相关方法",
	"📦 已替换为 HeroService.shared.getHeroName() 的引用",
}

// 🔄 Rule is a single pattern substitution
type Rule struct {
	Name           string `json:"name,omitempty" yaml:"name,omitempty" toml:"name"`
	Pattern        string `json:"pattern" yaml:"pattern" toml:"pattern" validate:"required"`
	Replacement    string `json:"replacement" yaml:"replacement" toml:"replacement"`
	FileFilterGlob string `json:"file_filter_glob,omitempty" yaml:"file_filter_glob,omitempty" toml:"file_filter_glob"`
}

// 📚 Config describes one cleanup job
type Config struct {
	Targets        []string `json:"targets" yaml:"targets" toml:"targets" validate:"min=1,dive,required"`
	Rules          []Rule   `json:"rules" yaml:"rules" toml:"rules" validate:"min=1,dive"`
	Encoding       string   `json:"encoding,omitempty" yaml:"encoding,omitempty" toml:"encoding"`
	KeepBlankLines bool     `json:"keep_blank_lines,omitempty" yaml:"keep_blank_lines,omitempty" toml:"keep_blank_lines"`
	Atomic         bool     `json:"atomic,omitempty" yaml:"atomic,omitempty" toml:"atomic"`
	Backup         bool     `json:"backup,omitempty" yaml:"backup,omitempty" toml:"backup"`
	Concurrency    int      `json:"concurrency,omitempty" yaml:"concurrency,omitempty" toml:"concurrency" validate:"gte=0"`
	Messages       []string `json:"messages,omitempty" yaml:"messages,omitempty" toml:"messages"`

	location string
}

// 🏭 Default returns the built-in AnalysisView.swift job
func Default() *Config {
	return &Config{
		Targets: []string{DefaultTargetPath},
		Rules: []Rule{
			heroNameRule("getHeroName"),
			heroNameRule("getHeroNamePart2"),
			heroNameRule("getHeroNamePart3"),
		},
		Encoding:    textenc.Default,
		Concurrency: 1,
		Messages:    append([]string(nil), DefaultMessages...),
	}
}

// heroNameRule matches a whole `private func <method>(heroId: Int) -> String` body
// whose switch ends in a default branch, up to the closing brace at method indent.
func heroNameRule(method string) Rule {
	return Rule{
		Name:        method,
		Pattern:     `private func ` + method + `\(heroId: Int\) -> String \{[^}]*?switch heroId \{.*?default: return.*?\n    \}`,
		Replacement: MarkerComment,
	}
}

// Location is the file the config was loaded from, empty for the built-in job.
func (cfg *Config) Location() string {
	return cfg.location
}

// ApplyDefaults fills optional fields
func (cfg *Config) ApplyDefaults() {
	if strings.TrimSpace(cfg.Encoding) == "" {
		cfg.Encoding = textenc.Default
	}
	if cfg.Concurrency == 0 {
		cfg.Concurrency = 1
	}
}

// TextRules converts the configured rules for the replacer
func (cfg *Config) TextRules() []text.ReplacementRule {
	rules := make([]text.ReplacementRule, 0, len(cfg.Rules))
	for _, r := range cfg.Rules {
		rules = append(rules, text.ReplacementRule{
			Name:           r.Name,
			Pattern:        r.Pattern,
			Replacement:    r.Replacement,
			FileFilterGlob: r.FileFilterGlob,
		})
	}
	return rules
}

// SuccessMessages returns the lines printed after a successful run
func (cfg *Config) SuccessMessages(files int) []string {
	if len(cfg.Messages) > 0 {
		return cfg.Messages
	}
	return []string{fmt.Sprintf("✅ cleaned %d file(s)", files)}
}

// 🔍 Validate checks struct constraints, then that every pattern compiles and the
// encoding is known.
func (cfg *Config) Validate() error {
	if err := newValidator().Struct(cfg); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			return errors.New(formatFieldError(verrs[0]))
		}
		return errors.Errorf("validating config: %w", err)
	}

	if err := text.NewRegexReplacer().ValidateRules(cfg.TextRules()); err != nil {
		return errors.Errorf("rules: %w", err)
	}

	if _, err := textenc.Lookup(cfg.Encoding); err != nil {
		return err
	}

	return nil
}

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

func formatFieldError(e validator.FieldError) string {
	field := strings.TrimPrefix(e.Namespace(), "Config.")
	switch e.Tag() {
	case "required":
		return field + " is required"
	case "min":
		return fmt.Sprintf("%s must have at least %s item(s)", field, e.Param())
	case "gte":
		return fmt.Sprintf("%s must be %s or greater", field, e.Param())
	default:
		return fmt.Sprintf("%s failed %s validation", field, e.Tag())
	}
}
