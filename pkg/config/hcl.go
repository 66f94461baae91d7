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
	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
	"gitlab.com/tozd/go/errors"
)

// hclConfig is the HCL schema: rules are labelled blocks
//
//	targets = ["Views/AnalysisView.swift"]
//
//	rule "getHeroName" {
//	  pattern     = "private func getHeroName\\(.*?\\n    \\}"
//	  replacement = "    // moved"
//	}
type hclConfig struct {
	Targets        []string `hcl:"targets"`
	Encoding       string   `hcl:"encoding,optional"`
	KeepBlankLines bool     `hcl:"keep_blank_lines,optional"`
	Atomic         bool     `hcl:"atomic,optional"`
	Backup         bool     `hcl:"backup,optional"`
	Concurrency    int      `hcl:"concurrency,optional"`
	Messages       []string `hcl:"messages,optional"`
	Rules          []struct {
		Name           string `hcl:"name,label"`
		Pattern        string `hcl:"pattern"`
		Replacement    string `hcl:"replacement,optional"`
		FileFilterGlob string `hcl:"file_filter_glob,optional"`
	} `hcl:"rule,block"`
}

// loadHCL loads a configuration from HCL data
func loadHCL(data []byte, filename string) (*Config, error) {
	parser := hclparse.NewParser()
	hclFile, diags := parser.ParseHCL(data, filename)
	if diags.HasErrors() {
		return nil, errors.Errorf("parsing HCL: %s", diags.Error())
	}

	// Create evaluation context
	evalCtx := &hcl.EvalContext{
		Variables: map[string]cty.Value{},
	}

	var hclCfg hclConfig
	diags = gohcl.DecodeBody(hclFile.Body, evalCtx, &hclCfg)
	if diags.HasErrors() {
		return nil, errors.Errorf("decoding HCL: %s", diags.Error())
	}

	cfg := &Config{
		Targets:        hclCfg.Targets,
		Encoding:       hclCfg.Encoding,
		KeepBlankLines: hclCfg.KeepBlankLines,
		Atomic:         hclCfg.Atomic,
		Backup:         hclCfg.Backup,
		Concurrency:    hclCfg.Concurrency,
		Messages:       hclCfg.Messages,
	}
	for _, r := range hclCfg.Rules {
		cfg.Rules = append(cfg.Rules, Rule{
			Name:           r.Name,
			Pattern:        r.Pattern,
			Replacement:    r.Replacement,
			FileFilterGlob: r.FileFilterGlob,
		})
	}

	return cfg, nil
}
