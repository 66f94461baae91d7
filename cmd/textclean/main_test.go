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

package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/pterm/pterm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/walteh/textclean/cmd/textclean/opts"
	"github.com/walteh/textclean/pkg/config"
)

const heroView = `struct AnalysisView: View {
    private func getHeroName(heroId: Int) -> String {
        switch heroId {
        case 1: return "Anti-Mage"
        default: return "Unknown"
        }
    }


    private func other() {}
}
`

const heroViewCleaned = "struct AnalysisView: View {\n    " + config.MarkerComment + "\n\n    private func other() {}\n}\n"

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	color.NoColor = true
	pterm.DisableStyling()
	t.Cleanup(func() { pterm.EnableStyling() })

	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	cmd := newRootCmd(&opts.RootOpts{})
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.SetArgs(args)

	err := cmd.ExecuteContext(context.Background())
	return stdout.String(), stderr.String(), err
}

func writeTarget(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestRoot_BuiltInJob(t *testing.T) {
	dir := t.TempDir()
	path := writeTarget(t, dir, config.DefaultTargetPath, heroView)
	chdir(t, dir)

	stdout, _, err := execute(t)
	require.NoError(t, err)

	assert.Equal(t, strings.Join(config.DefaultMessages, "\n")+"\n", stdout, "exactly the three status lines")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, heroViewCleaned, string(data))
}

func TestRoot_MissingBuiltInTarget(t *testing.T) {
	chdir(t, t.TempDir())

	stdout, _, err := execute(t)
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.Empty(t, stdout, "no status lines on failure")
}

func TestClean_Paths(t *testing.T) {
	dir := t.TempDir()
	path := writeTarget(t, dir, "View.swift", heroView)

	stdout, _, err := execute(t, "clean", "--backup", "--verbose", path)
	require.NoError(t, err)

	assert.Contains(t, stdout, "View.swift")
	assert.Contains(t, stdout, "CLEANED")
	assert.Contains(t, stdout, config.DefaultMessages[0])

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, heroViewCleaned, string(data))

	backup, err := os.ReadFile(path + ".bak")
	require.NoError(t, err)
	assert.Equal(t, heroView, string(backup))
}

func TestClean_KeepBlankLinesFlag(t *testing.T) {
	path := writeTarget(t, t.TempDir(), "View.swift", "a\n\n\n\nb\n")

	_, _, err := execute(t, "clean", "--keep-blank-lines", path)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "a\n\n\n\nb\n", string(data))
}

func TestClean_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	target := writeTarget(t, dir, "src/Main.swift", "print(legacyName())\n")
	configPath := writeTarget(t, dir, "job.yaml", `
targets:
  - src/Main.swift
rules:
  - name: rename
    pattern: 'legacyName\(\)'
    replacement: "HeroService.shared.name()"
messages:
  - "renamed"
atomic: true
`)

	stdout, _, err := execute(t, "--config", configPath)
	require.NoError(t, err)
	assert.Equal(t, "renamed\n", stdout)

	data, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, "print(HeroService.shared.name())\n", string(data))
}

func TestClean_BadConfig(t *testing.T) {
	configPath := writeTarget(t, t.TempDir(), "job.yaml", "targets: [a]\n")

	_, _, err := execute(t, "-c", configPath, "clean")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "loading config")
}

func TestStatus(t *testing.T) {
	path := writeTarget(t, t.TempDir(), "View.swift", heroView)

	stdout, _, err := execute(t, "status", path)
	require.NoError(t, err)

	assert.Contains(t, stdout, "dry run")
	assert.Contains(t, stdout, "getHeroName")
	assert.Contains(t, stdout, "--- "+path)
	assert.Contains(t, stdout, "1 of 1 file(s) would change")
	assert.NotContains(t, stdout, config.DefaultMessages[0], "status prints no completion lines")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, heroView, string(data), "status must not write")
}

func TestStatus_NothingToClean(t *testing.T) {
	path := writeTarget(t, t.TempDir(), "Tidy.swift", "let x = 1\n")

	stdout, _, err := execute(t, "status", path)
	require.NoError(t, err)

	assert.Contains(t, stdout, "nothing to clean")
	assert.NotContains(t, stdout, "--- "+path, "no diff for unchanged files")
}

func TestRun_ExitCode(t *testing.T) {
	color.NoColor = true
	assert.Equal(t, 1, run([]string{"clean", filepath.Join(t.TempDir(), "missing.swift")}))

	path := writeTarget(t, t.TempDir(), "View.swift", "let x = 1\n")
	assert.Equal(t, 0, run([]string{"clean", path}))
}

// chdir changes the working directory for the duration of the test
// (equivalent of testing.T.Chdir, which needs go1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { require.NoError(t, os.Chdir(prev)) })
}
