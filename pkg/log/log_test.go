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

package log

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/pterm/pterm"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogger(t *testing.T) {
	// Disable color for testing
	color.NoColor = true
	defer func() { color.NoColor = false }()

	tests := []struct {
		name     string
		op       func(t *testing.T, logger *Logger)
		wantLogs []string
		wantErrs []string
	}{
		{
			name: "log_file_operation",
			op: func(t *testing.T, logger *Logger) {
				logger.LogFileOperation(context.Background(), FileOperation{
					Path:         "AnalysisView.swift",
					Mode:         ModeInPlace,
					Status:       "CLEANED",
					IsModified:   true,
					Replacements: 3,
				})
			},
			wantLogs: []string{
				"⟳ AnalysisView.swift                  in-place        CLEANED",
			},
		},
		{
			name: "log_messages",
			op: func(t *testing.T, logger *Logger) {
				logger.Warning("warning message")
				logger.Error("error message")
				logger.Success("success message")
			},
			wantLogs: []string{
				"⚠️  warning message",
				"✅ success message",
			},
			wantErrs: []string{
				"❌ error message",
			},
		},
		{
			name: "log_formatted_warning",
			op: func(t *testing.T, logger *Logger) {
				logger.Warningf("%d of %d file(s) would change", 1, 2)
			},
			wantLogs: []string{
				"⚠️  1 of 2 file(s) would change",
			},
		},
		{
			name: "log_notice_is_verbatim",
			op: func(t *testing.T, logger *Logger) {
				logger.Notice("🔧 已删除重复的 getHeroName 相关方法")
			},
			wantLogs: []string{
				"🔧 已删除重复的 getHeroName 相关方法",
			},
		},
		{
			name: "log_header",
			op: func(t *testing.T, logger *Logger) {
				logger.Header("cleaning 1 file")
			},
			wantLogs: []string{
				"textclean • cleaning 1 file",
			},
		},
		{
			name: "log_newline",
			op: func(t *testing.T, logger *Logger) {
				logger.Notice("first")
				logger.LogNewline()
				logger.Success("second")
			},
			wantLogs: []string{
				"first",
				"",
				"✅ second",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := &bytes.Buffer{}
			errs := &bytes.Buffer{}
			logger := New(buf, errs, zerolog.ErrorLevel)

			tt.op(t, logger)

			assertLines(t, tt.wantLogs, buf.String())
			assertLines(t, tt.wantErrs, errs.String())
		})
	}
}

func assertLines(t *testing.T, want []string, got string) {
	t.Helper()

	output := strings.TrimSpace(got)
	if len(want) == 0 {
		assert.Empty(t, output)
		return
	}

	lines := strings.Split(output, "\n")
	require.Equal(t, len(want), len(lines), "number of log lines should match")
	for i, w := range want {
		assert.Equal(t, w, strings.TrimSpace(lines[i]), "log line %d should match", i)
	}
}

func TestLoggerContext(t *testing.T) {
	logger := New(io.Discard, io.Discard, zerolog.InfoLevel)

	ctx := NewContext(context.Background(), logger)

	got := FromContext(ctx)
	assert.Same(t, logger, got, "logger from context should be the same instance")
	assert.Equal(t, zerolog.InfoLevel, zerolog.Ctx(ctx).GetLevel(), "zerolog logger should ride along")

	assert.Panics(t, func() {
		FromContext(context.Background())
	}, "FromContext should panic when logger is missing")
}

func TestFileOperationFormatting(t *testing.T) {
	color.NoColor = true
	defer func() { color.NoColor = false }()

	tests := []struct {
		name string
		op   FileOperation
		want string
	}{
		{
			name: "cleaned_in_place",
			op: FileOperation{
				Path:       "test.swift",
				Mode:       ModeInPlace,
				Status:     "CLEANED",
				IsModified: true,
			},
			want: "    ⟳ test.swift                          in-place        CLEANED        ",
		},
		{
			name: "cleaned_atomic",
			op: FileOperation{
				Path:       "test.swift",
				Mode:       ModeAtomic,
				Status:     "CLEANED",
				IsModified: true,
			},
			want: "    ⟳ test.swift                          atomic          CLEANED        ",
		},
		{
			name: "dry_run_change",
			op: FileOperation{
				Path:       "test.swift",
				Mode:       ModeDryRun,
				Status:     "would change",
				IsModified: true,
			},
			want: "    ~ test.swift                          dry-run         would change   ",
		},
		{
			name: "unchanged_file",
			op: FileOperation{
				Path:   "test.swift",
				Mode:   ModeInPlace,
				Status: "no change",
			},
			want: "    • test.swift                          in-place        no change      ",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := &bytes.Buffer{}
			logger := New(buf, io.Discard, zerolog.InfoLevel)

			logger.LogFileOperation(context.Background(), tt.op)

			assert.Equal(t, tt.want+"\n", buf.String())
		})
	}
}

func TestTable(t *testing.T) {
	pterm.DisableStyling()
	defer pterm.EnableStyling()

	buf := &bytes.Buffer{}
	logger := New(buf, io.Discard, zerolog.InfoLevel)

	err := logger.Table([]string{"rule", "matches"}, [][]string{
		{"getHeroName", "1"},
		{"collapse-blank-lines", "0"},
	})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "rule")
	assert.Contains(t, out, "getHeroName")
	assert.Contains(t, out, "collapse-blank-lines")
}
