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

package operation

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/walteh/textclean/pkg/log"
	"gitlab.com/tozd/go/errors"
)

// 🧹 Clean rewrites every target. Status lines are printed only once all
// targets succeeded, whether or not any rule matched.
func (op *operator) Clean(ctx context.Context) (*Report, error) {
	logger := zerolog.Ctx(ctx)

	paths, err := ResolveTargets(op.config.Targets)
	if err != nil {
		return nil, errors.Errorf("resolving targets: %w", err)
	}
	logger.Debug().Strs("targets", paths).Int("concurrency", op.concurrency).Msg("cleaning")

	report, err := runFiles(ctx, op.concurrency, paths, func(ctx context.Context, path string) (*FileReport, error) {
		r, err := op.processFile(ctx, path, false)
		if err != nil {
			return nil, err
		}
		if op.verbose {
			op.reporter.LogFileOperation(ctx, fileOperation(r, op.writeMode()))
		}
		return r, nil
	})
	if err != nil {
		return nil, errors.Errorf("cleaning: %w", err)
	}

	for _, msg := range op.config.SuccessMessages(len(report.Files)) {
		op.reporter.Notice(msg)
	}

	return report, nil
}

func fileOperation(r *FileReport, mode string) log.FileOperation {
	status := "no change"
	switch {
	case r.Result.WasModified && mode == log.ModeDryRun:
		status = "would change"
	case r.Result.WasModified:
		status = "CLEANED"
	}

	return log.FileOperation{
		Path:         r.Path,
		Mode:         mode,
		Status:       status,
		IsModified:   r.Result.WasModified,
		Replacements: r.Result.ReplacementCount,
		BackupPath:   r.BackupPath,
	}
}
