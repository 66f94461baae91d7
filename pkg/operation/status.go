package operation

import (
	"context"
	"fmt"
	"strconv"

	"github.com/walteh/textclean/pkg/log"
	"github.com/walteh/textclean/pkg/preview"
	"gitlab.com/tozd/go/errors"
)

// 🔍 Status runs every rule without writing. It reports each file, a table of
// per-rule match counts, and a line diff for every file that would change.
func (op *operator) Status(ctx context.Context) (*Report, error) {
	paths, err := ResolveTargets(op.config.Targets)
	if err != nil {
		return nil, errors.Errorf("resolving targets: %w", err)
	}

	report, err := runFiles(ctx, op.concurrency, paths, func(ctx context.Context, path string) (*FileReport, error) {
		return op.processFile(ctx, path, true)
	})
	if err != nil {
		return nil, errors.Errorf("checking status: %w", err)
	}

	var rows [][]string
	for i := range report.Files {
		f := &report.Files[i]
		op.reporter.LogFileOperation(ctx, fileOperation(f, log.ModeDryRun))
		for _, rr := range f.Result.Rules {
			rows = append(rows, []string{f.Path, rr.Name, strconv.Itoa(rr.Matches)})
		}
	}

	if len(rows) > 0 {
		if err := op.reporter.Table([]string{"file", "rule", "matches"}, rows); err != nil {
			return nil, errors.Errorf("rendering summary: %w", err)
		}
	}

	for _, f := range report.Files {
		if !f.Result.WasModified {
			continue
		}
		before, after := string(f.Result.OriginalContent), string(f.Result.ModifiedContent)
		stats := preview.Diff(before, after)
		op.reporter.Raw(fmt.Sprintf("--- %s (+%d -%d lines)\n%s", f.Path, stats.Inserted, stats.Deleted, preview.Pretty(before, after)))
	}

	return report, nil
}
