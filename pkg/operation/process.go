package operation

import (
	"context"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/walteh/textclean/pkg/text"
	"gitlab.com/tozd/go/errors"
)

// 📄 processFile reads, transforms and (unless dryRun) rewrites one target
func (op *operator) processFile(ctx context.Context, path string, dryRun bool) (*FileReport, error) {
	logger := zerolog.Ctx(ctx)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Errorf("reading file: %w", err)
	}

	content, err := op.codec.Decode(raw)
	if err != nil {
		return nil, err
	}

	rules := text.Filter(op.rules, path)
	if !op.config.KeepBlankLines {
		rules = append(rules, text.CollapseBlankLinesRule)
	}

	result, err := op.replacer.ReplaceText(ctx, strings.NewReader(content), rules)
	if err != nil {
		return nil, errors.Errorf("applying rules: %w", err)
	}

	logger.Debug().
		Str("file", path).
		Str("encoding", op.codec.Name()).
		Int("rules", len(rules)).
		Int("replacements", result.ReplacementCount).
		Bool("modified", result.WasModified).
		Msg("applied rules")

	report := &FileReport{Path: path, Result: result}
	if dryRun {
		return report, nil
	}

	encoded, err := op.codec.Encode(string(result.ModifiedContent))
	if err != nil {
		return nil, err
	}

	if op.config.Backup {
		backup, err := writeBackup(path, raw)
		if err != nil {
			return nil, err
		}
		report.BackupPath = backup
	}

	// unchanged content is still written back
	if op.config.Atomic {
		err = writeFileAtomic(path, encoded)
	} else {
		err = writeFileInPlace(path, encoded)
	}
	if err != nil {
		return nil, err
	}
	report.Written = true

	return report, nil
}
