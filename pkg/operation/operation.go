package operation

import (
	"context"

	"github.com/walteh/textclean/pkg/config"
	"github.com/walteh/textclean/pkg/log"
	"github.com/walteh/textclean/pkg/text"
	"github.com/walteh/textclean/pkg/textenc"
	"gitlab.com/tozd/go/errors"
)

// 🎯 Operator defines the main interface for textclean operations
type Operator interface {
	// Clean rewrites every target and prints the job's status lines
	Clean(ctx context.Context) (*Report, error)
	// Status computes what Clean would do without writing anything
	Status(ctx context.Context) (*Report, error)
}

// 📣 Reporter receives user-facing output. *log.Logger implements it.
type Reporter interface {
	LogFileOperation(ctx context.Context, op log.FileOperation)
	Notice(msg string)
	Table(header []string, rows [][]string) error
	Raw(s string)
}

var _ Reporter = (*log.Logger)(nil)

// 🔧 Options contains configuration for the operator
type Options struct {
	// Config is the cleanup job
	Config *config.Config
	// Reporter receives console output
	Reporter Reporter
	// Replacer applies rules; defaults to a text.RegexReplacer
	Replacer text.TextReplacer
	// Verbose also reports every file during Clean
	Verbose bool
}

// 📄 FileReport describes what happened to one target
type FileReport struct {
	Path       string
	Result     *text.ReplacementResult
	Written    bool
	BackupPath string
}

// 📋 Report collects per-file results in target order
type Report struct {
	Files []FileReport
}

// ReplacementCount sums replacements over all files, blank-line folding included
func (r *Report) ReplacementCount() int {
	n := 0
	for _, f := range r.Files {
		if f.Result != nil {
			n += f.Result.ReplacementCount
		}
	}
	return n
}

// Modified returns the paths whose content changed
func (r *Report) Modified() []string {
	var out []string
	for _, f := range r.Files {
		if f.Result != nil && f.Result.WasModified {
			out = append(out, f.Path)
		}
	}
	return out
}

// 🏭 New creates a new operator with the given options
func New(opts Options) (Operator, error) {
	if opts.Config == nil {
		return nil, errors.Errorf("config is required")
	}
	if opts.Reporter == nil {
		return nil, errors.Errorf("reporter is required")
	}
	if opts.Replacer == nil {
		opts.Replacer = text.NewRegexReplacer()
	}

	rules := opts.Config.TextRules()
	if err := opts.Replacer.ValidateRules(rules); err != nil {
		return nil, errors.Errorf("validating rules: %w", err)
	}

	codec, err := textenc.Lookup(opts.Config.Encoding)
	if err != nil {
		return nil, err
	}

	concurrency := opts.Config.Concurrency
	if concurrency < 1 {
		concurrency = 1
	}

	return &operator{
		config:      opts.Config,
		rules:       rules,
		reporter:    opts.Reporter,
		replacer:    opts.Replacer,
		codec:       codec,
		concurrency: concurrency,
		verbose:     opts.Verbose,
	}, nil
}

// 🎮 operator implements the Operator interface
type operator struct {
	config      *config.Config
	rules       []text.ReplacementRule
	reporter    Reporter
	replacer    text.TextReplacer
	codec       *textenc.Codec
	concurrency int
	verbose     bool
}

func (op *operator) writeMode() string {
	if op.config.Atomic {
		return log.ModeAtomic
	}
	return log.ModeInPlace
}
