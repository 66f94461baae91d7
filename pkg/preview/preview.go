// Package preview renders what a cleanup would change without touching the file.
package preview

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/sergi/go-diff/diffmatchpatch"
)

// contextLines is how many unchanged lines surround each hunk.
const contextLines = 3

// Stats summarises a diff in lines.
type Stats struct {
	Inserted int
	Deleted  int
}

// Changed reports whether the diff has any edits.
func (s Stats) Changed() bool {
	return s.Inserted > 0 || s.Deleted > 0
}

type line struct {
	op   byte // ' ', '-' or '+'
	text string
}

// lineDiff diffs before and after line by line. Each distinct line becomes one
// rune so the diff can never split a line.
func lineDiff(before, after string) []line {
	var lines []string
	index := map[string]rune{}
	tokens := func(s string) []rune {
		var out []rune
		for _, l := range splitLines(s) {
			r, ok := index[l]
			if !ok {
				r = indexRune(len(lines))
				index[l] = r
				lines = append(lines, l)
			}
			out = append(out, r)
		}
		return out
	}
	a, b := tokens(before), tokens(after)

	dmp := diffmatchpatch.New()
	var out []line
	for _, d := range dmp.DiffMainRunes(a, b, false) {
		op := byte(' ')
		switch d.Type {
		case diffmatchpatch.DiffInsert:
			op = '+'
		case diffmatchpatch.DiffDelete:
			op = '-'
		}
		for _, r := range d.Text {
			out = append(out, line{op: op, text: lines[runeIndex(r)]})
		}
	}
	return out
}

// indexRune maps a line index to a rune outside the surrogate range.
func indexRune(i int) rune {
	r := rune(i)
	if r >= 0xD800 {
		r += 0x800
	}
	return r
}

func runeIndex(r rune) int {
	if r >= 0xE000 {
		r -= 0x800
	}
	return int(r)
}

// splitLines splits s after every newline, keeping the newlines.
func splitLines(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.SplitAfter(s, "\n")
	if parts[len(parts)-1] == "" {
		parts = parts[:len(parts)-1]
	}
	return parts
}

// Patch renders a unified diff body (hunks only, no file header) from before
// to after. Identical inputs yield "".
func Patch(before, after string) string {
	if before == after {
		return ""
	}

	ops := lineDiff(before, after)

	// oldAt[i] and newAt[i] count the old and new lines preceding ops[i]
	oldAt := make([]int, len(ops)+1)
	newAt := make([]int, len(ops)+1)
	for i, o := range ops {
		oldAt[i+1], newAt[i+1] = oldAt[i], newAt[i]
		if o.op != '+' {
			oldAt[i+1]++
		}
		if o.op != '-' {
			newAt[i+1]++
		}
	}

	var sb strings.Builder
	for i := 0; i < len(ops); {
		for i < len(ops) && ops[i].op == ' ' {
			i++
		}
		if i == len(ops) {
			break
		}

		start := max(0, i-contextLines)
		end := i
		for end < len(ops) {
			if ops[end].op != ' ' {
				end++
				continue
			}
			j := end
			for j < len(ops) && ops[j].op == ' ' {
				j++
			}
			if j == len(ops) || j-end > 2*contextLines {
				end = min(j, end+contextLines)
				break
			}
			end = j
		}

		fmt.Fprintf(&sb, "@@ -%d,%d +%d,%d @@\n",
			oldAt[start]+1, oldAt[end]-oldAt[start],
			newAt[start]+1, newAt[end]-newAt[start])
		for _, o := range ops[start:end] {
			sb.WriteByte(o.op)
			sb.WriteString(o.text)
			if !strings.HasSuffix(o.text, "\n") {
				sb.WriteString("\n\\ No newline at end of file\n")
			}
		}

		i = end
	}

	return sb.String()
}

// Pretty is Patch with removed lines in red, added lines in green and hunk
// headers in cyan. It equals Patch when color is disabled.
func Pretty(before, after string) string {
	patch := Patch(before, after)
	if color.NoColor || patch == "" {
		return patch
	}

	red := color.New(color.FgRed)
	green := color.New(color.FgGreen)
	cyan := color.New(color.FgCyan)

	var sb strings.Builder
	for _, l := range splitLines(patch) {
		body := strings.TrimSuffix(l, "\n")
		switch {
		case strings.HasPrefix(body, "@@"):
			body = cyan.Sprint(body)
		case strings.HasPrefix(body, "-"):
			body = red.Sprint(body)
		case strings.HasPrefix(body, "+"):
			body = green.Sprint(body)
		}
		sb.WriteString(body)
		sb.WriteString("\n")
	}
	return sb.String()
}

// Diff counts inserted and deleted lines between before and after.
func Diff(before, after string) Stats {
	var stats Stats
	for _, o := range lineDiff(before, after) {
		switch o.op {
		case '+':
			stats.Inserted++
		case '-':
			stats.Deleted++
		}
	}
	return stats
}
