// Package fileset chooses which files under a source root are eligible for
// packaging, by include/exclude extension and glob pattern rules.
//
// Pattern semantics are those of doublestar: a single `*` matches within one
// path segment and never crosses `/`; `**` matches across segments. All
// patterns are matched against the forward-slash path relative to the
// selection root. A directory matching any exclude_dirs pattern is pruned
// whole; its contents are never visited.
//
// Exclusion always wins over inclusion. The stages are evaluated as set
// operations, a union of includes minus a union of excludes, so the result
// is independent of rule ordering and idempotent for an unchanged tree.
// A malformed pattern is reported and skipped; it never aborts selection
// driven by the remaining valid patterns.
package fileset

import (
	"context"
	"fmt"
	"path"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/vk/packspec/internal/ctxlog"
	"github.com/vk/packspec/internal/fsutil"
)

// PatternError reports a malformed glob pattern. Patterns are not validated
// until selection time, so this surfaces here rather than at parse time.
type PatternError struct {
	Pattern string
	Err     error
}

// Error implements the error interface.
func (e *PatternError) Error() string {
	return fmt.Sprintf("malformed pattern %q: %v", e.Pattern, e.Err)
}

// Unwrap exposes the underlying doublestar error.
func (e *PatternError) Unwrap() error {
	return e.Err
}

// Result is the outcome of one selection run.
type Result struct {
	// Files is the final ordered set of selected paths, relative to the
	// selection root, forward-slash separated, sorted.
	Files []string
	// BadPatterns lists the malformed patterns that were skipped.
	BadPatterns []*PatternError
}

// Select enumerates the regular files under root and applies the rule set.
// The walk checks ctx between directory visits, so a long tree walk can be
// interrupted. The result is deterministic for a given tree snapshot and
// rule set.
func Select(ctx context.Context, root string, rules Rules) (*Result, error) {
	logger := ctxlog.FromContext(ctx)
	res := &Result{}

	includePatterns := validPatterns(ctx, rules.IncludePatterns, res)
	excludeDirs := validPatterns(ctx, rules.ExcludeDirs, res)
	excludePatterns := validPatterns(ctx, rules.ExcludePatterns, res)

	candidates, err := fsutil.ListRegularFiles(ctx, root, func(rel string) bool {
		return matchAny(excludeDirs, rel)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to enumerate %s: %w", root, err)
	}
	logger.Debug("Candidate files enumerated.", "root", root, "count", len(candidates))

	includeExts := extSet(rules.IncludeExts)
	excludeExts := extSet(rules.ExcludeExts)

	// Union of includes.
	included := make(map[string]bool, len(candidates))
	for _, p := range candidates {
		if len(includeExts) > 0 && !includeExts[ext(p)] {
			continue
		}
		if len(includePatterns) > 0 && !matchAny(includePatterns, p) {
			continue
		}
		included[p] = true
	}

	// Minus union of excludes.
	for _, p := range candidates {
		if excludeExts[ext(p)] || matchAny(excludePatterns, p) {
			delete(included, p)
		}
	}

	res.Files = make([]string, 0, len(included))
	for p := range included {
		res.Files = append(res.Files, p)
	}
	sort.Strings(res.Files)

	logger.Debug("File selection finished.", "selected", len(res.Files), "skipped_patterns", len(res.BadPatterns))
	return res, nil
}

// validPatterns filters out malformed patterns, recording and logging each
// one; selection continues with the remainder.
func validPatterns(ctx context.Context, patterns []string, res *Result) []string {
	logger := ctxlog.FromContext(ctx)
	out := make([]string, 0, len(patterns))
	for _, p := range patterns {
		if !doublestar.ValidatePattern(p) {
			perr := &PatternError{Pattern: p, Err: doublestar.ErrBadPattern}
			res.BadPatterns = append(res.BadPatterns, perr)
			logger.Warn("Skipping malformed pattern.", "pattern", p)
			continue
		}
		out = append(out, p)
	}
	return out
}

// matchAny reports whether the relative path matches at least one pattern.
// Patterns are pre-validated, so match errors cannot occur.
func matchAny(patterns []string, rel string) bool {
	for _, pattern := range patterns {
		if ok, _ := doublestar.Match(pattern, rel); ok {
			return true
		}
	}
	return false
}

// ext returns the path's extension without the leading dot, case-sensitive.
func ext(p string) string {
	return strings.TrimPrefix(path.Ext(p), ".")
}

// extSet builds a lookup set of extensions, tolerating a leading dot in the
// configured spelling.
func extSet(exts []string) map[string]bool {
	set := make(map[string]bool, len(exts))
	for _, e := range exts {
		set[strings.TrimPrefix(e, ".")] = true
	}
	return set
}
