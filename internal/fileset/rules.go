package fileset

import (
	"fmt"

	"github.com/vk/packspec/internal/resolve"
)

// Option names consumed by the selector, all under the source section.
const (
	Section               = "source"
	OptionDir             = "dir"
	OptionIncludeExts     = "include_exts"
	OptionIncludePatterns = "include_patterns"
	OptionExcludeExts     = "exclude_exts"
	OptionExcludeDirs     = "exclude_dirs"
	OptionExcludePatterns = "exclude_patterns"
)

// Rules is the file-selection rule set derived from the source.* options.
// Every field is an ordered pattern list; empty means the corresponding
// stage does not restrict.
type Rules struct {
	IncludeExts     []string
	IncludePatterns []string
	ExcludeExts     []string
	ExcludeDirs     []string
	ExcludePatterns []string
}

// RulesFrom extracts the selection rule set from a resolved configuration.
// Absent options yield empty rule lists; non-list values that cannot coerce
// to a list surface as coercion errors.
func RulesFrom(rc *resolve.ResolvedConfig) (Rules, error) {
	var rules Rules
	for _, f := range []struct {
		option string
		dst    *[]string
	}{
		{OptionIncludeExts, &rules.IncludeExts},
		{OptionIncludePatterns, &rules.IncludePatterns},
		{OptionExcludeExts, &rules.ExcludeExts},
		{OptionExcludeDirs, &rules.ExcludeDirs},
		{OptionExcludePatterns, &rules.ExcludePatterns},
	} {
		list, err := rc.ListOr(Section, f.option, nil)
		if err != nil {
			return Rules{}, fmt.Errorf("invalid selection rule %s.%s: %w", Section, f.option, err)
		}
		*f.dst = list
	}
	return rules, nil
}
