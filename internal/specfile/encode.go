package specfile

import (
	"fmt"
	"strings"

	"github.com/vk/packspec/internal/resolve"
)

// Encode serializes a resolved configuration back to spec text. Scalar
// options are written as assignments; list options are always written as
// list-sections, one element per line, so that elements containing commas
// survive a round trip. The original inline-vs-block formatting of lists is
// intentionally not preserved. Re-parsing and re-resolving the output yields
// an equivalent configuration.
func Encode(rc *resolve.ResolvedConfig) []byte {
	var b strings.Builder

	for i, sectionName := range rc.Sections() {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "[%s]\n", sectionName)

		var lists []string
		for _, option := range rc.Options(sectionName) {
			raw, _ := rc.Raw(sectionName, option)
			if raw.IsList {
				lists = append(lists, option)
				continue
			}
			fmt.Fprintf(&b, "%s = %s\n", option, raw.Scalar)
		}

		for _, option := range lists {
			raw, _ := rc.Raw(sectionName, option)
			fmt.Fprintf(&b, "\n[%s:%s]\n", sectionName, option)
			for _, line := range raw.Lines {
				fmt.Fprintf(&b, "%s\n", line)
			}
		}
	}

	return []byte(b.String())
}
