package specfile

import (
	"fmt"

	"github.com/vk/packspec/internal/config"
)

// SyntaxError reports a line that is neither blank, a comment, a section
// header, nor a key = value assignment inside an open section. Parsing
// aborts at the first occurrence.
type SyntaxError struct {
	Path string
	Line int
	Msg  string
}

// Error implements the error interface.
func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%s:%d: %s", e.Path, e.Line, e.Msg)
}

// DuplicateSectionError reports the same header, including its profile
// qualifier, declared twice in one document. Authorial intent is ambiguous,
// so parsing aborts.
type DuplicateSectionError struct {
	Path      string
	Header    string
	Line      int
	FirstLine int
}

// Error implements the error interface.
func (e *DuplicateSectionError) Error() string {
	return fmt.Sprintf("%s:%d: duplicate section [%s], first declared on line %d", e.Path, e.Line, e.Header, e.FirstLine)
}

// ConflictingListDefinitionError reports an option defined both as a scalar
// assignment and as a list-section for the same (section, option) pair.
type ConflictingListDefinitionError struct {
	Path    string
	Section config.SectionKey
	Option  string
	Line    int
}

// Error implements the error interface.
func (e *ConflictingListDefinitionError) Error() string {
	return fmt.Sprintf("%s:%d: option %q in section [%s] is defined both inline and as list-section [%s:%s]",
		e.Path, e.Line, e.Option, e.Section, e.Section, e.Option)
}
