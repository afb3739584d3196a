package specfile

import (
	"bufio"
	"fmt"
	"regexp"
	"strings"

	"github.com/vk/packspec/internal/config"
)

// namePattern constrains section names, option names, and profile names.
var namePattern = regexp.MustCompile(`^[A-Za-z0-9_.\-]+$`)

// header is a parsed section header line.
type header struct {
	section config.SectionKey
	option  string // non-empty for a list-section header
	line    int
}

// String renders the header in its normalized source form, without brackets.
func (h header) String() string {
	s := h.section.Name
	if h.option != "" {
		s += ":" + h.option
	}
	if h.section.Profile != "" {
		s += "@" + h.section.Profile
	}
	return s
}

// parser holds the line-by-line parse state for one document.
type parser struct {
	path string
	doc  *config.Document

	headers map[string]int // normalized header -> first declaration line

	cur     *config.Section // open section, nil before the first header
	curList *listState      // open list-section, nil otherwise
}

// listState accumulates the elements of an open list-section.
type listState struct {
	section    *config.Section
	option     string
	headerLine int
	lines      []string
}

// Parse reads spec text into the format-agnostic document model. The path is
// used for error reporting only. Any syntax, duplicate-section, or
// list-conflict error aborts the parse; there is no partial result.
func Parse(path string, src []byte) (*config.Document, error) {
	p := &parser{
		path:    path,
		doc:     config.NewDocument(),
		headers: make(map[string]int),
	}

	scanner := bufio.NewScanner(strings.NewReader(string(src)))
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		if err := p.consume(lineNo, scanner.Text()); err != nil {
			return nil, err
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	p.closeList()
	return p.doc, nil
}

// consume processes a single source line.
func (p *parser) consume(lineNo int, raw string) error {
	line := strings.TrimSpace(raw)

	// Blank lines and comment lines are ignored everywhere, including
	// inside list-sections.
	if line == "" || strings.HasPrefix(line, "#") {
		return nil
	}

	if strings.HasPrefix(line, "[") {
		h, err := p.parseHeader(lineNo, line)
		if err != nil {
			return err
		}
		return p.openSection(h)
	}

	if p.curList != nil {
		// Every non-blank, non-comment line of a list-section is one
		// element, verbatim after trimming.
		p.curList.lines = append(p.curList.lines, line)
		return nil
	}

	return p.assign(lineNo, line)
}

// parseHeader parses `[name]`, `[name@profile]`, `[name:option]`, or
// `[name:option@profile]`.
func (p *parser) parseHeader(lineNo int, line string) (header, error) {
	if !strings.HasSuffix(line, "]") {
		return header{}, &SyntaxError{Path: p.path, Line: lineNo, Msg: fmt.Sprintf("unterminated section header %q", line)}
	}
	inner := line[1 : len(line)-1]

	name, profile, hasProfile := strings.Cut(inner, "@")
	name, option, hasOption := strings.Cut(name, ":")

	if !namePattern.MatchString(name) {
		return header{}, &SyntaxError{Path: p.path, Line: lineNo, Msg: fmt.Sprintf("invalid section name %q", name)}
	}
	if hasOption && !namePattern.MatchString(option) {
		return header{}, &SyntaxError{Path: p.path, Line: lineNo, Msg: fmt.Sprintf("invalid list-section option name %q", option)}
	}
	if hasProfile && !namePattern.MatchString(profile) {
		return header{}, &SyntaxError{Path: p.path, Line: lineNo, Msg: fmt.Sprintf("invalid profile name %q", profile)}
	}

	return header{
		section: config.SectionKey{Name: name, Profile: profile},
		option:  option,
		line:    lineNo,
	}, nil
}

// openSection closes any open list-section and opens the section or
// list-section named by the header.
func (p *parser) openSection(h header) error {
	p.closeList()

	normalized := h.String()
	if first, seen := p.headers[normalized]; seen {
		return &DuplicateSectionError{Path: p.path, Header: normalized, Line: h.line, FirstLine: first}
	}
	p.headers[normalized] = h.line

	sec := p.doc.EnsureSection(h.section, h.line)

	if h.option == "" {
		p.cur = sec
		return nil
	}

	// List-section: the scalar form of the same option must not exist.
	if existing, ok := sec.Lookup(h.option); ok && !existing.IsList {
		return &ConflictingListDefinitionError{Path: p.path, Section: h.section, Option: h.option, Line: h.line}
	}
	p.cur = nil
	p.curList = &listState{section: sec, option: h.option, headerLine: h.line}
	return nil
}

// assign processes a `key = value` line inside the open section.
func (p *parser) assign(lineNo int, line string) error {
	if p.cur == nil {
		return &SyntaxError{Path: p.path, Line: lineNo, Msg: fmt.Sprintf("assignment %q outside of any section", line)}
	}

	key, value, found := strings.Cut(line, "=")
	if !found {
		return &SyntaxError{Path: p.path, Line: lineNo, Msg: fmt.Sprintf("line %q is not a section header or key = value assignment", line)}
	}
	key = strings.TrimSpace(key)
	// The value is raw text to end of line; a bare `#` inside it is literal,
	// never an inline comment.
	value = strings.TrimSpace(value)

	if !namePattern.MatchString(key) {
		return &SyntaxError{Path: p.path, Line: lineNo, Msg: fmt.Sprintf("invalid option name %q", key)}
	}

	// The list-section form of the same option must not exist.
	if existing, ok := p.cur.Lookup(key); ok && existing.IsList {
		return &ConflictingListDefinitionError{Path: p.path, Section: p.cur.Key, Option: key, Line: lineNo}
	}

	p.cur.Set(key, config.RawValue{Scalar: value, Line: lineNo})
	return nil
}

// closeList commits the open list-section, if any. An empty list-section is
// committed as a present-but-empty list, distinct from the option being
// absent.
func (p *parser) closeList() {
	if p.curList == nil {
		return
	}
	ls := p.curList
	p.curList = nil

	lines := ls.lines
	if lines == nil {
		lines = []string{}
	}
	ls.section.Set(ls.option, config.RawValue{Lines: lines, IsList: true, Line: ls.headerLine})
}
