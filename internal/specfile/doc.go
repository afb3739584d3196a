// Package specfile provides the concrete loader for the packaging spec
// format: a line-oriented dialect of section headers, key = value
// assignments, and list-sections.
//
// The format, in brief:
//
//   - `[section]` opens a section; `[section@profile]` opens its overlay for
//     a named build profile.
//   - `key = value` assigns a scalar inside the open section. The value runs
//     to the end of the line; a `#` inside a value is literal text.
//   - `[section:option]` opens a list-section: every following non-blank,
//     non-comment line is one element of the ordered list value for
//     `option`, until the next header. `[section:option@profile]` is the
//     profile-qualified form.
//   - Lines whose first non-whitespace character is `#` are comments; blank
//     lines are ignored everywhere.
//
// A list value therefore has two surface syntaxes, inline CSV and
// list-section, which normalize to the same semantic type during parsing.
// Defining the same option both ways is rejected as a conflict rather than
// silently picking one. All parse errors are fatal for the whole document.
//
// The package also provides Encode, the inverse direction: serializing a
// resolved configuration back to spec text.
package specfile
