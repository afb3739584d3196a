// Package value converts raw option text into typed values. The single
// internal value representation is cty.Value: strings, whole numbers,
// booleans, and lists of strings. A list value has two equivalent surface
// syntaxes, inline comma-separated text and one-element-per-line
// list-sections; both coerce to the identical ordered sequence.
package value

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/vk/packspec/internal/config"
	"github.com/zclconf/go-cty/cty"
)

// Kind names the expected type of an option value.
type Kind int

const (
	KindString Kind = iota
	KindInt
	KindBool
	KindList
)

// String implements fmt.Stringer.
func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindInt:
		return "integer"
	case KindBool:
		return "boolean"
	case KindList:
		return "list"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// TypeError reports a raw value that cannot be coerced to the expected kind.
type TypeError struct {
	Option string // qualified option name, e.g. "android.api"
	Raw    string
	Want   Kind
}

// Error implements the error interface.
func (e *TypeError) Error() string {
	return fmt.Sprintf("option %q: cannot coerce %q to %s", e.Option, e.Raw, e.Want)
}

// boolVocabulary is the canonical boolean spelling set, matched
// case-insensitively.
var boolVocabulary = map[string]bool{
	"0":     false,
	"1":     true,
	"false": false,
	"true":  true,
}

// Coerce converts a raw value into a typed cty.Value of the expected kind.
// The option name is carried into any TypeError for reporting.
func Coerce(option string, raw config.RawValue, want Kind) (cty.Value, error) {
	switch want {
	case KindString:
		if raw.IsList {
			return cty.NilVal, &TypeError{Option: option, Raw: joinLines(raw.Lines), Want: want}
		}
		return cty.StringVal(raw.Scalar), nil

	case KindInt:
		if raw.IsList {
			return cty.NilVal, &TypeError{Option: option, Raw: joinLines(raw.Lines), Want: want}
		}
		n, err := strconv.ParseInt(strings.TrimSpace(raw.Scalar), 10, 64)
		if err != nil {
			return cty.NilVal, &TypeError{Option: option, Raw: raw.Scalar, Want: want}
		}
		return cty.NumberIntVal(n), nil

	case KindBool:
		if raw.IsList {
			return cty.NilVal, &TypeError{Option: option, Raw: joinLines(raw.Lines), Want: want}
		}
		b, ok := boolVocabulary[strings.ToLower(strings.TrimSpace(raw.Scalar))]
		if !ok {
			return cty.NilVal, &TypeError{Option: option, Raw: raw.Scalar, Want: want}
		}
		return cty.BoolVal(b), nil

	case KindList:
		return listVal(elements(raw)), nil

	default:
		return cty.NilVal, fmt.Errorf("unknown kind %v for option %q", want, option)
	}
}

// Canonical converts a raw value into its schema-free canonical form: a list
// of strings for list-section values, a plain string otherwise. This is the
// representation carried by a resolved configuration for options the core
// does not interpret.
func Canonical(raw config.RawValue) cty.Value {
	if raw.IsList {
		return listVal(elements(raw))
	}
	return cty.StringVal(raw.Scalar)
}

// SplitList splits inline comma-separated list text into trimmed elements,
// dropping empty pieces produced by stray commas. Order is preserved.
func SplitList(s string) []string {
	var out []string
	for _, piece := range strings.Split(s, ",") {
		piece = strings.TrimSpace(piece)
		if piece != "" {
			out = append(out, piece)
		}
	}
	return out
}

// elements returns the ordered list elements of a raw value, from either
// surface syntax.
func elements(raw config.RawValue) []string {
	if !raw.IsList {
		return SplitList(raw.Scalar)
	}
	var out []string
	for _, line := range raw.Lines {
		line = strings.TrimSpace(line)
		if line != "" {
			out = append(out, line)
		}
	}
	return out
}

// listVal builds a cty list of strings. cty.ListVal rejects empty input, so
// the empty list is built explicitly; it remains distinct from an absent
// option, which yields no value at all.
func listVal(elems []string) cty.Value {
	if len(elems) == 0 {
		return cty.ListValEmpty(cty.String)
	}
	vals := make([]cty.Value, len(elems))
	for i, e := range elems {
		vals[i] = cty.StringVal(e)
	}
	return cty.ListVal(vals)
}

// joinLines renders list-section content for error messages.
func joinLines(lines []string) string {
	return strings.Join(lines, ", ")
}
