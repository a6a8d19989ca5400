package fwconfig

import (
	"fmt"
	"regexp"
	"strings"
)

// LineKind identifies which of the four line grammars a line matched.
type LineKind int

const (
	// KindEmpty is a zero-length line
	KindEmpty LineKind = iota
	// KindComment is a line starting with CommentChar
	KindComment
	// KindProperty is a "property=value" line
	KindProperty
	// KindFilter is a "[filter]" section header
	KindFilter
)

// String returns the lowercase name of the kind
func (k LineKind) String() string {
	switch k {
	case KindEmpty:
		return "empty"
	case KindComment:
		return "comment"
	case KindProperty:
		return "property"
	case KindFilter:
		return "filter"
	default:
		return fmt.Sprintf("LineKind(%d)", int(k))
	}
}

// MarshalText lets the kind appear by name in JSON and YAML output.
func (k LineKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// CommentChar starts a comment line.
const CommentChar = "#"

// whitespace matches the same characters as an ECMAScript \s class. Firmware
// config files written by other tools are checked against that definition.
const whitespace = `\s\x0B\p{Zs}\x{2028}\x{2029}\x{FEFF}`

var (
	propertyRegExp = regexp.MustCompile(`^([^=` + whitespace + `]+)=([^` + whitespace + `]+)$`)
	filterRegExp   = regexp.MustCompile(`^\[([^\[\]]+)\]$`)
	tokenRegExp    = regexp.MustCompile(`^[^` + whitespace + `]+$`)
)

// Line is a single classified line of a config file.
//
// Text always holds the verbatim source line and is what Stringify writes.
// Property and Value are set for KindProperty, Filter for KindFilter.
type Line struct {
	Kind     LineKind `json:"kind" yaml:"kind"`
	Text     string   `json:"text" yaml:"text"`
	Property string   `json:"property,omitempty" yaml:"property,omitempty"`
	Value    string   `json:"value,omitempty" yaml:"value,omitempty"`
	Filter   string   `json:"filter,omitempty" yaml:"filter,omitempty"`
}

// IsEmpty reports whether l is an empty line
func (l Line) IsEmpty() bool { return l.Kind == KindEmpty }

// IsComment reports whether l is a comment line
func (l Line) IsComment() bool { return l.Kind == KindComment }

// IsProperty reports whether l is a property line
func (l Line) IsProperty() bool { return l.Kind == KindProperty }

// IsFilter reports whether l is a filter header
func (l Line) IsFilter() bool { return l.Kind == KindFilter }

// Classify determines the kind of a single line. index is the 0-based line
// number reported in the error when nothing matches.
//
// Precedence is fixed: empty, comment, property, filter. A line made only of
// whitespace is not empty and fails.
func Classify(line string, index int) (Line, error) {
	if len(line) == 0 {
		return Line{Kind: KindEmpty, Text: line}, nil
	}

	if strings.HasPrefix(line, CommentChar) {
		return Line{Kind: KindComment, Text: line}, nil
	}

	// The property class excludes '=', so the first '=' always splits and
	// anything after it belongs to the value.
	if m := propertyRegExp.FindStringSubmatch(line); m != nil {
		return Line{Kind: KindProperty, Text: line, Property: m[1], Value: m[2]}, nil
	}

	if m := filterRegExp.FindStringSubmatch(line); m != nil {
		return Line{Kind: KindFilter, Text: line, Filter: m[1]}, nil
	}

	return Line{}, &UnrecognizedLineError{Line: line, Index: index}
}

// NewEmptyLine returns an empty line
func NewEmptyLine() Line {
	return Line{Kind: KindEmpty}
}

// NewCommentLine returns a comment line. The comment character is added
// when text does not already start with it.
func NewCommentLine(text string) Line {
	if !strings.HasPrefix(text, CommentChar) {
		text = CommentChar + text
	}
	return Line{Kind: KindComment, Text: text}
}

// NewPropertyLine returns a property line with Text generated from property
// and value. It fails when the pair would not classify as a property.
func NewPropertyLine(property, value string) (Line, error) {
	if err := ValidateProperty(property); err != nil {
		return Line{}, err
	}
	if err := ValidateValue(value); err != nil {
		return Line{}, err
	}
	return Line{
		Kind:     KindProperty,
		Text:     property + "=" + value,
		Property: property,
		Value:    value,
	}, nil
}

// NewFilterLine returns the header line for a section name.
func NewFilterLine(name string) Line {
	return Line{Kind: KindFilter, Text: "[" + name + "]", Filter: name}
}

// ValidateProperty checks that name can appear on the left of a property line.
func ValidateProperty(name string) error {
	if name == "" {
		return &ValueError{Field: "property", Value: name, Message: "must not be empty"}
	}
	if strings.Contains(name, "=") {
		return &ValueError{Field: "property", Value: name, Message: "must not contain '='"}
	}
	if strings.HasPrefix(name, CommentChar) {
		return &ValueError{Field: "property", Value: name, Message: "must not start with '#'"}
	}
	if !tokenRegExp.MatchString(name) {
		return &ValueError{Field: "property", Value: name, Message: "must not contain whitespace"}
	}
	return nil
}

// ValidateValue checks that value can appear on the right of a property line.
func ValidateValue(value string) error {
	if value == "" {
		return &ValueError{Field: "value", Value: value, Message: "must not be empty"}
	}
	if !tokenRegExp.MatchString(value) {
		return &ValueError{Field: "value", Value: value, Message: "must not contain whitespace"}
	}
	return nil
}

// ValidateSectionName checks that name can be written as a filter header.
func ValidateSectionName(name string) error {
	if name == "" {
		return &ValueError{Field: "section", Value: name, Message: "must not be empty"}
	}
	if strings.ContainsAny(name, "[]\n") {
		return &ValueError{Field: "section", Value: name, Message: "must not contain '[', ']' or newlines"}
	}
	return nil
}
