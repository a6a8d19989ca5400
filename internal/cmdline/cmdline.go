// Package cmdline splits and joins the kernel command line stored in
// cmdline.txt: a single line of space-separated "name" or "name=value" tokens.
//
// Parse and Stringify preserve token order. Only the first '=' of a token
// separates name from value. A token with an empty value is written back as
// its bare name, so "quiet" and "quiet=" both stringify as "quiet".
package cmdline

import "strings"

// Param is one command-line token.
type Param struct {
	Name  string `json:"name" yaml:"name"`
	Value string `json:"value,omitempty" yaml:"value,omitempty"`
}

// String renders the token as it appears on the command line
func (p Param) String() string {
	if p.Value == "" {
		return p.Name
	}
	return p.Name + "=" + p.Value
}

// Params is an ordered command line.
type Params []Param

// Parse splits text on single spaces. Consecutive spaces yield empty tokens,
// which keeps the split reversible.
func Parse(text string) Params {
	tokens := strings.Split(text, " ")
	params := make(Params, 0, len(tokens))
	for _, tok := range tokens {
		name, value, _ := strings.Cut(tok, "=")
		params = append(params, Param{Name: name, Value: value})
	}
	return params
}

// Stringify joins params with single spaces.
func Stringify(params Params) string {
	parts := make([]string, len(params))
	for i, p := range params {
		parts[i] = p.String()
	}
	return strings.Join(parts, " ")
}

// String is Stringify(p).
func (p Params) String() string {
	return Stringify(p)
}

// Get returns the value of the last token with the given name.
func (p Params) Get(name string) (string, bool) {
	for i := len(p) - 1; i >= 0; i-- {
		if p[i].Name == name {
			return p[i].Value, true
		}
	}
	return "", false
}

// Has reports whether a token with the given name exists.
func (p Params) Has(name string) bool {
	_, ok := p.Get(name)
	return ok
}

// Set returns a copy of p with the value of the last token with the given
// name replaced, or with a new token appended when none exists. p is not
// modified.
func (p Params) Set(name, value string) Params {
	out := make(Params, len(p), len(p)+1)
	copy(out, p)
	for i := len(out) - 1; i >= 0; i-- {
		if out[i].Name == name {
			out[i].Value = value
			return out
		}
	}
	return append(out, Param{Name: name, Value: value})
}

// Remove returns a copy of p without any token of the given name. p is not
// modified.
func (p Params) Remove(name string) Params {
	kept := make(Params, 0, len(p))
	for _, param := range p {
		if param.Name != name {
			kept = append(kept, param)
		}
	}
	return kept
}
