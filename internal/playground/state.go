package playground

import (
	"net/url"
	"strings"
)

// Method selects what Execute runs against the engine.
type Method string

const (
	MethodFind    Method = "find"
	MethodReplace Method = "replace"
)

// ParseMethod maps s to a Method, defaulting to find.
func ParseMethod(s string) Method {
	switch Method(s) {
	case MethodReplace:
		return MethodReplace
	default:
		return MethodFind
	}
}

// State is the shareable playground input. It round-trips through a URL
// query string.
type State struct {
	Version string
	Method  Method
	Regex   string
	Replace string
	Text    string
}

// FromQuery parses q. An unknown or missing version falls back to def.
func FromQuery(q url.Values, valid func(string) bool, def string) State {
	version := q.Get("version")
	if valid == nil || !valid(version) {
		version = def
	}
	return State{
		Version: version,
		Method:  ParseMethod(q.Get("method")),
		Regex:   q.Get("regex"),
		Replace: q.Get("replace"),
		Text:    q.Get("text"),
	}
}

// Query returns the canonical query parameters for s. Version and method are
// always present; replace only for the replace method; empty fields are
// omitted.
func (s State) Query() url.Values {
	q := url.Values{}
	for _, kv := range s.pairs() {
		q.Set(kv[0], kv[1])
	}
	return q
}

// Encode renders the canonical query string with keys in a stable order.
func (s State) Encode() string {
	var b strings.Builder
	for i, kv := range s.pairs() {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(url.QueryEscape(kv[0]))
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(kv[1]))
	}
	return b.String()
}

func (s State) pairs() [][2]string {
	method := ParseMethod(string(s.Method))
	out := [][2]string{{"version", s.Version}, {"method", string(method)}}
	if s.Regex != "" {
		out = append(out, [2]string{"regex", s.Regex})
	}
	if method == MethodReplace && s.Replace != "" {
		out = append(out, [2]string{"replace", s.Replace})
	}
	if s.Text != "" {
		out = append(out, [2]string{"text", s.Text})
	}
	return out
}
