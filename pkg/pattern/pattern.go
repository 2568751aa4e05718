package pattern

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/numval/numval-go/pkg/value"
)

// ErrInvalidTemplate is returned when a template cannot be compiled.
var ErrInvalidTemplate = errors.New("invalid template")

// ModifierHidden suppresses a placeholder when formatting.
const ModifierHidden = "hidden"

var (
	// placeholderRe matches a placeholder for formatting.
	placeholderRe = regexp.MustCompile(`\{([^{}]*)\}`)

	// paddedPlaceholderRe also consumes the whitespace around a placeholder.
	paddedPlaceholderRe = regexp.MustCompile(`\s*\{([^{}]*)\}\s*`)
)

const (
	// captureGroup replaces each placeholder in the matcher.
	captureGroup = `(.+)`

	// gapSeparator splits two captures that only whitespace separates.
	gapSeparator = `\s+`
)

// Pattern is a compiled template.
type Pattern struct {
	template string
	keys     []string
	hidden   bool
	matcher  *regexp.Regexp
}

type options struct {
	rawLiterals bool
}

// Option configures Compile.
type Option func(*options)

// WithRawLiterals embeds literal template text into the matcher unescaped.
func WithRawLiterals() Option {
	return func(o *options) { o.rawLiterals = true }
}

// Compile compiles a template into its key list and matcher.
func Compile(template string, opts ...Option) (*Pattern, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	p := &Pattern{template: template}
	seen := make(map[string]bool)

	var expr strings.Builder
	expr.WriteString(`^(?:`)
	last := 0
	prevClose := -1
	for _, loc := range paddedPlaceholderRe.FindAllStringSubmatchIndex(template, -1) {
		key, modifier := splitPlaceholder(template[loc[2]:loc[3]])
		if key == "" {
			return nil, fmt.Errorf("%w: empty placeholder at offset %d", ErrInvalidTemplate, loc[0])
		}
		if !seen[key] {
			seen[key] = true
			p.keys = append(p.keys, key)
		}
		if modifier == ModifierHidden {
			p.hidden = true
		}

		brace := loc[2] - 1
		if prevClose >= 0 && loc[0] == last && brace > prevClose {
			expr.WriteString(gapSeparator)
		} else {
			expr.WriteString(literal(template[last:loc[0]], o.rawLiterals))
		}
		expr.WriteString(captureGroup)
		last = loc[1]
		prevClose = loc[3] + 1
	}
	expr.WriteString(literal(template[last:], o.rawLiterals))
	expr.WriteString(`)$`)

	matcher, err := regexp.Compile(expr.String())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidTemplate, err)
	}
	p.matcher = matcher
	return p, nil
}

// MustCompile is like Compile but panics on error.
func MustCompile(template string, opts ...Option) *Pattern {
	p, err := Compile(template, opts...)
	if err != nil {
		panic(err)
	}
	return p
}

func literal(s string, raw bool) string {
	if raw {
		return s
	}
	return regexp.QuoteMeta(s)
}

// splitPlaceholder splits "key,modifier" into its trimmed parts.
func splitPlaceholder(body string) (key, modifier string) {
	key, modifier, _ = strings.Cut(body, ",")
	return strings.TrimSpace(key), strings.TrimSpace(modifier)
}

// Template returns the source template.
func (p *Pattern) Template() string { return p.template }

// Keys returns the placeholder keys in first-seen order.
func (p *Pattern) Keys() []string {
	out := make([]string, len(p.keys))
	copy(out, p.keys)
	return out
}

// HasHidden returns true if any placeholder carries the hidden modifier.
func (p *Pattern) HasHidden() bool { return p.hidden }

// Matcher returns the compiled matcher.
func (p *Pattern) Matcher() *regexp.Regexp { return p.matcher }

// Match is the result of matching display text against a pattern.
type Match struct {
	groups  []string
	present []bool
}

// Len returns the number of capture groups.
func (m Match) Len() int { return len(m.groups) }

// Group returns capture group i (0-based). ok is false when i is out of
// range or the group did not participate in the match.
func (m Match) Group(i int) (string, bool) {
	if i < 0 || i >= len(m.groups) || !m.present[i] {
		return "", false
	}
	return m.groups[i], true
}

// Match matches the whole of s. ok is false when s does not match.
func (p *Pattern) Match(s string) (Match, bool) {
	loc := p.matcher.FindStringSubmatchIndex(s)
	if loc == nil {
		return Match{}, false
	}
	n := len(loc)/2 - 1
	m := Match{groups: make([]string, n), present: make([]bool, n)}
	for i := 0; i < n; i++ {
		start, end := loc[2*i+2], loc[2*i+3]
		if start < 0 {
			continue
		}
		m.groups[i] = s[start:end]
		m.present[i] = true
	}
	return m, true
}

// Format renders values into the template.
func (p *Pattern) Format(values map[string]float64) string {
	return Format(p.template, values)
}

// Format replaces every placeholder in template with the value stored under
// its key. Hidden placeholders and keys without a value render as "".
func Format(template string, values map[string]float64) string {
	return placeholderRe.ReplaceAllStringFunc(template, func(ph string) string {
		key, modifier := splitPlaceholder(ph[1 : len(ph)-1])
		if modifier == ModifierHidden {
			return ""
		}
		v, ok := values[key]
		if !ok {
			return ""
		}
		return value.FormatNumber(v)
	})
}
