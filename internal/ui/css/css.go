// Package css parses the small stylesheet dialect used by the overlay: ".class" and "#id"
// selectors (comma-separated lists allowed) with "key: value;" declarations.
// No combinators, no @rules, no nesting.
package css

import (
	"errors"
	"fmt"
	"strings"
)

var ErrUnterminated = errors.New("unterminated block")

// Rule is a single rule: one selector and its raw property values.
type Rule struct {
	Selector string            // e.g. ".panel" or "#title"
	Props    map[string]string // e.g. "background" -> "#000000cc"
}

// Stylesheet is a list of rules. Order matters: later rules override earlier ones.
type Stylesheet struct {
	Rules []Rule
}

// Parse parses content. Blocks with an unsupported selector are skipped; an unclosed block is an error.
func Parse(content string) (*Stylesheet, error) {
	sheet := &Stylesheet{}
	rest := stripComments(content)
	for {
		rest = strings.TrimSpace(rest)
		if rest == "" {
			return sheet, nil
		}
		open := strings.IndexByte(rest, '{')
		if open == -1 {
			return sheet, fmt.Errorf("css: trailing text %q", rest)
		}
		end := strings.IndexByte(rest[open:], '}')
		if end == -1 {
			return sheet, fmt.Errorf("css: %q: %w", strings.TrimSpace(rest[:open]), ErrUnterminated)
		}
		end += open
		props := parseDeclarations(rest[open+1 : end])
		for _, sel := range strings.Split(rest[:open], ",") {
			sel = strings.TrimSpace(sel)
			if !validSelector(sel) {
				continue
			}
			sheet.Rules = append(sheet.Rules, Rule{Selector: sel, Props: props})
		}
		rest = rest[end+1:]
	}
}

func validSelector(sel string) bool {
	return len(sel) >= 2 && (sel[0] == '.' || sel[0] == '#') && !strings.ContainsAny(sel[1:], " .#>:")
}

func stripComments(s string) string {
	var b strings.Builder
	for {
		i := strings.Index(s, "/*")
		if i == -1 {
			b.WriteString(s)
			return b.String()
		}
		b.WriteString(s[:i])
		j := strings.Index(s[i+2:], "*/")
		if j == -1 {
			return b.String()
		}
		s = s[i+2+j+2:]
	}
}

func parseDeclarations(body string) map[string]string {
	props := make(map[string]string)
	for _, part := range strings.Split(body, ";") {
		k, v, ok := strings.Cut(part, ":")
		if !ok {
			continue
		}
		k = strings.ToLower(strings.TrimSpace(k))
		if k != "" {
			props[k] = strings.TrimSpace(v)
		}
	}
	return props
}

// Props merges the properties of every rule matching one of the selectors, in stylesheet order.
func (s *Stylesheet) Props(selectors ...string) map[string]string {
	merged := make(map[string]string)
	if s == nil {
		return merged
	}
	for _, rule := range s.Rules {
		for _, sel := range selectors {
			if rule.Selector == sel {
				for k, v := range rule.Props {
					merged[k] = v
				}
				break
			}
		}
	}
	return merged
}

// Style resolves the merged properties of selectors into a Style.
func (s *Stylesheet) Style(selectors ...string) Style {
	return Resolve(s.Props(selectors...))
}

// Merge returns a stylesheet with the rules of s followed by those of over.
func (s *Stylesheet) Merge(over *Stylesheet) *Stylesheet {
	out := &Stylesheet{}
	if s != nil {
		out.Rules = append(out.Rules, s.Rules...)
	}
	if over != nil {
		out.Rules = append(out.Rules, over.Rules...)
	}
	return out
}
