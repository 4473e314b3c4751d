package classifier

import "strings"

// ParseDirectives turns raw classifier output into ordered directives.
// Newlines are removed, the text is split on commas and every fragment that
// does not start with a vocabulary keyword is dropped. degenerate reports
// whether the output contained the Placeholder, either as a bare fragment or
// as the argument of a directive.
func ParseDirectives(raw string) (directives []Directive, degenerate bool) {
	raw = strings.NewReplacer("\r", "", "\n", "").Replace(raw)

	for _, fragment := range strings.Split(raw, ",") {
		fragment = strings.TrimSpace(fragment)
		if fragment == "" {
			continue
		}
		if fragment == Placeholder {
			degenerate = true
			continue
		}

		d, ok := matchVocabulary(fragment)
		if !ok {
			continue
		}
		if d.Argument == Placeholder {
			degenerate = true
		}
		directives = append(directives, d)
	}

	return directives, degenerate
}

func matchVocabulary(fragment string) (Directive, bool) {
	for _, v := range vocabulary {
		if strings.HasPrefix(fragment, v.keyword) {
			return Directive{
				Kind:     v.kind,
				Argument: strings.TrimSpace(fragment[len(v.keyword):]),
			}, true
		}
	}
	return Directive{}, false
}

// FormatDirectives is the inverse of ParseDirectives for well-formed input.
func FormatDirectives(directives []Directive) string {
	parts := make([]string, 0, len(directives))
	for _, d := range directives {
		parts = append(parts, d.String())
	}
	return strings.Join(parts, ", ")
}
