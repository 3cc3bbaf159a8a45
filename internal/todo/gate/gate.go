// Package gate validates raw task input before any generation call is made.
// It is the cheapest failure path: low-signal and policy-violating input is
// rejected here so the generation service never sees it.
package gate

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"
)

// Rejection is a gate-level refusal, carrying the stable machine code and a
// user-facing Korean message.
type Rejection struct {
	Code    string
	Message string
}

func (r *Rejection) Error() string {
	return r.Message
}

// Result is the outcome of a successful validation. Segments holds the
// trimmed task descriptions in input order; Multiple is set when the input
// implied more than one task.
type Result struct {
	Segments []string
	Multiple bool
}

var whitespaceRuns = regexp.MustCompile(`\s+`)

// Validate normalizes raw input and either returns the task segments or a
// *Rejection. Checks run cheapest and most specific first; the first hit
// short-circuits the rest.
func Validate(raw string) (Result, error) {
	text := strings.TrimSpace(raw)
	text = whitespaceRuns.ReplaceAllString(text, " ")

	segments := splitSegments(text)
	multiple := len(segments) > 1

	if multiple {
		for _, seg := range segments {
			if utf8.RuneCountInString(seg) < MinSegmentRunes {
				return Result{}, &Rejection{Code: CodeInvalidInput, Message: MsgSegmentTooShort}
			}
		}
		if len(segments) > MaxSegments {
			return Result{}, &Rejection{Code: CodeInvalidInput, Message: MsgTooManySegments}
		}
	} else if utf8.RuneCountInString(text) < MinSegmentRunes {
		return Result{}, &Rejection{Code: CodeInvalidInput, Message: MsgTooShort}
	}

	if n := utf8.RuneCountInString(text); n > MaxInputRunes {
		return Result{}, &Rejection{Code: CodeInvalidInput, Message: fmt.Sprintf(MsgTooLong, n)}
	}

	for _, rule := range contentRules {
		if rule.matches(text) {
			return Result{}, &Rejection{Code: rule.code, Message: rule.message}
		}
	}

	if len(segments) == 0 {
		return Result{}, &Rejection{Code: CodeInvalidInput, Message: MsgTooShort}
	}

	return Result{Segments: segments, Multiple: multiple}, nil
}

// splitSegments splits on commas, trims each piece, and drops empties.
func splitSegments(text string) []string {
	parts := strings.Split(text, ",")
	segments := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			segments = append(segments, p)
		}
	}
	return segments
}
