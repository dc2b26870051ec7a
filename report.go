package barlib

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/kataras/barlib/pkg/calc"
	"github.com/kataras/barlib/pkg/formatter"
)

// Pair is an (a, b) input for GCD.
type Pair struct {
	A, B int
}

// Report runs every non-interactive operation once and gathers the results.
// A clipboard failure does not abort the report; it is recorded as a note
// and logged once by ClipboardText.
func (l *Lib) Report(pairs []Pair, radii []float64) *formatter.Report {
	r := &formatter.Report{Identifier: RandomString()}
	l.logInfo("Generated identifier %s", r.Identifier)

	text, err := l.ClipboardText()
	if err != nil {
		r.ClipboardNote = err.Error()
	} else {
		r.Clipboard = text
	}

	for _, p := range pairs {
		r.GCD = append(r.GCD, formatter.GCDResult{A: p.A, B: p.B, Result: GCD(p.A, p.B)})
	}
	if len(pairs) > 0 {
		l.logInfo("Computed %d GCD pair(s)", len(pairs))
	}

	for _, radius := range radii {
		r.Spheres = append(r.Spheres, calc.NewSphere(radius))
	}
	if len(radii) > 0 {
		l.logInfo("Computed %d sphere(s)", len(radii))
	}

	return r
}

// ParseRadii parses a comma-separated string of radii into a float64 slice.
// Empty items are skipped.
func ParseRadii(radiiStr string) ([]float64, error) {
	parts := strings.Split(radiiStr, ",")
	radii := make([]float64, 0, len(parts))

	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed == "" {
			continue
		}

		r, err := strconv.ParseFloat(trimmed, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid radius %q: %w", trimmed, err)
		}

		radii = append(radii, r)
	}

	return radii, nil
}

// ParsePairs parses a comma-separated list of "a:b" integer pairs.
func ParsePairs(pairsStr string) ([]Pair, error) {
	parts := strings.Split(pairsStr, ",")
	pairs := make([]Pair, 0, len(parts))

	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed == "" {
			continue
		}

		aStr, bStr, ok := strings.Cut(trimmed, ":")
		if !ok {
			return nil, fmt.Errorf("invalid pair %q: want a:b", trimmed)
		}

		a, err := strconv.Atoi(strings.TrimSpace(aStr))
		if err != nil {
			return nil, fmt.Errorf("invalid pair %q: %w", trimmed, err)
		}
		b, err := strconv.Atoi(strings.TrimSpace(bStr))
		if err != nil {
			return nil, fmt.Errorf("invalid pair %q: %w", trimmed, err)
		}

		pairs = append(pairs, Pair{A: a, B: b})
	}

	return pairs, nil
}
