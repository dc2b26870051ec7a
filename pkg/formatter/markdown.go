package formatter

import (
	"fmt"
	"strings"

	"github.com/kataras/barlib/pkg/calc"
)

// GCDResult is one evaluated GCD pair.
type GCDResult struct {
	A, B   int
	Result int
}

// Report gathers the outputs of one barlib session.
type Report struct {
	Identifier    string
	Clipboard     string
	ClipboardNote string // set when the clipboard could not be read
	GCD           []GCDResult
	Spheres       []calc.Sphere
}

// ToMarkdown renders a report as a markdown document with one section per
// operation. Sections without data are omitted.
func ToMarkdown(r *Report, title string) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("# BAR Library Report - %s\n\n", title))

	if r.Identifier != "" {
		sb.WriteString("## Identifier\n\n")
		sb.WriteString(fmt.Sprintf("`%s`\n\n", r.Identifier))
	}

	sb.WriteString("## Clipboard\n\n")
	switch {
	case r.ClipboardNote != "":
		sb.WriteString(fmt.Sprintf("_%s_\n\n", r.ClipboardNote))
	case r.Clipboard == "":
		sb.WriteString("_No text on the clipboard._\n\n")
	default:
		fence := codeFence(r.Clipboard)
		sb.WriteString(fence + "text\n")
		sb.WriteString(r.Clipboard)
		if !strings.HasSuffix(r.Clipboard, "\n") {
			sb.WriteString("\n")
		}
		sb.WriteString(fence + "\n\n")
	}

	if len(r.GCD) > 0 {
		sb.WriteString("## Greatest Common Divisor\n\n")
		sb.WriteString("| a | b | gcd |\n")
		sb.WriteString("|---|---|-----|\n")
		for _, g := range r.GCD {
			sb.WriteString(fmt.Sprintf("| %d | %d | %d |\n", g.A, g.B, g.Result))
		}
		sb.WriteString("\n")
	}

	if len(r.Spheres) > 0 {
		sb.WriteString("## Spheres\n\n")
		sb.WriteString("| Radius | Surface Area | Volume |\n")
		sb.WriteString("|--------|--------------|--------|\n")
		for _, s := range r.Spheres {
			sb.WriteString(fmt.Sprintf("| %g | %.6f | %.6f |\n", s.Radius, s.Area, s.Volume))
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

// codeFence returns a backtick fence longer than any backtick run in s.
func codeFence(s string) string {
	longest, run := 0, 0
	for _, r := range s {
		if r == '`' {
			run++
			if run > longest {
				longest = run
			}
			continue
		}
		run = 0
	}
	if longest < 3 {
		return "```"
	}
	return strings.Repeat("`", longest+1)
}
