package printer

import (
	"io"
	"strings"

	"github.com/fatih/color"
)

// indentUnit is repeated once per indent level at the start of each line.
const indentUnit = "  "

// Style describes the ANSI attributes to apply to one piece of written
// text: a foreground color, a background color, and bold. Zero-value
// fields are left unstyled.
type Style struct {
	FG, BG     color.Attribute
	Bold       bool
	Underline  bool
	CrossedOut bool
}

// Printer is the line-oriented writer every format/formatter visitor drives.
type Printer struct {
	w            io.Writer
	indentLevel  int
	bright       bool
	colorEnabled bool
}

// New constructs a Printer writing to w. Color defaults to fatih/color's own
// environment-aware NoColor setting, matching aws-copilot-cli's
// DisableColorBasedOnEnvVar default behavior.
func New(w io.Writer) *Printer {
	return &Printer{w: w, colorEnabled: !color.NoColor}
}

// SetColorEnabled overrides the default color.NoColor-derived setting (the
// CLI's --color/--no-color flags).
func (p *Printer) SetColorEnabled(enabled bool) { p.colorEnabled = enabled }

// SetBright turns on "bright" mode: every styled foreground color is
// upgraded to its high-intensity ANSI variant.
func (p *Printer) SetBright(bright bool) { p.bright = bright }

// Indent increases the indent level by one scope.
func (p *Printer) Indent() { p.indentLevel++ }

// Dedent decreases the indent level by one scope, floored at zero.
func (p *Printer) Dedent() {
	if p.indentLevel > 0 {
		p.indentLevel--
	}
}

// Write emits text verbatim, with no styling.
func (p *Printer) Write(text string) {
	io.WriteString(p.w, text)
}

// WriteStyled emits text with style applied, unless color output is
// disabled, in which case it behaves exactly like Write.
func (p *Printer) WriteStyled(text string, style Style) {
	if !p.colorEnabled {
		p.Write(text)

		return
	}

	var attrs []color.Attribute
	if style.FG != 0 {
		attrs = append(attrs, p.resolveFG(style.FG))
	}
	if style.BG != 0 {
		attrs = append(attrs, style.BG)
	}
	if style.Bold {
		attrs = append(attrs, color.Bold)
	}
	if style.Underline {
		attrs = append(attrs, color.Underline)
	}
	if style.CrossedOut {
		attrs = append(attrs, color.CrossedOut)
	}

	c := color.New(attrs...)
	c.EnableColor() // override fatih/color's terminal-detected global default
	c.Fprint(p.w, text)
}

// resolveFG upgrades fg to its high-intensity variant when bright mode is
// on. fatih/color's Hi* foreground constants sit exactly 60 codes above
// their standard counterparts (standard ANSI convention); anything outside
// the standard Fg range (a caller-supplied Hi* constant already) passes
// through unchanged.
func (p *Printer) resolveFG(fg color.Attribute) color.Attribute {
	if !p.bright {
		return fg
	}
	if fg >= color.FgBlack && fg <= color.FgWhite {
		return fg + 60
	}

	return fg
}

// Newline starts a new line and writes the current indent level's leading
// whitespace.
func (p *Printer) Newline() {
	io.WriteString(p.w, "\n")
	io.WriteString(p.w, strings.Repeat(indentUnit, p.indentLevel))
}
