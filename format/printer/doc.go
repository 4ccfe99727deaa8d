// Package printer is the line-oriented ANSI writer the formatter renders
// through: Write/Newline plus Indent/Dedent scopes, optional fg/bg/bold styling,
// and a "bright" mode that upgrades every styled foreground to its
// high-intensity variant. Styling rides on github.com/fatih/color, the
// same library aws-copilot-cli uses for its CLI output, with color.NoColor
// providing the same environment-aware default aws-copilot-cli's styling
// package documents.
package printer
