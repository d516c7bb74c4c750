package main

import "github.com/gookit/color"

// Styles of the plain text output.
var (
	styleOK     = color.Style{color.FgGreen, color.OpBold}
	styleFail   = color.Style{color.FgRed, color.OpBold}
	styleSubtle = color.Style{color.FgGray}
	styleTitle  = color.Style{color.FgCyan, color.OpBold}
)

// resultStyle returns the style of a won or lost run.
func resultStyle(won bool) color.Style {
	if won {
		return styleOK
	}
	return styleFail
}
