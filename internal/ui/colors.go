// Package ui holds the terminal styling used by the CLI.
package ui

import "os"

// ANSI color and style codes for CLI output. They are variables so Disable
// can blank them when output is not a terminal or NO_COLOR is set.
var (
	ColorReset = "\033[0m"
	ColorBold  = "\033[1m"
	ColorDim   = "\033[2m"

	ColorCyan   = "\033[36m"
	ColorGreen  = "\033[32m"
	ColorYellow = "\033[33m"
	ColorWhite  = "\033[97m"
	ColorRed    = "\033[31m"
)

func init() {
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		Disable()
	}
}

// Disable turns every style into the empty string
func Disable() {
	ColorReset, ColorBold, ColorDim = "", "", ""
	ColorCyan, ColorGreen, ColorYellow, ColorWhite, ColorRed = "", "", "", "", ""
}

func Bold(s string) string {
	return ColorBold + s + ColorReset
}

func Success(s string) string {
	return ColorGreen + s + ColorReset
}

func Info(s string) string {
	return ColorDim + ColorYellow + s + ColorReset
}

func Error(s string) string {
	return ColorRed + s + ColorReset
}

// Label renders "name:" in bold followed by a white value
func Label(name, value string) string {
	return ColorBold + name + ":" + ColorReset + " " + ColorWhite + value + ColorReset
}
