package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// Terminal palette. Cyan carries headings and numbers, dim gray carries
// everything secondary, so edge listings stay readable next to the data.
var (
	colorCyan   = lipgloss.Color("36")
	colorGreen  = lipgloss.Color("35")
	colorYellow = lipgloss.Color("220")
	colorRed    = lipgloss.Color("167")
	colorBlue   = lipgloss.Color("75")
	colorWhite  = lipgloss.Color("255")
	colorGray   = lipgloss.Color("245")
	colorDim    = lipgloss.Color("240")
)

// Styles shared across commands. Exported ones are used by the inspect
// viewer and the edge-set printer; the rest back the print helpers below.
var (
	// StyleTitle renders headings such as representation names and the
	// inspect header line.
	StyleTitle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)

	// StyleDim renders secondary text: stats, hints, spinner messages.
	StyleDim = lipgloss.NewStyle().Foreground(colorDim)

	// StyleValue renders data values such as node names and file paths.
	StyleValue = lipgloss.NewStyle().Foreground(colorWhite)

	// StyleNumber renders numeric values such as edge weights.
	StyleNumber = lipgloss.NewStyle().Foreground(colorCyan)

	styleOK      = lipgloss.NewStyle().Foreground(colorGreen)
	styleFail    = lipgloss.NewStyle().Foreground(colorRed)
	styleWarn    = lipgloss.NewStyle().Foreground(colorYellow)
	styleNote    = lipgloss.NewStyle().Foreground(colorGray)
	styleCommand = lipgloss.NewStyle().Foreground(colorBlue)

	styleIconSpinner = lipgloss.NewStyle().Foreground(colorCyan)
)

// printSuccess prints a checkmarked status line.
func printSuccess(format string, args ...any) {
	fmt.Println(styleOK.Render("✓") + " " + fmt.Sprintf(format, args...))
}

// printError prints a failed-status line.
func printError(format string, args ...any) {
	fmt.Println(styleFail.Render("✗") + " " + fmt.Sprintf(format, args...))
}

// printWarning prints a warning line, fully tinted so it stands out from
// ordinary status output.
func printWarning(format string, args ...any) {
	fmt.Println(styleWarn.Render("! " + fmt.Sprintf(format, args...)))
}

// printInfo prints a neutral status line.
func printInfo(format string, args ...any) {
	fmt.Println(styleNote.Render("›") + " " + fmt.Sprintf(format, args...))
}

// printDetail prints an indented secondary line under a status line.
func printDetail(format string, args ...any) {
	fmt.Println("  " + StyleDim.Render(fmt.Sprintf(format, args...)))
}

// printFile prints the path of a written output file.
func printFile(path string) {
	fmt.Println("  " + StyleDim.Render("→") + " " + StyleValue.Render(path))
}

// printStats prints a one-line node and edge count summary.
func printStats(nodeCount, edgeCount int) {
	printDetail("%d nodes · %d edges", nodeCount, edgeCount)
}

// printNextStep prints a suggested follow-up command.
func printNextStep(description, cmd string) {
	fmt.Println(StyleDim.Render(description+":") + " " + styleCommand.Render(cmd))
}

func printNewline() {
	fmt.Println()
}
