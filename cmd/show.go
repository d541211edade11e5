package cmd

import (
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/arcanaland/runebinder/internal/card"

	colorize "github.com/fatih/color"
	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show [card]",
	Short: "Display information about a specific card",
	Long: `Show displays detailed information about a card, looked up by full name
("Sharpen Steel (3)"), bare name, or printing identifier ("WTR159").

With --art pointing at a local card scan, the scan is rendered next to the
card text as ANSI half-block art.

Examples:
  runebinder show "Sharpen Steel (3)"
  runebinder show WTR159
  runebinder show --art ./scans/wtr159.png WTR159`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		query := args[0]

		cat, err := loadCatalog(cmd)
		if err != nil {
			return err
		}

		// Identifiers first; anything that misses falls through to names.
		c, err := cat.CardByIdentifier(query)
		if err != nil {
			c, err = cat.CardByName(query)
			if err != nil {
				return fmt.Errorf("error getting card: %v", err)
			}
		}

		artFlag, _ := cmd.Flags().GetString("art")
		var ansiArt string
		if artFlag != "" {
			ansiArt, err = renderCardArt(artFlag)
			if err != nil {
				return fmt.Errorf("error rendering card art: %v", err)
			}
		}

		displayCard(c, ansiArt)
		return nil
	},
}

func init() {
	RootCmd.AddCommand(showCmd)

	showCmd.Flags().StringP("art", "a", "", "Path to a card scan to render as ANSI art")
}

// pitchString renders a pitch value in its color: 1 red, 2 yellow, 3 blue.
func pitchString(v card.Value) string {
	switch n, _ := v.Int(); n {
	case 1:
		return colorize.RedString(v.String())
	case 2:
		return colorize.YellowString(v.String())
	case 3:
		return colorize.BlueString(v.String())
	default:
		return colorize.HiWhiteString(v.String())
	}
}

// displayCard displays the card information, with ANSI art on the left when
// available.
func displayCard(c *card.Card, ansiArt string) {
	var infoLines []string

	infoLines = append(infoLines, colorize.CyanString("Card:  ")+colorize.HiWhiteString("%s", c.FullName()))
	infoLines = append(infoLines, colorize.CyanString("Types: ")+colorize.HiWhiteString(c.TypeText))
	if !c.Pitch.IsNone() {
		infoLines = append(infoLines, colorize.CyanString("Pitch: ")+pitchString(c.Pitch))
	}
	for _, attr := range []struct {
		label string
		val   card.Value
	}{
		{"Cost:  ", c.Cost},
		{"Power: ", c.Power},
		{"Block: ", c.Defense},
		{"Life:  ", c.Health},
		{"Int:   ", c.Intellect},
	} {
		if !attr.val.IsNone() {
			infoLines = append(infoLines, colorize.CyanString(attr.label)+colorize.HiWhiteString(attr.val.String()))
		}
	}
	if len(c.Identifiers) > 0 {
		var ids []string
		for _, v := range c.Printings() {
			ids = append(ids, v.UID())
		}
		infoLines = append(infoLines, colorize.CyanString("Print: ")+colorize.HiWhiteString(strings.Join(ids, ", ")))
	}
	if len(c.Keywords) > 0 {
		infoLines = append(infoLines, colorize.CyanString("Keys:  ")+colorize.HiWhiteString(strings.Join(c.Keywords, ", ")))
	}

	// Get terminal width
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		width = 80
	}

	if ansiArt == "" {
		fmt.Println()
		for _, line := range infoLines {
			fmt.Println("  " + line)
		}
		if c.Body != "" {
			fmt.Println()
			for _, line := range wrapText(c.Body, width-4) {
				fmt.Println("  " + line)
			}
		}
		fmt.Println()
		return
	}

	ansiLines := strings.Split(ansiArt, "\n")
	maxAnsiWidth := 0
	for _, line := range ansiLines {
		visibleWidth := len(stripAnsi(line))
		if visibleWidth > maxAnsiWidth {
			maxAnsiWidth = visibleWidth
		}
	}

	spacing := 4
	infoStartCol := maxAnsiWidth + spacing

	infoWidth := width - infoStartCol - 2
	if infoWidth < 20 {
		infoWidth = 20
	}

	if c.Body != "" {
		infoLines = append(infoLines, "")
		infoLines = append(infoLines, wrapText(c.Body, infoWidth)...)
	}

	fmt.Println()
	maxLines := max(len(ansiLines), len(infoLines))
	for i := 0; i < maxLines; i++ {
		fmt.Print("  ")
		if i < len(ansiLines) {
			fmt.Print(ansiLines[i])
			visibleWidth := len(stripAnsi(ansiLines[i]))
			fmt.Print(strings.Repeat(" ", infoStartCol-visibleWidth))
		} else {
			fmt.Print(strings.Repeat(" ", infoStartCol))
		}
		if i < len(infoLines) {
			fmt.Print(infoLines[i])
		}
		fmt.Println()
	}
	fmt.Println()
}

// wrapText wraps text to a specified width
func wrapText(text string, width int) []string {
	if width < 10 {
		width = 40
	}

	var result []string
	var currentLine string
	words := strings.Fields(text)

	if len(words) == 0 {
		return []string{""}
	}

	for _, word := range words {
		if len(currentLine) == 0 {
			currentLine = word
		} else if len(currentLine)+1+len(word) <= width {
			currentLine += " " + word
		} else {
			result = append(result, currentLine)
			currentLine = word
		}
	}

	if currentLine != "" {
		result = append(result, currentLine)
	}

	return result
}

// stripAnsi removes ANSI escape sequences from a string
func stripAnsi(s string) string {
	var result strings.Builder
	inEscape := false
	for _, c := range s {
		if inEscape {
			if c == 'm' {
				inEscape = false
			}
		} else if c == '\033' {
			inEscape = true
		} else {
			result.WriteRune(c)
		}
	}
	return result.String()
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
