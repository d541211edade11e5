package cmd

import (
	"fmt"
	"os"

	colorize "github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/arcanaland/runebinder/internal/deck"
)

// decklistCmd represents the decklist command
var decklistCmd = &cobra.Command{
	Use:   "decklist [deck file]",
	Short: "Print a deck in presentation order",
	Long: `Decklist prints a deck as "count name" lines in presentation order: hero,
inventory, main deck by ascending cost, then tokens unless --no-tokens.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		deckPath := args[0]

		if _, err := os.Stat(deckPath); os.IsNotExist(err) {
			return fmt.Errorf("deck file not found: %s", deckPath)
		}

		cat, err := loadCatalog(cmd)
		if err != nil {
			return err
		}

		d, err := deck.LoadFile(deckPath, cat)
		if err != nil {
			return fmt.Errorf("error loading deck: %v", err)
		}

		noTokens, _ := cmd.Flags().GetBool("no-tokens")

		if d.Name != "" {
			fmt.Printf("%s %s\n\n", colorize.CyanString("Deck:"), colorize.HiWhiteString(d.Name))
		}
		for _, e := range d.ToDeckList(!noTokens) {
			fmt.Printf("%d %s\n", e.Count, e.Name)
		}
		return nil
	},
}

func init() {
	RootCmd.AddCommand(decklistCmd)

	decklistCmd.Flags().Bool("no-tokens", false, "Leave token cards out of the list")
}
