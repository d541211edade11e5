package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/arcanaland/runebinder/internal/deck"
)

// validateCmd represents the validate command
var validateCmd = &cobra.Command{
	Use:   "validate [deck file]",
	Short: "Validate a deck against its format's rules",
	Long: `Validate checks a deck file (.json or .txt deck list) against the
deck-building rules of its format: hero requirements, deck size, copy
limits, banned cards and pile composition.

The deck's own format is used unless overridden with --format.`,
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

		if formatFlag, _ := cmd.Flags().GetString("format"); formatFlag != "" || d.Format == "" {
			format, err := resolveFormat(formatFlag)
			if err != nil {
				return err
			}
			d.Format = format
		}

		ignoreHero, _ := cmd.Flags().GetBool("ignore-hero-legality")

		fmt.Println("Validation Results:")
		fmt.Println("-------------------")

		if ok, reason := d.IsValid(ignoreHero); ok {
			fmt.Printf("✅ Deck '%s' is a legal %s deck.\n", deckPath, d.Format.Name())
		} else {
			fmt.Printf("❌ Deck '%s' is not a legal %s deck:\n", deckPath, d.Format.Name())
			fmt.Printf("1. %s\n", reason)
			return fmt.Errorf("validation failed")
		}

		return nil
	},
}

func init() {
	RootCmd.AddCommand(validateCmd)

	validateCmd.Flags().StringP("format", "f", "", "Format to validate against (B, C, CC, D, UPF)")
	validateCmd.Flags().Bool("ignore-hero-legality", false, "Skip the hero's ban-list check")
}
