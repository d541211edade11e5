package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arcanaland/runebinder/internal/catalog"
	"github.com/arcanaland/runebinder/internal/config"
	"github.com/arcanaland/runebinder/internal/deck"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "runebinder",
	Short: "Tool for exploring the Flesh and Blood card catalog and building decks",
	Long: `Runebinder is a command-line tool for exploring the Flesh and Blood card catalog,
querying card collections, and building and validating decks for Blitz, Commoner,
Classic Constructed, Draft and Ultimate Pit Fight.`,
}

func init() {
	RootCmd.PersistentFlags().String("cards", "", "Path to the card feed JSON (defaults to the configured card_feed)")
	RootCmd.PersistentFlags().String("sets", "", "Path to the set feed JSON (defaults to the configured set_feed)")
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return RootCmd.Execute()
}

// loadCatalog builds the catalog from the feeds named on the command line,
// falling back to the configured paths.
func loadCatalog(cmd *cobra.Command) (*catalog.Catalog, error) {
	cardFeed, _ := cmd.Flags().GetString("cards")
	setFeed, _ := cmd.Flags().GetString("sets")

	if cardFeed == "" || setFeed == "" {
		cfg, err := config.LoadConfig()
		if err != nil {
			return nil, fmt.Errorf("error loading config: %v", err)
		}
		if cardFeed == "" {
			cardFeed = cfg.CardFeed
		}
		if setFeed == "" {
			setFeed = cfg.SetFeed
		}
	}

	cat, err := catalog.Load(cardFeed, setFeed)
	if err != nil {
		return nil, fmt.Errorf("error loading catalog: %v", err)
	}
	return cat, nil
}

// resolveFormat picks the format from a flag value or the configured default.
func resolveFormat(code string) (deck.Format, error) {
	if code == "" {
		cfg, err := config.LoadConfig()
		if err != nil {
			return "", fmt.Errorf("error loading config: %v", err)
		}
		code = cfg.DefaultFormat
	}
	return deck.ParseFormat(code)
}
