package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arcanaland/runebinder/internal/card"
	"github.com/arcanaland/runebinder/internal/deck"
)

// buildCmd represents the build command
var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Auto-build a deck for a hero",
	Long: `Build assembles a deck for a hero from a card pool, greedily and
deterministically: pool order decides ties, so the same pool always yields
the same deck. The pool defaults to the whole catalog; pass --pool with a
collection file to build from owned cards, and --honor-counts to treat each
entry in it as one physical copy.

Examples:
  runebinder build --hero "Chane" --format B --output chane.json
  runebinder build --hero "Dorinthea Ironsong" --format CC --pool owned.json --honor-counts`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		heroName, _ := cmd.Flags().GetString("hero")
		if heroName == "" {
			return fmt.Errorf("a hero is required, pass --hero")
		}

		cat, err := loadCatalog(cmd)
		if err != nil {
			return err
		}

		hero, err := cat.CardByName(heroName)
		if err != nil {
			return err
		}
		if !hero.IsHero() {
			return fmt.Errorf("%s is not a hero card", hero.FullName())
		}

		formatFlag, _ := cmd.Flags().GetString("format")
		format, err := resolveFormat(formatFlag)
		if err != nil {
			return err
		}

		pool := cat.Cards()
		honorCounts, _ := cmd.Flags().GetBool("honor-counts")
		if poolPath, _ := cmd.Flags().GetString("pool"); poolPath != "" {
			pool, err = card.LoadList(poolPath)
			if err != nil {
				return err
			}
		} else {
			honorCounts = false
		}

		maxGenerics, _ := cmd.Flags().GetInt("max-generics")

		name, _ := cmd.Flags().GetString("name")
		if name == "" {
			name = fmt.Sprintf("%s %s", hero.Name, format.Name())
		}

		d := deck.AutoBuild(name, format, hero, pool, honorCounts, maxGenerics)

		for _, e := range d.ToDeckList(true) {
			fmt.Printf("%d %s\n", e.Count, e.Name)
		}
		if ok, reason := d.IsValid(false); !ok {
			fmt.Printf("\n⚠️  deck is not tournament legal yet: %s\n", reason)
		}

		if output, _ := cmd.Flags().GetString("output"); output != "" {
			if err := d.SaveFile(output); err != nil {
				return err
			}
			fmt.Printf("\nDeck written to %s\n", output)
		}
		return nil
	},
}

func init() {
	RootCmd.AddCommand(buildCmd)

	buildCmd.Flags().String("hero", "", "Hero to build for (full name or bare name)")
	buildCmd.Flags().StringP("format", "f", "", "Format to build for (B, C, CC, D, UPF)")
	buildCmd.Flags().String("pool", "", "Collection file to build from instead of the whole catalog")
	buildCmd.Flags().Bool("honor-counts", false, "Treat every pool entry as one owned copy")
	buildCmd.Flags().Int("max-generics", -1, "Cap on generic cards in the main deck (-1 for the format default)")
	buildCmd.Flags().String("name", "", "Name for the built deck")
	buildCmd.Flags().StringP("output", "o", "", "Write the deck to this file (.json or .txt)")
}
