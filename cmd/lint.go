package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arcanaland/runebinder/internal/validator"
)

// lintCmd represents the lint command
var lintCmd = &cobra.Command{
	Use:   "lint",
	Short: "Check the card catalog for data problems",
	Long: `Lint loads the configured card and set feeds and checks them for problems
the loader tolerates: suspicious numeric values, printings referencing
unknown sets, identifiers that don't carry their set code.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cat, err := loadCatalog(cmd)
		if err != nil {
			return err
		}

		v := validator.NewValidator(cat)
		results := v.Validate()

		fmt.Println("Lint Results:")
		fmt.Println("-------------")

		if len(results.Errors) == 0 {
			fmt.Printf("✅ Catalog is consistent (%d cards, %d sets).\n",
				cat.Cards().Len(), len(cat.Sets()))
		} else {
			fmt.Printf("❌ Catalog has %d errors:\n", len(results.Errors))
			for i, err := range results.Errors {
				fmt.Printf("%d. %s\n", i+1, err)
			}
		}

		if len(results.Warnings) > 0 {
			fmt.Println("\nWarnings:")
			for i, warn := range results.Warnings {
				fmt.Printf("%d. %s\n", i+1, warn)
			}
		}

		if len(results.Errors) > 0 {
			return fmt.Errorf("lint failed")
		}
		return nil
	},
}

func init() {
	RootCmd.AddCommand(lintCmd)
}
