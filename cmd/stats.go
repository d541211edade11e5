package cmd

import (
	"fmt"

	colorize "github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/arcanaland/runebinder/internal/card"
)

// statsCmd represents the stats command
var statsCmd = &cobra.Command{
	Use:   "stats [collection.json]",
	Short: "Summarize the numeric attributes of a card collection",
	Long: `Stats computes count, min, max, total, mean, median and standard deviation
for every numeric card attribute across a collection. With no argument the
whole catalog is summarized. Cards whose value is absent or
condition-dependent are left out of that attribute's numbers.

Filters narrow the collection before computing:
  runebinder stats --type Action --pitch 3
  runebinder stats my-collection.json --class Guardian`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var list *card.List
		if len(args) == 1 {
			var err error
			list, err = card.LoadList(args[0])
			if err != nil {
				return err
			}
		} else {
			cat, err := loadCatalog(cmd)
			if err != nil {
				return err
			}
			list = cat.Cards()
		}

		var criteria []card.Criterion
		if t, _ := cmd.Flags().GetString("type"); t != "" {
			criteria = append(criteria, card.Eq("types", t))
		}
		if cl, _ := cmd.Flags().GetString("class"); cl != "" {
			criteria = append(criteria, card.Eq("types", cl))
		}
		if pitch, _ := cmd.Flags().GetInt("pitch"); pitch >= 0 {
			criteria = append(criteria, card.Eq("pitch", pitch))
		}
		if len(criteria) > 0 {
			var err error
			list, err = list.Filter(criteria...)
			if err != nil {
				return err
			}
		}

		printStats(list)
		return nil
	},
}

func init() {
	RootCmd.AddCommand(statsCmd)

	statsCmd.Flags().String("type", "", "Only count cards with this type")
	statsCmd.Flags().String("class", "", "Only count cards of this class")
	statsCmd.Flags().Int("pitch", -1, "Only count cards with this pitch value")
}

func printStats(list *card.List) {
	st := list.Statistics()

	fmt.Printf("\n%s %d cards\n\n", colorize.CyanString("Collection:"), list.Len())
	fmt.Printf("  %-10s %6s %6s %6s %7s %8s %8s %8s\n",
		"field", "count", "min", "max", "total", "mean", "median", "stdev")
	for _, name := range card.ValueFieldNames {
		fs := st.Fields[name]
		if fs.Count == 0 {
			fmt.Printf("  %-10s %6d\n", name, 0)
			continue
		}
		fmt.Printf("  %-10s %6d %6d %6d %7d %8.2f %8.2f %8.2f\n",
			name, fs.Count, fs.Min, fs.Max, fs.Total, fs.Mean, fs.Median, fs.StdDev)
	}
	fmt.Println()
	fmt.Printf("  %s %d\n", colorize.CyanString("pitch-cost difference:  "), st.PitchCostDifference)
	fmt.Printf("  %s %d\n", colorize.CyanString("power-block difference: "), st.PowerDefenseDifference)
	fmt.Println()
}
