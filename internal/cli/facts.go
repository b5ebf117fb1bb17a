package cli

import (
	"fmt"
	"strings"

	"github.com/lusakalabs/crucible/internal/facts"
	"github.com/lusakalabs/crucible/internal/model"
	"github.com/spf13/cobra"
)

var factsCategory string

// factsCmd represents the facts command
var factsCmd = &cobra.Command{
	Use:   "facts",
	Short: "List the ground-truth facts used to attack assumptions",
	Long: `Facts lists the ground-truth fact database the adversary cites.

The builtin dataset covers Zambian tax, energy, finance, logistics,
mining, agriculture, labor, trade, digital, and registration rules.
A custom dataset can be supplied as YAML with --facts.

Example:
  crucible facts
  crucible facts --category MINING
  crucible facts --facts ./my-facts.yaml`,
	RunE: runFacts,
}

func init() {
	rootCmd.AddCommand(factsCmd)

	factsCmd.Flags().StringVar(&factsCategory, "category", "", "show only one category")
	factsCmd.Flags().StringVar(&factsPath, "facts", "", "YAML fact file (default: builtin Zambia dataset)")
}

func runFacts(cmd *cobra.Command, args []string) error {
	store, err := facts.NewStoreFromConfig(model.FactsConfig{Path: factsPath})
	if err != nil {
		return fmt.Errorf("load facts: %w", err)
	}

	var list []model.Fact
	if factsCategory != "" {
		list, err = store.ByCategory(model.Category(strings.ToUpper(factsCategory)))
		if err != nil {
			return err
		}
	} else {
		list = store.All()
	}

	if len(list) == 0 {
		fmt.Println("No facts found.")
		return nil
	}

	current := model.Category("")
	for _, f := range list {
		if f.Category != current {
			current = f.Category
			fmt.Printf("\n%s\n%s\n", current, strings.Repeat("-", len(current)))
		}
		fmt.Printf("  %-18s [%s] %s\n", f.ID, f.Severity, f.Statement)
		if verbose && f.Source != "" {
			fmt.Printf("  %-18s source: %s (effective %s)\n", "", f.Source, f.EffectiveDate)
		}
	}
	fmt.Printf("\n%d facts.\n", len(list))

	return nil
}
