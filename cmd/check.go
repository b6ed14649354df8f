package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arcanaland/cardsieve/internal/card"
	"github.com/arcanaland/cardsieve/internal/config"
)

// checkCmd represents the check command
var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Check a card dataset for structural problems",
	Long: `Check reads the card dataset and reports cards with no faces and faces
that are missing the required colors or types keys. These usually mean the
dataset file is truncated or damaged.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		fileFlag, _ := cmd.Flags().GetString("file")
		datasetPath, err := config.GetDatasetPath(fileFlag)
		if err != nil {
			return err
		}

		ds, err := card.LoadDataset(datasetPath)
		if err != nil {
			return err
		}

		results := ds.Validate()

		// Display check results
		fmt.Println("Check Results:")
		fmt.Println("--------------")

		if len(results.Errors) == 0 {
			fmt.Printf("✅ Dataset '%s' is well formed (%d cards).\n", datasetPath, ds.Len())
		} else {
			fmt.Printf("❌ Dataset '%s' has %d problems:\n", datasetPath, len(results.Errors))
			for i, err := range results.Errors {
				fmt.Printf("%d. %s\n", i+1, err)
			}
			return fmt.Errorf("check failed")
		}

		if len(results.Warnings) > 0 {
			fmt.Println("\nWarnings:")
			for i, warn := range results.Warnings {
				fmt.Printf("%d. %s\n", i+1, warn)
			}
		}

		return nil
	},
}

func init() {
	checkCmd.Flags().StringP("file", "f", "", "Path to the card dataset (default from config, then AtomicCards.json)")
}
