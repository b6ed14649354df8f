package cmd

import (
	"fmt"
	"strconv"
	"strings"

	colorize "github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/arcanaland/cardsieve/internal/card"
	"github.com/arcanaland/cardsieve/internal/config"
	"github.com/arcanaland/cardsieve/internal/filter"
)

// RootCmd represents the base command. Running it without a subcommand
// performs the filter query itself.
var RootCmd = &cobra.Command{
	Use:   "cardsieve",
	Short: "Filter an atomic card dataset by colors, types and stats",
	Long: `Cardsieve filters an MTGJSON-style atomic card dataset and prints the
names of the cards whose faces satisfy every given constraint.

Constraints combine with AND; a card matches when at least one of its
faces satisfies all of them. With no constraints every card is printed.

Examples:
  cardsieve -C R --power-min 2 --power-max 4
  cardsieve --types-all Creature --colors-only R,G
  cardsieve -f AtomicCards.json --cmc-min 3 --cmc-max 5 --faces`,
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

		matched := criteriaFromFlags(cmd).Build().Apply(ds)

		showFaces, _ := cmd.Flags().GetBool("faces")
		for _, name := range matched.Names() {
			fmt.Println(name)
			if showFaces {
				for _, face := range matched.Faces(name) {
					printFaceSummary(face)
				}
			}
		}

		return nil
	},
}

func init() {
	addFilterFlags(RootCmd)
	RootCmd.Flags().StringP("file", "f", "", "Path to the card dataset (default from config, then AtomicCards.json)")
	RootCmd.Flags().Bool("faces", false, "Print a summary of each matching card's faces")

	RootCmd.AddCommand(checkCmd)
}

// addFilterFlags registers the constraint flags on a command.
func addFilterFlags(cmd *cobra.Command) {
	cmd.Flags().StringSliceP("colors-only", "c", nil, "Allowed colors (e.g. -c R,G)")
	cmd.Flags().StringSliceP("colors-all", "C", nil, "Required colors (e.g. -C R,G)")
	cmd.Flags().IntP("power-min", "p", 0, "The minimum desired power value")
	cmd.Flags().IntP("power-max", "P", 0, "The maximum desired power value")
	cmd.Flags().IntP("tough-min", "g", 0, "The minimum desired toughness value")
	cmd.Flags().IntP("tough-max", "G", 0, "The maximum desired toughness value")
	cmd.Flags().StringSliceP("types-only", "t", nil, "Allowed types (e.g. -t Artifact,Enchantment)")
	cmd.Flags().StringSliceP("types-all", "T", nil, "Required types (e.g. -T Enchantment,Creature)")
	cmd.Flags().IntP("cmc-min", "m", 0, "The minimum desired converted mana cost")
	cmd.Flags().IntP("cmc-max", "M", 0, "The maximum desired converted mana cost")
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return RootCmd.Execute()
}

// criteriaFromFlags translates the command's flags into filter criteria.
// Changed() distinguishes an explicit bound of 0 from an absent one.
func criteriaFromFlags(cmd *cobra.Command) filter.Criteria {
	colorsOnly, _ := cmd.Flags().GetStringSlice("colors-only")
	colorsAll, _ := cmd.Flags().GetStringSlice("colors-all")
	typesOnly, _ := cmd.Flags().GetStringSlice("types-only")
	typesAll, _ := cmd.Flags().GetStringSlice("types-all")

	return filter.Criteria{
		ColorsOnly: colorsOnly,
		ColorsAll:  colorsAll,
		TypesOnly:  typesOnly,
		TypesAll:   typesAll,
		PowerMin:   intFlag(cmd, "power-min"),
		PowerMax:   intFlag(cmd, "power-max"),
		ToughMin:   intFlag(cmd, "tough-min"),
		ToughMax:   intFlag(cmd, "tough-max"),
		CMCMin:     intFlag(cmd, "cmc-min"),
		CMCMax:     intFlag(cmd, "cmc-max"),
	}
}

// intFlag returns the flag's value when it was given on the command line,
// nil otherwise.
func intFlag(cmd *cobra.Command, name string) *int {
	if !cmd.Flags().Changed(name) {
		return nil
	}
	v, _ := cmd.Flags().GetInt(name)
	return &v
}

// printFaceSummary prints a one-line indented summary of a face under its
// card's name.
func printFaceSummary(face card.Face) {
	line := "  " + colorize.HiWhiteString(strings.Join(face.Types, " "))
	if len(face.Colors) > 0 {
		line += " " + colorize.YellowString("[%s]", strings.Join(face.Colors, ""))
	}
	if face.Power != nil && face.Toughness != nil {
		line += " " + colorize.GreenString("%s/%s", *face.Power, *face.Toughness)
	}
	if face.ConvertedManaCost != nil {
		line += " " + colorize.CyanString("cmc %s", formatCMC(*face.ConvertedManaCost))
	}
	fmt.Println(line)
}

// formatCMC renders a converted mana cost without a trailing ".0" for the
// whole-number values that make up almost all of the dataset.
func formatCMC(cmc float64) string {
	return strconv.FormatFloat(cmc, 'f', -1, 64)
}
