package cmd

import (
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"

	colorize "github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/arcanaland/cardsieve/internal/card"
	"github.com/arcanaland/cardsieve/internal/config"
)

var showCmd = &cobra.Command{
	Use:   "show [card name]",
	Short: "Display every face of a single card",
	Long: `Show displays every face of a card with its mana cost, type line, stats
and rules text.

Examples:
  cardsieve show "Lightning Bolt"
  cardsieve show --file AtomicCards.json "Fire // Ice"`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]

		fileFlag, _ := cmd.Flags().GetString("file")
		datasetPath, err := config.GetDatasetPath(fileFlag)
		if err != nil {
			return err
		}

		ds, err := card.LoadDataset(datasetPath)
		if err != nil {
			return err
		}

		faces := ds.Faces(name)
		if faces == nil {
			return fmt.Errorf("card not found: %s", name)
		}

		displayCard(name, faces)
		return nil
	},
}

func init() {
	RootCmd.AddCommand(showCmd)

	showCmd.Flags().StringP("file", "f", "", "Path to the card dataset (default from config, then AtomicCards.json)")
}

// displayCard prints the card name followed by the details of each face.
func displayCard(name string, faces []card.Face) {
	// Get terminal width
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		width = 80 // Default if we can't get terminal width
	}

	textWidth := width - 4 // Account for the left indent
	if textWidth < 20 {
		textWidth = 20
	}

	fmt.Println()
	fmt.Println("  " + colorize.HiWhiteString(name))

	for i, face := range faces {
		if len(faces) > 1 {
			label := face.Name
			if label == "" {
				label = fmt.Sprintf("Face %d", i+1)
			}
			fmt.Println()
			fmt.Println("  " + colorize.MagentaString(label))
		}

		fmt.Println("  " + colorize.CyanString("Type:   ") + colorize.HiWhiteString(typeLine(face)))

		if face.ManaCost != "" || face.ConvertedManaCost != nil {
			cost := face.ManaCost
			if face.ConvertedManaCost != nil {
				if cost != "" {
					cost += " "
				}
				cost += fmt.Sprintf("(cmc %s)", formatCMC(*face.ConvertedManaCost))
			}
			fmt.Println("  " + colorize.CyanString("Cost:   ") + colorize.HiWhiteString(cost))
		}

		if len(face.Colors) > 0 {
			fmt.Println("  " + colorize.CyanString("Colors: ") + colorize.YellowString(strings.Join(face.Colors, " ")))
		}

		if face.Power != nil && face.Toughness != nil {
			fmt.Println("  " + colorize.CyanString("P/T:    ") + colorize.GreenString("%s/%s", *face.Power, *face.Toughness))
		}

		if face.Text != "" {
			fmt.Println()
			for _, line := range wrapText(face.Text, textWidth) {
				fmt.Println("  " + line)
			}
		}
	}

	fmt.Println()
}

// typeLine renders a face's supertypes, types and subtypes the way they
// appear on a printed card.
func typeLine(face card.Face) string {
	parts := append(append([]string{}, face.Supertypes...), face.Types...)
	line := strings.Join(parts, " ")
	if len(face.Subtypes) > 0 {
		line += " - " + strings.Join(face.Subtypes, " ")
	}
	return line
}

// wrapText wraps text to fit within the given width
func wrapText(text string, width int) []string {
	// Ensure width is reasonable
	if width < 10 {
		width = 40 // Use a sensible default if width is too small
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
