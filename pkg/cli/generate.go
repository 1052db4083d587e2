package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/getnanoid/nanoid/pkg/generator"
)

var (
	generateAlphabet   string
	generatePredefined string
	generateSize       int
	generateCount      int
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate one or more NanoIDs",
	Example: `  # One 21-character ID from the safe alphabet
  nanoid generate

  # Five 8-character numeric IDs
  nanoid generate --predefined numbers --size 8 --count 5

  # A custom alphabet
  nanoid generate --alphabet "ACDEFGHKLMNPRTUVWXY" --size 12`,
	RunE: func(cmd *cobra.Command, args []string) error {
		settings, err := loadSettings()
		if err != nil {
			return err
		}

		gen, err := generator.New(settings, generator.Options{
			Alphabet:   generateAlphabet,
			Predefined: generatePredefined,
			Size:       generateSize,
		})
		if err != nil {
			return err
		}

		if generateCount < 1 {
			return fmt.Errorf("count must be at least 1, got %d", generateCount)
		}
		for i := 0; i < generateCount; i++ {
			id, err := gen.Generate()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), id)
		}
		return nil
	},
}

func init() {
	generateCmd.Flags().StringVar(&generateAlphabet, "alphabet", "", "Custom character set")
	generateCmd.Flags().StringVar(&generatePredefined, "predefined", "", "Predefined alphabet name (see 'nanoid alphabets')")
	generateCmd.Flags().IntVar(&generateSize, "size", 0, "ID length (default 21)")
	generateCmd.Flags().IntVar(&generateCount, "count", 1, "Number of IDs to generate")

	rootCmd.AddCommand(generateCmd)
}
