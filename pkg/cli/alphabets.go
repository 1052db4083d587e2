package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/getnanoid/nanoid/pkg/alphabet"
)

var alphabetsCmd = &cobra.Command{
	Use:   "alphabets",
	Short: "List the predefined alphabets and their character sets",
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		for _, name := range alphabet.Names() {
			chars, err := alphabet.Lookup(name)
			if err != nil {
				return err
			}
			marker := "  "
			if name == alphabet.Default {
				marker = "* "
			}
			fmt.Fprintf(out, "%s%-36s %s\n", marker, name, chars)
		}
		fmt.Fprintln(out, "\n* default")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(alphabetsCmd)
}
