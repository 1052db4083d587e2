package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/getnanoid/nanoid/pkg/storage"
	"github.com/getnanoid/nanoid/pkg/upload"
)

var (
	pathPreserve   bool
	pathKeepQuery  bool
	pathAlphabet   string
	pathPredefined string
	pathSize       int
	pathRoot       string
)

var pathCmd = &cobra.Command{
	Use:   "path <dir> <filename>",
	Short: "Build a NanoID upload path for a file",
	Long: `Build the storage path an upload of <filename> would get below <dir>.

With --root, generated paths are collision-checked against the files under
that directory, the way the library checks a storage backend.`,
	Example: `  # x/<21-char-id>.png
  nanoid path x "a.png?x=1"

  # x/<id>/a.png
  nanoid path x a.png --preserve

  # Check against existing uploads
  nanoid path avatars selfie.jpg --root ./media`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		settings, err := loadSettings()
		if err != nil {
			return err
		}

		builder, err := upload.UploadTo(args[0], settings, upload.Options{
			PreserveOriginalFilename: pathPreserve,
			KeepQueryStrings:         pathKeepQuery,
			Alphabet:                 pathAlphabet,
			Predefined:               pathPredefined,
			Size:                     pathSize,
		})
		if err != nil {
			return err
		}
		builder.WithLogger(newLogger())

		if pathRoot != "" {
			disk, err := storage.NewDisk(pathRoot)
			if err != nil {
				return err
			}
			builder.WithStorage(disk)
		}

		name, err := builder.Path(cmd.Context(), args[1])
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), name)
		return nil
	},
}

func init() {
	pathCmd.Flags().BoolVar(&pathPreserve, "preserve", false, "Keep the original filename in an ID-named subdirectory")
	pathCmd.Flags().BoolVar(&pathKeepQuery, "keep-query", false, "Keep query-string suffixes on the filename")
	pathCmd.Flags().StringVar(&pathAlphabet, "alphabet", "", "Custom character set")
	pathCmd.Flags().StringVar(&pathPredefined, "predefined", "", "Predefined alphabet name")
	pathCmd.Flags().IntVar(&pathSize, "size", 0, "ID length (default 21)")
	pathCmd.Flags().StringVar(&pathRoot, "root", "", "Storage root to collision-check against")

	rootCmd.AddCommand(pathCmd)
}
