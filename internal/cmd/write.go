package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"lineio/internal/application"
)

// defaultWritePath is the file written when no argument is given.
const defaultWritePath = "output.txt"

func writeCmd(appBuilder *AppBuilder) *cobra.Command {
	var text string
	writeCmd := &cobra.Command{
		Use:   "write [file]",
		Short: "Write a single line to a file, replacing its content",
		Long:  "Write a single line to a file, replacing its content",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := defaultWritePath
			if len(args) == 1 {
				path = args[0]
			}
			app, err := appBuilder.App(cmd.Context())
			if err != nil {
				return err
			}
			if _, err := app.WriteLine(cmd.Context(), path, text); err != nil {
				return err
			}

			fmt.Println("File written successfully")
			return nil
		},
	}
	writeCmd.Flags().StringVar(&text, "text", application.DefaultWriteText, "Line to write")

	return writeCmd
}
