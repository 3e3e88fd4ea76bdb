package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

func historyCmd(appBuilder *AppBuilder) *cobra.Command {
	var path string
	historyCmd := &cobra.Command{
		Use:   "history",
		Short: "List recorded file operations, newest first",
		Long:  "List recorded file operations, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := appBuilder.App(cmd.Context())
			if err != nil {
				return err
			}
			entries, err := app.History(cmd.Context(), path)
			if err != nil {
				return err
			}

			for _, entry := range entries {
				note := ""
				if entry.Truncated {
					note = " (truncated)"
				}
				fmt.Printf("%d) %s %-5s %s %d bytes%s\n",
					entry.ID,
					entry.RecordedAt.Local().Format(time.DateTime),
					entry.Operation,
					entry.Path,
					entry.Bytes,
					note)
			}
			return nil
		},
	}
	historyCmd.Flags().StringVar(&path, "path", "", "Only list operations on this path")

	historyCmd.AddCommand(historyClearCmd(appBuilder))

	return historyCmd
}

func historyClearCmd(appBuilder *AppBuilder) *cobra.Command {
	clearCmd := &cobra.Command{
		Use:   "clear",
		Short: "Delete all recorded file operations",
		Long:  "Delete all recorded file operations",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := appBuilder.App(cmd.Context())
			if err != nil {
				return err
			}
			deleted, err := app.ClearHistory(cmd.Context())
			if err != nil {
				return err
			}

			fmt.Printf("Deleted %d entries\n", deleted)
			return nil
		},
	}

	return clearCmd
}
