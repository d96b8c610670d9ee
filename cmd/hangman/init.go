package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-hangman/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init [FILE]",
	Short: "Write a sample configuration file",
	Long: `Write a commented sample configuration to FILE (default ./` + config.DefaultWordsFile + `).
An existing file is never overwritten.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runInit,
}

func runInit(cmd *cobra.Command, args []string) error {
	path := config.DefaultWordsFile
	if len(args) == 1 {
		path = args[0]
	}

	if err := config.WriteTemplate(path); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Wrote sample configuration to %s\n", path)
	return nil
}
