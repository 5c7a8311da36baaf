package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/akinlabs/akin/internal/config"
)

func init() {
	rootCmd.AddCommand(initCmd)
}

var initCmd = &cobra.Command{
	Use:   "init [dir]",
	Short: "Write a starter akin.yml",
	Long: `Init writes a default configuration file into the given directory
(current directory if omitted). Edit it to point at your corpus,
dictionary and stopword list.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runInit,
}

func runInit(cmd *cobra.Command, args []string) error {
	dir := "."
	if len(args) == 1 {
		dir = args[0]
	}

	path := filepath.Join(dir, config.DefaultFile)
	if _, err := os.Stat(path); err == nil {
		exitWithError(ExitConfigError, "%s already exists", path)
	}

	if err := config.Default().Save(path); err != nil {
		exitWithError(ExitError, "writing config: %v", err)
	}

	if humanOutput {
		fmt.Printf("Wrote %s\n", path)
	} else {
		outputJSON(StatusResponse{Status: "initialized", Path: path})
	}
	return nil
}
