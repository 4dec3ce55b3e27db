package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/iyabazu/pc-search/internal/options"
)

var optionsCmd = &cobra.Command{
	Use:   "options [file]",
	Short: "Inspect the filter options file",
	Long: `Loads a filter options JSON file and prints what the search UI would
offer. Without an argument the configured path is used; a missing or broken
file falls back to the built-in defaults.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runOptions,
}

func init() {
	rootCmd.AddCommand(optionsCmd)
}

func runOptions(cmd *cobra.Command, args []string) error {
	path := ""
	if len(args) > 0 {
		path = args[0]
	} else if cfg != nil {
		path = cfg.Options.Path
	}

	opts, err := options.LoadOrDefaults(path)
	if err != nil {
		logger.Warn().Err(err).Str("path", path).Msg("Using built-in defaults")
	}

	fmt.Printf("makers (%d): %v\n\n", len(opts.Makers), opts.Makers)

	fmt.Printf("cpu series (%d):\n", len(opts.CPUOptionsHierarchy))
	for series, models := range opts.CPUOptionsHierarchy {
		fmt.Printf("  %s: %v\n", series, models)
	}

	fmt.Printf("\ngpu series (%d):\n", len(opts.GPUOptionsHierarchy))
	for series, models := range opts.GPUOptionsHierarchy {
		fmt.Printf("  %s: %v\n", series, models)
	}

	fmt.Printf("\nmemory: %v\nstorage: %v\n", opts.MemoryOptions, opts.StorageOptions)
	return nil
}
