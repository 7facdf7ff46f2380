package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/tphakala/go-uisound/internal/analysis"
	"github.com/tphakala/go-uisound/internal/pcm"
)

func newInspectCmd(_ *options) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <file.wav>...",
		Short: "Print level and spectrum statistics of WAV files",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, path := range args {
				report, err := inspectFile(path)
				if err != nil {
					return err
				}
				printf(cmd.OutOrStdout(), "%s: %s\n", path, report)
			}
			return nil
		},
	}
}

func inspectFile(path string) (*analysis.Report, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open input file: %w", err)
	}
	defer func() { _ = f.Close() }()

	c, err := pcm.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	buf, err := c.Buffer()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return analysis.Analyze(buf)
}
