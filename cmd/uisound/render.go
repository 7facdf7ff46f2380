package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/tphakala/go-uisound/internal/export"
	"github.com/tphakala/go-uisound/internal/transcode"
)

const stdoutPath = "-"

func newRenderCmd(opts *options) *cobra.Command {
	var (
		output string
		mp3    bool
	)

	cmd := &cobra.Command{
		Use:   "render <sound>",
		Short: "Render one sound to a WAV file",
		Long: `Render a sound by name or catalog number. The WAV file is written to
<name>.wav unless -o is given; "-o -" writes it to standard output. With
--mp3 an MP3 copy is also encoded with ffmpeg. A failed encode is reported
but the WAV file is kept.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			snd, err := opts.render(args[0])
			if err != nil {
				return err
			}

			if output == stdoutPath {
				_, err := snd.Container.WriteTo(cmd.OutOrStdout())
				return err
			}
			if output == "" {
				output = snd.Name + ".wav"
			}

			dir, name := splitOutput(output)
			exp := export.New(dir)
			if mp3 {
				exp.WithTranscoder(transcode.NewFFmpeg(), transcode.DefaultExtension)
			}
			res := exp.Export(cmd.Context(), name, snd.Container)
			return report(cmd, opts, res)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output WAV path")
	cmd.Flags().BoolVar(&mp3, "mp3", false, "also encode an MP3 copy with ffmpeg")
	return cmd
}

// splitOutput splits a WAV path into its directory and base name without
// the .wav extension.
func splitOutput(path string) (dir, name string) {
	dir, file := filepath.Split(path)
	if dir == "" {
		dir = "."
	}
	if strings.EqualFold(filepath.Ext(file), ".wav") {
		file = file[:len(file)-len(".wav")]
	}
	return dir, file
}

// report prints one export result and returns an error only when the WAV
// file is missing.
func report(cmd *cobra.Command, opts *options, res export.Result) error {
	out := cmd.OutOrStdout()
	switch res.Status {
	case export.StatusOK:
		printf(out, "Wrote %s\n", res.WAVPath)
		if res.EncodedPath != "" {
			printf(out, "Wrote %s\n", res.EncodedPath)
		}
		return nil
	case export.StatusCollaboratorFailure:
		printf(out, "Wrote %s\n", res.WAVPath)
		opts.logger.Printf("warning: %s: keeping WAV only: %v", res.Name, res.Err)
		return nil
	default:
		return fmt.Errorf("%s: %s: %w", res.Name, res.Status, res.Err)
	}
}
