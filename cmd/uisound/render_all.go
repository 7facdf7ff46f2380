package main

import (
	"fmt"

	"github.com/spf13/cobra"
	uisound "github.com/tphakala/go-uisound"
	"github.com/tphakala/go-uisound/internal/export"
	"github.com/tphakala/go-uisound/internal/transcode"
)

const defaultOutputDir = "sounds"

func newRenderAllCmd(opts *options) *cobra.Command {
	var (
		dir      string
		parallel bool
		mp3      bool
	)

	cmd := &cobra.Command{
		Use:   "render-all",
		Short: "Render every sound to a directory",
		Long: `Render every catalog sound, or every recipe in --recipes, as
<dir>/<name>.wav. A sound that fails is reported and the rest are still
written. The command exits with an error if any WAV file is missing.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := opts.config()
			cfg.EnableParallel = parallel

			var rendered []uisound.Result
			if opts.recipesPath == "" {
				rendered = uisound.RenderAll(cfg)
			} else {
				recipes, err := opts.recipes()
				if err != nil {
					return err
				}
				rendered = uisound.RenderRecipes(recipes, cfg)
			}
			opts.debugf("Rendered %d sounds at %.0f Hz", len(rendered), cfg.SampleRate)

			exp := export.New(dir)
			if mp3 {
				exp.WithTranscoder(transcode.NewFFmpeg(), transcode.DefaultExtension)
			}
			results := exp.ExportAll(cmd.Context(), rendered)

			failed := 0
			for _, res := range results {
				if err := report(cmd, opts, res); err != nil {
					opts.logger.Printf("error: %v", err)
					failed++
				}
			}
			if export.Failed(results) {
				return fmt.Errorf("%d of %d sounds failed", failed, len(results))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&dir, "dir", "d", defaultOutputDir, "output directory")
	cmd.Flags().BoolVar(&parallel, "parallel", true, "render sounds concurrently")
	cmd.Flags().BoolVar(&mp3, "mp3", false, "also encode MP3 copies with ffmpeg")
	return cmd
}
