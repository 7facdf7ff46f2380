package main

import (
	"github.com/spf13/cobra"
	"github.com/tphakala/go-uisound/internal/playback"
)

func newPlayCmd(opts *options) *cobra.Command {
	var useCommand bool

	cmd := &cobra.Command{
		Use:   "play <sound>...",
		Short: "Render sounds and play them",
		Long: `Render each sound and play it through the default audio device.
Falls back to the system player (afplay, paplay, aplay or PowerShell) when
the device cannot be opened.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				player playback.Player
				err    error
			)
			if useCommand {
				player, err = playback.NewCommandPlayer()
			} else {
				player, err = playback.Open(int(opts.rate))
			}
			if err != nil {
				return err
			}
			defer func() { _ = player.Close() }()

			for _, name := range args {
				snd, err := opts.render(name)
				if err != nil {
					return err
				}
				opts.debugf("Playing %s (%d samples)", snd.Name, snd.Container.Len())
				if err := player.Play(cmd.Context(), snd.Container); err != nil {
					return err
				}
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&useCommand, "command", false, "always use the system player command")
	return cmd
}
