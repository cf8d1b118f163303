package cmd

import (
	"context"
	"errors"
	"os"
	"time"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/vidping/vidping/key"
	"github.com/vidping/vidping/log"
	"github.com/vidping/vidping/tui"
	"github.com/vidping/vidping/util"
)

func init() {
	rootCmd.AddCommand(watchCmd)
	addSourceFlags(watchCmd)

	watchCmd.Flags().IntP("interval", "i", 0, "Refresh period of the view, in milliseconds")
}

// watchCmd shows the state derived from a player as it changes.
var watchCmd = &cobra.Command{
	Use:     "watch [session]",
	Short:   "Watch the playback state derived from a session or a live player",
	Example: "  vidping watch preroll --speed 2\n  vidping watch --socket /tmp/player.sock --player-config player.json",
	Args:    cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if !util.IsTerminal(os.Stdout) {
			handleErr(errors.New("watch needs a terminal, use replay to print pings instead"))
		}

		lo.Must0(viper.BindPFlag(key.PingInterval, cmd.Flags().Lookup("interval")))

		src, err := openSource(cmd, args)
		handleErr(err)
		defer src.strategy.Close()

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		done := make(chan struct{})
		go func() {
			defer close(done)
			if err := src.feed(ctx); err != nil && ctx.Err() == nil {
				log.Errorf("%s: %v", src.name, err)
			}
		}()

		handleErr(tui.Run(&tui.Options{
			Strategy: src.strategy,
			Source:   src.name,
			Interval: time.Duration(viper.GetInt(key.PingInterval)) * time.Millisecond,
			Done:     done,
		}))

		cancel()
		<-done
	},
}
