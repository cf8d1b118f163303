package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"time"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/vidping/vidping/color"
	"github.com/vidping/vidping/filesystem"
	"github.com/vidping/vidping/icon"
	"github.com/vidping/vidping/key"
	"github.com/vidping/vidping/log"
	"github.com/vidping/vidping/ping"
	"github.com/vidping/vidping/style"
	"github.com/vidping/vidping/util"
)

func init() {
	rootCmd.AddCommand(replayCmd)
	addSourceFlags(replayCmd)

	replayCmd.Flags().StringP("output", "o", "", "Write pings to this file instead of stdout")
	replayCmd.Flags().IntP("interval", "i", 0, "Period between two pings, in milliseconds")
	replayCmd.Flags().Bool("require-ready", true, "Only write pings once the first frame was rendered")
}

// replayCmd feeds a recorded session to a player and writes the sampled pings as JSON lines.
var replayCmd = &cobra.Command{
	Use:   "replay [session]",
	Short: "Replay a recorded player session and print the pings it produces",
	Long: `Replay a recorded player session and print the pings it produces.

The session is either a path to a .jsonl file or the name of a session stored in the sessions directory
(see "vidping where --sessions"). Pings are written as one JSON object per line.`,
	Example: "  vidping replay preroll\n  vidping replay --speed 0 ./recorded.jsonl -o pings.jsonl",
	Args:    cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		lo.Must0(viper.BindPFlag(key.PingInterval, cmd.Flags().Lookup("interval")))
		lo.Must0(viper.BindPFlag(key.PingRequireReady, cmd.Flags().Lookup("require-ready")))

		src, err := openSource(cmd, args)
		handleErr(err)
		defer src.strategy.Close()

		var out io.Writer = os.Stdout
		if path := lo.Must(cmd.Flags().GetString("output")); path != "" {
			file, err := filesystem.API().Create(path)
			handleErr(err)
			defer file.Close()
			out = file
		}

		poller := &ping.Poller{
			Interval:     time.Duration(viper.GetInt(key.PingInterval)) * time.Millisecond,
			Out:          out,
			RequireReady: viper.GetBool(key.PingRequireReady),
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()

		written, err := replay(ctx, src, poller)
		handleErr(err)

		_, _ = fmt.Fprintf(
			os.Stderr,
			"%s %s: wrote %s\n",
			style.Fg(color.Green)(icon.Get(icon.Success)),
			src.name,
			util.Quantify(written, "ping", "pings"),
		)
	},
}

// replay runs the poller for as long as the source feeds the player.
// Once the source is exhausted the strategy is closed and a final sample is
// taken after the outstanding player queries resolved, or ctx ended.
func replay(ctx context.Context, src *source, poller *ping.Poller) (int, error) {
	pollCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	type result struct {
		written int
		err     error
	}

	polled := make(chan result, 1)
	go func() {
		written, err := poller.Run(pollCtx, src.strategy)
		polled <- result{written, err}
	}()

	feedErr := src.feed(ctx)

	// The position poll queries the player until the strategy is closed,
	// so the player only settles once it stops.
	src.strategy.Close()
	if err := src.player.Drain(ctx); err != nil {
		log.Warnf("%s: final sample taken with queries in flight: %v", src.name, err)
	}
	cancel()

	r := <-polled
	if r.err != nil {
		return r.written, r.err
	}

	if feedErr != nil && ctx.Err() == nil {
		return r.written, fmt.Errorf("%s: %w", src.name, feedErr)
	}

	if sample, ok := poller.Sample(src.strategy); ok {
		if err := poller.Write(sample); err != nil {
			return r.written, err
		}
		r.written++
	}

	return r.written, nil
}
