package cmd

import (
	"errors"
	"fmt"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/vidping/vidping/color"
	"github.com/vidping/vidping/icon"
	"github.com/vidping/vidping/player"
	"github.com/vidping/vidping/style"
	"github.com/vidping/vidping/strategy"
)

func init() {
	rootCmd.AddCommand(verifyCmd)
	verifyCmd.Flags().String("base-url", "", "Check a player configured with this base URL")
}

// verifyCmd reports which strategy, if any, recognizes a player configuration.
var verifyCmd = &cobra.Command{
	Use:     "verify [player-config.json]",
	Short:   "Check whether a player configuration is recognized by a strategy",
	Example: "  vidping verify player.json\n  vidping verify --base-url https://tkx.mp.lura.live/rest/v2/",
	Args:    cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		var config player.Config

		switch baseURL := lo.Must(cmd.Flags().GetString("base-url")); {
		case baseURL != "":
			config = player.Config{player.ConfigBaseURL: baseURL}
		case len(args) == 1:
			loaded, err := loadPlayerConfig(args[0])
			handleErr(err)
			config = loaded
		default:
			handleErr(errors.New("a player configuration file or --base-url is required"))
		}

		descriptor, ok := strategy.Default.Match(player.NewScripted(config)).Get()
		if !ok {
			handleErr(fmt.Errorf("no strategy recognizes base URL %q", config.Format(player.ConfigBaseURL)))
		}

		cmd.Printf(
			"%s recognized by %s\n",
			style.Fg(color.Green)(icon.Get(icon.Success)),
			style.Fg(color.Purple)(descriptor.Name),
		)
	},
}
