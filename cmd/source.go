package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/vidping/vidping/filesystem"
	"github.com/vidping/vidping/key"
	"github.com/vidping/vidping/log"
	"github.com/vidping/vidping/player"
	"github.com/vidping/vidping/session"
	"github.com/vidping/vidping/strategy"
	"github.com/vidping/vidping/util"
)

// source is a player fed either by a recorded session or by a live event socket,
// together with the strategy tracking it.
type source struct {
	name     string
	player   *player.Scripted
	strategy strategy.Strategy

	// feed drives the player until the source is exhausted or ctx ends.
	feed func(ctx context.Context) error
}

func addSourceFlags(cmd *cobra.Command) {
	cmd.Flags().String("socket", "", "Read live player events from a unix socket instead of a session")
	cmd.Flags().String("player-config", "", "JSON file with the player configuration, used with --socket")
	cmd.MarkFlagsRequiredTogether("socket", "player-config")

	cmd.Flags().Float64P("speed", "x", 0, "Speed factor applied to session timings")
	cmd.Flags().Int("latency", 0, "Simulated latency of player queries, in milliseconds")
}

// bindSourceFlags binds the flags of the running command only, since several commands share the keys.
func bindSourceFlags(cmd *cobra.Command) {
	lo.Must0(viper.BindPFlag(key.ReplaySpeed, cmd.Flags().Lookup("speed")))
	lo.Must0(viper.BindPFlag(key.ReplayQueryLatency, cmd.Flags().Lookup("latency")))
}

// openSource resolves the source named by the arguments and flags of cmd, and attaches a strategy to it.
func openSource(cmd *cobra.Command, args []string) (*source, error) {
	bindSourceFlags(cmd)
	socket := lo.Must(cmd.Flags().GetString("socket"))

	var (
		src *source
		err error
	)

	switch {
	case socket != "":
		src, err = openSocket(socket, lo.Must(cmd.Flags().GetString("player-config")))
	case len(args) == 1:
		src, err = openSession(args[0])
	default:
		err = errors.New("a session name or --socket is required")
	}

	if err != nil {
		return nil, err
	}

	s, ok := strategy.Default.Attach(src.player).Get()
	if !ok {
		return nil, fmt.Errorf(
			"no strategy recognizes the player of %s (known: %s)",
			src.name,
			strings.Join(strategy.Default.Names(), ", "),
		)
	}

	src.strategy = s
	log.Infof("%s: attached strategy %s", src.name, s.Name())
	return src, nil
}

func newPlayer(config player.Config) *player.Scripted {
	p := player.NewScripted(config)
	p.Latency = time.Duration(viper.GetInt(key.ReplayQueryLatency)) * time.Millisecond
	return p
}

func openSession(name string) (*source, error) {
	path := session.Resolve(name)

	s, err := session.Load(path)
	if err != nil {
		return nil, err
	}

	log.Infof("loaded session %s: %s over %s", path, util.Quantify(s.Events(), "event", "events"), s.Duration())

	p := newPlayer(s.Config())
	return &source{
		name:   util.FileStem(path),
		player: p,
		feed: func(ctx context.Context) error {
			return session.Play(ctx, s, p, viper.GetFloat64(key.ReplaySpeed))
		},
	}, nil
}

func openSocket(socket, configPath string) (*source, error) {
	config, err := loadPlayerConfig(configPath)
	if err != nil {
		return nil, err
	}

	p := newPlayer(config)

	stream, err := player.DialStream(socket, p)
	if err != nil {
		return nil, err
	}

	return &source{
		name:   socket,
		player: p,
		feed: func(ctx context.Context) error {
			stream.Start()

			select {
			case <-ctx.Done():
				stream.Stop()
			case <-stream.Done():
			}

			log.Infof("%s: received %s", socket, util.Quantify(stream.Received(), "event", "events"))
			return stream.Err()
		},
	}, nil
}

func loadPlayerConfig(path string) (player.Config, error) {
	data, err := filesystem.API().ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read player config: %w", err)
	}

	var config player.Config
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("parse player config %s: %w", path, err)
	}

	return config, nil
}
