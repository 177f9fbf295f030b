package cmd

import (
	gocontext "context"
	"os"
	"os/signal"

	"cidash/app/cli/cmd/client"
	"cidash/app/cli/cmd/common"
	"cidash/pkg/api"
	pclient "cidash/pkg/client"
	"cidash/pkg/events"
	"cidash/pkg/store"
	"cidash/pkg/util/context"
	"cidash/pkg/watcher"

	tm "github.com/buger/goterm"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

type watchOpts struct {
	noNotify bool // --no-notify
}

// NewWatchCommand returns a new instance of a cidash command
func NewWatchCommand() *cobra.Command {
	var opts watchOpts
	command := &cobra.Command{
		Use:   "watch <pipeline-id>",
		Short: "redraw the stages of a pipeline until it finishes",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			pid, err := common.ParsePipelineID(args[0])
			if err != nil {
				log.Fatal(err)
			}
			ctx, stop := signal.NotifyContext(gocontext.Background(), os.Interrupt)
			defer stop()
			if err := watch(context.FromContext(ctx), pid, opts); err != nil && !errors.Is(err, gocontext.Canceled) {
				log.Fatal(err)
			}
		},
	}
	command.Flags().BoolVar(&opts.noNotify, "no-notify", false, "poll only, without listening to backend change notifications")
	return command
}

func watch(ctx context.Context, pid api.PipelineID, opts watchOpts) error {
	cli, cfg, err := client.New(ctx)
	if err != nil {
		return errors.Wrap(err, "cannot create cidash client")
	}
	s, err := store.NewInMemoryStore()
	if err != nil {
		return errors.Wrap(err, "cannot create view store")
	}

	wopts := watcher.Options{
		Interval:         cfg.RefreshInterval(),
		Store:            s,
		StopWhenFinished: true,
	}
	if !opts.noNotify {
		n, err := pclient.NewNotifier(cfg.URI, cli.Tokens)
		if err != nil {
			return errors.Wrap(err, "cannot create change notifier")
		}
		ctx.Logger().Debugf("listening to changes on %s", n.URL())
		wopts.Notifier = n
	}

	tm.Clear()
	return watcher.New(cli, wopts).Run(ctx, pid, func(ctx context.Context, evt events.Event) {
		if evt.View == nil {
			// Nothing was ever fetched, there is nothing to redraw.
			return
		}
		tm.Clear()
		tm.MoveCursor(1, 1)
		common.PrintPipeline(tm.Screen, *evt.View, common.PrintOptions{Stale: evt.Stale, Err: evt.Err})
		tm.Flush()
	})
}
