package cmd

import (
	gocontext "context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"

	"cidash/app/cli/cmd/client"
	pclient "cidash/pkg/client"
	"cidash/pkg/util/context"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

type submitOpts struct {
	watch bool // --watch
}

// NewSubmitCommand returns a new instance of a cidash command
func NewSubmitCommand() *cobra.Command {
	var opts submitOpts
	command := &cobra.Command{
		Use:   "submit <pipeline.json>",
		Short: "create a pipeline from a JSON definition",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			req, err := readDefinition(args[0])
			if err != nil {
				log.Fatal(err)
			}

			ctx, stop := signal.NotifyContext(gocontext.Background(), os.Interrupt)
			defer stop()
			cli, _, err := client.New(ctx)
			if err != nil {
				log.Fatal(err)
			}
			res, err := cli.CreatePipeline(ctx, req)
			if err != nil {
				log.Fatal(errors.Wrapf(err, "cannot create pipeline %s", req.Name))
			}

			if res.ID == 0 {
				fmt.Printf("Pipeline %s submitted\n", req.Name)
				if opts.watch {
					log.Warn("the backend did not return the pipeline id, cannot watch it")
				}
				return
			}
			fmt.Printf("Pipeline %s submitted with id %d\n", req.Name, res.ID)
			if opts.watch {
				if err := watch(context.FromContext(ctx), res.ID, watchOpts{}); err != nil && !errors.Is(err, gocontext.Canceled) {
					log.Fatal(err)
				}
			}
		},
	}
	command.Flags().BoolVarP(&opts.watch, "watch", "w", false, "watch the pipeline until it completes")
	return command
}

// readDefinition reads and validates a pipeline definition file.
func readDefinition(path string) (pclient.CreatePipelineRequest, error) {
	f, err := os.Open(path)
	if err != nil {
		return pclient.CreatePipelineRequest{}, errors.Wrapf(err, "cannot open file %s", path)
	}
	defer f.Close()

	var req pclient.CreatePipelineRequest
	if err := json.NewDecoder(f).Decode(&req); err != nil {
		return pclient.CreatePipelineRequest{}, errors.Wrapf(err, "cannot decode file %s as pipeline definition", path)
	}
	if err := req.Validate(); err != nil {
		return pclient.CreatePipelineRequest{}, errors.Wrapf(err, "invalid pipeline definition %s", path)
	}
	return req, nil
}
