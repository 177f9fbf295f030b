package cmd

import (
	"context"
	"fmt"

	"cidash/app/cli/cmd/client"
	"cidash/app/cli/cmd/common"
	"cidash/pkg/api"
	pclient "cidash/pkg/client"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

type actionOpts struct {
	job bool // --job
}

// NewCancelCommand returns a new instance of a cidash command
func NewCancelCommand() *cobra.Command {
	return newActionCommand("cancel", "cancel every unfinished job of a pipeline, or a single job with --job",
		pclient.Client.CancelPipeline, pclient.Client.CancelJob)
}

// NewUpdateCommand returns a new instance of a cidash command
func NewUpdateCommand() *cobra.Command {
	return newActionCommand("update", "ask the backend to refresh the state of a pipeline, or of a single job with --job",
		pclient.Client.UpdatePipeline, pclient.Client.UpdateJob)
}

func newActionCommand(
	name, short string,
	onPipeline func(pclient.Client, context.Context, api.PipelineID) error,
	onJob func(pclient.Client, context.Context, api.JobID) error,
) *cobra.Command {
	var opts actionOpts
	command := &cobra.Command{
		Use:   name + " <id>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			ctx := context.Background()
			cli, _, err := client.New(ctx)
			if err != nil {
				log.Fatal(err)
			}

			if opts.job {
				jid, err := common.ParseJobID(args[0])
				if err != nil {
					log.Fatal(err)
				}
				if err := onJob(cli, ctx, jid); err != nil {
					log.Fatal(errors.Wrapf(err, "cannot %s job %d", name, jid))
				}
				fmt.Printf("%s requested for job %d\n", name, jid)
				return
			}

			pid, err := common.ParsePipelineID(args[0])
			if err != nil {
				log.Fatal(err)
			}
			if err := onPipeline(cli, ctx, pid); err != nil {
				log.Fatal(errors.Wrapf(err, "cannot %s pipeline %d", name, pid))
			}
			fmt.Printf("%s requested for pipeline %d\n", name, pid)
		},
	}
	command.Flags().BoolVarP(&opts.job, "job", "j", false, "the id is a job id")
	return command
}
