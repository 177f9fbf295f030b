package cmd

import (
	"os"

	"cidash/app/cli/cmd/client"
	"cidash/app/cli/cmd/common"
	"cidash/pkg/api"
	"cidash/pkg/util/context"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// NewJobCommand returns a new instance of a cidash command
func NewJobCommand() *cobra.Command {
	command := &cobra.Command{
		Use:   "job <job-id>",
		Short: "print a job with its output",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			jid, err := common.ParseJobID(args[0])
			if err != nil {
				log.Fatal(err)
			}
			ctx := context.WithJobID(context.Background(), jid)
			cli, _, err := client.New(ctx)
			if err != nil {
				ctx.Logger().Fatal(err)
			}

			j, err := cli.Job(ctx, jid)
			if err != nil {
				ctx.Logger().Fatal(err)
			}
			common.PrintJob(os.Stdout, api.Job(j))
		},
	}
	return command
}
