package cmd

import (
	"context"
	"os"

	"cidash/app/cli/cmd/client"
	"cidash/app/cli/cmd/common"
	"cidash/pkg/api"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// NewJobsCommand returns a new instance of a cidash command
func NewJobsCommand() *cobra.Command {
	command := &cobra.Command{
		Use:   "jobs",
		Short: "list jobs of every pipeline with their status",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			ctx := context.Background()
			cli, _, err := client.New(ctx)
			if err != nil {
				log.Fatal(err)
			}

			jobs, err := cli.ListJobs(ctx)
			if err != nil {
				log.Fatal(err)
			}
			common.PrintJobs(os.Stdout, []api.Job(jobs))
		},
	}
	return command
}
