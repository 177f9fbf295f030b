package cmd

import (
	"context"
	"os"

	"cidash/app/cli/cmd/client"
	"cidash/app/cli/cmd/common"
	"cidash/pkg/view"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// NewListCommand returns a new instance of a cidash command
func NewListCommand() *cobra.Command {
	command := &cobra.Command{
		Use:   "list",
		Short: "list pipelines with the status of each stage",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			ctx := context.Background()
			cli, _, err := client.New(ctx)
			if err != nil {
				log.Fatal(err)
			}

			pipelines, err := cli.ListPipelines(ctx)
			if err != nil {
				log.Fatal(err)
			}
			summaries := make([]view.Summary, len(pipelines))
			for i, p := range pipelines {
				summaries[i] = view.Summarize(p)
			}
			common.PrintSummaries(os.Stdout, summaries)
		},
	}
	return command
}
