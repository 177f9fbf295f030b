package cmd

import (
	"context"
	"os"

	"cidash/app/cli/cmd/client"
	"cidash/app/cli/cmd/common"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// NewGetCommand returns a new instance of a cidash command
func NewGetCommand() *cobra.Command {
	command := &cobra.Command{
		Use:   "get <pipeline-id>",
		Short: "print the stages of a pipeline",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			pid, err := common.ParsePipelineID(args[0])
			if err != nil {
				log.Fatal(err)
			}
			ctx := context.Background()
			cli, _, err := client.New(ctx)
			if err != nil {
				log.Fatal(err)
			}

			v, err := common.FetchView(ctx, cli, pid)
			if err != nil {
				log.Fatal(err)
			}
			common.PrintPipeline(os.Stdout, v, common.PrintOptions{})
		},
	}
	return command
}
