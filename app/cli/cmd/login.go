package cmd

import (
	"context"
	"fmt"

	"cidash/pkg/client"
	"cidash/pkg/util/config"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

type loginOpts struct {
	username string // --username
	password string // --password
}

// NewLoginCommand returns a new instance of a cidash command
func NewLoginCommand() *cobra.Command {
	var opts loginOpts
	command := &cobra.Command{
		Use:   "login",
		Short: "sign in and print the tokens as environment variables",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			cfg, err := config.LoadDashboard()
			if err != nil {
				log.Fatal(err)
			}
			if opts.username != "" {
				cfg.Username = opts.username
			}
			if opts.password != "" {
				cfg.Password = opts.password
			}
			if cfg.Username == "" {
				log.Fatal(errors.New("username is required"))
			}

			cli, err := client.NewClient(cfg.URI)
			if err != nil {
				log.Fatal(err)
			}
			tokens, err := cli.SignIn(context.Background(), cfg.Username, cfg.Password)
			if err != nil {
				log.Fatal(err)
			}
			fmt.Printf("export CIDASH_ACCESS_TOKEN=%s\n", tokens.Access)
			fmt.Printf("export CIDASH_REFRESH_TOKEN=%s\n", tokens.Refresh)
		},
	}
	command.Flags().StringVarP(&opts.username, "username", "u", "", "user name, defaults to the configured one")
	command.Flags().StringVarP(&opts.password, "password", "p", "", "password, defaults to the configured one")
	return command
}
