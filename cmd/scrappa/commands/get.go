package commands

import (
	"fmt"

	"github.com/loykin/scrappa"
	"github.com/spf13/cobra"
)

func newGetCmd(a *app) *cobra.Command {
	var extra []string
	cmd := &cobra.Command{
		Use:   "get <endpoint>",
		Short: "GET any endpoint, e.g. maps/simple-search",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			params, err := parseParams(extra)
			if err != nil {
				return err
			}
			c, err := a.client(cmd)
			if err != nil {
				return err
			}
			res, err := c.Get(cmd.Context(), scrappa.Endpoint(args[0]).Path(), params)
			if err != nil {
				return err
			}
			return a.render(cmd.OutOrStdout(), res)
		},
	}
	paramFlag(cmd, &extra)
	return cmd
}

func newEndpointsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "endpoints",
		Short: "List the endpoints with a dedicated command",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, e := range scrappa.Endpoints() {
				if _, err := fmt.Fprintln(cmd.OutOrStdout(), e.Path()); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
