package cmd

import (
	"errors"

	"github.com/spf13/cobra"

	lexidex "github.com/kailas-cloud/lexidex/pkg/sdk"
)

var errUnhealthy = errors.New("dictionary unhealthy")

type healthOutput struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}

func newHealthCmd(o *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Check the dictionary, analyzer and cache",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var status string
			err := withClient(cmd, o, func(c *lexidex.Client) (any, error) {
				h := c.Health(cmd.Context())
				status = h.Status
				return healthOutput{Status: h.Status, Checks: h.Checks}, nil
			})
			if err != nil {
				return err
			}
			if status == "error" {
				return errUnhealthy
			}
			return nil
		},
	}
}
