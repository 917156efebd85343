package cli

import (
	"github.com/spf13/cobra"

	"github.com/seokraft/seokraft/internal/adapters/inbound/httpapi"
)

func newServeCmd() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the validation HTTP API",
		Long:  "Serve a small HTTP API that validates metadata records sent as JSON, for CMS hooks and editorial tooling.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return httpapi.New().Run(addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8080", "Listen address")

	return cmd
}
