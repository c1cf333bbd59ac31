package cli

import (
	"github.com/spf13/cobra"

	"github.com/ironsheep/image-binarize/internal/server"
)

func newServeCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run as an MCP server over stdin/stdout",
		Long: `Serves the pipeline as MCP tools (image_load, image_grayscale, image_binarize,
image_compose) using JSON-RPC 2.0 over stdin/stdout. Configure it in an MCP
client; logs go to stderr.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			srv := server.New(a.v.GetInt("threshold"))
			return srv.Serve(a.stdin, a.stdout)
		},
	}
}
