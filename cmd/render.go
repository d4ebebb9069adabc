package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"s3-replicator/internal/rclone"
)

type materializer interface {
	Materialize(ctx context.Context) (rclone.Replication, error)
}

// NewRenderCmd materializes the rclone config without transferring and
// prints the source and destination remotes.
func NewRenderCmd(o *rootOptions, out io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "render",
		Short: "Fetch credentials and write the rclone config without running the transfer",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			j, err := newJob(cmd.Context(), o.configPath)
			if err != nil {
				return err
			}
			return renderRemotes(cmd.Context(), j, out)
		},
	}
}

func renderRemotes(ctx context.Context, m materializer, out io.Writer) error {
	repl, err := m.Materialize(ctx)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintf(out, "%s %s\n", repl.Source(), repl.Destination())
	return err
}
