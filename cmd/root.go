package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

var (
	// GitTag stands for a git tag
	GitTag string
	// GitCommit stands for a git commit hash
	GitCommit string
)

type rootOptions struct {
	configPath string
}

// NewRootCmd builds the command tree. Without a subcommand it behaves like
// "run".
func NewRootCmd(out io.Writer) *cobra.Command {
	o := &rootOptions{}

	cmd := &cobra.Command{
		Use:           "s3-replicator",
		Short:         "Replicate an S3 path to another S3 endpoint with rclone",
		Long:          `Fetches the job credentials from Secrets Manager, writes them into the job's rclone config and runs rclone copyto.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runJob(cmd.Context(), o.configPath, false)
		},
	}
	cmd.PersistentFlags().StringVarP(&o.configPath, "config", "c", "", "path to yaml config; without it SecretName, Region and JobConf are read from the environment")

	cmd.AddCommand(NewRunCmd(o))
	cmd.AddCommand(NewRenderCmd(o, out))
	cmd.AddCommand(NewVersionCmd(out))

	return cmd
}

// NewVersionCmd prints version information
func NewVersionCmd(out io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(out, "Version %s (git-%s)\n", GitTag, GitCommit)
		},
	}
}
