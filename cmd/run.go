package cmd

import (
	"context"
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"s3-replicator/internal/client"
	"s3-replicator/internal/config"
	"s3-replicator/internal/job"
	"s3-replicator/internal/jobconf"
	"s3-replicator/internal/rclone"
	"s3-replicator/internal/secrets"
)

func NewRunCmd(o *rootOptions) *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Fetch credentials, materialize the rclone config and run the transfer",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runJob(cmd.Context(), o.configPath, dryRun)
		},
	}
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "log the rclone command instead of running it")

	return cmd
}

func runJob(ctx context.Context, cfgPath string, dryRun bool) error {
	j, err := newJob(ctx, cfgPath)
	if err != nil {
		return err
	}
	return j.Run(ctx, dryRun)
}

// newJob resolves the run parameters and wires the AWS clients and rclone.
func newJob(ctx context.Context, cfgPath string) (*job.Job, error) {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return nil, fmt.Errorf("cannot load config: %w", err)
	}

	params, err := cfg.Resolve()
	if err != nil {
		return nil, err
	}

	level, err := log.ParseLevel(params.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid log level: %w", err)
	}
	log.SetLevel(level)

	sm, err := client.NewSecretsManager(ctx, params.SecretsEndpoint, params.SecretRegion)
	if err != nil {
		return nil, fmt.Errorf("cannot create secrets manager client: %w", err)
	}

	s3Client, err := client.NewS3(ctx, params.S3Endpoint, params.Region, params.S3AccessKey, params.S3SecretKey)
	if err != nil {
		return nil, fmt.Errorf("cannot create s3 client: %w", err)
	}

	copier := rclone.NewCopier(rclone.CopyOptions{
		Binary:     params.Rclone.Binary,
		ConfigPath: params.Rclone.ConfigPath,
		Transfers:  params.Rclone.Transfers,
		Checkers:   params.Rclone.Checkers,
		Progress:   params.Rclone.Progress,
	}, rclone.ExecRunner{Stdout: os.Stdout, Stderr: os.Stderr})

	return job.New(job.Params{
		SecretName:     params.SecretName,
		JobConfAddress: params.JobConfAddress,
		ConfigPath:     params.Rclone.ConfigPath,
		CheckExitCodes: params.CheckExitCodes,
	},
		secrets.NewFetcher(sm.Client),
		jobconf.NewDownloader(s3Client.Client),
		copier,
	), nil
}
