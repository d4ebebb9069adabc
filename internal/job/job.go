// Package job runs one replication: fetch the credentials secret,
// materialize the rclone config, then copy from src-s3 to dst-s3.
//
// The three steps run strictly in order and each blocks until its remote
// call or child process returns.
package job

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"

	"s3-replicator/internal/rclone"
	"s3-replicator/internal/secrets"
)

type SecretFetcher interface {
	Fetch(ctx context.Context, secretID string) (string, error)
}

type ObjectDownloader interface {
	Download(ctx context.Context, address, localPath string) error
}

type Transferer interface {
	Command(r rclone.Replication) rclone.Command
	Copy(ctx context.Context, r rclone.Replication) error
}

type Params struct {
	SecretName     string
	JobConfAddress string
	ConfigPath     string
	// CheckExitCodes makes a failed download or transfer fail the run.
	// When false, those failures are only logged.
	CheckExitCodes bool
}

type Job struct {
	params     Params
	secrets    SecretFetcher
	downloader ObjectDownloader
	copier     Transferer
}

func New(params Params, fetcher SecretFetcher, downloader ObjectDownloader, copier Transferer) *Job {
	return &Job{
		params:     params,
		secrets:    fetcher,
		downloader: downloader,
		copier:     copier,
	}
}

// Run executes all three steps. With dryRun the transfer command is logged
// instead of executed.
func (j *Job) Run(ctx context.Context, dryRun bool) error {
	repl, err := j.Materialize(ctx)
	if err != nil {
		return err
	}

	if dryRun {
		log.Printf("dry run, not executing: %s", j.copier.Command(repl))
		return nil
	}

	if err := j.copier.Copy(ctx, repl); err != nil {
		if j.params.CheckExitCodes {
			return err
		}
		log.Warnf("ignoring transfer failure: %v", err)
	}
	return nil
}

// Materialize runs the first two steps and returns the paths to replicate.
// On success the config file at ConfigPath carries the fetched credentials.
func (j *Job) Materialize(ctx context.Context) (rclone.Replication, error) {
	rec, err := j.fetchCredentials(ctx)
	if err != nil {
		return rclone.Replication{}, err
	}
	return j.writeConfig(ctx, rec)
}

func (j *Job) fetchCredentials(ctx context.Context) (*secrets.Record, error) {
	log.Printf("fetching credentials from secret %s", j.params.SecretName)
	payload, err := j.secrets.Fetch(ctx, j.params.SecretName)
	if err != nil {
		return nil, fmt.Errorf("cannot fetch secret %s: %w", j.params.SecretName, err)
	}

	rec, err := secrets.ParseRecord(payload)
	if err != nil {
		return nil, fmt.Errorf("cannot decode secret %s: %w", j.params.SecretName, err)
	}
	return rec, nil
}

func (j *Job) writeConfig(ctx context.Context, rec *secrets.Record) (rclone.Replication, error) {
	path := j.params.ConfigPath

	if err := rclone.EnsureDir(path); err != nil {
		return rclone.Replication{}, err
	}

	log.Printf("downloading %s to %s", j.params.JobConfAddress, path)
	if err := j.downloader.Download(ctx, j.params.JobConfAddress, path); err != nil {
		if j.params.CheckExitCodes {
			return rclone.Replication{}, fmt.Errorf("cannot download job config: %w", err)
		}
		log.Warnf("ignoring download failure: %v", err)
	}

	cfg, err := rclone.Load(path)
	if err != nil {
		return rclone.Replication{}, err
	}
	if err := cfg.SetCredentials(rclone.SrcRemote, rec.SrcAccessKeyID, rec.SrcSecretAccessKey); err != nil {
		return rclone.Replication{}, err
	}
	if err := cfg.SetCredentials(rclone.DstRemote, rec.DstAccessKeyID, rec.DstSecretAccessKey); err != nil {
		return rclone.Replication{}, err
	}

	repl, err := cfg.Replication()
	if err != nil {
		return rclone.Replication{}, err
	}

	if err := cfg.Save(path); err != nil {
		return rclone.Replication{}, err
	}
	log.Printf("wrote credentials for %s and %s to %s", rclone.SrcRemote, rclone.DstRemote, path)
	return repl, nil
}
