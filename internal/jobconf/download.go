package jobconf

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/aws/aws-sdk-go-v2/service/s3"
	log "github.com/sirupsen/logrus"
)

// GetObjectAPI is the subset of *s3.Client the downloader needs.
type GetObjectAPI interface {
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

type Downloader struct {
	api GetObjectAPI
}

func NewDownloader(api GetObjectAPI) *Downloader {
	return &Downloader{api: api}
}

// Download copies the object at address to localPath, replacing any file
// already there. The parent directory must exist. The new file is readable
// by its owner only, and localPath is untouched if the download fails.
func (d *Downloader) Download(ctx context.Context, address, localPath string) error {
	addr, err := ParseAddress(address)
	if err != nil {
		return err
	}

	obj, err := d.api.GetObject(ctx, &s3.GetObjectInput{
		Bucket: &addr.Bucket,
		Key:    &addr.Key,
	})
	if err != nil {
		return fmt.Errorf("failed to get object %s from bucket %s: %w", addr.Key, addr.Bucket, err)
	}
	defer obj.Body.Close()

	// stream into a sibling temp file so a failed read leaves localPath as it was
	f, err := os.CreateTemp(filepath.Dir(localPath), filepath.Base(localPath)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file for %s: %w", localPath, err)
	}
	tmp := f.Name()

	n, err := io.Copy(f, obj.Body)
	if err != nil {
		f.Close()
		os.Remove(tmp)
		return fmt.Errorf("failed to read object %s from bucket %s: %w", addr.Key, addr.Bucket, err)
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("failed to write %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, localPath); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("failed to replace %s: %w", localPath, err)
	}

	log.Printf("downloaded %s to %s (%d bytes)", addr, localPath, n)
	return nil
}
