// Package rclone edits the rclone configuration file a replication job runs
// with and invokes rclone against it.
//
// Importing the package switches go-ini's process-wide ini.PrettyFormat off
// and ini.PrettyEqual on, so every ini file written by the process uses
// unaligned "key = value" lines.
package rclone

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-ini/ini"
)

const (
	SrcRemote          = "src-s3"
	DstRemote          = "dst-s3"
	ReplicationSection = "Replication"

	keyAccessKeyID     = "access_key_id"
	keySecretAccessKey = "secret_access_key"
	keySrcPath         = "src_path"
	keyDstPath         = "dst_path"
)

var (
	ErrMissingSection = errors.New("config section not found")
	ErrMissingKey     = errors.New("config key not found")
)

func init() {
	// rclone writes "key = value" without column alignment.
	ini.PrettyFormat = false
	ini.PrettyEqual = true
}

var loadOptions = ini.LoadOptions{
	// values such as secret keys may contain '#' or ';'
	IgnoreInlineComment:     true,
	PreserveSurroundedQuote: true,
}

// Replication is the source and destination path pair read from the
// [Replication] section.
type Replication struct {
	SrcPath string
	DstPath string
}

// Source is the rclone remote argument for the source side.
func (r Replication) Source() string {
	return SrcRemote + ":" + r.SrcPath
}

// Destination is the rclone remote argument for the destination side.
func (r Replication) Destination() string {
	return DstRemote + ":" + r.DstPath
}

type Config struct {
	file *ini.File
}

// Load parses the file at path.
func Load(path string) (*Config, error) {
	f, err := ini.LoadSources(loadOptions, path)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return &Config{file: f}, nil
}

// Parse parses config content held in memory.
func Parse(data []byte) (*Config, error) {
	f, err := ini.LoadSources(loadOptions, data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return &Config{file: f}, nil
}

func (c *Config) section(name string) (*ini.Section, error) {
	sec, err := c.file.GetSection(name)
	if err != nil {
		return nil, fmt.Errorf("%w: [%s]", ErrMissingSection, name)
	}
	return sec, nil
}

// SetCredentials overwrites the key pair of remote. The section must exist;
// the keys are created if the template lacks them.
func (c *Config) SetCredentials(remote, accessKeyID, secretAccessKey string) error {
	sec, err := c.section(remote)
	if err != nil {
		return err
	}
	sec.Key(keyAccessKeyID).SetValue(accessKeyID)
	sec.Key(keySecretAccessKey).SetValue(secretAccessKey)
	return nil
}

// Replication reads the source and destination paths. It does not modify
// the file.
func (c *Config) Replication() (Replication, error) {
	sec, err := c.section(ReplicationSection)
	if err != nil {
		return Replication{}, err
	}
	src, err := requireKey(sec, keySrcPath)
	if err != nil {
		return Replication{}, err
	}
	dst, err := requireKey(sec, keyDstPath)
	if err != nil {
		return Replication{}, err
	}
	return Replication{SrcPath: src, DstPath: dst}, nil
}

// Value returns section.key, for inspection.
func (c *Config) Value(section, key string) (string, error) {
	sec, err := c.section(section)
	if err != nil {
		return "", err
	}
	return requireKey(sec, key)
}

func requireKey(sec *ini.Section, key string) (string, error) {
	if !sec.HasKey(key) {
		return "", fmt.Errorf("%w: [%s] %s", ErrMissingKey, sec.Name(), key)
	}
	return sec.Key(key).String(), nil
}

// Bytes serializes every section and key.
func (c *Config) Bytes() ([]byte, error) {
	var buf bytes.Buffer
	if _, err := c.file.WriteTo(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Save replaces the file at path with the full serialized content in a
// single write and restricts it to its owner, since it holds credentials.
func (c *Config) Save(path string) error {
	b, err := c.Bytes()
	if err != nil {
		return fmt.Errorf("failed to serialize config: %w", err)
	}
	if err := os.WriteFile(path, b, 0o600); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	// WriteFile keeps the mode of a file that already exists
	if err := os.Chmod(path, 0o600); err != nil {
		return fmt.Errorf("failed to restrict %s: %w", path, err)
	}
	return nil
}

// EnsureDir creates the directory holding path, with any missing parents.
func EnsureDir(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create %s: %w", dir, err)
	}
	return nil
}
