package config

import (
	"errors"
	"fmt"
	"strconv"
)

var ErrMissingValue = errors.New("missing required value")

// Params are the run parameters, resolved once at start.
type Params struct {
	SecretName      string
	SecretRegion    string
	SecretsEndpoint string
	Region          string
	S3Endpoint      string
	S3AccessKey     string
	S3SecretKey     string
	JobConf         string
	JobConfAddress  string
	CheckExitCodes  bool
	LogLevel        string
	Rclone          ConfigRclone
}

// Resolve reads every source once and validates the result.
func (c *Config) Resolve() (*Params, error) {
	p := &Params{
		SecretName:      c.SecretName.Get(),
		SecretRegion:    c.SecretRegion.Get(),
		SecretsEndpoint: c.SecretsEndpoint.Get(),
		Region:          c.Region.Get(),
		S3Endpoint:      c.S3Endpoint.Get(),
		S3AccessKey:     c.S3AccessKey.Get(),
		S3SecretKey:     c.S3SecretKey.Get(),
		JobConf:         c.JobConf.Get(),
		LogLevel:        c.LogLevel.Get(),
		Rclone:          c.Rclone,
	}

	required := []struct {
		value string
		src   MultiSourceString
		name  string
	}{
		{p.SecretName, c.SecretName, "secret_name"},
		{p.SecretRegion, c.SecretRegion, "secret_region"},
		{p.Region, c.Region, "region"},
		{p.JobConf, c.JobConf, "job_conf"},
	}
	for _, r := range required {
		if r.value == "" {
			return nil, fmt.Errorf("%w: %s (%s)", ErrMissingValue, r.name, r.src.Source())
		}
	}

	// the S3 client falls back to the default chain only when neither is set
	if (p.S3AccessKey == "") != (p.S3SecretKey == "") {
		return nil, fmt.Errorf("%w: s3_access_key and s3_secret_key must be set together", ErrMissingValue)
	}

	p.JobConfAddress = c.JobConfPrefix.Get() + p.JobConf

	check := c.CheckExitCodes.Get()
	if check == "" {
		p.CheckExitCodes = true
	} else {
		v, err := strconv.ParseBool(check)
		if err != nil {
			return nil, fmt.Errorf("invalid check_exit_codes %q: %w", check, err)
		}
		p.CheckExitCodes = v
	}

	if p.Rclone.Binary == "" || p.Rclone.ConfigPath == "" {
		return nil, fmt.Errorf("%w: rclone binary and config_path", ErrMissingValue)
	}
	if p.Rclone.Transfers <= 0 || p.Rclone.Checkers <= 0 {
		return nil, fmt.Errorf("rclone transfers and checkers must be positive, got %d/%d",
			p.Rclone.Transfers, p.Rclone.Checkers)
	}
	return p, nil
}
