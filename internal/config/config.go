package config

const (
	DefaultSecretRegion     = "cn-north-1"
	DefaultJobConfPrefix    = "s3://"
	DefaultRcloneBinary     = "/usr/bin/rclone"
	DefaultRcloneConfigPath = "/root/.config/rclone/rclone.conf"
	DefaultTransfers        = 16
	DefaultCheckers         = 16
)

type Config struct {
	SecretName      MultiSourceString `yaml:"secret_name"`
	SecretRegion    MultiSourceString `yaml:"secret_region"`
	SecretsEndpoint MultiSourceString `yaml:"secrets_endpoint"`
	Region          MultiSourceString `yaml:"region"`
	S3Endpoint      MultiSourceString `yaml:"s3_endpoint"`
	S3AccessKey     MultiSourceString `yaml:"s3_access_key"`
	S3SecretKey     MultiSourceString `yaml:"s3_secret_key"`
	JobConf         MultiSourceString `yaml:"job_conf"`
	JobConfPrefix   MultiSourceString `yaml:"job_conf_prefix"`
	CheckExitCodes  MultiSourceString `yaml:"check_exit_codes"`
	LogLevel        MultiSourceString `yaml:"log_level"`
	Rclone          ConfigRclone      `yaml:"rclone"`
}

type ConfigRclone struct {
	Binary     string `yaml:"binary"`
	ConfigPath string `yaml:"config_path"`
	Transfers  int    `yaml:"transfers"`
	Checkers   int    `yaml:"checkers"`
	Progress   bool   `yaml:"progress"`
}

// Default returns the configuration used when no config file is given. It
// reads SecretName, Region and JobConf from the environment.
func Default() *Config {
	return &Config{
		SecretName:      fromEnv("SecretName"),
		SecretRegion:    fromEnvOr("SecretRegion", DefaultSecretRegion),
		SecretsEndpoint: fromEnv("SecretsEndpoint"),
		Region:          fromEnv("Region"),
		S3Endpoint:      fromEnv("S3Endpoint"),
		S3AccessKey:     fromEnv("S3AccessKey"),
		S3SecretKey:     fromEnv("S3SecretKey"),
		JobConf:         fromEnv("JobConf"),
		JobConfPrefix:   fromEnvOr("JobConfPrefix", DefaultJobConfPrefix),
		CheckExitCodes:  fromEnvOr("CheckExitCodes", "true"),
		LogLevel:        fromEnvOr("LogLevel", "info"),
		Rclone: ConfigRclone{
			Binary:     DefaultRcloneBinary,
			ConfigPath: DefaultRcloneConfigPath,
			Transfers:  DefaultTransfers,
			Checkers:   DefaultCheckers,
			Progress:   true,
		},
	}
}
