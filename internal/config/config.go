package config

import (
	"time"

	"github.com/spf13/viper"
)

// The API runs as a container and receives its settings as environment
// variables. AWS credentials are optional, the SDK default chain is used
// when they are not both set.

type Config struct {
	ServerPort         string        `mapstructure:"SERVER_PORT"`
	AWSRegion          string        `mapstructure:"AWS_REGION"`
	AWSAccessKeyID     string        `mapstructure:"AWS_ACCESS_KEY_ID"`
	AWSSecretAccessKey string        `mapstructure:"AWS_SECRET_ACCESS_KEY"`
	AWSEndpoint        string        `mapstructure:"AWS_ENDPOINT"`
	IsLocalDev         bool          `mapstructure:"IS_LOCAL_DEV"`
	LogLevel           string        `mapstructure:"LOG_LEVEL"`
	OTLPEndpoint       string        `mapstructure:"OTEL_EXPORTER_OTLP_ENDPOINT"`
	ServiceName        string        `mapstructure:"SERVICE_NAME"`
	ShutdownTimeout    time.Duration `mapstructure:"SHUTDOWN_TIMEOUT"`
}

// LoadConfig reads configuration from environment variables.
func LoadConfig() (config Config, err error) {
	v := viper.New()

	v.SetDefault("SERVER_PORT", "8080")
	v.SetDefault("AWS_REGION", "us-east-1")
	// Keys without a default are invisible to Unmarshal, even with AutomaticEnv.
	v.SetDefault("AWS_ACCESS_KEY_ID", "")
	v.SetDefault("AWS_SECRET_ACCESS_KEY", "")
	v.SetDefault("AWS_ENDPOINT", "")
	v.SetDefault("IS_LOCAL_DEV", false)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("OTEL_EXPORTER_OTLP_ENDPOINT", "")
	v.SetDefault("SERVICE_NAME", "sqs-api")
	v.SetDefault("SHUTDOWN_TIMEOUT", 5*time.Second)

	v.AutomaticEnv()

	err = v.Unmarshal(&config)
	return
}
