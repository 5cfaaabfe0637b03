package config

import (
	"path/filepath"
	"runtime"
	"strings"

	"github.com/spf13/viper"
)

type ServerConfig struct {
	Host string `mapstructure:"host"`
}

type LoggingConfig struct {
	Level   string `mapstructure:"level"`
	Console bool   `mapstructure:"console"`
}

type GCPConfig struct {
	ProjectID       string `mapstructure:"project_id"`
	CredentialsFile string `mapstructure:"credentials_file"`
}

// DefaultsConfig carries the fleet defaults applied when the inbound event
// omits a field. Labels use the form "key1:value1,key2:value2"; zones are
// comma separated.
type DefaultsConfig struct {
	Labels          string `mapstructure:"labels"`
	Zones           string `mapstructure:"zones"`
	ScaleDownAction string `mapstructure:"scale_down_action"`
	ScaleUpAction   string `mapstructure:"scale_up_action"`
}

// PushConfig configures verification of the bearer token Pub/Sub attaches
// to push deliveries. Verification is disabled when the public key is empty.
type PushConfig struct {
	Audience     string      `mapstructure:"audience"`
	PublicKeyPem SecretValue `mapstructure:"public_key_pem"`
	DedupeTTLSec int         `mapstructure:"dedupe_ttl_sec"`
}

type SchedulerConfig struct {
	Server   ServerConfig   `mapstructure:"server"`
	Logging  LoggingConfig  `mapstructure:"logging"`
	GCP      GCPConfig      `mapstructure:"gcp"`
	Defaults DefaultsConfig `mapstructure:"defaults"`
	Push     PushConfig     `mapstructure:"push"`
}

var (
	schedulerCfg *SchedulerConfig
)

func GetConfig() *SchedulerConfig {
	return schedulerCfg
}

func InitSchedulerConfig(configName string, configPath string) (SchedulerConfig, error) {
	var cfg SchedulerConfig
	if configPath != "" {
		viper.AddConfigPath(configPath)
	}
	if configName == "" {
		configName = "scheduler_config"
	}
	viper.AddConfigPath(GetAbsPath("config"))
	viper.SetConfigName(configName)
	viper.SetConfigType("toml")
	viper.SetEnvPrefix("SCHEDULER")
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	err := viper.ReadInConfig()
	if err != nil {
		return cfg, err
	}

	err = viper.Unmarshal(&cfg)
	if err != nil {
		return cfg, err
	}
	schedulerCfg = &cfg
	return cfg, nil
}

// GetAbsPath returns the absolute path by joining the given paths with the project root directory
func GetAbsPath(paths ...string) string {
	_, filePath, _, _ := runtime.Caller(1)
	basePath := filepath.Dir(filePath)
	rootPath := filepath.Join(basePath, "..")
	return filepath.Join(rootPath, filepath.Join(paths...))
}
