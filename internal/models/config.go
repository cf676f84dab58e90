package models

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
)

type StorageConfig struct {
	Driver      string `mapstructure:"driver"` // "file" or "postgres"
	DatabaseURL string `mapstructure:"database_url"`
}

type ExportConfig struct {
	OutputDir        string `mapstructure:"output_dir"`
	ShowCurrencyFlag bool   `mapstructure:"show_currency_flag"`
	FontPath         string `mapstructure:"font_path"` // TTF used by the PDF and PNG renderers
}

type CloudStorageConfig struct {
	Provider string `mapstructure:"provider"`
	Region   string `mapstructure:"region"`
	Bucket   string `mapstructure:"bucket"`
	Prefix   string `mapstructure:"prefix"`
}

type KafkaConfig struct {
	Enabled    bool   `mapstructure:"enabled"`
	BrokerList string `mapstructure:"broker_list"`
	Topic      string `mapstructure:"topic"`
}

type AssistantConfig struct {
	Delay time.Duration `mapstructure:"delay"`
}

type ServerConfig struct {
	Addr string `mapstructure:"addr"`
}

type Config struct {
	Workspace string             `mapstructure:"workspace"`
	Storage   StorageConfig      `mapstructure:"storage"`
	Export    ExportConfig       `mapstructure:"export"`
	Cloud     CloudStorageConfig `mapstructure:"cloud"`
	Kafka     KafkaConfig        `mapstructure:"kafka"`
	EventFile string             `mapstructure:"event_file"` // JSON lines sink when kafka is off
	Assistant AssistantConfig    `mapstructure:"assistant"`
	Server    ServerConfig       `mapstructure:"server"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("workspace", ".menucraft")
	v.SetDefault("storage.driver", "file")
	v.SetDefault("storage.database_url", "")
	v.SetDefault("export.output_dir", ".")
	v.SetDefault("export.show_currency_flag", true)
	v.SetDefault("export.font_path", "")
	v.SetDefault("cloud.provider", "s3")
	v.SetDefault("cloud.region", "eu-west-1")
	v.SetDefault("cloud.bucket", "")
	v.SetDefault("cloud.prefix", "menus")
	v.SetDefault("kafka.enabled", false)
	v.SetDefault("kafka.broker_list", "localhost:9092")
	v.SetDefault("kafka.topic", "menu_events")
	v.SetDefault("event_file", "")
	v.SetDefault("assistant.delay", "1500ms")
	v.SetDefault("server.addr", "localhost:8080")
}

// LoadConfig reads the configuration using Viper. A missing config file is
// not an error; defaults, .env and MENUCRAFT_* variables still apply.
func LoadConfig(v *viper.Viper, cfgFile string) (*Config, error) {
	_ = godotenv.Load()

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(home)
		}
		v.SetConfigType("yaml")
		v.SetConfigName(".menucraft")
	}

	v.SetEnvPrefix("menucraft")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok || cfgFile != "" {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	decoderConfigOption := viper.DecoderConfigOption(func(config *mapstructure.DecoderConfig) {
		config.DecodeHook = mapstructure.ComposeDecodeHookFunc(
			config.DecodeHook,
			mapstructure.StringToTimeDurationHookFunc(),
		)
	})
	if err := v.Unmarshal(&config, decoderConfigOption); err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %w", err)
	}
	config.Workspace = filepath.Clean(config.Workspace)

	return &config, nil
}
