package config

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

type Config struct {
	Catalog   Catalog    `json:"catalog" yaml:"catalog" mapstructure:"catalog"`
	Storage   Storage    `json:"storage" yaml:"storage" mapstructure:"storage"`
	Server    Server     `json:"server" yaml:"server" mapstructure:"server"`
	Scan      Scan       `json:"scan" yaml:"scan" mapstructure:"scan"`
	Instances []Instance `json:"instances" yaml:"instances" mapstructure:"instances" validate:"min=1,dive"`
}

// Catalog configures the external metadata catalog client
type Catalog struct {
	Scheme      string        `json:"scheme" yaml:"scheme" mapstructure:"scheme"`
	Host        string        `json:"host" yaml:"host" mapstructure:"host"`
	APIKey      string        `json:"apiKey" yaml:"apiKey" mapstructure:"apiKey"`
	Timeout     time.Duration `json:"timeout" yaml:"timeout" mapstructure:"timeout"`
	BaseBackoff time.Duration `json:"backoff" yaml:"backoff" mapstructure:"backoff"`
	MaxRetries  int           `json:"maxRetries" yaml:"maxRetries" mapstructure:"maxRetries"`
}

type Server struct {
	Port int `json:"port" yaml:"port" mapstructure:"port"`
}

// Storage configuration is assumed to be for sqlite database only currently
type Storage struct {
	FilePath string `json:"filePath" yaml:"filePath" mapstructure:"filePath"`
}

// Scan configures the reconciliation scan job
type Scan struct {
	Workers int `json:"workers" yaml:"workers" mapstructure:"workers"`
}

// Instance is one managed library profile with its configured root folders
type Instance struct {
	Name        string   `json:"name" yaml:"name" mapstructure:"name" validate:"required"`
	RootFolders []string `json:"rootFolders" yaml:"rootFolders" mapstructure:"rootFolders" validate:"min=1"`
}

type ConfigUnmarshaler interface {
	ReadInConfig() error
	Unmarshal(any, ...viper.DecoderConfigOption) error
	ConfigFileUsed() string
}

// New reads and validates a new configuration
func New(cu ConfigUnmarshaler) (Config, error) {
	var c Config

	if cu.ConfigFileUsed() != "" {
		err := cu.ReadInConfig()
		if err != nil {
			return c, err
		}
	}

	if err := cu.Unmarshal(&c); err != nil {
		return c, err
	}

	err := validator.New(validator.WithRequiredStructEnabled()).Struct(c)
	return c, err
}
