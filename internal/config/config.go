// Package config loads twins settings from file, environment and defaults.
package config

import (
	"errors"
	"fmt"
	"runtime"
	"strings"

	"github.com/mouse-blink/twins/internal/adapter"
	"github.com/mouse-blink/twins/internal/domain"
	"github.com/spf13/viper"
)

// EnvPrefix is the prefix of environment overrides, e.g. TWINS_ANALYSIS_THRESHOLD.
const EnvPrefix = "TWINS"

// Config is the full set of twins settings. Command line flags override it.
type Config struct {
	Analysis AnalysisConfig `mapstructure:"analysis"`
	Corpus   CorpusConfig   `mapstructure:"corpus"`
	Reports  ReportsConfig  `mapstructure:"reports"`
	Logging  LoggingConfig  `mapstructure:"logging"`
	Storage  StorageConfig  `mapstructure:"storage"`
}

// AnalysisConfig controls scoring: the summary threshold in percent and the
// number of parallel workers.
type AnalysisConfig struct {
	Threshold float64 `mapstructure:"threshold"`
	Workers   int     `mapstructure:"workers"`
}

// CorpusConfig selects the submission files: their extension, the classes to
// read (all when empty) and path regexes to skip.
type CorpusConfig struct {
	Extension string   `mapstructure:"extension"`
	Classes   []string `mapstructure:"classes"`
	Exclude   []string `mapstructure:"exclude"`
}

// ReportsConfig names the output directory and the formats written to it.
type ReportsConfig struct {
	Dir     string   `mapstructure:"dir"`
	Formats []string `mapstructure:"formats"`
}

// LoggingConfig sets the log level and switches between console and JSON output.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Pretty bool   `mapstructure:"pretty"`
}

// StorageConfig configures the S3-compatible corpus source used for s3:// roots.
type StorageConfig struct {
	Endpoint  string `mapstructure:"endpoint"`
	AccessKey string `mapstructure:"access_key"`
	SecretKey string `mapstructure:"secret_key"`
	Region    string `mapstructure:"region"`
	UseSSL    bool   `mapstructure:"use_ssl"`
}

// Load reads the configuration. When file is empty, twins.yaml is searched in
// the working directory, ./config and $HOME/.config/twins; a missing file is
// not an error. An explicitly named file must exist.
func Load(file string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if file != "" {
		v.SetConfigFile(file)
	} else {
		v.SetConfigName("twins")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
		v.AddConfigPath("$HOME/.config/twins")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if file != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("analysis.threshold", domain.DefaultThreshold)
	v.SetDefault("analysis.workers", runtime.NumCPU())

	v.SetDefault("corpus.extension", adapter.DefaultExtension)
	v.SetDefault("corpus.classes", []string{})
	v.SetDefault("corpus.exclude", []string{})

	v.SetDefault("reports.dir", ".twins-reports")
	v.SetDefault("reports.formats", []string{"csv", "xlsx", "txt"})

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.pretty", true)

	v.SetDefault("storage.endpoint", "localhost:9000")
	v.SetDefault("storage.access_key", "")
	v.SetDefault("storage.secret_key", "")
	v.SetDefault("storage.region", "")
	v.SetDefault("storage.use_ssl", false)
}
