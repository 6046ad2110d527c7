package config

import (
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/go-viper/mapstructure/v2"
	"github.com/loykin/scrappa/internal/common"
	"github.com/loykin/scrappa/internal/constants"
	"github.com/loykin/scrappa/internal/transport"
	"github.com/loykin/scrappa/internal/util"
	"github.com/spf13/viper"
)

type LoggingConfig struct {
	Level         string `mapstructure:"level" yaml:"level"`                   // error, warn, info, debug
	Format        string `mapstructure:"format" yaml:"format"`                 // text, json, color
	MaskSensitive *bool  `mapstructure:"mask_sensitive" yaml:"mask_sensitive"` // enable/disable api key masking
}

// Config is the file/env view of the client settings.
type Config struct {
	APIKey  string            `mapstructure:"api_key" yaml:"api_key"`
	BaseURL string            `mapstructure:"base_url" yaml:"base_url"`
	Timeout int               `mapstructure:"timeout" yaml:"timeout"` // seconds; "45s" style durations accepted
	Headers map[string]string `mapstructure:"headers" yaml:"headers"`
	Logging LoggingConfig     `mapstructure:"logging" yaml:"logging"`
}

// SetDefaults registers defaults and environment bindings on v.
// Environment variables use the SCRAPPA_ prefix: SCRAPPA_API_KEY,
// SCRAPPA_BASE_URL, SCRAPPA_TIMEOUT, SCRAPPA_LOGGING_LEVEL, ...
func SetDefaults(v *viper.Viper) {
	v.SetDefault(constants.KeyAPIKey, "")
	v.SetDefault(constants.KeyBaseURL, constants.DefaultBaseURL)
	v.SetDefault(constants.KeyTimeout, constants.DefaultTimeoutSeconds)
	v.SetDefault(constants.KeyLogLevel, "warn")
	v.SetDefault(constants.KeyLogFormat, "text")
	v.SetDefault(constants.KeyLogMasking, true)

	v.SetEnvPrefix(constants.EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
}

// Load reads path (when not empty) on top of the defaults and environment
// and decodes the result.
func Load(v *viper.Viper, path string) (*Config, error) {
	SetDefaults(v)

	if p, ok := util.TrimEmptyCheck(path); ok {
		clean := filepath.Clean(p)
		if info, err := os.Stat(clean); err != nil {
			return nil, err
		} else if !info.Mode().IsRegular() {
			return nil, fmt.Errorf("not a regular file: %s", clean)
		}
		v.SetConfigFile(clean)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", clean, err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c, viper.DecodeHook(secondsHook())); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	c.normalize()
	return &c, nil
}

func (c *Config) normalize() {
	c.APIKey = strings.TrimSpace(c.APIKey)
	c.BaseURL = strings.TrimRight(util.TrimWithDefault(c.BaseURL, constants.DefaultBaseURL), "/")
	if c.Timeout <= 0 {
		c.Timeout = constants.DefaultTimeoutSeconds
	}
}

// Transport converts the config into transport settings. Headers are
// sorted by name so requests are reproducible.
func (c *Config) Transport() transport.Config {
	names := make([]string, 0, len(c.Headers))
	for name := range c.Headers {
		names = append(names, name)
	}
	sort.Strings(names)

	hdrs := make([]transport.Header, 0, len(names))
	for _, name := range names {
		hdrs = append(hdrs, transport.Header{Name: name, Value: c.Headers[name]})
	}
	return transport.Config{
		BaseURL: c.BaseURL,
		APIKey:  c.APIKey,
		Timeout: c.Timeout,
		Headers: hdrs,
	}
}

// secondsHook lets timeout be written as a duration ("45s", "2m") as well
// as a plain number of seconds.
func secondsHook() mapstructure.DecodeHookFuncType {
	return func(from reflect.Type, to reflect.Type, data any) (any, error) {
		if from.Kind() != reflect.String || to.Kind() != reflect.Int {
			return data, nil
		}
		s := strings.TrimSpace(data.(string))
		if s == "" {
			return 0, nil
		}
		if n, err := strconv.Atoi(s); err == nil {
			return n, nil
		}
		d, err := time.ParseDuration(s)
		if err != nil {
			return nil, fmt.Errorf("invalid duration %q: %w", s, err)
		}
		return int(d / time.Second), nil
	}
}

func (c *Config) parseLogLevel() (common.LogLevel, error) {
	switch util.TrimAndLower(c.Logging.Level) {
	case "error":
		return common.LogLevelError, nil
	case "warn", "warning", "":
		return common.LogLevelWarn, nil
	case "info":
		return common.LogLevelInfo, nil
	case "debug":
		return common.LogLevelDebug, nil
	default:
		return common.LogLevelWarn, fmt.Errorf("invalid logging level: %s (valid: error, warn, info, debug)", c.Logging.Level)
	}
}

// SetupLogging configures the global logger based on config settings
func (c *Config) SetupLogging() error {
	level, err := c.parseLogLevel()
	if err != nil {
		return err
	}

	format := util.TrimWithDefault(util.TrimAndLower(c.Logging.Format), "text")
	switch format {
	case "text", "json", "color":
	case "colour":
		format = "color"
	default:
		return fmt.Errorf("invalid logging format: %s (valid: text, json, color)", c.Logging.Format)
	}

	logger := common.NewLoggerTo(os.Stderr, level, format)
	masking := true
	if c.Logging.MaskSensitive != nil {
		masking = *c.Logging.MaskSensitive
	}
	logger.EnableMasking(masking)
	common.SetDefaultLogger(logger)

	logger.Debug("logging configured", "level", level.String(), "format", format, "mask_sensitive", masking)
	return nil
}
