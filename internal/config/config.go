package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix namespaces every environment override, e.g. FLOODSTAT_OUTPUT_DIR
// or FLOODSTAT_LOG_LEVEL.
const EnvPrefix = "FLOODSTAT"

// LogConfig controls the process logger.
type LogConfig struct {
	Level  string `mapstructure:"level" validate:"oneof=debug info warn error"`
	Format string `mapstructure:"format" validate:"oneof=text json"`
}

// Config holds every runtime setting.
type Config struct {
	// Input is the dataset offered by default when loading.
	Input     string `mapstructure:"input" validate:"required"`
	OutputDir string `mapstructure:"output_dir" validate:"required"`
	// Workbook also writes every report into one XLSX file.
	Workbook bool `mapstructure:"workbook"`
	// SQLitePath enables the snapshot export when set.
	SQLitePath string    `mapstructure:"sqlite_path"`
	Log        LogConfig `mapstructure:"log"`
}

// DefaultConfig returns the settings used when nothing overrides them.
func DefaultConfig() Config {
	return Config{
		Input:     "dpwh_flood_control_projects.csv",
		OutputDir: ".",
		Workbook:  true,
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// FlagBinding maps a config key onto a command-line flag.
type FlagBinding struct {
	Key  string
	Flag *pflag.Flag
}

// LoadConfig resolves configuration with precedence flag > env > file >
// default. configFile is optional. Bindings with a nil Flag are ignored.
func LoadConfig(configFile string, bindings ...FlagBinding) (Config, error) {
	v := viper.New()
	setDefaults(v, DefaultConfig())

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("reading config file: %w", err)
		}
	}

	for _, b := range bindings {
		if b.Flag == nil {
			continue
		}
		if err := v.BindPFlag(b.Key, b.Flag); err != nil {
			return Config{}, fmt.Errorf("binding flag %s: %w", b.Flag.Name, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decoding config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper, d Config) {
	v.SetDefault("input", d.Input)
	v.SetDefault("output_dir", d.OutputDir)
	v.SetDefault("workbook", d.Workbook)
	v.SetDefault("sqlite_path", d.SQLitePath)
	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.format", d.Log.Format)
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate reports every invalid field, joined.
func (c Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("validating config: %w", err)
	}
	problems := make([]error, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		problems = append(problems, errors.New(describe(fe)))
	}
	return fmt.Errorf("invalid config: %w", errors.Join(problems...))
}

func describe(fe validator.FieldError) string {
	field := strings.TrimPrefix(fe.Namespace(), "Config.")
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s (got %q)", field, strings.ReplaceAll(fe.Param(), " ", ", "), fe.Value())
	default:
		return fmt.Sprintf("%s failed %s validation", field, fe.Tag())
	}
}
