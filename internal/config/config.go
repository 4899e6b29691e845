package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/alexanderramin/juku/internal/domain"
	"github.com/alexanderramin/juku/internal/progress"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment override, e.g. JUKU_DB_PATH.
const EnvPrefix = "JUKU"

// Config holds the runtime settings for the juku binary.
type Config struct {
	DBPath      string `validate:"required"`
	LogLevel    string `validate:"oneof=debug info warn error"`
	LogFormat   string `validate:"oneof=text json"`
	LogUseCases bool
	// User is the acting username for commands that read or change a
	// student's data.
	User string

	DeviationFactor float64            `validate:"gte=0,lte=1"`
	DeviationLevels map[string]float64 `validate:"dive,keys,required,endkeys,gte=0,lte=100"`
	SubjectOrder    []string           `validate:"dive,required"`
}

// Options controls where Load looks for settings.
type Options struct {
	// ConfigFile is an explicit YAML path. When empty, juku.yaml is searched
	// in the working directory and then ~/.juku.
	ConfigFile string
	// EnvFile is a dotenv file loaded before reading the environment.
	// A missing file is not an error.
	EnvFile string
}

// Default returns the built-in settings.
func Default() Config {
	dbPath := "juku.db"
	if home, err := os.UserHomeDir(); err == nil {
		dbPath = filepath.Join(home, ".juku", "juku.db")
	}

	table := progress.DefaultDeviationTable()
	levels := make(map[string]float64, len(table.Levels))
	for l, v := range table.Levels {
		levels[string(l)] = v
	}

	return Config{
		DBPath:          dbPath,
		LogLevel:        "info",
		LogFormat:       "text",
		LogUseCases:     false,
		DeviationFactor: table.Factor,
		DeviationLevels: levels,
		SubjectOrder:    append([]string(nil), progress.DefaultSubjectOrder...),
	}
}

// Load merges defaults, the optional YAML file, the optional dotenv file
// and JUKU_* environment variables, in increasing priority.
func Load(opts Options) (Config, error) {
	envFile := opts.EnvFile
	if envFile == "" {
		envFile = ".env"
	}
	if _, err := os.Stat(envFile); err == nil {
		if err := godotenv.Load(envFile); err != nil {
			return Config{}, fmt.Errorf("loading %s: %w", envFile, err)
		}
	} else if !os.IsNotExist(err) {
		return Config{}, fmt.Errorf("checking %s: %w", envFile, err)
	}

	def := Default()
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("db_path", def.DBPath)
	v.SetDefault("log_level", def.LogLevel)
	v.SetDefault("log_format", def.LogFormat)
	v.SetDefault("log_use_cases", def.LogUseCases)
	v.SetDefault("user", "")
	v.SetDefault("deviation.factor", def.DeviationFactor)
	for level, value := range def.DeviationLevels {
		v.SetDefault("deviation.levels."+level, value)
	}
	v.SetDefault("subject_order", def.SubjectOrder)

	if opts.ConfigFile != "" {
		v.SetConfigFile(opts.ConfigFile)
	} else {
		v.SetConfigName("juku")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".juku"))
		}
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if opts.ConfigFile != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("reading config: %w", err)
		}
	}

	cfg := Config{
		DBPath:          v.GetString("db_path"),
		LogLevel:        strings.ToLower(v.GetString("log_level")),
		LogFormat:       strings.ToLower(v.GetString("log_format")),
		LogUseCases:     v.GetBool("log_use_cases"),
		User:            strings.TrimSpace(v.GetString("user")),
		DeviationFactor: v.GetFloat64("deviation.factor"),
		DeviationLevels: make(map[string]float64),
		SubjectOrder:    splitList(v.GetStringSlice("subject_order")),
	}

	// Known levels resolve through the env too; extra levels only come
	// from the config file.
	levelKeys := make(map[string]bool)
	for _, l := range domain.LevelOrder {
		levelKeys[string(l)] = true
	}
	for k := range v.GetStringMap("deviation.levels") {
		levelKeys[strings.ToLower(k)] = true
	}
	for k := range levelKeys {
		cfg.DeviationLevels[k] = v.GetFloat64("deviation.levels." + k)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks field ranges.
func (c Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// DeviationTable returns the duration-adjustment table described by c.
func (c Config) DeviationTable() progress.DeviationTable {
	levels := make(map[domain.Level]float64, len(c.DeviationLevels))
	for k, v := range c.DeviationLevels {
		levels[domain.Level(k)] = v
	}
	return progress.DeviationTable{Factor: c.DeviationFactor, Levels: levels}
}

// Subjects returns the configured display order.
func (c Config) Subjects() progress.SubjectOrder {
	return progress.SubjectOrder(c.SubjectOrder)
}

// SlogLevel maps LogLevel onto slog.
func (c Config) SlogLevel() slog.Level {
	switch c.LogLevel {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// NewLogger builds the process logger writing to w.
func (c Config) NewLogger(w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: c.SlogLevel()}
	if c.LogFormat == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

// splitList accepts both YAML lists and comma-separated env values.
func splitList(in []string) []string {
	var out []string
	for _, item := range in {
		for _, part := range strings.Split(item, ",") {
			if p := strings.TrimSpace(part); p != "" {
				out = append(out, p)
			}
		}
	}
	return out
}
