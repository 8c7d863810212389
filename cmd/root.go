package cmd

import (
	"errors"
	"io/fs"
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	app = "asha-actions"
)

type Config struct {
	Data    DataConfig    `mapstructure:"data"`
	FAQ     FAQConfig     `mapstructure:"faq"`
	Session SessionConfig `mapstructure:"session"`
	AI      *AIConfig     `mapstructure:"ai"`
	Log     LogConfig     `mapstructure:"log"`
}

type DataConfig struct {
	FAQFile      string `mapstructure:"faq-file" validate:"required"`
	JobsFile     string `mapstructure:"jobs-file" validate:"required"`
	SessionsFile string `mapstructure:"sessions-file" validate:"required"`
}

type FAQConfig struct {
	Cutoff     float64 `mapstructure:"cutoff" validate:"gte=0,lte=1"`
	BrandAlias string  `mapstructure:"brand-alias"`
	BrandName  string  `mapstructure:"brand-name" validate:"required_with=BrandAlias"`
}

type SessionConfig struct {
	Backend string        `mapstructure:"backend" validate:"oneof=memory redis"`
	TTL     time.Duration `mapstructure:"ttl" validate:"gte=0"`
	Redis   RedisConfig   `mapstructure:"redis"`
}

type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db" validate:"gte=0"`
}

type AIConfig struct {
	Enabled bool          `mapstructure:"enabled"`
	Gemini  *GeminiConfig `mapstructure:"gemini" validate:"required_if=Enabled true"`
}

type GeminiConfig struct {
	APIKeyFile   string `mapstructure:"api-key-file"`
	APIKey       string `mapstructure:"api-key"`
	Model        string `mapstructure:"model"`
	MaxRetries   int    `mapstructure:"max-retries" validate:"gte=0"`
	MaxLogLength int    `mapstructure:"max-log-length" validate:"gte=0"`
}

type LogConfig struct {
	File string `mapstructure:"file"`
}

var (
	// Used for flags.
	cfgFile string

	rootCmd = &cobra.Command{
		Use:   app,
		Short: "asha-actions runs the Asha career assistant actions: FAQ answers, job search form and more",
	}
)

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	setDefaults()

	if err := viper.BindEnv("ai.gemini.api-key-file", "GEMINI_API_KEY_FILE"); err != nil {
		log.Fatalf("binding GEMINI_API_KEY_FILE environment variable: %v", err)
	}

	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "a config file (default is asha-actions.yaml in current directory)")
	rootCmd.PersistentFlags().BoolP("debug", "d", false, "verbose/debug output")
	rootCmd.PersistentFlags().BoolP("json", "j", false, "json format for logging")

	viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	viper.BindPFlag("json", rootCmd.PersistentFlags().Lookup("json"))
}

func setDefaults() {
	viper.SetDefault("data.faq-file", "data/faqs.json")
	viper.SetDefault("data.jobs-file", "data/job_listing_data.csv")
	viper.SetDefault("data.sessions-file", "data/Session Details.json")
	viper.SetDefault("faq.cutoff", 0.6)
	viper.SetDefault("faq.brand-alias", "jobsforher")
	viper.SetDefault("faq.brand-name", "Herkey")
	viper.SetDefault("session.backend", backendMemory)
	viper.SetDefault("session.ttl", time.Hour)
	viper.SetDefault("session.redis.addr", "localhost:6379")
	viper.SetDefault("session.redis.password", "")
	viper.SetDefault("session.redis.db", 0)
	viper.SetDefault("ai.enabled", false)
	viper.SetDefault("ai.gemini.api-key-file", "")
	viper.SetDefault("ai.gemini.api-key", "")
	viper.SetDefault("ai.gemini.model", "gemini-1.5-flash")
	viper.SetDefault("ai.gemini.max-retries", 2)
	viper.SetDefault("ai.gemini.max-log-length", 200)
	viper.SetDefault("log.file", "")
}

func initConfig() {
	// A missing .env is fine; a broken one is not.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Fatalf("loading .env: %v", err)
	}

	viper.SetEnvPrefix("ASHA")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	viper.AutomaticEnv()

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigName(app)
		viper.SetConfigType("yaml")
	}

	// Defaults are enough to run without a config file, but an explicit or
	// broken one must parse.
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			log.Fatal(err)
		}
	}
}

func getConfig() (*Config, error) {
	var config *Config
	if err := viper.Unmarshal(&config); err != nil {
		return config, err
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}
