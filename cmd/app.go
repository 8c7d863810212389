package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/spigell/asha-actions/internal/actions"
	"github.com/spigell/asha-actions/internal/ai"
	"github.com/spigell/asha-actions/internal/ai/gemini"
	"github.com/spigell/asha-actions/internal/faq"
	"github.com/spigell/asha-actions/internal/logger"
	"github.com/spigell/asha-actions/internal/secrets"
	"github.com/spigell/asha-actions/internal/session"
	"github.com/spigell/asha-actions/internal/session/memory"
	"github.com/spigell/asha-actions/internal/session/redis"
)

// application holds everything a command needs to run actions.
type application struct {
	config   *Config
	logger   *zap.Logger
	matcher  *faq.Matcher
	store    session.Store
	executor *actions.Executor
	closers  []func() error
}

// mustApplication builds the application or exits; commands cannot do
// anything useful without it.
func mustApplication(ctx context.Context) *application {
	config, err := getConfig()
	if err != nil {
		log.Fatalf("getting a config: %s", err)
	}

	l, err := logger.New(logger.Options{
		JSON:  viper.GetBool("json"),
		Debug: viper.GetBool("debug"),
		File:  config.Log.File,
	})
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	// do not bother error since there is a valid parseable config
	pretty, _ := json.MarshalIndent(redacted(config), "", "  ")
	l.Debug(fmt.Sprintf("starting with config: \n %s", pretty))

	app := &application{config: config, logger: l}

	idx, err := faq.Load(config.Data.FAQFile, l, faq.WithBrand(config.FAQ.BrandAlias, config.FAQ.BrandName))
	if err != nil {
		l.Fatal("loading faq corpus", zap.Error(err), zap.String("path", config.Data.FAQFile))
	}
	app.matcher = faq.NewMatcher(idx, config.FAQ.Cutoff, l)

	app.store, err = app.newStore(ctx)
	if err != nil {
		l.Fatal("creating session store", zap.Error(err), zap.String("backend", config.Session.Backend))
	}

	registry, err := actions.Default(actions.Deps{
		Logger:       l,
		FAQ:          app.matcher,
		JobsFile:     config.Data.JobsFile,
		Generator:    newJobGenerator(ctx, config.AI, l),
		SessionsFile: config.Data.SessionsFile,
	})
	if err != nil {
		l.Fatal("registering actions", zap.Error(err))
	}
	app.executor = actions.NewExecutor(registry, app.store, l)

	return app
}

func (a *application) newStore(ctx context.Context) (session.Store, error) {
	cfg := a.config.Session
	switch cfg.Backend {
	case backendRedis:
		store, err := redis.New(ctx, redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
			TTL:      cfg.TTL,
		})
		if err != nil {
			return nil, err
		}
		a.closers = append(a.closers, store.Close)
		return store, nil
	default:
		return memory.New(cfg.TTL), nil
	}
}

func (a *application) Close() {
	for _, closer := range a.closers {
		if err := closer(); err != nil {
			a.logger.Warn("closing resource", zap.Error(err))
		}
	}
	_ = a.logger.Sync()
}

// newJobGenerator returns the listing generator used when the job table is
// unavailable. Without a usable API key the deterministic mock stands in.
func newJobGenerator(ctx context.Context, cfg *AIConfig, l *zap.Logger) ai.JobGenerator {
	if cfg == nil || !cfg.Enabled || cfg.Gemini == nil {
		return nil
	}

	apiKey, err := secrets.Load(secrets.Source{
		Name:  "gemini api key",
		File:  cfg.Gemini.APIKeyFile,
		Env:   "GEMINI_API_KEY",
		Value: cfg.Gemini.APIKey,
	})
	if err != nil {
		l.Warn("gemini is not configured, using mock job listings",
			zap.Error(err),
			zap.String("hint", "set ai.gemini.api-key-file or GEMINI_API_KEY_FILE"),
		)
		return ai.Mock{}
	}

	genLogger := l.With(
		zap.String("provider", "gemini"),
		zap.String("model", cfg.Gemini.Model),
		zap.Int("ai_retry_attempts", cfg.Gemini.MaxRetries),
	)

	generator, err := gemini.NewGenerator(ctx, apiKey, cfg.Gemini.Model, cfg.Gemini.MaxRetries, genLogger)
	if err != nil {
		l.Warn("creating gemini client, using mock job listings", zap.Error(err))
		return ai.Mock{}
	}

	return gemini.NewJobSource(generator, genLogger, cfg.Gemini.MaxLogLength)
}

func redacted(config *Config) *Config {
	copied := *config
	copied.Session.Redis.Password = mask(copied.Session.Redis.Password)
	if config.AI != nil && config.AI.Gemini != nil {
		aiCopy := *config.AI
		geminiCopy := *config.AI.Gemini
		geminiCopy.APIKey = mask(geminiCopy.APIKey)
		aiCopy.Gemini = &geminiCopy
		copied.AI = &aiCopy
	}
	return &copied
}

func mask(secret string) string {
	if secret == "" {
		return ""
	}
	return "***"
}

// parseAssignments splits key=value flag values. The value may contain '='.
func parseAssignments(raw []string) ([][2]string, error) {
	out := make([][2]string, 0, len(raw))
	for _, item := range raw {
		key, value, ok := strings.Cut(item, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return nil, fmt.Errorf("expected key=value, got %q", item)
		}
		out = append(out, [2]string{key, strings.TrimSpace(value)})
	}
	return out, nil
}
