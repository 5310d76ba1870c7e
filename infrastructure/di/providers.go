package di

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"mindmesh-backend/application/commands"
	"mindmesh-backend/application/commands/bus"
	commandhandlers "mindmesh-backend/application/commands/handlers"
	"mindmesh-backend/application/pipeline"
	"mindmesh-backend/application/ports"
	"mindmesh-backend/application/queries"
	querybus "mindmesh-backend/application/queries/bus"
	queryhandlers "mindmesh-backend/application/queries/handlers"
	domaincfg "mindmesh-backend/domain/config"
	"mindmesh-backend/infrastructure/config"
	"mindmesh-backend/infrastructure/contentapi"
	"mindmesh-backend/infrastructure/paywall"
	"mindmesh-backend/infrastructure/positioning"
	"mindmesh-backend/pkg/auth"
	pkgerrors "mindmesh-backend/pkg/errors"
	"mindmesh-backend/pkg/observability"
)

// ProvideLogger creates a new logger instance
func ProvideLogger(cfg *config.Config) (*zap.Logger, error) {
	var zapCfg zap.Config
	if cfg.IsProduction() {
		zapCfg = zap.NewProductionConfig()
	} else {
		zapCfg = zap.NewDevelopmentConfig()
	}

	if level, err := zapcore.ParseLevel(cfg.LogLevel); err == nil {
		zapCfg.Level = zap.NewAtomicLevelAt(level)
	}

	return zapCfg.Build()
}

// ProvideGraphConfig loads graph appearance configuration, palette file
// overlays included.
func ProvideGraphConfig(cfg *config.Config) (*domaincfg.GraphConfig, error) {
	return config.LoadGraphConfig(cfg)
}

// ProvidePaletteWatcher starts palette hot reloading in development. Nil
// outside development or when no palette file is configured.
func ProvidePaletteWatcher(cfg *config.Config, graphCfg *domaincfg.GraphConfig, logger *zap.Logger) (*config.PaletteWatcher, error) {
	if !cfg.IsDevelopment() {
		return nil, nil
	}
	return config.NewPaletteWatcher(cfg, graphCfg, logger)
}

// ProvideGraphSource selects where the pipeline and positioner read graph
// configuration from: the palette watcher when one is running, otherwise
// the boot-time config.
func ProvideGraphSource(watcher *config.PaletteWatcher, graphCfg *domaincfg.GraphConfig) domaincfg.Source {
	if watcher != nil {
		return watcher
	}
	return domaincfg.StaticSource{Config: graphCfg}
}

// ProvideMetrics creates the prometheus collector
func ProvideMetrics() *observability.Collector {
	return observability.NewCollector("mindmesh")
}

// ProvideSettler selects the payment settler. Free-access deployments and
// deployments without a wallet never settle, so they get the noop settler.
func ProvideSettler(cfg *config.Config, logger *zap.Logger) ports.PaymentSettler {
	if cfg.FreeAccess || cfg.WalletURL == "" {
		return paywall.NoopSettler{}
	}
	return paywall.NewHTTPSettler(cfg.WalletURL, cfg.WalletTimeout, logger)
}

// ProvidePaywallClient creates the paywall retry client
func ProvidePaywallClient(settler ports.PaymentSettler, metrics *observability.Collector, logger *zap.Logger) *paywall.Client {
	return paywall.NewClient(settler, metrics, logger)
}

// ProvideContentAPI creates the upstream content API client
func ProvideContentAPI(cfg *config.Config, pw *paywall.Client, metrics *observability.Collector, logger *zap.Logger) ports.ContentAPI {
	return contentapi.NewClient(contentapi.Options{
		BaseURL:    cfg.ContentAPIBaseURL,
		Timeout:    cfg.ContentAPITimeout,
		FreeAccess: cfg.FreeAccess,
	}, pw, metrics, logger)
}

// ProvidePositioner creates the layout engine
func ProvidePositioner(source domaincfg.Source, logger *zap.Logger) ports.Positioner {
	return positioning.NewEngine(source, logger)
}

// ProvidePipeline creates the graph construction pipeline
func ProvidePipeline(
	api ports.ContentAPI,
	positioner ports.Positioner,
	source domaincfg.Source,
	metrics *observability.Collector,
	logger *zap.Logger,
) *pipeline.Pipeline {
	return pipeline.New(api, positioner, source, metrics, logger)
}

// ProvideCommandBus creates a command bus with registered handlers. The
// validation middleware sits inside logging so rejected commands are
// still logged as failures.
func ProvideCommandBus(api ports.ContentAPI, logger *zap.Logger) *bus.CommandBus {
	commandBus := bus.NewCommandBus()
	logging := bus.LoggingMiddleware(logger)
	validation := bus.ValidationMiddleware()

	commandBus.Register(commands.TeachMeCommand{}, logging(validation(commandhandlers.NewTeachMeHandler(api, logger))))
	commandBus.Register(commands.AskQuestionCommand{}, logging(validation(commandhandlers.NewAskQuestionHandler(api, logger))))
	commandBus.Register(commands.InstagraphCommand{}, logging(validation(commandhandlers.NewInstagraphHandler(api, logger))))

	return commandBus
}

// ProvideQueryBus creates a query bus with registered handlers. Trend and
// sentiment queries go through the caching middleware; graph queries are
// registered bare so every request rebuilds the graph.
func ProvideQueryBus(
	p *pipeline.Pipeline,
	api ports.ContentAPI,
	cache ports.Cache,
	cfg *config.Config,
	logger *zap.Logger,
) *querybus.QueryBus {
	queryBus := querybus.NewQueryBus()

	queryBus.Register(queries.GetGraphQuery{}, queryhandlers.NewGetGraphHandler(p, logger))

	trendsCaching := querybus.NewCachingMiddleware(cache, int(cfg.TrendsCacheTTL.Seconds()))
	queryBus.Register(queries.GetTrendsQuery{}, trendsCaching.Wrap(queryhandlers.NewGetTrendsHandler(api, logger)))

	sentimentsCaching := querybus.NewCachingMiddleware(cache, int(cfg.SentimentsCacheTTL.Seconds()))
	queryBus.Register(queries.GetSentimentsQuery{}, sentimentsCaching.Wrap(queryhandlers.NewGetSentimentsHandler(api, logger)))

	return queryBus
}

// ProvideInMemoryCache creates a simple in-memory cache
// In production, this would be Redis or similar
func ProvideInMemoryCache() ports.Cache {
	return NewInMemoryCache()
}

// ProvideErrorHandler creates the HTTP error responder. Stack traces are
// only exposed in development.
func ProvideErrorHandler(cfg *config.Config, logger *zap.Logger) *pkgerrors.ErrorHandler {
	return pkgerrors.NewErrorHandler(logger, cfg.IsDevelopment())
}

// ProvideRateLimiter creates the per-IP request limiter
func ProvideRateLimiter() *auth.IPRateLimiter {
	return auth.NewIPRateLimiter(120)
}

// ProvideJWTValidator creates the token validator, nil when auth is not
// enforced.
func ProvideJWTValidator(cfg *config.Config) *auth.JWTValidator {
	if !cfg.AuthRequired {
		return nil
	}
	return auth.NewJWTValidator(cfg.JWTSecret, cfg.JWTIssuer)
}
