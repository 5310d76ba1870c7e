package di

import (
	"go.uber.org/zap"

	"mindmesh-backend/application/commands/bus"
	"mindmesh-backend/application/pipeline"
	"mindmesh-backend/application/ports"
	querybus "mindmesh-backend/application/queries/bus"
	domaincfg "mindmesh-backend/domain/config"
	"mindmesh-backend/infrastructure/config"
	"mindmesh-backend/pkg/auth"
	pkgerrors "mindmesh-backend/pkg/errors"
	"mindmesh-backend/pkg/observability"
)

// Container holds all application dependencies
type Container struct {
	Config         *config.Config
	GraphConfig    *domaincfg.GraphConfig
	PaletteWatcher *config.PaletteWatcher
	Logger         *zap.Logger
	ContentAPI     ports.ContentAPI
	Positioner     ports.Positioner
	Pipeline       *pipeline.Pipeline
	CommandBus     *bus.CommandBus
	QueryBus       *querybus.QueryBus
	Cache          ports.Cache
	Metrics        *observability.Collector
	ErrorHandler   *pkgerrors.ErrorHandler
	RateLimiter    *auth.IPRateLimiter
	JWTValidator   *auth.JWTValidator
}
