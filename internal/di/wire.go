//go:build wireinject
// +build wireinject

package di

import (
	"ApexDesk/pkg/config"
	"ApexDesk/pkg/server"

	"github.com/google/wire"
)

// InitializeApp wires up all dependencies and returns the application.
// Wire will generate the implementation of this function.
func InitializeApp(cfg *config.Config) (*server.App, error) {
	wire.Build(
		// Ambient
		ProvideLogger,
		ProvideCacheStore,

		// Upstream clients
		ProvideYahooClient,
		ProvideLLMClient,

		// Core
		ProvideSnapshotBuilder,
		ProvideSnapshotService,
		ProvideMacroAssembler,
		ProvideBriefingService,
		ProvideCalendarService,
		ProvideNewsService,

		// Edges
		ProvideDashboardHandler,

		// Application server
		ProvideApp,
	)
	return &server.App{}, nil
}
