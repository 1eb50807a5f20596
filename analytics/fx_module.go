package analytics

import (
	"go.uber.org/fx"
)

// FXModule wires the analytics provider into a Uber FX application.
//
// The module provides:
//  1. *BridgeProvider (concrete type) for direct use
//  2. Provider interface for dependency injection
//
// A bridge.Bridge must be available in the dependency graph
// (bridge.FXModule provides one).
var FXModule = fx.Module("analytics",
	fx.Provide(
		NewProvider, // Provides *BridgeProvider
		fx.Annotate(
			func(p *BridgeProvider) Provider { return p },
			fx.As(new(Provider)),
		),
	),
)
