package editor

import (
	"go.uber.org/fx"
)

var Module = fx.Module("editor",
	fx.Provide(
		NewMetrics,
		New,
	),
)
