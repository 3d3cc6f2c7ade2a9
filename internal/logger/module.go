package logger

import "go.uber.org/fx"

// Module provides the process-wide *slog.Logger.
var Module = fx.Provide(New)
