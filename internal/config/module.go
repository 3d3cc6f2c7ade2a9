package config

import "go.uber.org/fx"

// Module loads *Config once per fx graph from env, .env and flags.
var Module = fx.Provide(Load)
