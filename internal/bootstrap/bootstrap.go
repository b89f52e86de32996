package bootstrap

import (
	"github.com/Mithileshan/stockpulse-batch-realtime-etl/pkg/config"
	"github.com/Mithileshan/stockpulse-batch-realtime-etl/pkg/logger"
	"github.com/Mithileshan/stockpulse-batch-realtime-etl/pkg/postgresql"
)

// Bootstrap wires repositories and usecases for the pipeline binaries.
type Bootstrap struct {
	Usecase    Usecase
	Repository Repository
	Logger     logger.Interface
	Config     *config.Config

	Postgres postgresql.PostgreSQLClient
}

// BootstrapConfig is the config for the bootstrap.
type BootstrapConfig struct {
	Postgres postgresql.PostgreSQLClient
	Logger   logger.Interface
	Config   *config.Config
}

// Init initializes the bootstrap.
func (b *Bootstrap) Init(config BootstrapConfig) Bootstrap {
	b.Postgres = config.Postgres
	b.Logger = config.Logger
	b.Config = config.Config

	b.registerRepository()
	b.registerUsecase()

	return *b
}
