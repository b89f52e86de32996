package bootstrap

import (
	barInfra "github.com/Mithileshan/stockpulse-batch-realtime-etl/internal/infrastructure/postgres/bar"
	etlrunInfra "github.com/Mithileshan/stockpulse-batch-realtime-etl/internal/infrastructure/postgres/etlrun"
	failedEventInfra "github.com/Mithileshan/stockpulse-batch-realtime-etl/internal/infrastructure/postgres/failedevent"
	tickInfra "github.com/Mithileshan/stockpulse-batch-realtime-etl/internal/infrastructure/postgres/tick"
)

// Repository holds the persistence layer of the pipeline.
type Repository struct {
	TickRepository        tickInfra.TickRepository
	BarRepository         barInfra.BarRepository
	RunRepository         etlrunInfra.RunRepository
	FailedEventRepository failedEventInfra.FailedEventRepository
}

// registerRepository registers the repositories.
func (b *Bootstrap) registerRepository() {
	b.Repository.TickRepository = tickInfra.NewRepository(b.Postgres)
	b.Repository.BarRepository = barInfra.NewRepository(b.Postgres)
	b.Repository.RunRepository = etlrunInfra.NewRepository(b.Postgres)
	b.Repository.FailedEventRepository = failedEventInfra.NewRepository(b.Postgres)
}
