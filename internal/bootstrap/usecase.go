package bootstrap

import (
	barDomain "github.com/Mithileshan/stockpulse-batch-realtime-etl/internal/domain/bar"
	etlrunDomain "github.com/Mithileshan/stockpulse-batch-realtime-etl/internal/domain/etlrun"
	failedEventDomain "github.com/Mithileshan/stockpulse-batch-realtime-etl/internal/domain/failedevent"
	tickDomain "github.com/Mithileshan/stockpulse-batch-realtime-etl/internal/domain/tick"
	barUc "github.com/Mithileshan/stockpulse-batch-realtime-etl/internal/usecase/bar"
	etlrunUc "github.com/Mithileshan/stockpulse-batch-realtime-etl/internal/usecase/etlrun"
	failedEventUc "github.com/Mithileshan/stockpulse-batch-realtime-etl/internal/usecase/failedevent"
	tickUc "github.com/Mithileshan/stockpulse-batch-realtime-etl/internal/usecase/tick"
)

// Usecase holds the domain logic of the pipeline.
type Usecase struct {
	TickUsecase        tickDomain.Usecase
	BarUsecase         barDomain.Usecase
	RunUsecase         etlrunDomain.Usecase
	FailedEventUsecase failedEventDomain.Usecase
}

// registerUsecase registers the usecases.
func (b *Bootstrap) registerUsecase() {
	b.Usecase.TickUsecase = tickUc.NewUsecase(b.Repository.TickRepository)
	b.Usecase.BarUsecase = barUc.NewUsecase(b.Repository.BarRepository)
	b.Usecase.RunUsecase = etlrunUc.NewUsecase(b.Repository.RunRepository)
	b.Usecase.FailedEventUsecase = failedEventUc.NewUsecase(b.Repository.FailedEventRepository)
}
