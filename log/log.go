package log

import (
	"github.com/rs/zerolog"

	"github.com/lattice-games/keepsake/types"
)

type Loggable interface {
	GetRegisteredComponents() []types.ComponentMetadata
}

// BlockStat describes one type block of a snapshot for logging purposes.
type BlockStat struct {
	Type    string
	Records int
}

func loadComponentIntoArrayLogger(
	component types.ComponentMetadata,
	arrayLogger *zerolog.Array,
) *zerolog.Array {
	dictLogger := zerolog.Dict()
	dictLogger = dictLogger.Int("component_id", int(component.ID()))
	dictLogger = dictLogger.Str("component_name", component.Name())
	return arrayLogger.Dict(dictLogger)
}

func loadComponentsToEvent(zeroLoggerEvent *zerolog.Event, target Loggable) *zerolog.Event {
	components := target.GetRegisteredComponents()
	zeroLoggerEvent.Int("total_components", len(components))
	arrayLogger := zerolog.Arr()
	for _, _component := range components {
		arrayLogger = loadComponentIntoArrayLogger(_component, arrayLogger)
	}
	return zeroLoggerEvent.Array("components", arrayLogger)
}

func loadBlocksToEvent(zeroLoggerEvent *zerolog.Event, blocks []BlockStat) *zerolog.Event {
	arrayLogger := zerolog.Arr()
	for _, block := range blocks {
		dictLogger := zerolog.Dict()
		dictLogger = dictLogger.Str("type", block.Type)
		dictLogger = dictLogger.Int("records", block.Records)
		arrayLogger = arrayLogger.Dict(dictLogger)
	}
	return zeroLoggerEvent.Array("blocks", arrayLogger)
}

// Components logs all component info registered with the engine.
func Components(logger *zerolog.Logger, target Loggable, level zerolog.Level) {
	zeroLoggerEvent := logger.WithLevel(level)
	zeroLoggerEvent = loadComponentsToEvent(zeroLoggerEvent, target)
	zeroLoggerEvent.Send()
}

// Operation logs the outcome of one save or load operation.
func Operation(
	logger *zerolog.Logger,
	level zerolog.Level,
	operation string,
	entities uint64,
	blocks []BlockStat,
) {
	zeroLoggerEvent := logger.WithLevel(level)
	zeroLoggerEvent.Str("operation", operation)
	zeroLoggerEvent.Uint64("entities", entities)
	zeroLoggerEvent = loadBlocksToEvent(zeroLoggerEvent, blocks)
	zeroLoggerEvent.Send()
}
