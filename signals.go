package csvline

import (
	"context"
	"time"

	"github.com/zoobzio/capitan"
)

// Signals for codec events.
var (
	SignalLineEncoded      = capitan.NewSignal("csvline.line.encoded", "Row encoded to a CSV line")
	SignalLineDecoded      = capitan.NewSignal("csvline.line.decoded", "CSV line decoded to a row")
	SignalTableEncoded     = capitan.NewSignal("csvline.table.encoded", "Rows encoded to CSV content")
	SignalTableDecoded     = capitan.NewSignal("csvline.table.decoded", "CSV content decoded to rows")
	SignalTranscoded       = capitan.NewSignal("csvline.transcoded", "CSV table re-encoded with another codec")
	SignalProcessorCreated = capitan.NewSignal("csvline.processor.created", "Processor instantiated")
	SignalReceiveComplete  = capitan.NewSignal("csvline.receive.complete", "Receive operation finished")
	SignalLoadComplete     = capitan.NewSignal("csvline.load.complete", "Load operation finished")
	SignalStoreComplete    = capitan.NewSignal("csvline.store.complete", "Store operation finished")
	SignalSendComplete     = capitan.NewSignal("csvline.send.complete", "Send operation finished")
)

// Keys for typed event data.
var (
	KeyContentType = capitan.NewStringKey("content_type")
	KeyTypeName    = capitan.NewStringKey("type_name")
	KeyFieldCount  = capitan.NewIntKey("field_count")
	KeyRowCount    = capitan.NewIntKey("row_count")
	KeySize        = capitan.NewIntKey("size")
	KeyDuration    = capitan.NewDurationKey("duration")
	KeyError       = capitan.NewErrorKey("error")
	KeyColumnCount = capitan.NewIntKey("column_count")
)

// emit routes to capitan.Error when err is set, capitan.Emit otherwise.
func emit(ctx context.Context, signal capitan.Signal, err error, fields ...capitan.Field) {
	if err != nil {
		fields = append(fields, KeyError.Field(err))
		capitan.Error(ctx, signal, fields...)
		return
	}
	capitan.Emit(ctx, signal, fields...)
}

func emitLineEncoded(ctx context.Context, fieldCount, size int, duration time.Duration, err error) {
	emit(ctx, SignalLineEncoded, err,
		KeyFieldCount.Field(fieldCount),
		KeySize.Field(size),
		KeyDuration.Field(duration),
	)
}

func emitLineDecoded(ctx context.Context, fieldCount, size int, duration time.Duration, err error) {
	emit(ctx, SignalLineDecoded, err,
		KeyFieldCount.Field(fieldCount),
		KeySize.Field(size),
		KeyDuration.Field(duration),
	)
}

func emitTableEncoded(ctx context.Context, rows, size int, duration time.Duration, err error) {
	emit(ctx, SignalTableEncoded, err,
		KeyRowCount.Field(rows),
		KeySize.Field(size),
		KeyDuration.Field(duration),
	)
}

func emitTableDecoded(ctx context.Context, rows, size int, duration time.Duration, err error) {
	emit(ctx, SignalTableDecoded, err,
		KeyRowCount.Field(rows),
		KeySize.Field(size),
		KeyDuration.Field(duration),
	)
}

func emitTranscoded(ctx context.Context, contentType string, rows, size int, duration time.Duration, err error) {
	emit(ctx, SignalTranscoded, err,
		KeyContentType.Field(contentType),
		KeyRowCount.Field(rows),
		KeySize.Field(size),
		KeyDuration.Field(duration),
	)
}

func emitProcessorCreated(ctx context.Context, typeName string, columns int) {
	capitan.Emit(ctx, SignalProcessorCreated,
		KeyContentType.Field(ContentType),
		KeyTypeName.Field(typeName),
		KeyColumnCount.Field(columns),
	)
}

// emitBoundary reports the outcome of Receive, Load, Store or Send.
func emitBoundary(ctx context.Context, signal capitan.Signal, typeName string, size int, duration time.Duration, columns int, err error) {
	emit(ctx, signal, err,
		KeyContentType.Field(ContentType),
		KeyTypeName.Field(typeName),
		KeySize.Field(size),
		KeyDuration.Field(duration),
		KeyColumnCount.Field(columns),
	)
}
