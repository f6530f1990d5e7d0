package csvline

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestEmitLineEvents(_ *testing.T) {
	ctx := context.Background()
	// Should not panic
	emitLineEncoded(ctx, 3, 12, time.Millisecond, nil)
	emitLineEncoded(ctx, 1, 0, time.Millisecond, errors.New("test error"))
	emitLineDecoded(ctx, 3, 12, time.Millisecond, nil)
	emitLineDecoded(ctx, 0, 5, time.Millisecond, errors.New("test error"))
}

func TestEmitTableEvents(_ *testing.T) {
	ctx := context.Background()
	emitTableEncoded(ctx, 11, 640, 100*time.Millisecond, nil)
	emitTableDecoded(ctx, 0, 640, 100*time.Millisecond, errors.New("test error"))
	emitTranscoded(ctx, "application/json", 10, 1024, 100*time.Millisecond, nil)
	emitTranscoded(ctx, "application/yaml", 0, 0, 100*time.Millisecond, errors.New("test error"))
}

func TestEmitProcessorEvents(_ *testing.T) {
	ctx := context.Background()
	emitProcessorCreated(ctx, "Person", 6)
	emitBoundary(ctx, SignalReceiveComplete, "Person", 64, time.Millisecond, 1, nil)
	emitBoundary(ctx, SignalLoadComplete, "Person", 64, time.Millisecond, 1, errors.New("test error"))
	emitBoundary(ctx, SignalStoreComplete, "", 0, time.Millisecond, 0, nil)
	emitBoundary(ctx, SignalSendComplete, "", 0, time.Millisecond, 2, nil)
}

func TestSignalVariables(t *testing.T) {
	signals := []struct {
		name   string
		signal interface{}
	}{
		{"SignalLineEncoded", SignalLineEncoded},
		{"SignalLineDecoded", SignalLineDecoded},
		{"SignalTableEncoded", SignalTableEncoded},
		{"SignalTableDecoded", SignalTableDecoded},
		{"SignalTranscoded", SignalTranscoded},
		{"SignalProcessorCreated", SignalProcessorCreated},
		{"SignalReceiveComplete", SignalReceiveComplete},
		{"SignalLoadComplete", SignalLoadComplete},
		{"SignalStoreComplete", SignalStoreComplete},
		{"SignalSendComplete", SignalSendComplete},
	}

	for _, s := range signals {
		if s.signal == nil {
			t.Errorf("%s is nil", s.name)
		}
	}
}

func TestKeyVariables(t *testing.T) {
	keys := []struct {
		name string
		key  interface{}
	}{
		{"KeyContentType", KeyContentType},
		{"KeyTypeName", KeyTypeName},
		{"KeyFieldCount", KeyFieldCount},
		{"KeyRowCount", KeyRowCount},
		{"KeySize", KeySize},
		{"KeyDuration", KeyDuration},
		{"KeyError", KeyError},
		{"KeyColumnCount", KeyColumnCount},
	}

	for _, k := range keys {
		if k.key == nil {
			t.Errorf("%s is nil", k.name)
		}
	}
}
