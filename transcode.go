package csvline

import (
	"context"
	"fmt"
	"time"
)

// Transcode decodes CSV content with src, treats the first row as the
// header, and marshals the records through dst as a list of
// column-to-value maps.
func Transcode(ctx context.Context, src *LineCodec, content string, dst Codec) ([]byte, error) {
	start := time.Now()
	if dst == nil {
		return nil, fmt.Errorf("transcode: %w: nil destination codec", ErrUnsupportedType)
	}

	var (
		out    []byte
		rows   int
		retErr error
	)
	defer func() {
		emitTranscoded(ctx, dst.ContentType(), rows, len(out), time.Since(start), retErr)
	}()

	decoded, err := src.DecodeAll(content)
	if err != nil {
		retErr = fmt.Errorf("transcode: %w", err)
		return nil, retErr
	}

	records, err := NewTable(decoded).Maps()
	if err != nil {
		retErr = fmt.Errorf("transcode: %w", err)
		return nil, retErr
	}
	rows = len(records)

	out, err = dst.Marshal(records)
	if err != nil {
		retErr = fmt.Errorf("transcode: marshal %s: %w", dst.ContentType(), err)
		out = nil
		return nil, retErr
	}
	return out, nil
}
