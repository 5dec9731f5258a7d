package tabular

import (
	"fmt"
	"io"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// decompress wraps r according to the compression; the returned close
// function releases decoder resources and is never nil
func decompress(r io.Reader, comp Compression) (io.Reader, func() error, error) {
	noop := func() error { return nil }

	switch comp {
	case CompressionGzip:
		gz, err := gzip.NewReader(r)
		if err != nil {
			return nil, noop, fmt.Errorf("failed to create gzip reader: %w", err)
		}
		return gz, gz.Close, nil

	case CompressionZstd:
		dec, err := zstd.NewReader(r)
		if err != nil {
			return nil, noop, fmt.Errorf("failed to create zstd reader: %w", err)
		}
		return dec, func() error { dec.Close(); return nil }, nil

	case CompressionLZ4:
		return lz4.NewReader(r), noop, nil

	default:
		return r, noop, nil
	}
}
