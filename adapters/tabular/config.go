package tabular

import (
	"colprofile/adapters/datareadiness/coercer"
)

// DefaultChunkSize is the number of rows per chunk when none is given
const DefaultChunkSize = 100_000

// initialChunkCapacity caps the up-front allocation of a chunk; larger chunks grow on demand
const initialChunkCapacity = 4096

// ScannerConfig holds configuration for chunked file scanning
type ScannerConfig struct {
	ChunkSize      int                    `json:"chunk_size"`
	CoercionConfig coercer.CoercionConfig `json:"coercion_config"`
	LazyQuotes     bool                   `json:"lazy_quotes"` // tolerate stray quotes in delimited files
	Sheet          string                 `json:"sheet"`       // XLSX sheet; first sheet when empty
}

// DefaultScannerConfig returns sensible defaults for scanning
func DefaultScannerConfig() ScannerConfig {
	return ScannerConfig{
		ChunkSize:      DefaultChunkSize,
		CoercionConfig: coercer.DefaultCoercionConfig(),
		LazyQuotes:     true,
	}
}
