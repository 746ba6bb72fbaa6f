// Package compression decompresses HTTP response bodies.
package compression

import (
	"bytes"
	"compress/flate"
	"compress/gzip"
	"io"
	"strings"

	"github.com/WhileEndless/go-headertools/pkg/errors"
	"github.com/andybalholm/brotli"
	"github.com/klauspost/compress/zstd"
)

// CompressionType represents supported compression algorithms
type CompressionType int

const (
	CompressionNone CompressionType = iota
	CompressionGzip
	CompressionDeflate
	CompressionBrotli
	CompressionZstd
)

// DetectCompression detects compression type from a Content-Encoding header
// Supports: gzip, x-gzip, deflate, br, brotli, zstd, identity
func DetectCompression(contentEncoding string) CompressionType {
	encoding := strings.ToLower(strings.TrimSpace(contentEncoding))

	switch encoding {
	case "gzip", "x-gzip":
		return CompressionGzip
	case "deflate", "x-deflate":
		return CompressionDeflate
	case "br", "brotli":
		return CompressionBrotli
	case "zstd", "zstandard":
		return CompressionZstd
	default:
		return CompressionNone
	}
}

// DetectByMagicBytes attempts to detect compression type from data magic bytes
func DetectByMagicBytes(data []byte) CompressionType {
	if len(data) < 2 {
		return CompressionNone
	}

	// Gzip: 1f 8b
	if data[0] == 0x1f && data[1] == 0x8b {
		return CompressionGzip
	}

	// Zstd: 28 b5 2f fd
	if len(data) >= 4 && data[0] == 0x28 && data[1] == 0xb5 && data[2] == 0x2f && data[3] == 0xfd {
		return CompressionZstd
	}

	// Deflate: zlib header, commonly 78 followed by 9c, da, 5e or 01
	if data[0] == 0x78 && (data[1] == 0x9c || data[1] == 0xda || data[1] == 0x5e || data[1] == 0x01) {
		return CompressionDeflate
	}

	// Brotli has no magic number; skip auto-detection for it
	return CompressionNone
}

// Decompress decompresses data based on the compression type
func Decompress(data []byte, compressionType CompressionType) ([]byte, error) {
	if len(data) == 0 {
		return data, nil
	}

	switch compressionType {
	case CompressionGzip:
		return decompressGzip(data)
	case CompressionDeflate:
		return decompressDeflate(data)
	case CompressionBrotli:
		return decompressBrotli(data)
	case CompressionZstd:
		return decompressZstd(data)
	case CompressionNone:
		return data, nil
	default:
		return nil, errors.NewError(errors.ErrorTypeCompressionError,
			"unsupported compression type", "decompress", data)
	}
}

func decompressGzip(data []byte) ([]byte, error) {
	reader, err := gzip.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, errors.NewError(errors.ErrorTypeCompressionError,
			"failed to create gzip reader: "+err.Error(), "decompressGzip", data)
	}
	defer reader.Close()

	decompressed, err := io.ReadAll(reader)
	if err != nil {
		return nil, errors.NewError(errors.ErrorTypeCompressionError,
			"failed to decompress gzip data: "+err.Error(), "decompressGzip", data)
	}

	return decompressed, nil
}

func decompressDeflate(data []byte) ([]byte, error) {
	reader := flate.NewReader(bytes.NewReader(data))
	defer reader.Close()

	decompressed, err := io.ReadAll(reader)
	if err != nil {
		return nil, errors.NewError(errors.ErrorTypeCompressionError,
			"failed to decompress deflate data: "+err.Error(), "decompressDeflate", data)
	}

	return decompressed, nil
}

func decompressBrotli(data []byte) ([]byte, error) {
	reader := brotli.NewReader(bytes.NewReader(data))

	decompressed, err := io.ReadAll(reader)
	if err != nil {
		return nil, errors.NewError(errors.ErrorTypeCompressionError,
			"failed to decompress brotli data: "+err.Error(), "decompressBrotli", data)
	}

	return decompressed, nil
}

func decompressZstd(data []byte) ([]byte, error) {
	decoder, err := zstd.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, errors.NewError(errors.ErrorTypeCompressionError,
			"failed to create zstd reader: "+err.Error(), "decompressZstd", data)
	}
	defer decoder.Close()

	decompressed, err := io.ReadAll(decoder)
	if err != nil {
		return nil, errors.NewError(errors.ErrorTypeCompressionError,
			"failed to decompress zstd data: "+err.Error(), "decompressZstd", data)
	}

	return decompressed, nil
}
