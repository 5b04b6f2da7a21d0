package compression

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/iamNilotpal/crc/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func encode(t *testing.T, format domain.CompressionFormat, data []byte) []byte {
	t.Helper()
	codec, err := New(format, nil)
	require.NoError(t, err)

	var buf bytes.Buffer
	w, err := codec.NewWriter(&buf)
	require.NoError(t, err)
	_, err = w.Write(data)
	require.NoError(t, err)
	require.NoError(t, w.Close())
	return buf.Bytes()
}

func TestRoundTrip(t *testing.T) {
	data := []byte(strings.Repeat("the quick brown fox jumps over the lazy dog\n", 500))

	for _, format := range []domain.CompressionFormat{None, Zstd, Gzip, LZ4} {
		t.Run(string(format), func(t *testing.T) {
			encoded := encode(t, format, data)
			if format != None {
				assert.Less(t, len(encoded), len(data))
			}

			codec, err := New(format, &domain.CompressionOptions{Enable: true, DecoderConcurrency: 1})
			require.NoError(t, err)
			assert.Equal(t, string(format), codec.Format())

			r, err := codec.NewReader(bytes.NewReader(encoded))
			require.NoError(t, err)
			defer r.Close()

			decoded, err := io.ReadAll(r)
			require.NoError(t, err)
			assert.Equal(t, data, decoded)
		})
	}
}

func TestCorruptInput(t *testing.T) {
	garbage := []byte("definitely not a compressed stream")

	codec, err := New(Zstd, nil)
	require.NoError(t, err)
	r, err := codec.NewReader(bytes.NewReader(garbage))
	require.NoError(t, err)
	_, err = io.ReadAll(r)
	assert.Error(t, err)
	r.Close()

	codec, err = New(Gzip, nil)
	require.NoError(t, err)
	_, err = codec.NewReader(bytes.NewReader(garbage))
	assert.Error(t, err)
}

func TestDetectFormat(t *testing.T) {
	tests := map[string]domain.CompressionFormat{
		"a.zst":        Zstd,
		"a.tar.ZSTD":   Zstd,
		"logs/b.gz":    Gzip,
		"c.lz4":        LZ4,
		"plain.txt":    None,
		"no-extension": None,
	}
	for path, want := range tests {
		assert.Equal(t, want, DetectFormat(path), path)
	}
}

func TestResolve(t *testing.T) {
	assert.Equal(t, None, Resolve(nil, "a.zst"))
	assert.Equal(t, None, Resolve(&domain.CompressionOptions{}, "a.zst"))
	assert.Equal(t, Zstd, Resolve(&domain.CompressionOptions{Enable: true}, "a.zst"))
	assert.Equal(t, LZ4, Resolve(&domain.CompressionOptions{Enable: true, Format: LZ4}, "a.zst"))
}

func TestValidate(t *testing.T) {
	assert.NoError(t, Validate(DefaultOptions()))
	assert.NoError(t, Validate(&domain.CompressionOptions{Enable: true, Format: Gzip}))
	assert.ErrorContains(t, Validate(&domain.CompressionOptions{Format: "brotli"}), "unsupported compression format")

	_, err := New("brotli", nil)
	assert.Error(t, err)
}

func TestZstdLevelClamped(t *testing.T) {
	assert.Equal(t, FastestLevel, NewZstdCompression(Options{Level: 0}).Level())
	assert.Equal(t, BestLevel, NewZstdCompression(Options{Level: 9}).Level())
	assert.Equal(t, DefaultLevel, NewZstdCompression(Options{Level: DefaultLevel}).Level())
}
