package server

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const compressBody = `{"machines":["classic","fruit","diamond","neon","cosmic"]}`

func compressTarget(status int) http.Handler {
	return CompressionMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		if status != http.StatusNoContent {
			_, _ = io.WriteString(w, compressBody)
		}
	}))
}

func TestCompressionMiddleware_Gzip(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/machines", nil)
	req.Header.Set(HeaderAcceptEncoding, "gzip, deflate")
	rec := httptest.NewRecorder()

	compressTarget(http.StatusOK).ServeHTTP(rec, req)

	assert.Equal(t, EncodingGzip, rec.Header().Get(HeaderContentEncoding))
	assert.Equal(t, HeaderAcceptEncoding, rec.Header().Get(HeaderVary))
	zr, err := gzip.NewReader(rec.Body)
	require.NoError(t, err)
	got, err := io.ReadAll(zr)
	require.NoError(t, err)
	assert.Equal(t, compressBody, string(got))
}

func TestCompressionMiddleware_PrefersZstd(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/machines", nil)
	req.Header.Set(HeaderAcceptEncoding, "gzip, zstd")
	rec := httptest.NewRecorder()

	compressTarget(http.StatusOK).ServeHTTP(rec, req)

	assert.Equal(t, EncodingZstd, rec.Header().Get(HeaderContentEncoding))
	dec, err := zstd.NewReader(rec.Body)
	require.NoError(t, err)
	defer dec.Close()
	got, err := io.ReadAll(dec)
	require.NoError(t, err)
	assert.Equal(t, compressBody, string(got))
}

func TestCompressionMiddleware_Passthrough(t *testing.T) {
	t.Run("no accept-encoding", func(t *testing.T) {
		rec := httptest.NewRecorder()
		compressTarget(http.StatusOK).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.Empty(t, rec.Header().Get(HeaderContentEncoding))
		assert.Equal(t, compressBody, rec.Body.String())
	})

	t.Run("no content", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(HeaderAcceptEncoding, "gzip")
		rec := httptest.NewRecorder()

		compressTarget(http.StatusNoContent).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Empty(t, rec.Header().Get(HeaderContentEncoding))
		assert.Zero(t, rec.Body.Len())
	})
}
