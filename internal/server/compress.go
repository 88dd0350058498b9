package server

import (
	"io"
	"net/http"
	"strings"
	"sync"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

var (
	gzipPool sync.Pool
	zstdPool sync.Pool
)

func getZstdWriter(w io.Writer) *zstd.Encoder {
	if v := zstdPool.Get(); v != nil {
		zw := v.(*zstd.Encoder)
		zw.Reset(w)
		return zw
	}
	// Only fails on invalid options
	zw, err := zstd.NewWriter(w,
		zstd.WithEncoderLevel(zstd.SpeedFastest),
		zstd.WithEncoderConcurrency(1))
	if err != nil {
		panic(err)
	}
	return zw
}

func getGzipWriter(w io.Writer) *gzip.Writer {
	if v := gzipPool.Get(); v != nil {
		gw := v.(*gzip.Writer)
		gw.Reset(w)
		return gw
	}
	return gzip.NewWriter(w)
}

// compressWriter streams the body through an encoder unless the status carries no body
type compressWriter struct {
	http.ResponseWriter
	enc      io.Writer
	disabled bool
}

func (cw *compressWriter) WriteHeader(code int) {
	cw.Header().Del(HeaderContentLength)
	if code == http.StatusNoContent || code == http.StatusNotModified || code < http.StatusOK {
		cw.disabled = true
		cw.Header().Del(HeaderContentEncoding)
	}
	cw.ResponseWriter.WriteHeader(code)
}

func (cw *compressWriter) Write(b []byte) (int, error) {
	if cw.disabled {
		return cw.ResponseWriter.Write(b)
	}
	cw.Header().Del(HeaderContentLength)
	if cw.Header().Get("Content-Type") == "" {
		cw.Header().Set("Content-Type", http.DetectContentType(b))
	}
	return cw.enc.Write(b)
}

func (cw *compressWriter) Flush() {
	if !cw.disabled {
		if f, ok := cw.enc.(interface{ Flush() error }); ok {
			_ = f.Flush()
		}
	}
	if f, ok := cw.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}

// CompressionMiddleware encodes responses with zstd or gzip based on Accept-Encoding
func CompressionMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodHead || w.Header().Get(HeaderContentEncoding) != "" {
			next.ServeHTTP(w, r)
			return
		}

		accept := r.Header.Get(HeaderAcceptEncoding)
		switch {
		case strings.Contains(accept, EncodingZstd):
			zw := getZstdWriter(w)
			cw := startCompression(w, EncodingZstd, zw)
			defer func() {
				if cw.disabled {
					zw.Reset(io.Discard)
				}
				_ = zw.Close()
				zstdPool.Put(zw)
			}()
			next.ServeHTTP(cw, r)
		case strings.Contains(accept, EncodingGzip):
			gw := getGzipWriter(w)
			cw := startCompression(w, EncodingGzip, gw)
			defer func() {
				if cw.disabled {
					gw.Reset(io.Discard)
				}
				_ = gw.Close()
				gzipPool.Put(gw)
			}()
			next.ServeHTTP(cw, r)
		default:
			next.ServeHTTP(w, r)
		}
	})
}

func startCompression(w http.ResponseWriter, encoding string, enc io.Writer) *compressWriter {
	w.Header().Set(HeaderContentEncoding, encoding)
	w.Header().Add(HeaderVary, HeaderAcceptEncoding)
	return &compressWriter{ResponseWriter: w, enc: enc}
}
