// Package middleware provides HTTP middleware for the demo service.
package middleware

import (
	"compress/gzip"
	"net/http"
	"strings"
)

// CompressMiddleware applies gzip compression to the response.
func CompressMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.Contains(r.Header.Get("Accept-Encoding"), "gzip") {
			next.ServeHTTP(w, r)
			return
		}

		grw := &gzipResponseWriter{ResponseWriter: w}
		defer grw.Close()

		next.ServeHTTP(grw, r)
	})
}

type gzipResponseWriter struct {
	http.ResponseWriter
	writer  *gzip.Writer
	encoded bool
}

// WriteHeader marks the response as gzip encoded before the headers leave.
func (w *gzipResponseWriter) WriteHeader(code int) {
	w.encode()
	w.ResponseWriter.WriteHeader(code)
}

func (w *gzipResponseWriter) Write(b []byte) (int, error) {
	w.encode()
	if w.writer == nil {
		w.writer = gzip.NewWriter(w.ResponseWriter)
	}
	return w.writer.Write(b)
}

func (w *gzipResponseWriter) encode() {
	if w.encoded {
		return
	}
	w.encoded = true
	w.Header().Set("Content-Encoding", "gzip")
	w.Header().Del("Content-Length")
}

// Close flushes the gzip stream. A response committed as gzip without a body still gets
// a valid empty stream.
func (w *gzipResponseWriter) Close() error {
	if w.encoded && w.writer == nil {
		w.writer = gzip.NewWriter(w.ResponseWriter)
	}
	if w.writer != nil {
		return w.writer.Close()
	}
	return nil
}
