package middleware

import (
	"bytes"
	"io"
	"net/http"

	"github.com/and161185/gw-transit/internal/utils"
)

// HashHeader carries the SHA-256 of a body salted with the shared key.
const HashHeader = "HashSHA256"

// HashMiddleware rejects requests whose body does not match their HashSHA256 header and
// signs every response body. With an empty key it does nothing.
func HashMiddleware(key string) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if key == "" {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			bodyBytes, err := io.ReadAll(r.Body)
			if err != nil {
				http.Error(w, "bad body", http.StatusBadRequest)
				return
			}
			r.Body = io.NopCloser(bytes.NewReader(bodyBytes))

			if h := r.Header.Get(HashHeader); h != "" && h != utils.CalculateHash(bodyBytes, key) {
				http.Error(w, "invalid hash", http.StatusBadRequest)
				return
			}

			capture := &responseCapture{ResponseWriter: w, statusCode: http.StatusOK}
			next.ServeHTTP(capture, r)

			w.Header().Set(HashHeader, utils.CalculateHash(capture.body.Bytes(), key))
			w.WriteHeader(capture.statusCode)
			_, _ = w.Write(capture.body.Bytes())
		})
	}
}

// responseCapture holds the response back until it can be signed.
type responseCapture struct {
	http.ResponseWriter
	body       bytes.Buffer
	statusCode int
}

func (r *responseCapture) WriteHeader(code int) {
	r.statusCode = code
}

func (r *responseCapture) Write(b []byte) (int, error) {
	return r.body.Write(b)
}
