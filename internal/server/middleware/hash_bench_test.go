package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func BenchmarkHashMiddleware_Sign(b *testing.B) {
	payload := []byte(`requests_per_minute{resource="FinanceServicesGo-1",service="service-1"} 42`)
	handler := HashMiddleware("supersecret")(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write(payload)
	}))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)
	}
}
