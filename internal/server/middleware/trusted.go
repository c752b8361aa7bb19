package middleware

import (
	"fmt"
	"net"
	"net/http"
)

// TrustedCIDR only lets through clients inside cidr. The client address is taken from
// X-Real-IP, falling back to the connection address. An empty cidr allows everyone.
func TrustedCIDR(cidr string) (func(http.Handler) http.Handler, error) {
	if cidr == "" {
		return func(next http.Handler) http.Handler { return next }, nil
	}
	_, ipnet, err := net.ParseCIDR(cidr)
	if err != nil {
		return nil, fmt.Errorf("invalid trusted subnet: %w", err)
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip := clientIP(r)
			if ip == nil || !ipnet.Contains(ip) {
				w.WriteHeader(http.StatusForbidden)
				return
			}
			next.ServeHTTP(w, r)
		})
	}, nil
}

func clientIP(r *http.Request) net.IP {
	if xrip := r.Header.Get("X-Real-IP"); xrip != "" {
		return net.ParseIP(xrip)
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return net.ParseIP(r.RemoteAddr)
	}
	return net.ParseIP(host)
}
