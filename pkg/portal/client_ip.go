package portal

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"strings"
)

// TrustedProxies lists the peers allowed to report the client address
// through X-Forwarded-For. The zero value trusts nobody.
type TrustedProxies struct {
	networks []*net.IPNet
}

// NewTrustedProxies accepts single addresses and CIDR ranges.
func NewTrustedProxies(entries []string) (TrustedProxies, error) {
	proxies := TrustedProxies{}

	for _, entry := range FilterNonEmpty(entries) {
		if !strings.Contains(entry, "/") {
			if ip := net.ParseIP(entry); ip != nil && ip.To4() != nil {
				entry += "/32"
			} else {
				entry += "/128"
			}
		}

		_, network, err := net.ParseCIDR(entry)
		if err != nil {
			return TrustedProxies{}, fmt.Errorf("trusted proxies: invalid entry %q: %w", entry, err)
		}

		proxies.networks = append(proxies.networks, network)
	}

	return proxies, nil
}

func (t TrustedProxies) Trusts(address string) bool {
	ip := net.ParseIP(address)
	if ip == nil {
		return false
	}

	for _, network := range t.networks {
		if network.Contains(ip) {
			return true
		}
	}

	return false
}

// ClientIP resolves the address of the caller. X-Forwarded-For is read only
// when the TCP peer is trusted, walking from the right and stopping at the
// first hop that is not a trusted proxy.
func (t TrustedProxies) ClientIP(r *http.Request) string {
	peer := remoteHost(r)

	if !t.Trusts(peer) {
		return peer
	}

	hops := FilterNonEmpty(strings.Split(r.Header.Get(ForwardedForHeader), ","))

	for i := len(hops) - 1; i >= 0; i-- {
		if net.ParseIP(hops[i]) == nil {
			return peer
		}

		if !t.Trusts(hops[i]) {
			return hops[i]
		}
	}

	if len(hops) > 0 {
		return hops[0]
	}

	return peer
}

func WithClientIP(ctx context.Context, ip string) context.Context {
	return context.WithValue(ctx, ClientIPKey, ip)
}

// ParseClientIP returns the address resolved for this request, or the TCP
// peer when nothing resolved one.
func ParseClientIP(r *http.Request) string {
	if ip, ok := r.Context().Value(ClientIPKey).(string); ok && ip != "" {
		return ip
	}

	return remoteHost(r)
}

func remoteHost(r *http.Request) string {
	host, _, err := net.SplitHostPort(strings.TrimSpace(r.RemoteAddr))
	if err == nil && host != "" {
		return host
	}

	return strings.TrimSpace(r.RemoteAddr)
}
