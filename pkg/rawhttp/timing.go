package rawhttp

import (
	"strings"
	"time"
)

// Timing records time spent in each phase of the request
type Timing struct {
	DNSLookup    time.Duration // DNS resolution (0 when a proxy resolves)
	ProxyConnect time.Duration // Connecting through the proxy (0 if no proxy)
	TCPConnect   time.Duration // TCP connection establishment
	TLSHandshake time.Duration // TLS handshake (0 for plain HTTP)
	TTFB         time.Duration // From request written to first response byte
	Total        time.Duration // Whole send, start to finish
}

// String returns a human-readable representation of the timing information
func (t *Timing) String() string {
	var b strings.Builder
	b.WriteString("Timing:\n")

	write := func(label string, d time.Duration) {
		if d > 0 {
			b.WriteString("  " + label + ": " + d.String() + "\n")
		}
	}

	write("DNS Lookup", t.DNSLookup)
	write("Proxy Connect", t.ProxyConnect)
	write("TCP Connect", t.TCPConnect)
	write("TLS Handshake", t.TLSHandshake)
	write("Time to First Byte", t.TTFB)

	b.WriteString("  Total: " + t.Total.String())
	return b.String()
}
