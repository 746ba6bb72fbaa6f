package rawhttp

import (
	"crypto/tls"
	"crypto/x509"
	"time"
)

// Options represents configuration options for sending a request
type Options struct {
	// Connection options
	Scheme string // "http" or "https" (default: "https")
	Host   string // Target hostname (default: the parsed host header)
	Port   int    // Target port (default: 80 for HTTP, 443 for HTTPS)

	// Timeout options
	ConnTimeout  time.Duration // Connection timeout (default: 30s)
	ReadTimeout  time.Duration // Read timeout (default: 30s)
	WriteTimeout time.Duration // Write timeout (default: 30s)

	// TLS options
	DisableSNI         bool     // Disable SNI (Server Name Indication)
	InsecureSkipVerify bool     // Skip TLS certificate verification
	CustomCACerts      [][]byte // Custom CA certificates in PEM format

	// Body options
	BodyMemLimit int64 // Maximum response body size to keep in memory (default: 4MB)

	// Proxy options
	ProxyURL string // Upstream SOCKS5 proxy URL (e.g., "socks5://proxy:1080")
}

// SetDefaults sets default values for unspecified options
func (o *Options) SetDefaults() {
	if o.Scheme == "" {
		o.Scheme = "https"
	}

	if o.Port == 0 {
		if o.Scheme == "https" {
			o.Port = 443
		} else {
			o.Port = 80
		}
	}

	if o.ConnTimeout == 0 {
		o.ConnTimeout = 30 * time.Second
	}

	if o.ReadTimeout == 0 {
		o.ReadTimeout = 30 * time.Second
	}

	if o.WriteTimeout == 0 {
		o.WriteTimeout = 30 * time.Second
	}

	if o.BodyMemLimit == 0 {
		o.BodyMemLimit = 4 * 1024 * 1024 // 4MB
	}
}

// BuildTLSConfig builds a TLS configuration from options
func (o *Options) BuildTLSConfig() *tls.Config {
	config := &tls.Config{
		InsecureSkipVerify: o.InsecureSkipVerify,
		NextProtos:         []string{"http/1.1"},
	}

	// Set SNI
	if !o.DisableSNI {
		config.ServerName = o.Host
	}

	// Add custom CA certificates
	if len(o.CustomCACerts) > 0 {
		certPool := x509.NewCertPool()
		for _, cert := range o.CustomCACerts {
			certPool.AppendCertsFromPEM(cert)
		}
		config.RootCAs = certPool
	}

	return config
}
