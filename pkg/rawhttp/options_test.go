package rawhttp

import (
	"testing"
	"time"
)

func TestOptions_SetDefaults(t *testing.T) {
	opts := Options{}
	opts.SetDefaults()

	if opts.Scheme != "https" {
		t.Errorf("Expected default scheme https, got %q", opts.Scheme)
	}

	if opts.Port != 443 {
		t.Errorf("Expected default port 443, got %d", opts.Port)
	}

	if opts.ConnTimeout != 30*time.Second {
		t.Errorf("Expected 30s connection timeout, got %v", opts.ConnTimeout)
	}

	if opts.ReadTimeout != 30*time.Second {
		t.Errorf("Expected 30s read timeout, got %v", opts.ReadTimeout)
	}

	if opts.BodyMemLimit != 4*1024*1024 {
		t.Errorf("Expected 4MB body limit, got %d", opts.BodyMemLimit)
	}
}

func TestOptions_SetDefaults_HTTPPort(t *testing.T) {
	opts := Options{Scheme: "http"}
	opts.SetDefaults()

	if opts.Port != 80 {
		t.Errorf("Expected default port 80 for http, got %d", opts.Port)
	}
}

func TestOptions_SetDefaults_KeepsExplicitValues(t *testing.T) {
	opts := Options{
		Scheme:      "http",
		Port:        8080,
		ConnTimeout: 5 * time.Second,
	}
	opts.SetDefaults()

	if opts.Port != 8080 {
		t.Errorf("Expected explicit port kept, got %d", opts.Port)
	}

	if opts.ConnTimeout != 5*time.Second {
		t.Errorf("Expected explicit timeout kept, got %v", opts.ConnTimeout)
	}
}

func TestOptions_BuildTLSConfig_SNI(t *testing.T) {
	opts := Options{Host: "www.website.com"}
	opts.SetDefaults()

	config := opts.BuildTLSConfig()

	if config.ServerName != "www.website.com" {
		t.Errorf("Expected SNI www.website.com, got %q", config.ServerName)
	}

	if config.InsecureSkipVerify {
		t.Error("Expected certificate verification enabled by default")
	}
}

func TestOptions_BuildTLSConfig_DisableSNI(t *testing.T) {
	opts := Options{Host: "www.website.com", DisableSNI: true}

	config := opts.BuildTLSConfig()

	if config.ServerName != "" {
		t.Errorf("Expected empty SNI, got %q", config.ServerName)
	}
}

func TestOptions_BuildTLSConfig_Insecure(t *testing.T) {
	opts := Options{Host: "www.website.com", InsecureSkipVerify: true}

	config := opts.BuildTLSConfig()

	if !config.InsecureSkipVerify {
		t.Error("Expected InsecureSkipVerify to be set")
	}
}
