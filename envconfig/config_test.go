// config_test.go - Tests fuer die Environment-Konfiguration
package envconfig

import "testing"

func TestHostDefault(t *testing.T) {
	t.Setenv("THORASCAN_HOST", "")

	host := Host()
	if host.Scheme != "http" {
		t.Errorf("Scheme = %q, erwartet http", host.Scheme)
	}
	if host.Host != "127.0.0.1:5000" {
		t.Errorf("Host = %q, erwartet 127.0.0.1:5000", host.Host)
	}
}

func TestHostParsing(t *testing.T) {
	tests := []struct {
		value string
		want  string
	}{
		{"1.2.3.4", "1.2.3.4:5000"},
		{"1.2.3.4:8080", "1.2.3.4:8080"},
		{"http://example.com", "example.com:80"},
		{"https://example.com", "example.com:443"},
		{"0.0.0.0:5000", "0.0.0.0:5000"},
		{"example.com:99999", "example.com:5000"},
	}

	for _, tt := range tests {
		t.Setenv("THORASCAN_HOST", tt.value)
		if got := Host().Host; got != tt.want {
			t.Errorf("Host(%q) = %q, erwartet %q", tt.value, got, tt.want)
		}
	}
}

func TestMaxUploadBytesDefault(t *testing.T) {
	t.Setenv("THORASCAN_MAX_UPLOAD", "")

	if got := MaxUploadBytes(); got != 16*1024*1024 {
		t.Errorf("MaxUploadBytes() = %d, erwartet 16 MiB", got)
	}
}

func TestMaxUploadBytesOverride(t *testing.T) {
	t.Setenv("THORASCAN_MAX_UPLOAD", "1048576")

	if got := MaxUploadBytes(); got != 1048576 {
		t.Errorf("MaxUploadBytes() = %d, erwartet 1048576", got)
	}
}

func TestMaxUploadBytesInvalid(t *testing.T) {
	t.Setenv("THORASCAN_MAX_UPLOAD", "viel")

	if got := MaxUploadBytes(); got != 16*1024*1024 {
		t.Errorf("MaxUploadBytes() = %d, erwartet Default bei ungueltigem Wert", got)
	}
}

func TestDefaultModel(t *testing.T) {
	t.Setenv("THORASCAN_DEFAULT_MODEL", "")
	if got := DefaultModel(); got != "efficientnet" {
		t.Errorf("DefaultModel() = %q, erwartet efficientnet", got)
	}

	t.Setenv("THORASCAN_DEFAULT_MODEL", "resnet50")
	if got := DefaultModel(); got != "resnet50" {
		t.Errorf("DefaultModel() = %q, erwartet resnet50", got)
	}
}

func TestAsMapCoversAllVars(t *testing.T) {
	m := AsMap()
	for _, key := range []string{
		"THORASCAN_DEBUG",
		"THORASCAN_HOST",
		"THORASCAN_ORIGINS",
		"THORASCAN_UPLOADS",
		"THORASCAN_MAX_UPLOAD",
		"THORASCAN_MAX_DIMENSION",
		"THORASCAN_DEFAULT_MODEL",
	} {
		if _, ok := m[key]; !ok {
			t.Errorf("AsMap() enthaelt %s nicht", key)
		}
	}
}
