// config.go - Haupt-Konfigurationsfunktionen fuer thorascan
//
// Dieses Modul enthaelt:
// - Host: Gibt Scheme und Host zurueck (THORASCAN_HOST)
// - AllowedOrigins: Gibt erlaubte Origins zurueck (THORASCAN_ORIGINS)
// - Uploads: Gibt Upload-Verzeichnis zurueck (THORASCAN_UPLOADS)
// - MaxUploadBytes: Gibt maximale Upload-Groesse zurueck (THORASCAN_MAX_UPLOAD)
// - MaxImageDimension: Gibt maximale Bildkante zurueck (THORASCAN_MAX_DIMENSION)
// - DefaultModel: Gibt Default-Modell zurueck (THORASCAN_DEFAULT_MODEL)
// - LogLevel: Gibt Log-Level zurueck (THORASCAN_DEBUG)
//
// Weitere Konfigurationen sind ausgelagert:
// - config_utils.go: Utility-Funktionen und AsMap/Values
package envconfig

import (
	"fmt"
	"log/slog"
	"net"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Host gibt Scheme und Host zurueck
// Konfigurierbar via THORASCAN_HOST
// Default: http://127.0.0.1:5000
func Host() *url.URL {
	defaultPort := "5000"

	s := strings.TrimSpace(Var("THORASCAN_HOST"))
	scheme, hostport, ok := strings.Cut(s, "://")
	switch {
	case !ok:
		scheme, hostport = "http", s
	case scheme == "http":
		defaultPort = "80"
	case scheme == "https":
		defaultPort = "443"
	}

	hostport, path, _ := strings.Cut(hostport, "/")
	host, port, err := net.SplitHostPort(hostport)
	if err != nil {
		host, port = "127.0.0.1", defaultPort
		if ip := net.ParseIP(strings.Trim(hostport, "[]")); ip != nil {
			host = ip.String()
		} else if hostport != "" {
			host = hostport
		}
	}

	if n, err := strconv.ParseInt(port, 10, 32); err != nil || n > 65535 || n < 0 {
		slog.Warn("invalid port, using default", "port", port, "default", defaultPort)
		port = defaultPort
	}

	return &url.URL{
		Scheme: scheme,
		Host:   net.JoinHostPort(host, port),
		Path:   path,
	}
}

// AllowedOrigins gibt erlaubte Origins zurueck
// Konfigurierbar via THORASCAN_ORIGINS (komma-separiert)
// Enthaelt Standard-Origins fuer localhost
func AllowedOrigins() (origins []string) {
	if s := Var("THORASCAN_ORIGINS"); s != "" {
		origins = strings.Split(s, ",")
	}

	// Standard-Origins fuer localhost
	for _, origin := range []string{"localhost", "127.0.0.1", "0.0.0.0"} {
		origins = append(origins,
			fmt.Sprintf("http://%s", origin),
			fmt.Sprintf("https://%s", origin),
			fmt.Sprintf("http://%s", net.JoinHostPort(origin, "*")),
			fmt.Sprintf("https://%s", net.JoinHostPort(origin, "*")),
		)
	}

	// App-Protokolle
	origins = append(origins,
		"app://*",
		"file://*",
		"vscode-webview://*",
		"vscode-file://*",
	)

	return origins
}

// Uploads gibt das Verzeichnis fuer gespeicherte Roentgenbilder zurueck
// Konfigurierbar via THORASCAN_UPLOADS
// Default: $HOME/.thorascan/uploads
func Uploads() string {
	if s := Var("THORASCAN_UPLOADS"); s != "" {
		return s
	}

	home, err := os.UserHomeDir()
	if err != nil {
		panic(err)
	}

	return filepath.Join(home, ".thorascan", "uploads")
}

// MaxUploadBytes gibt die maximale Upload-Groesse in Bytes zurueck
// Konfigurierbar via THORASCAN_MAX_UPLOAD
// Default: 16 MiB
func MaxUploadBytes() int64 {
	return int64(Uint64("THORASCAN_MAX_UPLOAD", 16*1024*1024)())
}

// MaxImageDimension gibt die maximale Bildkante in Pixeln zurueck
// Konfigurierbar via THORASCAN_MAX_DIMENSION
// Default: 4096
func MaxImageDimension() int {
	return int(Uint("THORASCAN_MAX_DIMENSION", 4096)())
}

// DefaultModel gibt die Default-Architektur fuer Analysen zurueck
// Konfigurierbar via THORASCAN_DEFAULT_MODEL
// Default: efficientnet
func DefaultModel() string {
	if s := Var("THORASCAN_DEFAULT_MODEL"); s != "" {
		return s
	}
	return "efficientnet"
}

// LogLevel gibt das Log-Level zurueck
// Konfigurierbar via THORASCAN_DEBUG
// Werte: 0/false = INFO (Default), 1/true = DEBUG, 2 = TRACE
func LogLevel() slog.Level {
	level := slog.LevelInfo
	if s := Var("THORASCAN_DEBUG"); s != "" {
		if b, _ := strconv.ParseBool(s); b {
			level = slog.LevelDebug
		} else if i, _ := strconv.ParseInt(s, 10, 64); i != 0 {
			level = slog.Level(i * -4)
		}
	}

	return level
}

// Var gibt eine Environment-Variable zurueck
// Entfernt fuehrende/trailing Quotes und Leerzeichen
func Var(key string) string {
	return strings.Trim(strings.TrimSpace(os.Getenv(key)), "\"'")
}
