// Package server - Haupt-Router und Server-Setup fuer ThoraScan
// Beinhaltet: Server-Struct, Router-Registrierung, Middleware, Server-Start
package server

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"net/netip"
	"os"
	"os/signal"
	"slices"
	"strings"
	"syscall"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/thorascan/thorascan/augment"
	"github.com/thorascan/thorascan/envconfig"
	"github.com/thorascan/thorascan/heatmap"
	"github.com/thorascan/thorascan/logutil"
	"github.com/thorascan/thorascan/model"
	"github.com/thorascan/thorascan/version"
)

var mode string = gin.DebugMode

// Server verwaltet den HTTP-Server und die Analyse-Komponenten
type Server struct {
	addr      net.Addr
	models    *model.Manager
	heatmaps  *heatmap.Generator
	augmentor *augment.Augmentor
	uploads   string
}

func init() {
	switch mode {
	case gin.DebugMode:
	case gin.ReleaseMode:
	case gin.TestMode:
	default:
		mode = gin.DebugMode
	}

	gin.SetMode(mode)
}

// NewServer erstellt einen Server mit allen Analyse-Komponenten
// seed steuert die simulierten Zufallsanteile, uploads das Ablageverzeichnis
func NewServer(addr net.Addr, seed int64, uploads string) *Server {
	return &Server{
		addr:      addr,
		models:    model.NewManager(seed),
		heatmaps:  heatmap.NewGenerator(seed),
		augmentor: augment.NewAugmentor(seed),
		uploads:   uploads,
	}
}

// isLocalIP prueft ob die IP-Adresse zu einem lokalen Interface gehoert
func isLocalIP(ip netip.Addr) bool {
	if interfaces, err := net.Interfaces(); err == nil {
		for _, iface := range interfaces {
			addrs, err := iface.Addrs()
			if err != nil {
				continue
			}

			for _, a := range addrs {
				if parsed, _, err := net.ParseCIDR(a.String()); err == nil {
					if parsed.String() == ip.String() {
						return true
					}
				}
			}
		}
	}

	return false
}

// allowedHost prueft ob der Host erlaubt ist
func allowedHost(host string) bool {
	host = strings.ToLower(host)

	if host == "" || host == "localhost" {
		return true
	}

	if hostname, err := os.Hostname(); err == nil && host == strings.ToLower(hostname) {
		return true
	}

	tlds := []string{
		"localhost",
		"local",
		"internal",
	}

	// Pruefe ob der Host eine lokale TLD hat
	for _, tld := range tlds {
		if strings.HasSuffix(host, "."+tld) {
			return true
		}
	}

	return false
}

// allowedHostsMiddleware blockiert Anfragen von nicht erlaubten Hosts
func allowedHostsMiddleware(addr net.Addr) gin.HandlerFunc {
	return func(c *gin.Context) {
		if addr == nil {
			c.Next()
			return
		}

		if addr, err := netip.ParseAddrPort(addr.String()); err == nil && !addr.Addr().IsLoopback() {
			c.Next()
			return
		}

		host, _, err := net.SplitHostPort(c.Request.Host)
		if err != nil {
			host = c.Request.Host
		}

		if addr, err := netip.ParseAddr(host); err == nil {
			if addr.IsLoopback() || addr.IsPrivate() || addr.IsUnspecified() || isLocalIP(addr) {
				c.Next()
				return
			}
		}

		if allowedHost(host) {
			if c.Request.Method == http.MethodOptions {
				c.AbortWithStatus(http.StatusNoContent)
				return
			}

			c.Next()
			return
		}

		c.AbortWithStatus(http.StatusForbidden)
	}
}

// GenerateRoutes erstellt und konfiguriert den HTTP-Router
func (s *Server) GenerateRoutes() (http.Handler, error) {
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowWildcard = true
	corsConfig.AllowBrowserExtensions = true
	corsConfig.AllowHeaders = []string{
		"Authorization",
		"Content-Type",
		"User-Agent",
		"Accept",
		"X-Requested-With",
	}
	corsConfig.AllowOrigins = envconfig.AllowedOrigins()

	r := gin.Default()
	r.HandleMethodNotAllowed = true
	r.Use(
		cors.New(corsConfig),
		allowedHostsMiddleware(s.addr),
	)

	// General
	r.HEAD("/", func(c *gin.Context) { c.String(http.StatusOK, "ThoraScan is running") })
	r.GET("/", func(c *gin.Context) { c.String(http.StatusOK, "ThoraScan is running") })
	r.GET("/api/health", s.HealthHandler)

	// Models
	r.GET("/api/models", s.ModelsHandler)
	r.GET("/api/models/:model", s.ModelInfoHandler)

	// Analysis
	r.POST("/api/analyze", s.AnalyzeHandler)
	r.POST("/api/compare-models", s.CompareModelsHandler)
	r.POST("/api/augment", s.AugmentHandler)
	r.GET("/api/uploaded-images", s.UploadedImagesHandler)

	// Optimization
	r.POST("/api/optimize-model", s.OptimizeModelHandler)
	r.POST("/api/compare-optimizations", s.CompareOptimizationsHandler)
	r.POST("/api/optimization-report", s.OptimizationReportHandler)

	return r, nil
}

// Serve startet den HTTP-Server
func Serve(ln net.Listener, seed int64) error {
	slog.SetDefault(logutil.NewLogger(os.Stderr, envconfig.LogLevel()))
	slog.Info("server config", "env", envconfig.Values())

	uploads := envconfig.Uploads()
	if err := os.MkdirAll(uploads, 0o755); err != nil {
		return fmt.Errorf("creating uploads dir: %w", err)
	}

	s := NewServer(ln.Addr(), seed, uploads)

	h, err := s.GenerateRoutes()
	if err != nil {
		return err
	}

	ctx, done := context.WithCancel(context.Background())

	slog.Info(fmt.Sprintf("Listening on %s (version %s)", ln.Addr(), version.Version))
	srvr := &http.Server{
		Handler: h,
	}

	// listen for a ctrl+c and shut the server down
	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-signals
		srvr.Close()
		done()
	}()

	err = srvr.Serve(ln)
	// If server is closed from the signal handler, wait for the ctx to be done
	// otherwise error out quickly
	if !slices.Contains([]error{http.ErrServerClosed}, err) {
		return err
	}
	<-ctx.Done()
	return nil
}
