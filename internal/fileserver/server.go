// Package fileserver is the front server of the stack: it serves rendered QR
// codes read-only from the shared directory and forwards everything else to
// the QR API upstream.
package fileserver

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"qr-code-service/internal/middleware"
	"qr-code-service/internal/proxy"
)

type Server struct {
	staticDir string
	upstream  *proxy.Client
	watcher   *Watcher
}

func New(staticDir string, upstream *proxy.Client, watcher *Watcher) *Server {
	return &Server{staticDir: staticDir, upstream: upstream, watcher: watcher}
}

func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logging(), gin.Recovery())

	// Directory listing stays disabled; only individual files are served.
	r.Static("/qr_codes", s.staticDir)

	r.GET("/healthz", s.healthz)

	r.NoRoute(s.forward)

	return r
}

func (s *Server) healthz(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "qr_codes": s.watcher.Count()})
}

func (s *Server) forward(c *gin.Context) {
	path := c.Request.URL.Path
	if c.Request.URL.RawQuery != "" {
		path += "?" + c.Request.URL.RawQuery
	}

	resp, err := s.upstream.Forward(c.Request.Method, path, c.Request.Body, c.Request.Header)
	if err != nil {
		log.WithError(err).Error("upstream unavailable")
		c.JSON(http.StatusBadGateway, gin.H{"error": "upstream unavailable"})
		return
	}
	defer resp.Body.Close()

	for key, values := range resp.Header {
		for _, v := range values {
			c.Writer.Header().Add(key, v)
		}
	}
	c.Status(resp.StatusCode)
	if _, err := io.Copy(c.Writer, resp.Body); err != nil {
		log.WithError(err).Warn("copy upstream response failed")
	}
}
