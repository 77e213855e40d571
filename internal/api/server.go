package api

import (
	"context"
	"net/http"
	"os/exec"

	"github.com/gin-gonic/gin"

	"github.com/docpages/doc2jpeg/internal/config"
	"github.com/docpages/doc2jpeg/internal/converter"
	"github.com/docpages/doc2jpeg/internal/respond"
)

// Screenshotter captures a URL as a JPEG. Satisfied by screenshot.Capturer;
// tests substitute a fake.
type Screenshotter interface {
	Capture(ctx context.Context, url string) ([]byte, error)
}

type Server struct {
	Router *gin.Engine
	cfg    *config.Config
	shots  Screenshotter
}

func NewServer(cfg *config.Config, shots Screenshotter) *Server {
	g := gin.Default()
	g.MaxMultipartMemory = cfg.MaxUploadBytes()
	s := &Server{Router: g, cfg: cfg, shots: shots}

	g.POST("/convert", s.convert)
	g.POST("/screenshot", s.screenshot)
	g.GET("/healthz", s.healthz)
	g.GET("/formats", s.formats)

	return s
}

func (s *Server) healthz(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"tools": gin.H{
			"soffice": toolAvailable(s.cfg.SofficeBin),
			"ffmpeg":  toolAvailable(s.cfg.FFmpegBin),
		},
	})
}

func (s *Server) formats(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"converters": converter.ListInfo(),
		"modes":      []respond.Mode{respond.ModeMultipart, respond.ModeZip, respond.ModeJSON},
	})
}

func toolAvailable(bin string) bool {
	_, err := exec.LookPath(bin)
	return err == nil
}
