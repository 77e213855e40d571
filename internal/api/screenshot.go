package api

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/docpages/doc2jpeg/internal/screenshot"
)

// screenshot handles POST /screenshot: navigate a headless browser to the
// target URL and return one full-viewport JPEG. This path never touches the
// workspace pipeline; the image stays in memory.
func (s *Server) screenshot(c *gin.Context) {
	target := c.Query("url")
	if target == "" {
		var ok bool
		target, ok = urlFromBody(c)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid JSON body"})
			return
		}
	}

	if target == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "URL parameter is required"})
		return
	}
	lower := strings.ToLower(target)
	if !strings.HasPrefix(lower, "http://") && !strings.HasPrefix(lower, "https://") {
		c.JSON(http.StatusBadRequest, gin.H{"error": "URL must start with http:// or https://"})
		return
	}

	img, err := s.shots.Capture(c.Request.Context(), target)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, screenshot.ErrNavigation) {
			status = http.StatusBadRequest
		}
		log.Printf("screenshot: %s: %v", target, err)
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}

	c.Header("Content-Disposition", `inline; filename="screenshot.jpg"`)
	c.Data(http.StatusOK, "image/jpeg", img)
}

// urlFromBody reads an optional {"url": "..."} JSON body. An empty body is
// fine; a malformed one is not.
func urlFromBody(c *gin.Context) (string, bool) {
	raw, err := io.ReadAll(c.Request.Body)
	if err != nil || len(raw) == 0 {
		return "", true
	}
	var payload struct {
		URL string `json:"url"`
	}
	if err := json.Unmarshal(raw, &payload); err != nil {
		return "", false
	}
	return payload.URL, true
}
