package api

import (
	"errors"
	"io"
	"log"
	"net/http"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"

	"github.com/docpages/doc2jpeg/internal/classify"
	"github.com/docpages/doc2jpeg/internal/converter"
	"github.com/docpages/doc2jpeg/internal/respond"
	"github.com/docpages/doc2jpeg/internal/workspace"
)

// convert handles POST /convert: one uploaded file in, its pages as JPEGs
// out, in whichever shape the client negotiated.
func (s *Server) convert(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, s.cfg.MaxUploadBytes())

	file, header, err := c.Request.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "no file provided"})
		return
	}
	defer file.Close()

	if header.Size == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "uploaded file is empty"})
		return
	}

	declaredType := header.Header.Get("Content-Type")
	cat := classify.Classify(header.Filename, declaredType)
	if cat == classify.CategoryUnknown {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unsupported media type"})
		return
	}

	// The output shape is fixed before any conversion work happens.
	override := c.Query("response_format")
	if override == "" {
		override = c.PostForm("response_format")
	}
	mode := respond.Negotiate(override, c.GetHeader("Accept"))

	ws, err := workspace.New(s.cfg.WorkDir)
	if err != nil {
		log.Printf("convert: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	// Workspace destruction is the last action for the request, after the
	// final response byte (or the error) has gone out.
	defer ws.Cleanup()

	srcPath := filepath.Join(ws.Root(), "upload"+classify.Ext(header.Filename, declaredType))
	if err := saveUpload(file, srcPath); err != nil {
		log.Printf("convert: save upload: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to store upload"})
		return
	}

	opts := converter.ConvertOptions{
		Quality: s.cfg.JPEGQuality,
		DPI:     s.cfg.RenderDPI,
		Timeout: s.cfg.ConvertTimeout,
	}
	pages, err := converter.Dispatch(c.Request.Context(), cat, srcPath, ws, opts)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, converter.ErrUnsupported) {
			status = http.StatusBadRequest
		}
		log.Printf("convert: dispatch %s: %v", cat, err)
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}

	switch mode {
	case respond.ModeJSON:
		payload, err := respond.BuildJSONPayload(pages)
		if err != nil {
			log.Printf("convert: json payload: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to assemble response"})
			return
		}
		c.JSON(http.StatusOK, payload)

	case respond.ModeZip:
		zipPath, err := respond.CreateZipArchive(pages)
		if zipPath != "" {
			ws.Register(zipPath)
		}
		if err != nil {
			log.Printf("convert: zip: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to build archive"})
			return
		}
		c.Header("Content-Disposition", `attachment; filename="`+respond.ZipFilename+`"`)
		c.Header("Content-Type", "application/zip")
		c.Status(http.StatusOK)
		if err := respond.StreamFile(c.Writer, zipPath); err != nil {
			// Response already started; nothing to send but the cleanup
			// still runs.
			log.Printf("convert: stream zip: %v", err)
		}

	default:
		boundary := respond.NewBoundary()
		c.Header("Content-Type", respond.MultipartContentType(boundary))
		c.Status(http.StatusOK)
		if err := respond.WriteMultipart(c.Writer, boundary, pages); err != nil {
			log.Printf("convert: stream multipart: %v", err)
		}
	}
}

// saveUpload copies the request body stream to a file inside the workspace.
func saveUpload(src io.Reader, dstPath string) error {
	dst, err := os.Create(dstPath)
	if err != nil {
		return err
	}
	if _, err := io.Copy(dst, src); err != nil {
		dst.Close()
		return err
	}
	return dst.Close()
}
