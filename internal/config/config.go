package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

type Config struct {
	HTTPPort          int
	WorkDir           string
	JPEGQuality       int
	RenderDPI         float64
	SofficeBin        string
	FFmpegBin         string
	MaxUploadMB       int64
	ScreenshotTimeout time.Duration
	ConvertTimeout    time.Duration
}

func Load() *Config {
	cfg := &Config{}
	cfg.HTTPPort = getEnvInt("HTTP_PORT", 8000)
	cfg.WorkDir = getEnv("WORK_DIR", filepath.Join(os.TempDir(), "doc2jpeg"))
	cfg.JPEGQuality = getEnvInt("JPEG_QUALITY", 90)
	cfg.RenderDPI = getEnvFloat("RENDER_DPI", 150)
	cfg.SofficeBin = getEnv("SOFFICE_BIN", "soffice")
	cfg.FFmpegBin = getEnv("FFMPEG_BIN", "ffmpeg")
	cfg.MaxUploadMB = getEnvInt64("MAX_UPLOAD_MB", 64)
	cfg.ScreenshotTimeout = time.Duration(getEnvInt("SCREENSHOT_TIMEOUT", 30)) * time.Second
	cfg.ConvertTimeout = time.Duration(getEnvInt("CONVERT_TIMEOUT", 120)) * time.Second
	return cfg
}

func (c *Config) HTTPAddr() string { return fmt.Sprintf(":%d", c.HTTPPort) }

func (c *Config) MaxUploadBytes() int64 { return c.MaxUploadMB << 20 }

func getEnv(key, def string) string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	return v
}

func getEnvInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return i
}

func getEnvInt64(key string, def int64) int64 {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	i, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return def
	}
	return i
}

func getEnvFloat(key string, def float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return def
	}
	return f
}
