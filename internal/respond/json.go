package respond

import (
	"encoding/base64"
	"fmt"
	"os"

	"github.com/docpages/doc2jpeg/internal/converter"
)

// PagePayload is one element of the json-mode response body.
type PagePayload struct {
	Page     int    `json:"page"`
	Filename string `json:"filename"`
	Data     string `json:"data"`
}

// BuildJSONPayload assembles the ordered array of base64 data URIs. Unlike
// the other modes this buffers every page in memory, since the client
// expects one parseable document.
func BuildJSONPayload(pages []converter.PageImage) ([]PagePayload, error) {
	payload := make([]PagePayload, 0, len(pages))
	for _, page := range pages {
		raw, err := os.ReadFile(page.Path)
		if err != nil {
			return nil, fmt.Errorf("failed to read page %d: %w", page.Index, err)
		}
		payload = append(payload, PagePayload{
			Page:     page.Index,
			Filename: fmt.Sprintf("page-%d.jpg", page.Index),
			Data:     "data:image/jpeg;base64," + base64.StdEncoding.EncodeToString(raw),
		})
	}
	return payload, nil
}
