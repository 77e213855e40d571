package respond

import "strings"

// Mode is the negotiated output shape, decided once per request before any
// response byte is produced.
type Mode string

const (
	ModeMultipart Mode = "multipart"
	ModeZip       Mode = "zip"
	ModeJSON      Mode = "json"
)

// Negotiate picks the response mode from the explicit format override and
// the Accept header. Zip is decided entirely before json, and within each
// mode the override is consulted strictly before the header, so an explicit
// zip override beats a json Accept signal and a zip Accept beats a json
// override.
func Negotiate(override, accept string) Mode {
	if wantsZip(override, accept) {
		return ModeZip
	}
	if wantsJSON(override, accept) {
		return ModeJSON
	}
	return ModeMultipart
}

func wantsZip(override, accept string) bool {
	if strings.EqualFold(override, "zip") {
		return true
	}
	return acceptHas(accept, "application/zip", "application/x-zip-compressed")
}

func wantsJSON(override, accept string) bool {
	// A non-json override suppresses the Accept header for this mode.
	if override != "" {
		return strings.EqualFold(override, "json")
	}
	return acceptHas(accept, "application/json")
}

// acceptHas reports whether any media type in the Accept header matches one
// of wanted, compared case-insensitively and ignoring parameters.
func acceptHas(accept string, wanted ...string) bool {
	if accept == "" {
		return false
	}
	for _, item := range strings.Split(accept, ",") {
		mediaType := strings.ToLower(strings.TrimSpace(strings.SplitN(item, ";", 2)[0]))
		for _, w := range wanted {
			if mediaType == w {
				return true
			}
		}
	}
	return false
}
