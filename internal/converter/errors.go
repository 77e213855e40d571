package converter

import "errors"

// Failure taxonomy. Handlers map ErrUnsupported to a client error and the
// other two to server errors; ErrToolMissing means the host is misconfigured
// rather than the request being bad.
var (
	ErrUnsupported      = errors.New("unsupported media type")
	ErrConversionFailed = errors.New("conversion failed")
	ErrToolMissing      = errors.New("required external tool not found")
)
