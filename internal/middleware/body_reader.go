package middleware

import (
	"bytes"
	"io"
	"net/http"
)

// replayBody reads the whole request body for logging and puts an identical
// copy back so the handler can still bind it. The original body is closed.
func replayBody(req *http.Request) ([]byte, error) {
	if req.Body == nil || req.Body == http.NoBody {
		return nil, nil
	}
	defer req.Body.Close()

	body, err := io.ReadAll(req.Body)
	req.Body = io.NopCloser(bytes.NewReader(body))
	return body, err
}
