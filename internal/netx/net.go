// Package netx uploads archives straight to the object store through
// presigned URLs handed out by the quote server.
package netx

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
)

// Client is the HTTP client used for uploads. Tests may replace it.
var Client = http.DefaultClient

// maxErrorBody bounds how much of an error response ends up in the error.
const maxErrorBody = 4 << 10

// PutPresigned PUTs data to a presigned URL. contentType must match the one
// the URL was signed for.
func PutPresigned(ctx context.Context, url, contentType string, data []byte) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPut, url, bytes.NewReader(data))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", contentType)
	req.ContentLength = int64(len(data))

	resp, err := Client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return fmt.Errorf("upload failed: %s; body: %s", resp.Status, string(b))
	}
	return nil
}
