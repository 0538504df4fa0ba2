package analysis

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
)

// fetchPhoto resolves an opaque photo reference into raw image bytes:
// http(s) references are fetched, anything else is read as a local path.
func fetchPhoto(ctx context.Context, client *http.Client, ref string) ([]byte, error) {
	if !strings.HasPrefix(ref, "http") {
		data, err := os.ReadFile(ref)
		if err != nil {
			return nil, fmt.Errorf("read photo %s: %w", ref, err)
		}
		return data, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, ref, nil)
	if err != nil {
		return nil, fmt.Errorf("build photo request: %w", err)
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch photo: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch photo: status %d", resp.StatusCode)
	}
	return io.ReadAll(resp.Body)
}
