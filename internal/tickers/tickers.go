package tickers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
)

// Download fetches the ticker list at url and writes it to outputPath,
// re-indented with four spaces. The body must be valid JSON; key order
// is preserved. Returns the number of bytes written.
func Download(ctx context.Context, httpClient *http.Client, url, outputPath string) (int, error) {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return 0, err
	}
	response, err := httpClient.Do(req)
	if err != nil {
		return 0, fmt.Errorf("failed to fetch tickers: %w", err)
	}
	defer response.Body.Close()

	body, err := io.ReadAll(response.Body)
	if err != nil {
		return 0, fmt.Errorf("failed to read tickers response: %w", err)
	}
	if response.StatusCode < 200 || response.StatusCode > 299 {
		return 0, fmt.Errorf("tickers request failed with status %d: %s", response.StatusCode, string(body))
	}

	out := bytes.Buffer{}
	if err := json.Indent(&out, body, "", "    "); err != nil {
		return 0, fmt.Errorf("tickers response is not valid json: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(outputPath), 0o755); err != nil {
		return 0, fmt.Errorf("failed to create output directory: %w", err)
	}
	if err := os.WriteFile(outputPath, out.Bytes(), 0o644); err != nil {
		return 0, fmt.Errorf("failed to write %s: %w", outputPath, err)
	}

	return out.Len(), nil
}
