package selection

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// RemoteSaver echoes the selection to an external save endpoint.
type RemoteSaver interface {
	Save(ctx context.Context, ids []int) error
}

type httpRemote struct {
	url  string
	http *http.Client
}

// NewHTTPRemote creates a saver that POSTs the id list to url. Contract:
// body {"selectedProductIds": [...]}, response {"success": true}.
func NewHTTPRemote(url string) RemoteSaver {
	return &httpRemote{url: url, http: &http.Client{Timeout: 10 * time.Second}}
}

func (r *httpRemote) Save(ctx context.Context, ids []int) error {
	if ids == nil {
		ids = []int{}
	}
	body, err := json.Marshal(map[string][]int{"selectedProductIds": ids})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := r.http.Do(req)
	if err != nil {
		return fmt.Errorf("selection save request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("selection save endpoint returned %s", resp.Status)
	}

	var result struct {
		Success bool `json:"success"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return fmt.Errorf("selection save response: %w", err)
	}
	if !result.Success {
		return fmt.Errorf("selection save endpoint reported failure")
	}
	return nil
}
