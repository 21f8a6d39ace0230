package dashboard

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// APIClient talks to the CMS API on behalf of the dashboard.
type APIClient struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

func NewAPIClient(baseURL, token string) *APIClient {
	return &APIClient{
		baseURL: baseURL,
		token:   token,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

func (c *APIClient) DeleteArticle(ctx context.Context, articleID uint) error {
	return c.delete(ctx, fmt.Sprintf("%s/api/v1/articles/%d", c.baseURL, articleID))
}

func (c *APIClient) DeleteImage(ctx context.Context, imageID string) error {
	return c.delete(ctx, fmt.Sprintf("%s/api/v1/images/%s", c.baseURL, imageID))
}

func (c *APIClient) delete(ctx context.Context, url string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, url, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+c.token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("delete %s: status %d: %s", url, resp.StatusCode, body)
	}

	// The API answers deletes with {"message": "..."}; drain it so the
	// connection can be reused.
	var ack struct {
		Message string `json:"message"`
	}
	_ = json.NewDecoder(resp.Body).Decode(&ack)

	return nil
}
