package datastore

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"path"
	"time"
)

const remoteTimeout = 30 * time.Second

// DatasetteClient implements the Store interface for remote Datasette instances
type DatasetteClient struct {
	baseURL  string
	apiToken string
	client   *http.Client
}

// NewDatasetteClient creates a new DatasetteClient instance
func NewDatasetteClient(baseURL, apiToken string) *DatasetteClient {
	return &DatasetteClient{
		baseURL:  baseURL,
		apiToken: apiToken,
		client:   &http.Client{Timeout: remoteTimeout},
	}
}

// Connect verifies the connection to the Datasette instance
func (c *DatasetteClient) Connect() error {
	if c.baseURL == "" {
		return fmt.Errorf("remote Datasette URL is not configured")
	}
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return fmt.Errorf("invalid base URL: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("invalid base URL scheme %q", u.Scheme)
	}
	return nil
}

// CreateTable is a no-op for remote Datasette as tables are created via the insert API
func (c *DatasetteClient) CreateTable(schema string) error {
	return nil
}

// BatchInsert sends records to the Datasette insert API
func (c *DatasetteClient) BatchInsert(database string, table string, records []map[string]any) error {
	if len(records) == 0 {
		return nil
	}

	u, err := url.Parse(c.baseURL)
	if err != nil {
		return fmt.Errorf("invalid base URL: %w", err)
	}
	u.Path = path.Join(u.Path, "-/insert", database, table)

	payload := map[string]any{
		"rows": records,
	}
	jsonData, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal JSON payload: %w", err)
	}

	req, err := http.NewRequest(http.MethodPost, u.String(), bytes.NewBuffer(jsonData))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	if c.apiToken != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiToken)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		var errResp map[string]any
		if err := json.NewDecoder(resp.Body).Decode(&errResp); err != nil {
			return fmt.Errorf("request failed with status %d", resp.StatusCode)
		}
		return fmt.Errorf("datasette insert into %s/%s failed with status %d: %v", database, table, resp.StatusCode, errResp)
	}

	return nil
}

// Close is a no-op for the HTTP client
func (c *DatasetteClient) Close() error {
	return nil
}
