// Package github is a minimal GraphQL client for the two queries the sync
// pass needs: a repository's open issues and a user's Projects V2 boards.
package github

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const defaultURL = "https://api.github.com/graphql"

// Options configures a Client.
type Options struct {
	URL        string
	Token      string
	UserAgent  string
	HTTPClient *http.Client
}

// Client executes GraphQL queries against the GitHub API.
type Client struct {
	url        string
	token      string
	userAgent  string
	httpClient *http.Client
}

// NewClient creates a GraphQL client.
func NewClient(opts Options) *Client {
	url := strings.TrimSpace(opts.URL)
	if url == "" {
		url = defaultURL
	}
	userAgent := strings.TrimSpace(opts.UserAgent)
	if userAgent == "" {
		userAgent = "taskdash"
	}
	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}
	return &Client{
		url:        url,
		token:      opts.Token,
		userAgent:  userAgent,
		httpClient: httpClient,
	}
}

// APIError represents a failed GraphQL call: either a non-200 transport
// status or an API-reported error list.
type APIError struct {
	StatusCode int
	Body       string
	Errors     []GraphQLError
}

// GraphQLError is one entry of a GraphQL response error list.
type GraphQLError struct {
	Message string `json:"message"`
}

func (e *APIError) Error() string {
	if len(e.Errors) > 0 {
		msgs := make([]string, len(e.Errors))
		for i, ge := range e.Errors {
			msgs[i] = ge.Message
		}
		return fmt.Sprintf("github graphql error: %s", strings.Join(msgs, "; "))
	}
	return fmt.Sprintf("github api error: status %d: %s", e.StatusCode, e.Body)
}

// do executes one GraphQL request and unmarshals the data envelope into out.
func (c *Client) do(ctx context.Context, query string, variables map[string]interface{}, out interface{}) error {
	body, err := json.Marshal(map[string]interface{}{
		"query":     query,
		"variables": variables,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal graphql request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("graphql request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return &APIError{StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(respBody))}
	}

	var envelope struct {
		Data   json.RawMessage `json:"data"`
		Errors []GraphQLError  `json:"errors"`
	}
	if err := json.Unmarshal(respBody, &envelope); err != nil {
		return fmt.Errorf("failed to decode graphql response: %w", err)
	}
	if len(envelope.Errors) > 0 {
		return &APIError{StatusCode: resp.StatusCode, Errors: envelope.Errors}
	}

	if err := json.Unmarshal(envelope.Data, out); err != nil {
		return fmt.Errorf("failed to decode graphql data: %w", err)
	}
	return nil
}
