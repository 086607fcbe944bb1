package buildinfo

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/bitrise-io/go-utils/urlutil"
	"github.com/bitrise-io/go-utils/v2/log"
	"github.com/bitrise-io/go-utils/v2/retryhttp"
	"github.com/hashicorp/go-retryablehttp"

	"github.com/bitrise-steplib/steps-store-upload/project"
)

// ProjectReader ...
type ProjectReader interface {
	Read(projectDir string) (project.Config, error)
}

// Client queries the build service for build records.
type Client struct {
	httpClient   *retryablehttp.Client
	apiURL       string
	sessionToken string
	projects     ProjectReader
	logger       log.Logger
}

// NewClient ...
func NewClient(apiURL, sessionToken string, projects ProjectReader, logger log.Logger) *Client {
	return &Client{
		httpClient:   retryhttp.NewClient(logger),
		apiURL:       apiURL,
		sessionToken: sessionToken,
		projects:     projects,
		logger:       logger,
	}
}

// Builds returns the builds of the project matching opts.
// Only an unreadable project config is returned as an error,
// transport and API failures result in an empty list: callers treat it as "no build found".
func (c *Client) Builds(ctx context.Context, projectDir string, opts QueryOptions) ([]Build, error) {
	cfg, err := c.projects.Read(projectDir)
	if err != nil {
		return nil, err
	}

	builds, err := c.fetchBuilds(ctx, cfg.Slug, opts)
	if err != nil {
		c.logger.Debugf("Failed to query build information: %s", err)
		return []Build{}, nil
	}
	return builds, nil
}

func (c *Client) fetchBuilds(ctx context.Context, slug string, opts QueryOptions) ([]Build, error) {
	body, err := json.Marshal(newRequest(slug, opts))
	if err != nil {
		return nil, err
	}

	uri, err := urlutil.Join(c.apiURL, "buildInformation", "get")
	if err != nil {
		return nil, fmt.Errorf("failed to generate build information url, error: %s", err)
	}

	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodPut, uri, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json; charset=UTF-8")
	if c.sessionToken != "" {
		req.Header.Set("Authorization", "Bearer "+c.sessionToken)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			c.logger.Warnf("Failed to close response body: %s", err)
		}
	}()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read build information response: %w", err)
	}
	if resp.StatusCode < 200 || 299 < resp.StatusCode {
		return nil, fmt.Errorf("unsuccessful status code: %d, response: %s", resp.StatusCode, respBody)
	}

	var response Response
	if err := json.Unmarshal(respBody, &response); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response (%s): %w", respBody, err)
	}
	if response.Builds == nil {
		return []Build{}, nil
	}
	return response.Builds, nil
}
