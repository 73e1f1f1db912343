package client

import (
	"context"
	"fmt"

	"github.com/datocms-community/datocms-mcp/internal/http"
	"github.com/datocms-community/datocms-mcp/pkg/dato"
)

// JobsClient implements dato.JobsClient. Long-running CMA operations (forks,
// promotions, bulk publishes) return a job whose result is polled here.
type JobsClient struct {
	httpClient *http.Client
}

// NewJobsClient creates a new jobs client.
func NewJobsClient(httpClient *http.Client) *JobsClient {
	return &JobsClient{httpClient: httpClient}
}

// Get implements dato.JobsClient.Get. A 404 means the job is still running;
// once complete, the result reports the terminal HTTP status and payload.
func (c *JobsClient) Get(ctx context.Context, jobID string) (*dato.JobResult, error) {
	resp, err := c.httpClient.Get(ctx, "/job-results/"+jobID, nil)
	if err != nil {
		return nil, fmt.Errorf("getting job result: %w", err)
	}

	e, err := decodeOne(resp.Body)
	if err != nil {
		return nil, err
	}

	var result dato.JobResult
	if err := e.decodeAttributes(&result); err != nil {
		return nil, err
	}

	result.ID = e.ID

	return &result, nil
}
