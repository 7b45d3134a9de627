package api

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
)

// GetAuditLogs fetches one page of the audit trail. pageIndex is 1-based;
// the server orders entries newest first.
func (c *Client) GetAuditLogs(ctx context.Context, pageSize, pageIndex int) (*AuditLogsResponse, error) {
	q := url.Values{}
	q.Set("pageSize", strconv.Itoa(pageSize))
	q.Set("pageIndex", strconv.Itoa(pageIndex))

	var resp AuditLogsResponse
	if err := c.do(ctx, http.MethodGet, "/api/audit-logs", q, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// GetAuditMetrics fetches the dashboard counters. Supplementary data:
// callers log failures instead of surfacing them.
func (c *Client) GetAuditMetrics(ctx context.Context) (*AuditMetricsResponse, error) {
	var resp AuditMetricsResponse
	if err := c.do(ctx, http.MethodGet, "/api/audit-logs/metrics", nil, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
