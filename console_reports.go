package goConsole

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"time"
)

// PhotoReport is one detection record returned by the report query endpoint.
//
// PhotoReport instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type PhotoReport struct {
	ID           int    `json:"id"`
	CustomerID   string `json:"customerId"`
	OwnerName    string `json:"ownerName"`
	DetectLabels string `json:"detectLabels"`
	CreateDate   string `json:"create_date,omitempty"`
}

// PhotoQuery bounds a report query. StartTime and EndTime are required;
// CustomerID and OwnerName narrow the result when non-empty.
//
// PhotoQuery instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type PhotoQuery struct {
	StartTime  time.Time
	EndTime    time.Time
	CustomerID string
	OwnerName  string
}

// ErrReportRangeRequired is an exported constant or variable used by the console core.
var ErrReportRangeRequired = errors.New("report query requires both start and end dates")

// QueryPhotos runs a detection report query over a date range.
//
// QueryPhotos may return an error when input validation, dependency calls, or security checks fail.
// QueryPhotos does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (c *Console) QueryPhotos(ctx context.Context, q PhotoQuery) ([]PhotoReport, error) {
	if c == nil {
		return nil, ErrConsoleNotReady
	}
	if q.StartTime.IsZero() || q.EndTime.IsZero() {
		return nil, ErrReportRangeRequired
	}

	params := url.Values{}
	params.Set("start_time", q.StartTime.Format("2006-01-02"))
	params.Set("end_time", q.EndTime.Format("2006-01-02"))
	if q.CustomerID != "" {
		params.Set("customerId", q.CustomerID)
	}
	if q.OwnerName != "" {
		params.Set("ownerName", q.OwnerName)
	}

	var reports []PhotoReport
	if err := c.client.GetJSON(ctx, "/photos/query/", params, &reports); err != nil {
		return nil, err
	}
	return reports, nil
}

// DownloadPhoto fetches the raw image bytes of one detection record.
//
// DownloadPhoto may return an error when input validation, dependency calls, or security checks fail.
// DownloadPhoto does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (c *Console) DownloadPhoto(ctx context.Context, photoID int) ([]byte, error) {
	if c == nil {
		return nil, ErrConsoleNotReady
	}

	return c.client.GetBytes(ctx, fmt.Sprintf("/photos/download/%d", photoID))
}
