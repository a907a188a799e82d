package goConsole

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/url"
	"strconv"
	"strings"
)

// ModelVersion is one deployable detection model build.
//
// ModelVersion instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type ModelVersion struct {
	ID          int     `json:"id"`
	VersionName string  `json:"version_name"`
	ShowModel   bool    `json:"show_model"`
	ShowScore   bool    `json:"show_score"`
	Threshold   float64 `json:"threshold"`
	UpdateDate  string  `json:"update_date,omitempty"`
}

// VersionMapping records which model version a user has been assigned.
//
// VersionMapping instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type VersionMapping struct {
	VersionName string `json:"version_name"`
	UpdateDate  string `json:"update_date"`
}

// UploadModelInput carries a new model build plus its rollout settings.
// Usernames lists the accounts the version is assigned to on upload.
//
// UploadModelInput instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type UploadModelInput struct {
	VersionName string
	Filename    string
	Archive     io.Reader
	ShowModel   bool
	ShowScore   bool
	Threshold   float64
	Usernames   []string
}

// ErrUploadIncomplete is an exported constant or variable used by the console core.
var ErrUploadIncomplete = errors.New("model upload requires a version name and an archive")

// ListModelVersions fetches every uploaded model build.
//
// ListModelVersions may return an error when input validation, dependency calls, or security checks fail.
// ListModelVersions does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (c *Console) ListModelVersions(ctx context.Context) ([]ModelVersion, error) {
	if c == nil {
		return nil, ErrConsoleNotReady
	}

	var versions []ModelVersion
	if err := c.client.GetJSON(ctx, "/versions/", nil, &versions); err != nil {
		return nil, err
	}
	return versions, nil
}

// ListVersionMappings fetches the version assignments of one user.
//
// ListVersionMappings may return an error when input validation, dependency calls, or security checks fail.
// ListVersionMappings does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (c *Console) ListVersionMappings(ctx context.Context, username string) ([]VersionMapping, error) {
	if c == nil {
		return nil, ErrConsoleNotReady
	}

	var mappings []VersionMapping
	path := "/versions/mapping/" + url.PathEscape(username)
	if err := c.client.GetJSON(ctx, path, nil, &mappings); err != nil {
		return nil, err
	}
	return mappings, nil
}

// UploadModelVersion pushes a model archive to the backend together with its
// rollout settings. Assigned usernames travel as a pipe-joined list, matching
// the upload endpoint's form contract.
//
// UploadModelVersion may return an error when input validation, dependency calls, or security checks fail.
// UploadModelVersion does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (c *Console) UploadModelVersion(ctx context.Context, input UploadModelInput) error {
	if c == nil {
		return ErrConsoleNotReady
	}
	if input.VersionName == "" || input.Archive == nil {
		return ErrUploadIncomplete
	}

	filename := input.Filename
	if filename == "" {
		filename = input.VersionName + ".zip"
	}

	fields := map[string]string{
		"versionName":  input.VersionName,
		"showModel":    strconv.FormatBool(input.ShowModel),
		"showScore":    strconv.FormatBool(input.ShowScore),
		"threshold":    strconv.FormatFloat(input.Threshold, 'f', -1, 64),
		"usernameList": strings.Join(input.Usernames, "|"),
	}

	if err := c.client.UploadMultipart(ctx, "/upload_version/", fields, "zipFile", filename, input.Archive, nil); err != nil {
		return fmt.Errorf("upload model version %s: %w", input.VersionName, err)
	}
	return nil
}
