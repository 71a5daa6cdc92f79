// Package record is the HTTP client for the remote record-keeping service,
// the authoritative store for students and classes. The console never
// mutates its local mirror until a call here has confirmed the operation.
package record

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"github.com/google/uuid"

	"github.com/tiagorb/enrollment-console/internal/config"
	"github.com/tiagorb/enrollment-console/internal/model"
)

type Client struct {
	baseURL string
	token   string
	http    *http.Client
}

func NewClient(cfg *config.RecordConfig) *Client {
	return &Client{
		baseURL: cfg.BaseURL,
		token:   cfg.Token,
		http:    &http.Client{Timeout: cfg.Timeout},
	}
}

// RemoteError is any non-2xx answer from the record service, carrying the
// best human-readable detail the service gave us.
type RemoteError struct {
	StatusCode int
	Detail     string
}

func (e *RemoteError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("record service: %s (status %d)", e.Detail, e.StatusCode)
	}
	return fmt.Sprintf("record service: status %d", e.StatusCode)
}

func (e *RemoteError) IsNotFound() bool {
	return e.StatusCode == http.StatusNotFound
}

type ListStudentsParams struct {
	Search  string
	ClassID *int64
	Status  model.StudentStatus
}

type StudentPayload struct {
	Name      string              `json:"name"`
	BirthDate model.Date          `json:"birth_date"`
	Email     *string             `json:"email"`
	Status    model.StudentStatus `json:"status"`
	ClassID   *int64              `json:"class_id"`
}

type TransferPayload struct {
	StudentID int64 `json:"student_id"`
	ClassID   int64 `json:"class_id"`
}

func (c *Client) ListClasses(ctx context.Context) ([]model.Class, error) {
	var classes []model.Class
	if err := c.do(ctx, http.MethodGet, "/classes", nil, &classes); err != nil {
		return nil, err
	}
	return classes, nil
}

func (c *Client) ListStudents(ctx context.Context, params ListStudentsParams) ([]model.Student, error) {
	q := url.Values{}
	if params.Search != "" {
		q.Set("search", params.Search)
	}
	if params.ClassID != nil {
		q.Set("class_id", strconv.FormatInt(*params.ClassID, 10))
	}
	if params.Status != "" {
		q.Set("status", string(params.Status))
	}
	path := "/students"
	if len(q) > 0 {
		path += "?" + q.Encode()
	}

	var students []model.Student
	if err := c.do(ctx, http.MethodGet, path, nil, &students); err != nil {
		return nil, err
	}
	return students, nil
}

func (c *Client) CreateStudent(ctx context.Context, payload StudentPayload) (*model.Student, error) {
	var student model.Student
	if err := c.do(ctx, http.MethodPost, "/students", payload, &student); err != nil {
		return nil, err
	}
	return &student, nil
}

func (c *Client) UpdateStudent(ctx context.Context, id int64, payload StudentPayload) (*model.Student, error) {
	var student model.Student
	path := fmt.Sprintf("/students/%d", id)
	if err := c.do(ctx, http.MethodPut, path, payload, &student); err != nil {
		return nil, err
	}
	return &student, nil
}

func (c *Client) DeleteStudent(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/students/%d", id), nil, nil)
}

func (c *Client) RecordTransfer(ctx context.Context, studentID, classID int64) error {
	payload := TransferPayload{StudentID: studentID, ClassID: classID}
	return c.do(ctx, http.MethodPost, "/transfers", payload, nil)
}

func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	res, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("record service unreachable: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		return &RemoteError{StatusCode: res.StatusCode, Detail: readDetail(res.Body)}
	}

	if out != nil {
		if err := json.NewDecoder(res.Body).Decode(out); err != nil {
			return fmt.Errorf("record service: decode response: %w", err)
		}
	}
	return nil
}

// readDetail pulls the error message out of a rejection body, accepting
// either {"detail": ...} or {"message": ...}.
func readDetail(body io.Reader) string {
	var payload struct {
		Detail  string `json:"detail"`
		Message string `json:"message"`
	}
	if err := json.NewDecoder(body).Decode(&payload); err != nil {
		return ""
	}
	if payload.Detail != "" {
		return payload.Detail
	}
	return payload.Message
}
