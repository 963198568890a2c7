package client

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/go-resty/resty/v2"
	"github.com/tidwall/gjson"

	"github.com/pjoly/hr-console/internal/model"
)

// Collection exposes the five CRUD operations for one resource collection.
// T is the record type the collection holds.
type Collection[T any] struct {
	c    *Client
	path string
}

func NewCollection[T any](c *Client, path string) *Collection[T] {
	return &Collection[T]{c: c, path: path}
}

func Applicants(c *Client) *Collection[model.Applicant] {
	return NewCollection[model.Applicant](c, "/applicants")
}

func Employees(c *Client) *Collection[model.Employee] {
	return NewCollection[model.Employee](c, "/employees")
}

// ListAll returns every record in server order. A response body that is not
// a JSON array counts as an empty collection, not an error.
func (col *Collection[T]) ListAll(ctx context.Context) ([]T, error) {
	resp, err := col.c.http.R().SetContext(ctx).Get(col.path)
	if err != nil {
		return nil, &NetworkError{Op: "list " + col.path, Err: err}
	}
	if resp.IsError() {
		return nil, serverError(resp)
	}
	body := resp.Body()
	if !gjson.ParseBytes(body).IsArray() {
		return []T{}, nil
	}
	var out []T
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, fmt.Errorf("decode %s: %w", col.path, err)
	}
	return out, nil
}

// GetByID fetches one record. Any non-2xx response comes back wrapped in
// ErrNotFound.
func (col *Collection[T]) GetByID(ctx context.Context, id int) (*T, error) {
	var out T
	resp, err := col.c.http.R().SetContext(ctx).SetResult(&out).
		Get(fmt.Sprintf("%s/%d", col.path, id))
	if err != nil {
		return nil, &NetworkError{Op: fmt.Sprintf("get %s/%d", col.path, id), Err: err}
	}
	if resp.IsError() {
		return nil, fmt.Errorf("get %s/%d: %w", col.path, id, ErrNotFound)
	}
	return &out, nil
}

// Create posts a record without an identifier and returns the server's copy,
// id populated.
func (col *Collection[T]) Create(ctx context.Context, rec T) (*T, error) {
	var out T
	resp, err := col.c.http.R().SetContext(ctx).SetBody(rec).SetResult(&out).
		Post(col.path)
	if err != nil {
		return nil, &NetworkError{Op: "create " + col.path, Err: err}
	}
	if resp.IsError() {
		return nil, serverError(resp)
	}
	return &out, nil
}

// Update replaces the addressed record in full; it never merges fields.
func (col *Collection[T]) Update(ctx context.Context, id int, rec T) (*T, error) {
	var out T
	resp, err := col.c.http.R().SetContext(ctx).SetBody(rec).SetResult(&out).
		Put(fmt.Sprintf("%s/%d", col.path, id))
	if err != nil {
		return nil, &NetworkError{Op: fmt.Sprintf("update %s/%d", col.path, id), Err: err}
	}
	if resp.IsError() {
		return nil, serverError(resp)
	}
	return &out, nil
}

// Delete removes the addressed record. Deleting an id that is already gone
// is expected to fail; the caller decides what to surface.
func (col *Collection[T]) Delete(ctx context.Context, id int) error {
	resp, err := col.c.http.R().SetContext(ctx).
		Delete(fmt.Sprintf("%s/%d", col.path, id))
	if err != nil {
		return &NetworkError{Op: fmt.Sprintf("delete %s/%d", col.path, id), Err: err}
	}
	if resp.IsError() {
		return serverError(resp)
	}
	return nil
}

func serverError(resp *resty.Response) error {
	return &ServerError{
		Status:  resp.StatusCode(),
		Message: gjson.GetBytes(resp.Body(), "message").String(),
	}
}
