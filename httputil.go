package folioview

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
)

// contains http utils to deal with the backend API

// apiDetail is the error envelope the backend attaches to failed writes.
type apiDetail struct {
	Detail json.RawMessage `json:"detail"`
}

// statusError turns a non-2xx response into an error whose message is fit
// for direct display, including the backend's detail payload when present.
func statusError(resp *http.Response, body []byte) error {
	var envelope apiDetail
	if err := json.Unmarshal(body, &envelope); err == nil && len(envelope.Detail) > 0 {
		return fmt.Errorf("%s %s: %s: %s", resp.Request.Method, resp.Request.URL.Path, resp.Status, envelope.Detail)
	}
	return fmt.Errorf("%s %s: %s (check if the backend is running)", resp.Request.Method, resp.Request.URL.Path, resp.Status)
}

// jget performs an HTTP GET and unmarshals the JSON response into out.
func (c *Client) jget(ctx context.Context, path string, query url.Values, out any) error {
	addr := c.baseURL + path
	if len(query) > 0 {
		addr += "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, addr, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	if resp.StatusCode >= 300 {
		return statusError(resp, body)
	}
	return json.Unmarshal(body, out)
}

// jsend performs a POST or PATCH with a JSON body. When out is non-nil the
// response body is unmarshaled into it.
func (c *Client) jsend(ctx context.Context, method, path string, in, out any) error {
	var payload io.Reader
	if in != nil {
		raw, err := json.Marshal(in)
		if err != nil {
			return err
		}
		payload = bytes.NewReader(raw)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, payload)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	if resp.StatusCode >= 300 {
		return statusError(resp, body)
	}
	if out == nil {
		return nil
	}
	return json.Unmarshal(body, out)
}

// jdelete performs a DELETE and checks the status.
func (c *Client) jdelete(ctx context.Context, path string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, c.baseURL+path, nil)
	if err != nil {
		return err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode >= 300 {
		return statusError(resp, body)
	}
	return nil
}
