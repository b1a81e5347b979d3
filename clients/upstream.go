package clients

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// Error classifies the outcome of a failed upstream call. Code is the status
// surfaced to our caller (404 when the resource is absent, 502 for anything
// else including transport failures); Status is the raw upstream status, zero
// when the upstream was unreachable.
type Error struct {
	Resource string
	Code     int
	Status   int
	Err      error
}

func (e *Error) Error() string {
	if e.Code == http.StatusNotFound {
		return fmt.Sprintf("%s not found", e.Resource)
	}
	if e.Status == 0 && e.Err != nil {
		return fmt.Sprintf("Upstream error from %s: %v", e.Resource, e.Err)
	}
	return fmt.Sprintf("Upstream error from %s (%d)", e.Resource, e.Status)
}

func (e *Error) Unwrap() error { return e.Err }

// IsNotFound reports whether the upstream answered 404. Callers that treat
// absence as a legitimate empty result must check this explicitly.
func (e *Error) IsNotFound() bool { return e.Code == http.StatusNotFound }

// Upstream wraps a single backend service behind one base URL. All calls are
// blocking; the shared http.Client timeout bounds each of them.
type Upstream struct {
	name    string
	baseURL string
	client  *http.Client
}

func NewUpstream(name, baseURL string, timeout time.Duration) *Upstream {
	return &Upstream{
		name:    name,
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
	}
}

func (u *Upstream) Name() string { return u.name }

// Do performs a raw request and returns the response untouched. Used by the
// proxy layer, which copies status and body through verbatim.
func (u *Upstream) Do(ctx context.Context, method, path string, query url.Values, headers http.Header, body io.Reader) (*http.Response, error) {
	target := u.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return nil, err
	}

	for k, v := range headers {
		for _, vv := range v {
			req.Header.Add(k, vv)
		}
	}

	return u.client.Do(req)
}

// GetJSON performs a GET and decodes a 2xx body into out. resource names the
// entity for error messages ("User", "Inventory", ...).
func (u *Upstream) GetJSON(ctx context.Context, path string, query url.Values, resource string, out interface{}) *Error {
	return u.roundTrip(ctx, http.MethodGet, path, query, resource, nil, out)
}

// SendJSON performs a POST/PUT/PATCH with a JSON payload and decodes a 2xx
// body into out (out may be nil when the body is irrelevant).
func (u *Upstream) SendJSON(ctx context.Context, method, path string, resource string, payload, out interface{}) *Error {
	return u.roundTrip(ctx, method, path, nil, resource, payload, out)
}

// Delete performs a DELETE and classifies the outcome. 204 is a success.
func (u *Upstream) Delete(ctx context.Context, path, resource string) *Error {
	return u.roundTrip(ctx, http.MethodDelete, path, nil, resource, nil, nil)
}

func (u *Upstream) roundTrip(ctx context.Context, method, path string, query url.Values, resource string, payload, out interface{}) *Error {
	var body io.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			return &Error{Resource: resource, Code: http.StatusBadGateway, Err: err}
		}
		body = bytes.NewReader(b)
	}

	target := u.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return &Error{Resource: resource, Code: http.StatusBadGateway, Err: err}
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := u.client.Do(req)
	if err != nil {
		return &Error{Resource: resource, Code: http.StatusBadGateway, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return &Error{Resource: resource, Code: http.StatusNotFound, Status: resp.StatusCode}
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &Error{Resource: resource, Code: http.StatusBadGateway, Status: resp.StatusCode}
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &Error{Resource: resource, Code: http.StatusBadGateway, Status: resp.StatusCode, Err: err}
	}
	return nil
}

// ReadJSONBody drains a request body so it can be replayed upstream.
func ReadJSONBody(r *http.Request) ([]byte, error) {
	if r.Body == nil {
		return nil, nil
	}
	defer r.Body.Close()
	return io.ReadAll(r.Body)
}

// CopyResponse streams an upstream response (headers, status, body) back to
// the client untouched.
func CopyResponse(w http.ResponseWriter, resp *http.Response) error {
	defer resp.Body.Close()

	for k, v := range resp.Header {
		for _, vv := range v {
			w.Header().Add(k, vv)
		}
	}
	w.WriteHeader(resp.StatusCode)

	_, err := io.Copy(w, resp.Body)
	return err
}

// BodyFromBytes wraps a byte slice as a reader, nil for an empty body.
func BodyFromBytes(b []byte) io.Reader {
	if len(b) == 0 {
		return nil
	}
	return bytes.NewReader(b)
}
