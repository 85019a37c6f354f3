package apiclient

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc, opts ...Option) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	c, err := New(srv.URL, opts...)
	require.NoError(t, err)
	return c
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func TestNew_NormalizesBaseURL(t *testing.T) {
	c, err := New("  api.hirenest.test/ ")
	require.NoError(t, err)
	assert.Equal(t, "http://api.hirenest.test", c.BaseURL())

	c, err = New("")
	require.NoError(t, err)
	assert.Equal(t, DefaultBaseURL, c.BaseURL())
}

func TestRequest_AttachesBearerToken(t *testing.T) {
	var gotAuth string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		writeJSON(w, http.StatusOK, map[string]string{"status": "success"})
	}, WithTokenSource(TokenFunc(func() string { return "tok-123" })))

	_, err := c.Request(context.Background(), "/admin/job-providers", RequestOptions{})
	require.NoError(t, err)
	assert.Equal(t, "Bearer tok-123", gotAuth)
}

func TestRequest_SkipAuthOmitsToken(t *testing.T) {
	var gotAuth string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		writeJSON(w, http.StatusOK, map[string]string{})
	}, WithTokenSource(TokenFunc(func() string { return "tok-123" })))

	_, err := c.Request(context.Background(), "/admin/auth/login", RequestOptions{Method: http.MethodPost, SkipAuth: true})
	require.NoError(t, err)
	assert.Empty(t, gotAuth)
}

func TestRequest_NoTokenNoHeader(t *testing.T) {
	var hadHeader bool
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, hadHeader = r.Header["Authorization"]
		writeJSON(w, http.StatusOK, map[string]string{})
	}, WithTokenSource(TokenFunc(func() string { return "" })))

	_, err := c.Request(context.Background(), "/admin/job-posts", RequestOptions{})
	require.NoError(t, err)
	assert.False(t, hadHeader)
}

func TestRequest_UnauthorizedInvokesHandler(t *testing.T) {
	calls := 0
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"message": "token expired"})
	}, WithUnauthorizedHandler(func() { calls++ }))

	resp, err := c.Request(context.Background(), "/admin/job-seekers", RequestOptions{})
	assert.Nil(t, resp)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.Equal(t, "Unauthorized", err.Error())
	assert.Equal(t, 1, calls)
	assert.Equal(t, 401, StatusCode(err))
}

func TestRequest_NonSuccessUsesServerMessage(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, map[string]string{"status": "error", "message": "Job provider not found"})
	})

	_, err := c.Request(context.Background(), "/admin/job-providers/x", RequestOptions{})
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusNotFound, apiErr.Status)
	assert.Equal(t, "Job provider not found", apiErr.Error())
}

func TestRequest_NonSuccessGenericMessage(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("<html>bad gateway</html>"))
	})

	_, err := c.Request(context.Background(), "/admin/job-posts", RequestOptions{})
	require.Error(t, err)
	assert.Equal(t, "Request failed with status 502", err.Error())
	assert.Equal(t, http.StatusBadGateway, StatusCode(err))
}

func TestRequest_TextResponse(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		_, _ = w.Write([]byte("pong"))
	})

	resp, err := c.Request(context.Background(), "/ping", RequestOptions{})
	require.NoError(t, err)
	assert.False(t, resp.IsJSON())
	assert.Equal(t, "pong", resp.Text())

	var v map[string]any
	assert.Error(t, resp.Decode(&v))
}

func TestRequest_SendsJSONBodyAndQuery(t *testing.T) {
	var gotBody map[string]bool
	var gotQuery url.Values
	var gotType string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotType = r.Header.Get("Content-Type")
		gotQuery = r.URL.Query()
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		writeJSON(w, http.StatusOK, map[string]string{"status": "success"})
	})

	q := url.Values{"page": {"2"}}
	_, err := c.Request(context.Background(), "/admin/job-providers/c1/toggle-status", RequestOptions{
		Method: http.MethodPatch,
		Body:   map[string]bool{"isActive": false},
		Query:  q,
	})
	require.NoError(t, err)
	assert.Equal(t, "application/json", gotType)
	assert.Equal(t, map[string]bool{"isActive": false}, gotBody)
	assert.Equal(t, "2", gotQuery.Get("page"))
}

func TestRequest_AbsoluteEndpointUsedVerbatim(t *testing.T) {
	hit := false
	other := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hit = true
		writeJSON(w, http.StatusOK, map[string]string{})
	}))
	defer other.Close()

	c, err := New("http://127.0.0.1:1")
	require.NoError(t, err)

	_, err = c.Request(context.Background(), other.URL+"/health", RequestOptions{})
	require.NoError(t, err)
	assert.True(t, hit)
}

func TestRequest_TransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	base := srv.URL
	srv.Close()

	c, err := New(base, WithTimeout(time.Second))
	require.NoError(t, err)

	_, err = c.Request(context.Background(), "/admin/job-posts", RequestOptions{})
	var transportErr *TransportError
	require.ErrorAs(t, err, &transportErr)
	assert.Equal(t, http.MethodGet, transportErr.Method)
	assert.Equal(t, 0, StatusCode(err))
}

func TestRequest_ContextCanceled(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{})
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := c.Request(ctx, "/admin/job-posts", RequestOptions{})
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}

type rejectAll struct{ calls int }

func (r *rejectAll) ValidateResponse(method, endpoint string, body []byte) error {
	r.calls++
	return errors.New("shape mismatch")
}

func TestRequest_ResponseValidator(t *testing.T) {
	v := &rejectAll{}
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{})
	}, WithResponseValidator(v))

	_, err := c.Request(context.Background(), "/admin/job-posts", RequestOptions{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "shape mismatch")
	assert.Equal(t, 1, v.calls)
}

func TestGet_DecodesIntoValue(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "10", r.URL.Query().Get("limit"))
		writeJSON(w, http.StatusOK, map[string]any{"status": "success", "data": map[string]int{"totalJobs": 4}})
	})

	var out struct {
		Status string `json:"status"`
		Data   struct {
			TotalJobs int `json:"totalJobs"`
		} `json:"data"`
	}
	err := c.Get(context.Background(), "/admin/job-seekers/count", url.Values{"limit": {"10"}}, &out)
	require.NoError(t, err)
	assert.Equal(t, 4, out.Data.TotalJobs)
}

func TestDelete_UsesMethod(t *testing.T) {
	var method string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		method = r.Method
		writeJSON(w, http.StatusOK, map[string]string{"status": "success", "message": "deleted"})
	})

	require.NoError(t, c.Delete(context.Background(), "/admin/job-posts/p1", nil))
	assert.Equal(t, http.MethodDelete, method)
}

func TestDelete_AcceptsNonJSONSuccess(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{"no content", func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		}},
		{"plain text", func(w http.ResponseWriter, _ *http.Request) {
			w.Header().Set("Content-Type", "text/plain")
			_, _ = w.Write([]byte("deleted"))
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestClient(t, tt.handler)
			var out struct {
				Status string `json:"status"`
			}
			require.NoError(t, c.Delete(context.Background(), "/admin/job-providers/c1", &out))
			assert.Empty(t, out.Status)
		})
	}
}

func TestDecode_EmptyBodyIsNoop(t *testing.T) {
	var out map[string]any
	require.NoError(t, (&Response{StatusCode: http.StatusNoContent}).Decode(&out))
	require.NoError(t, (&Response{StatusCode: http.StatusOK, ContentType: "application/json"}).Decode(&out))
	assert.Nil(t, out)

	err := (&Response{StatusCode: http.StatusOK, ContentType: "text/html", Body: []byte("<p>")}).Decode(&out)
	assert.ErrorContains(t, err, "unexpected content type")
}
