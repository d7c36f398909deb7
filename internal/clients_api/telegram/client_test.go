package telegram

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"supply-chain-insights/internal/infra/retry"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const getMeResponse = `{"ok":true,"result":{"id":1,"is_bot":true,"first_name":"charts","username":"charts_bot"}}`

func sentResponse(id int) string {
	return fmt.Sprintf(`{"ok":true,"result":{"message_id":%d,"date":0,"chat":{"id":42,"type":"private"}}}`, id)
}

func newTestServer(t *testing.T, handle func(method string, w http.ResponseWriter)) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		method := r.URL.Path[strings.LastIndex(r.URL.Path, "/")+1:]
		w.Header().Set("Content-Type", "application/json")
		if method == "getMe" {
			fmt.Fprint(w, getMeResponse)
			return
		}
		handle(method, w)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func newTestClient(t *testing.T, srv *httptest.Server, maxRetries int) *Client {
	t.Helper()
	c, err := NewClient(Options{
		Token:         "test-token",
		APIEndpoint:   srv.URL + "/bot%s/%s",
		Timeout:       5 * time.Second,
		MaxRetries:    maxRetries,
		RatePerSecond: 100,
		BaseDelay:     time.Millisecond,
		MaxDelay:      10 * time.Millisecond,
	})
	require.NoError(t, err)
	return c
}

func writePNG(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "chart.png")
	require.NoError(t, os.WriteFile(path, []byte("\x89PNG\r\n\x1a\nfake"), 0644))
	return path
}

func TestSendPhotoRetriesTooManyRequests(t *testing.T) {
	var calls atomic.Int32
	srv := newTestServer(t, func(method string, w http.ResponseWriter) {
		assert.Equal(t, "sendPhoto", method)
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusTooManyRequests)
			fmt.Fprint(w, `{"ok":false,"error_code":429,"description":"Too Many Requests: retry after 1","parameters":{"retry_after":1}}`)
			return
		}
		fmt.Fprint(w, sentResponse(7))
	})

	c := newTestClient(t, srv, 2)
	id, err := c.SendPhoto(context.Background(), 42, writePNG(t), "<b>Supply Chain Optimization Results</b>")
	require.NoError(t, err)
	assert.Equal(t, 7, id)
	assert.Equal(t, int32(2), calls.Load())
}

func TestSendPhotoPermanentError(t *testing.T) {
	var calls atomic.Int32
	srv := newTestServer(t, func(method string, w http.ResponseWriter) {
		calls.Add(1)
		w.WriteHeader(http.StatusBadRequest)
		fmt.Fprint(w, `{"ok":false,"error_code":400,"description":"Bad Request: chat not found"}`)
	})

	c := newTestClient(t, srv, 3)
	_, err := c.SendPhoto(context.Background(), 42, writePNG(t), "")
	require.Error(t, err)

	var ae *retry.APIError
	require.ErrorAs(t, err, &ae)
	assert.Equal(t, 400, ae.StatusCode)
	assert.Equal(t, int32(1), calls.Load())
}

func TestSendText(t *testing.T) {
	srv := newTestServer(t, func(method string, w http.ResponseWriter) {
		assert.Equal(t, "sendMessage", method)
		fmt.Fprint(w, sentResponse(11))
	})

	c := newTestClient(t, srv, 0)
	id, err := c.SendText(context.Background(), 42, "route ready")
	require.NoError(t, err)
	assert.Equal(t, 11, id)
}

func TestNewClientRejectsBadToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		fmt.Fprint(w, `{"ok":false,"error_code":401,"description":"Unauthorized"}`)
	}))
	defer srv.Close()

	_, err := NewClient(Options{Token: "bad", APIEndpoint: srv.URL + "/bot%s/%s"})
	assert.Error(t, err)

	_, err = NewClient(Options{})
	assert.Error(t, err)
}

func TestParseChatID(t *testing.T) {
	id, err := ParseChatID(" -1001234567890 ")
	require.NoError(t, err)
	assert.Equal(t, int64(-1001234567890), id)

	_, err = ParseChatID("@channel")
	assert.Error(t, err)
}

func TestTruncateCaption(t *testing.T) {
	short := "Supply Chain Optimization Results"
	assert.Equal(t, short, TruncateCaption(short))

	long := strings.Repeat("é", MaxCaptionLength+10)
	got := TruncateCaption(long)
	assert.Equal(t, MaxCaptionLength, len([]rune(got)))
	assert.True(t, strings.HasSuffix(got, "…"))
}

func TestTruncateCaptionCutsAtLineBreak(t *testing.T) {
	long := "<b>Title</b>\n" + strings.Repeat("\nA&amp;B: 1%", 200)

	got := TruncateCaption(long)
	assert.LessOrEqual(t, len([]rune(got)), MaxCaptionLength)
	assert.True(t, strings.HasSuffix(got, "\n…"))
	assert.Equal(t, strings.Count(got, "&"), strings.Count(got, "&amp;"))
}
