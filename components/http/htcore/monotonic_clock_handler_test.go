package htcore

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/open-control-systems/monoclock/components/status"
	"github.com/open-control-systems/monoclock/components/system/syscore"
)

type testMonotonicClock struct {
	mu  sync.Mutex
	ms  uint64
	err error
}

func (c *testMonotonicClock) NowMs() (uint64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.err != nil {
		return 0, c.err
	}

	c.ms++

	return c.ms, nil
}

func (*testMonotonicClock) SourceKind() syscore.SourceKind {
	return syscore.SourceKindMonotonic
}

func (c *testMonotonicClock) setError(err error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.err = err
}

func newTestMonotonicClockServer(clock MonotonicClockReader) *httptest.Server {
	mux := http.NewServeMux()
	mux.Handle("/api/v1/system/monotonic", NewMonotonicClockHandler(clock))

	return httptest.NewServer(mux)
}

func readMonotonicClock(t *testing.T, url string) (int, string, http.Header) {
	resp, err := http.Get(url)
	require.Nil(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.Nil(t, err)

	return resp.StatusCode, string(body), resp.Header
}

func TestHTTPMonotonicClockGet(t *testing.T) {
	clock := &testMonotonicClock{ms: 41}

	server := newTestMonotonicClockServer(clock)
	defer server.Close()

	url := server.URL + "/api/v1/system/monotonic"

	code, body, header := readMonotonicClock(t, url)
	require.Equal(t, http.StatusOK, code)
	require.Equal(t, "42", body)
	require.Equal(t, "monotonic", header.Get("X-Clock-Source"))
	require.Equal(t, "text/plain; charset=utf-8", header.Get("Content-Type"))

	code, body, _ = readMonotonicClock(t, url)
	require.Equal(t, http.StatusOK, code)
	require.Equal(t, "43", body)
}

func TestHTTPMonotonicClockMethodNotAllowed(t *testing.T) {
	server := newTestMonotonicClockServer(&testMonotonicClock{})
	defer server.Close()

	resp, err := http.Post(server.URL+"/api/v1/system/monotonic", "text/plain",
		strings.NewReader("1"))
	require.Nil(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
}

func TestHTTPMonotonicClockUnavailable(t *testing.T) {
	clock := &testMonotonicClock{}
	clock.setError(status.StatusClockUnavailable)

	server := newTestMonotonicClockServer(clock)
	defer server.Close()

	code, body, _ := readMonotonicClock(t, server.URL+"/api/v1/system/monotonic")
	require.Equal(t, http.StatusServiceUnavailable, code)
	require.Contains(t, body, status.StatusClockUnavailable.Error())
}

func TestHTTPMonotonicClockServer(t *testing.T) {
	clock := syscore.NewClock(syscore.NewDefaultSource())

	mux := http.NewServeMux()
	mux.Handle("/api/v1/system/monotonic", NewMonotonicClockHandler(clock))

	server, err := NewServer(mux, ServerParams{Host: "127.0.0.1"})
	require.Nil(t, err)

	server.Start()
	defer server.Close()

	var prev uint64

	for i := 0; i < 10; i++ {
		code, body, header := readMonotonicClock(t, server.URL()+"/api/v1/system/monotonic")
		require.Equal(t, http.StatusOK, code)
		require.Equal(t, clock.SourceKind().String(), header.Get("X-Clock-Source"))

		ms, err := strconv.ParseUint(body, 10, 64)
		require.Nil(t, err)
		require.Greater(t, ms, prev)

		prev = ms
	}
}
