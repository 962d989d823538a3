package client

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/zoomie/transations/internal/models"
)

func newServer(t *testing.T, status int, body string) (*httptest.Server, *atomic.Int32) {
	t.Helper()
	calls := new(atomic.Int32)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, TransactionsPath, r.URL.Path)
		assert.Empty(t, r.URL.RawQuery)
		assert.Empty(t, r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv, calls
}

func TestFetchTransactionsWithData(t *testing.T) {
	srv, calls := newServer(t, http.StatusOK,
		`{"user_has_data": true, "transactions": [{"timestamp":"2024-01-01","amount":10}]}`)

	resp, err := New(srv.URL + "/").FetchTransactions(context.Background())

	require.NoError(t, err)
	assert.Equal(t, int32(1), calls.Load())
	assert.True(t, resp.UserHasData)
	assert.Equal(t, []models.TransactionPoint{{Timestamp: "2024-01-01", Amount: 10}}, resp.Transactions)
}

func TestFetchTransactionsWithoutData(t *testing.T) {
	srv, _ := newServer(t, http.StatusOK, `{"user_has_data": false, "transactions": []}`)

	resp, err := New(srv.URL).FetchTransactions(context.Background())

	require.NoError(t, err)
	assert.False(t, resp.UserHasData)
	assert.Empty(t, resp.Transactions)
}

func TestFetchTransactionsStatusError(t *testing.T) {
	srv, calls := newServer(t, http.StatusInternalServerError, "boom")

	_, err := New(srv.URL).FetchTransactions(context.Background())

	var statusErr *StatusError
	require.True(t, errors.As(err, &statusErr))
	assert.Equal(t, http.StatusInternalServerError, statusErr.StatusCode)
	assert.Equal(t, "boom", statusErr.Body)
	assert.True(t, errors.Is(err, ErrFetch))
	assert.Equal(t, int32(1), calls.Load(), "no retries")
}

func TestFetchTransactionsMalformedJSON(t *testing.T) {
	srv, _ := newServer(t, http.StatusOK, `{not json`)

	_, err := New(srv.URL).FetchTransactions(context.Background())

	assert.True(t, errors.Is(err, ErrMalformedBody))
	assert.True(t, errors.Is(err, ErrFetch))
}

func TestFetchTransactionsTransportError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	_, err := New(url).FetchTransactions(context.Background())

	assert.True(t, errors.Is(err, ErrFetch))
}

func TestFetchTransactionsHonoursContext(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer srv.Close()
	defer close(release)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := New(srv.URL).FetchTransactions(ctx)

	assert.True(t, errors.Is(err, ErrFetch))
	assert.True(t, errors.Is(err, context.DeadlineExceeded))
}

func TestWithTimeoutBoundsFetch(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer srv.Close()
	defer close(release)

	_, err := New(srv.URL, WithTimeout(50*time.Millisecond)).FetchTransactions(context.Background())

	assert.True(t, errors.Is(err, ErrFetch))
	assert.True(t, errors.Is(err, context.DeadlineExceeded))
	assert.Zero(t, http.DefaultClient.Timeout)
}

func TestFetchTransactionsLogsUserHasData(t *testing.T) {
	srv, _ := newServer(t, http.StatusOK, `{"user_has_data": false}`)
	core, logs := observer.New(zapcore.DebugLevel)

	_, err := New(srv.URL, WithLogger(zap.New(core))).FetchTransactions(context.Background())

	require.NoError(t, err)
	entries := logs.FilterField(zap.Bool("user_has_data", false)).All()
	assert.Len(t, entries, 1)
}
