package payments

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/velvetbox/settlecore/internal/config"
	"github.com/velvetbox/settlecore/pkg/clients"
)

func newTestClient(t *testing.T, handler http.Handler) (*Client, *httptest.Server) {
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	cfg := &config.Config{
		GatewayAddress:   server.URL,
		GatewayKeyID:     "key-1",
		GatewayKeySecret: "secret-1",
	}
	return New(cfg, clients.NewHTTPClient()), server
}

func tokenHandler(tokenCalls *int64) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt64(tokenCalls, 1)
		json.NewEncoder(w).Encode(map[string]any{"token": "tok-1", "expires_in": 3600})
	}
}

func TestCreatePaymentOrder(t *testing.T) {
	var tokenCalls int64
	mux := http.NewServeMux()
	mux.HandleFunc("/api/v1/token", tokenHandler(&tokenCalls))
	mux.HandleFunc("/api/v1/orders", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer tok-1", r.Header.Get("Authorization"))

		var req struct {
			Receipt string `json:"receipt"`
			Amount  int64  `json:"amount"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "570048152732", req.Receipt)
		assert.Equal(t, int64(95400), req.Amount)

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(map[string]string{"id": "pay_ref_9a1"})
	})
	client, _ := newTestClient(t, mux)

	ref, err := client.CreatePaymentOrder(context.Background(), "570048152732", 95400)
	require.NoError(t, err)
	assert.Equal(t, "pay_ref_9a1", ref)

	// Second call reuses the cached token.
	_, err = client.CreatePaymentOrder(context.Background(), "570048152732", 95400)
	require.NoError(t, err)
	assert.Equal(t, int64(1), atomic.LoadInt64(&tokenCalls))
}

func TestCreatePaymentOrderRejectsBadChecksum(t *testing.T) {
	var hits int64
	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt64(&hits, 1)
	})
	client, _ := newTestClient(t, mux)

	// 570048152734 fails the Luhn check (the valid check digit is 2).
	_, err := client.CreatePaymentOrder(context.Background(), "570048152734", 95400)
	assert.ErrorIs(t, err, ErrRejected)
	assert.Equal(t, int64(0), atomic.LoadInt64(&hits))
}

func TestTokenRefreshIsShared(t *testing.T) {
	var tokenCalls int64
	mux := http.NewServeMux()
	mux.HandleFunc("/api/v1/token", tokenHandler(&tokenCalls))
	mux.HandleFunc("/api/v1/transfers", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{"id": "tr_800"})
	})
	client, _ := newTestClient(t, mux)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := client.RouteTransfer(context.Background(), "acct_7f2c1", 78228, "settlement")
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	assert.Equal(t, int64(1), atomic.LoadInt64(&tokenCalls))
}

func TestErrorNormalization(t *testing.T) {
	tests := []struct {
		name          string
		status        int
		expectedError error
	}{
		{name: "5xx is unavailable", status: http.StatusBadGateway, expectedError: ErrUnavailable},
		{name: "4xx is rejected", status: http.StatusUnprocessableEntity, expectedError: ErrRejected},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var tokenCalls int64
			mux := http.NewServeMux()
			mux.HandleFunc("/api/v1/token", tokenHandler(&tokenCalls))
			mux.HandleFunc("/api/v1/refunds", func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
			})
			client, _ := newTestClient(t, mux)

			_, err := client.Refund(context.Background(), "tx_5501", 95400)
			assert.ErrorIs(t, err, tt.expectedError)
		})
	}
}

func TestUnreachableGateway(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	server.Close()

	cfg := &config.Config{
		GatewayAddress:   server.URL,
		GatewayKeyID:     "key-1",
		GatewayKeySecret: "secret-1",
	}
	client := New(cfg, clients.NewHTTPClient())

	_, err := client.CreatePaymentOrder(context.Background(), "570048152732", 95400)
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestVerifySignature(t *testing.T) {
	cfg := &config.Config{GatewayKeySecret: "secret-1"}
	client := New(cfg, clients.NewHTTPClient())

	mac := hmac.New(sha256.New, []byte("secret-1"))
	mac.Write([]byte("pay_ref_9a1|tx_5501"))
	good := hex.EncodeToString(mac.Sum(nil))

	assert.True(t, client.VerifySignature("pay_ref_9a1", "tx_5501", good))
	assert.False(t, client.VerifySignature("pay_ref_9a1", "tx_5501", "deadbeef"))
	assert.False(t, client.VerifySignature("pay_ref_9a1", "tx_5502", good))
}
