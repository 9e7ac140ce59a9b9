package payments

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"github.com/velvetbox/settlecore/internal/config"
	"github.com/velvetbox/settlecore/pkg/clients"
	"github.com/velvetbox/settlecore/pkg/validate"
)

//go:generate mockgen -source=client.go -destination=client_mock.go -package=payments

const callTimeout = time.Second * 10

var (
	// ErrUnavailable gateway unreachable, timed out or returned 5xx.
	ErrUnavailable = errors.New("payment gateway unavailable")
	// ErrRejected gateway rejected the request with a client error.
	ErrRejected = errors.New("payment gateway rejected request")
)

// Gateway is the settlement/capture contract of the payment collaborator.
// External error shapes never leave this package.
type Gateway interface {
	CreatePaymentOrder(ctx context.Context, orderNumber string, amountMinor int64) (string, error)
	VerifySignature(paymentRef, paymentID, signature string) bool
	RouteTransfer(ctx context.Context, vendorAccount string, amountMinor int64, note string) (string, error)
	Refund(ctx context.Context, paymentID string, amountMinor int64) (string, error)
}

type Client struct {
	url       string
	keyID     string
	keySecret string
	client    clients.HTTPClientI

	mu       sync.Mutex
	token    string
	tokenExp time.Time
	refresh  singleflight.Group
}

func New(cfg *config.Config, client clients.HTTPClientI) *Client {
	return &Client{
		url:       cfg.GatewayAddress,
		keyID:     cfg.GatewayKeyID,
		keySecret: cfg.GatewayKeySecret,
		client:    client,
	}
}

type tokenResponse struct {
	Token     string `json:"token"`
	ExpiresIn int    `json:"expires_in"`
}

type createOrderRequest struct {
	Receipt string `json:"receipt"`
	Amount  int64  `json:"amount"`
}

type transferRequest struct {
	Account string `json:"account"`
	Amount  int64  `json:"amount"`
	Note    string `json:"note,omitempty"`
}

type refundRequest struct {
	PaymentID string `json:"payment_id"`
	Amount    int64  `json:"amount"`
}

type idResponse struct {
	ID string `json:"id"`
}

// accessToken returns a cached gateway token. Concurrent callers hitting an
// expired cache share one in-flight refresh.
func (c *Client) accessToken(ctx context.Context) (string, error) {
	c.mu.Lock()
	if c.token != "" && time.Now().Before(c.tokenExp) {
		token := c.token
		c.mu.Unlock()
		return token, nil
	}
	c.mu.Unlock()

	v, err, _ := c.refresh.Do("token", func() (any, error) {
		body, err := json.Marshal(map[string]string{"key_id": c.keyID, "key_secret": c.keySecret})
		if err != nil {
			return nil, err
		}
		status, resp, err := c.client.Post(ctx, c.url+"/api/v1/token", nil, body)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
		}
		if status != http.StatusOK {
			return nil, fmt.Errorf("%w: token endpoint returned %d", ErrUnavailable, status)
		}
		var tr tokenResponse
		if err := json.Unmarshal(resp, &tr); err != nil {
			return nil, fmt.Errorf("%w: bad token response: %v", ErrUnavailable, err)
		}

		c.mu.Lock()
		c.token = tr.Token
		c.tokenExp = time.Now().Add(time.Duration(tr.ExpiresIn) * time.Second)
		c.mu.Unlock()

		return tr.Token, nil
	})
	if err != nil {
		return "", err
	}
	return v.(string), nil
}

func (c *Client) post(ctx context.Context, path string, payload any) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, callTimeout)
	defer cancel()

	token, err := c.accessToken(ctx)
	if err != nil {
		return "", err
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}

	headers := http.Header{}
	headers.Set("Authorization", "Bearer "+token)
	headers.Set("Content-Type", "application/json")

	status, resp, err := c.client.Post(ctx, c.url+path, headers, body)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	switch {
	case status == http.StatusOK || status == http.StatusCreated:
		var r idResponse
		if err := json.Unmarshal(resp, &r); err != nil {
			return "", fmt.Errorf("%w: bad response body: %v", ErrUnavailable, err)
		}
		return r.ID, nil
	case status >= http.StatusInternalServerError:
		return "", fmt.Errorf("%w: status %d", ErrUnavailable, status)
	default:
		zap.L().Warn("gateway rejected request", zap.String("path", path), zap.Int("status", status))
		return "", fmt.Errorf("%w: status %d", ErrRejected, status)
	}
}

// CreatePaymentOrder registers a receipt with the gateway. The gateway
// rejects receipts without a valid check digit, so malformed numbers are
// refused before the call goes out.
func (c *Client) CreatePaymentOrder(ctx context.Context, orderNumber string, amountMinor int64) (string, error) {
	if !validate.IsLuhn(orderNumber) {
		return "", fmt.Errorf("%w: receipt number failed checksum", ErrRejected)
	}
	return c.post(ctx, "/api/v1/orders", createOrderRequest{Receipt: orderNumber, Amount: amountMinor})
}

// VerifySignature checks the HMAC-SHA256 signature sent with a payment
// confirmation: hex(hmac(paymentRef + "|" + paymentID, keySecret)).
func (c *Client) VerifySignature(paymentRef, paymentID, signature string) bool {
	mac := hmac.New(sha256.New, []byte(c.keySecret))
	mac.Write([]byte(paymentRef + "|" + paymentID))
	expected := hex.EncodeToString(mac.Sum(nil))
	return hmac.Equal([]byte(expected), []byte(signature))
}

func (c *Client) RouteTransfer(ctx context.Context, vendorAccount string, amountMinor int64, note string) (string, error) {
	return c.post(ctx, "/api/v1/transfers", transferRequest{Account: vendorAccount, Amount: amountMinor, Note: note})
}

func (c *Client) Refund(ctx context.Context, paymentID string, amountMinor int64) (string, error) {
	return c.post(ctx, "/api/v1/refunds", refundRequest{PaymentID: paymentID, Amount: amountMinor})
}
