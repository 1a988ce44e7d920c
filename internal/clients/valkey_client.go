package clients

import (
	"context"
	"crypto/tls"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/valkey-io/valkey-go"
)

var (
	valkeyInstance *ValkeyClient
	valkeyOnce     sync.Once
	valkeyInitErr  error
)

type ValkeyClient struct {
	Client valkey.Client
	mu     sync.RWMutex
}

const VALKEY_RETRIES = 3

func valkeyOptions() valkey.ClientOption {
	opts := valkey.ClientOption{
		InitAddress: []string{
			os.Getenv("VALKEY_INIT_ADDRESS"),
		},
		Password:         os.Getenv("VALKEY_PASSWORD"),
		ConnWriteTimeout: 5 * time.Second,
		SelectDB:         0,
	}

	if os.Getenv("VALKEY_TLS") == "true" {
		opts.TLSConfig = &tls.Config{InsecureSkipVerify: false}
	}
	return opts
}

func newValkeyClient(opts valkey.ClientOption) (valkey.Client, error) {
	client, err := valkey.NewClient(opts)
	if err != nil {
		return nil, fmt.Errorf("[ValkeyClient] failed to create Valkey: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Second*3)
	defer cancel()

	if err := client.Do(ctx, client.B().Ping().Build()).Error(); err != nil {
		client.Close()
		return nil, fmt.Errorf("[ValkeyClient] failed to ping Valkey: %w", err)
	}
	return client, nil
}

// InitValkey connects once using VALKEY_INIT_ADDRESS, VALKEY_PASSWORD and VALKEY_TLS.
func InitValkey() (*ValkeyClient, error) {
	valkeyOnce.Do(func() {
		client, err := newValkeyClient(valkeyOptions())
		if err != nil {
			valkeyInitErr = err
			return
		}

		slog.Info("[ValkeyClient] Successfully connected to valkey")
		valkeyInstance = &ValkeyClient{Client: client}
	})
	return valkeyInstance, valkeyInitErr
}

func (vc *ValkeyClient) recreateClient() {
	vc.mu.Lock()
	defer vc.mu.Unlock()

	slog.Warn("[ValkeyClient] Attempting to recreate Valkey client...")
	client, err := newValkeyClient(valkeyOptions())
	if err != nil {
		slog.Error("[ValkeyClient] Recreate failed",
			slog.String("error", err.Error()))
		return
	}

	vc.Client.Close()
	vc.Client = client
	slog.Info("[ValkeyClient] Successfully reconnected to valkey")
}

func (vc *ValkeyClient) client() valkey.Client {
	vc.mu.RLock()
	defer vc.mu.RUnlock()
	return vc.Client
}

func CloseValkey() {
	if valkeyInstance != nil {
		valkeyInstance.client().Close()
	}
}

// Get implements translation.Cache.
func (vc *ValkeyClient) Get(ctx context.Context, key string) (string, bool, error) {
	c := vc.client()
	res := vc.DoWithRetry(ctx, c.B().Get().Key(key).Build(), VALKEY_RETRIES)

	value, err := res.ToString()
	if valkey.IsValkeyNil(err) {
		return "", false, nil
	}
	if err != nil {
		if isConnectionError(err) {
			vc.recreateClient()
		}
		return "", false, err
	}
	return value, true, nil
}

// Set implements translation.Cache.
func (vc *ValkeyClient) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	set := vc.client().B().Set().Key(key).Value(value)

	var cmd valkey.Completed
	if seconds := expirySeconds(ttl); seconds > 0 {
		cmd = set.ExSeconds(seconds).Build()
	} else {
		cmd = set.Build()
	}

	if err := vc.DoWithRetry(ctx, cmd, VALKEY_RETRIES).Error(); err != nil {
		if isConnectionError(err) {
			vc.recreateClient()
		}
		return err
	}
	return nil
}

// expirySeconds is the EX value for ttl. Zero means the key does not expire;
// Valkey rejects EX 0.
func expirySeconds(ttl time.Duration) int64 {
	if ttl < time.Second {
		return 0
	}
	return int64(ttl / time.Second)
}

func (vc *ValkeyClient) DoWithRetry(ctx context.Context, completed valkey.Completed, retries int) valkey.ValkeyResult {
	var result valkey.ValkeyResult
	// pinned so the command survives being sent more than once
	completed = completed.Pin()
	for i := 0; i < retries; i++ {
		result = vc.client().Do(ctx, completed)
		if err := result.Error(); err == nil || valkey.IsValkeyNil(err) {
			break
		}

		slog.Warn("[ValkeyClient] Do failed",
			slog.Int("attempt", i+1),
			slog.String("error", result.Error().Error()))

		select {
		case <-ctx.Done():
			return result
		case <-time.After(250 * time.Millisecond):
		}
	}

	return result
}

func isConnectionError(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "connection refused") ||
		strings.Contains(msg, "EOF") ||
		strings.Contains(msg, "i/o timeout")
}
