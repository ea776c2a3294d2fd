package kms

import (
	"context"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/clearpath-au/go-remit/internal/common/cache"
	"github.com/clearpath-au/go-remit/internal/common/httpclient"
	"github.com/clearpath-au/go-remit/internal/common/log"
	"github.com/clearpath-au/go-remit/internal/common/metrics"
	"github.com/clearpath-au/go-remit/internal/config"
	"github.com/clearpath-au/go-remit/internal/monitoring"

	"github.com/go-resty/resty/v2"
)

// defaultVerdictTTL bounds how long a cached verdict can outlive a key
// rotation on the KMS side.
const defaultVerdictTTL = 5 * time.Minute

// HTTPVerifier delegates signature checks to the managed KMS. Verdicts are
// cached; a (key, payload, signature) triple always verifies the same way, so
// evidence rebuilds over the same tickets skip the round trip.
type HTTPVerifier struct {
	wrapper    *httpclient.RequestWrapper
	baseURL    string
	keyID      string
	verdicts   cache.Client[bool]
	verdictTTL time.Duration
}

type HTTPVerifierOption func(*HTTPVerifier)

// WithVerdictCache swaps the default in-process verdict cache, e.g. for a
// shared redis-backed one.
func WithVerdictCache(c cache.Client[bool]) HTTPVerifierOption {
	return func(v *HTTPVerifier) {
		v.verdicts = c
	}
}

type verifyRequest struct {
	KeyID     string `json:"keyId"`
	Payload   string `json:"payload"`
	Signature string `json:"signature"`
}

type verifyResponse struct {
	Valid bool `json:"valid"`
}

type signRequest struct {
	KeyID   string `json:"keyId"`
	Payload string `json:"payload"`
}

type signResponse struct {
	Signature string `json:"signature"`
}

func NewHTTPVerifier(cfg config.KmsConfig, mtc metrics.Metrics, opts ...HTTPVerifierOption) *HTTPVerifier {
	client := resty.New().
		SetTimeout(cfg.Timeout).
		SetTransport(monitoring.NewMiddlewareRoundTripper(nil))

	v := &HTTPVerifier{
		wrapper:    httpclient.NewRequestWrapper(client, mtc, "kms", "[KMS]"),
		baseURL:    cfg.BaseURL,
		keyID:      cfg.KeyID,
		verdicts:   cache.NewInMemoryClient[bool](),
		verdictTTL: defaultVerdictTTL,
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

func (v *HTTPVerifier) Verify(ctx context.Context, payload, sig []byte, keyID string) (bool, error) {
	if keyID == "" {
		keyID = v.keyID
	}

	key := verdictCacheKey(keyID, payload, sig)
	if verdict, err := v.verdicts.Get(ctx, key); err == nil {
		return verdict, nil
	}

	verdict, err := v.verify(ctx, payload, sig, keyID)
	if err != nil {
		return false, err
	}

	// a cache outage only costs the round trip, never the verdict.
	if err := v.verdicts.Set(ctx, key, verdict, v.verdictTTL); err != nil {
		log.Warnf(ctx, "[KMS] caching verify verdict: %v", err)
	}
	return verdict, nil
}

func (v *HTTPVerifier) verify(ctx context.Context, payload, sig []byte, keyID string) (bool, error) {
	res, err := v.wrapper.DoRequest(ctx, http.MethodPost, v.baseURL+"/v1/verify", func(r *resty.Request) *resty.Request {
		return r.SetHeader("Content-Type", "application/json").SetBody(verifyRequest{
			KeyID:     keyID,
			Payload:   base64.StdEncoding.EncodeToString(payload),
			Signature: base64.StdEncoding.EncodeToString(sig),
		})
	})
	if err != nil {
		return false, err
	}
	if res.StatusCode() != http.StatusOK {
		return false, fmt.Errorf("kms verify responded %s", res.Status())
	}

	var parsed verifyResponse
	if err := json.Unmarshal(res.Body(), &parsed); err != nil {
		return false, fmt.Errorf("unparseable kms verify response: %w", err)
	}
	return parsed.Valid, nil
}

func verdictCacheKey(keyID string, payload, sig []byte) string {
	h := sha256.New()
	h.Write([]byte(keyID))
	h.Write([]byte{0})
	h.Write(payload)
	h.Write([]byte{0})
	h.Write(sig)
	return "kms:verify:" + hex.EncodeToString(h.Sum(nil))
}

func (v *HTTPVerifier) Sign(ctx context.Context, payload []byte, keyID string) ([]byte, error) {
	if keyID == "" {
		keyID = v.keyID
	}

	res, err := v.wrapper.DoRequest(ctx, http.MethodPost, v.baseURL+"/v1/sign", func(r *resty.Request) *resty.Request {
		return r.SetHeader("Content-Type", "application/json").SetBody(signRequest{
			KeyID:   keyID,
			Payload: base64.StdEncoding.EncodeToString(payload),
		})
	})
	if err != nil {
		return nil, err
	}
	if res.StatusCode() != http.StatusOK {
		return nil, fmt.Errorf("kms sign responded %s", res.Status())
	}

	var parsed signResponse
	if err := json.Unmarshal(res.Body(), &parsed); err != nil {
		return nil, fmt.Errorf("unparseable kms sign response: %w", err)
	}
	return base64.StdEncoding.DecodeString(parsed.Signature)
}
