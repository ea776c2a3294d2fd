package banking

import (
	"context"
	"crypto/tls"
	"crypto/x509"
	"encoding/json"
	"fmt"
	"net/http"
	"os"

	"github.com/clearpath-au/go-remit/internal/common"
	"github.com/clearpath-au/go-remit/internal/common/httpclient"
	"github.com/clearpath-au/go-remit/internal/common/metrics"
	"github.com/clearpath-au/go-remit/internal/config"
	"github.com/clearpath-au/go-remit/internal/models"
	"github.com/clearpath-au/go-remit/internal/monitoring"

	"github.com/go-resty/resty/v2"
)

// MTLSProvider submits payouts to the banking partner over mutually
// authenticated TLS. Transport failures and 5xx responses come back as
// transient; a well-formed rejection body is a terminal result.
type MTLSProvider struct {
	wrapper *httpclient.RequestWrapper
	baseURL string
}

type mtlsPayoutResponse struct {
	Status      string          `json:"status"`
	ProviderRef string          `json:"providerRef"`
	BankTxnID   string          `json:"bankTxnId"`
	Code        string          `json:"code"`
	Message     string          `json:"message"`
	Raw         json.RawMessage `json:"-"`
}

func NewMTLSProvider(cfg config.BankProviderConfig, mtc metrics.Metrics) (*MTLSProvider, error) {
	cert, err := tls.LoadX509KeyPair(cfg.ClientCertFile, cfg.ClientKeyFile)
	if err != nil {
		return nil, fmt.Errorf("load client keypair: %w", err)
	}

	caPEM, err := os.ReadFile(cfg.CACertFile)
	if err != nil {
		return nil, fmt.Errorf("read ca bundle: %w", err)
	}
	caPool := x509.NewCertPool()
	if !caPool.AppendCertsFromPEM(caPEM) {
		return nil, fmt.Errorf("no usable certificates in %s", cfg.CACertFile)
	}

	client := resty.New().
		SetTimeout(cfg.Timeout).
		SetTLSClientConfig(&tls.Config{
			Certificates: []tls.Certificate{cert},
			RootCAs:      caPool,
			MinVersion:   tls.VersionTLS12,
		})
	// wrap the TLS-configured transport rather than installing a fresh one;
	// a fresh transport would drop the client certificate and CA pool.
	client.SetTransport(monitoring.NewMiddlewareRoundTripper(client.GetClient().Transport))

	return &MTLSProvider{
		wrapper: httpclient.NewRequestWrapper(client, mtc, "bank-partner", "[BANK-MTLS]"),
		baseURL: cfg.BaseURL,
	}, nil
}

func (p *MTLSProvider) Capabilities() Capability {
	return Capability{
		Name:          "mtls",
		MovesMoney:    true,
		SupportsRails: []models.Rail{models.RailEFT, models.RailBPAY, models.RailPayTo},
		StatusPolling: true,
	}
}

func (p *MTLSProvider) SubmitPayout(ctx context.Context, req models.PayoutRequest) (models.PayoutResult, error) {
	res, err := p.wrapper.DoRequest(ctx, http.MethodPost, p.baseURL+"/v1/payouts", func(r *resty.Request) *resty.Request {
		return r.
			SetHeader("Content-Type", "application/json").
			SetHeader("X-Idempotency-Key", req.IdempotencyKey).
			SetBody(req)
	})
	if err != nil {
		// connection refused, handshake failure, timeout. Nothing definitive
		// was heard from the partner, so retrying is safe under the
		// idempotency key.
		return models.PayoutResult{}, common.Transient(err)
	}

	body := res.Body()

	if res.StatusCode() >= http.StatusInternalServerError {
		return models.PayoutResult{}, common.Transient(fmt.Errorf("partner responded %s", res.Status()))
	}

	var parsed mtlsPayoutResponse
	if jsonErr := json.Unmarshal(body, &parsed); jsonErr != nil {
		return models.PayoutResult{}, common.Transient(fmt.Errorf("unparseable partner response (%s): %w", res.Status(), jsonErr))
	}

	if res.StatusCode() >= http.StatusBadRequest {
		// the partner understood the request and said no. Terminal.
		return models.PayoutResult{
			Status:       models.PayoutStatusRejected,
			ProviderCode: parsed.Code,
			ProviderRef:  parsed.ProviderRef,
			Raw:          json.RawMessage(body),
		}, nil
	}

	status := models.PayoutStatus(parsed.Status)
	switch status {
	case models.PayoutStatusAccepted, models.PayoutStatusPending, models.PayoutStatusRejected:
	default:
		return models.PayoutResult{}, common.Transient(fmt.Errorf("unknown partner status %q", parsed.Status))
	}

	return models.PayoutResult{
		Status:       status,
		ProviderCode: parsed.Code,
		ProviderRef:  parsed.ProviderRef,
		BankTxnID:    parsed.BankTxnID,
		Raw:          json.RawMessage(body),
	}, nil
}
