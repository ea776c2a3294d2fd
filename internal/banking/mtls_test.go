package banking

import (
	"context"
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/tls"
	"crypto/x509"
	"crypto/x509/pkix"
	"encoding/pem"
	"math/big"
	"net"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/clearpath-au/go-remit/internal/config"
	"github.com/clearpath-au/go-remit/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mtlsFixture struct {
	clientCertFile string
	clientKeyFile  string
	caCertFile     string
	serverTLS      *tls.Config
}

// newMTLSFixture mints a throwaway CA plus client and server certs so the
// handshake can be exercised end to end against a local listener.
func newMTLSFixture(t *testing.T) mtlsFixture {
	t.Helper()

	caKey, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	require.NoError(t, err)

	caTemplate := &x509.Certificate{
		SerialNumber:          big.NewInt(1),
		Subject:               pkix.Name{CommonName: "test partner ca"},
		NotBefore:             time.Now().Add(-time.Hour),
		NotAfter:              time.Now().Add(time.Hour),
		IsCA:                  true,
		KeyUsage:              x509.KeyUsageCertSign,
		BasicConstraintsValid: true,
	}
	caDER, err := x509.CreateCertificate(rand.Reader, caTemplate, caTemplate, &caKey.PublicKey, caKey)
	require.NoError(t, err)
	caCert, err := x509.ParseCertificate(caDER)
	require.NoError(t, err)

	issue := func(serial int64, cn string, extUsage x509.ExtKeyUsage) (*ecdsa.PrivateKey, []byte) {
		key, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
		require.NoError(t, err)

		template := &x509.Certificate{
			SerialNumber: big.NewInt(serial),
			Subject:      pkix.Name{CommonName: cn},
			NotBefore:    time.Now().Add(-time.Hour),
			NotAfter:     time.Now().Add(time.Hour),
			KeyUsage:     x509.KeyUsageDigitalSignature,
			ExtKeyUsage:  []x509.ExtKeyUsage{extUsage},
			IPAddresses:  []net.IP{net.IPv4(127, 0, 0, 1), net.IPv6loopback},
		}
		der, err := x509.CreateCertificate(rand.Reader, template, caCert, &key.PublicKey, caKey)
		require.NoError(t, err)
		return key, der
	}

	serverKey, serverDER := issue(2, "test partner server", x509.ExtKeyUsageServerAuth)
	clientKey, clientDER := issue(3, "go-remit client", x509.ExtKeyUsageClientAuth)

	dir := t.TempDir()
	caPEM := pem.EncodeToMemory(&pem.Block{Type: "CERTIFICATE", Bytes: caDER})
	clientCertPEM := pem.EncodeToMemory(&pem.Block{Type: "CERTIFICATE", Bytes: clientDER})
	clientKeyDER, err := x509.MarshalECPrivateKey(clientKey)
	require.NoError(t, err)
	clientKeyPEM := pem.EncodeToMemory(&pem.Block{Type: "EC PRIVATE KEY", Bytes: clientKeyDER})

	fixture := mtlsFixture{
		clientCertFile: filepath.Join(dir, "client.crt"),
		clientKeyFile:  filepath.Join(dir, "client.key"),
		caCertFile:     filepath.Join(dir, "ca.crt"),
	}
	require.NoError(t, os.WriteFile(fixture.clientCertFile, clientCertPEM, 0o600))
	require.NoError(t, os.WriteFile(fixture.clientKeyFile, clientKeyPEM, 0o600))
	require.NoError(t, os.WriteFile(fixture.caCertFile, caPEM, 0o600))

	caPool := x509.NewCertPool()
	caPool.AddCert(caCert)
	fixture.serverTLS = &tls.Config{
		Certificates: []tls.Certificate{{
			Certificate: [][]byte{serverDER},
			PrivateKey:  serverKey,
		}},
		ClientCAs:  caPool,
		ClientAuth: tls.RequireAndVerifyClientCert,
	}

	return fixture
}

func TestMTLSProvider_PresentsClientCertificate(t *testing.T) {
	fixture := newMTLSFixture(t)

	var peerCerts atomic.Int32
	srv := httptest.NewUnstartedServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.TLS != nil {
			peerCerts.Store(int32(len(r.TLS.PeerCertificates)))
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"ACCEPTED","providerRef":"MTLS-11AA22BB33CC","bankTxnId":"BTX-77"}`))
	}))
	srv.TLS = fixture.serverTLS
	srv.StartTLS()
	defer srv.Close()

	provider, err := NewMTLSProvider(config.BankProviderConfig{
		Name:           "mtls",
		BaseURL:        srv.URL,
		Timeout:        5 * time.Second,
		ClientCertFile: fixture.clientCertFile,
		ClientKeyFile:  fixture.clientKeyFile,
		CACertFile:     fixture.caCertFile,
	}, nil)
	require.NoError(t, err)

	res, err := provider.SubmitPayout(context.Background(), eftPayout("mtls-key-1"))
	require.NoError(t, err)
	assert.Equal(t, models.PayoutStatusAccepted, res.Status)
	assert.Equal(t, "MTLS-11AA22BB33CC", res.ProviderRef)
	assert.Equal(t, int32(1), peerCerts.Load(), "partner must see exactly the configured client certificate")
}

func TestMTLSProvider_RejectionIsTerminal(t *testing.T) {
	fixture := newMTLSFixture(t)

	srv := httptest.NewUnstartedServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(`{"code":"ACCOUNT_CLOSED","message":"destination account closed"}`))
	}))
	srv.TLS = fixture.serverTLS
	srv.StartTLS()
	defer srv.Close()

	provider, err := NewMTLSProvider(config.BankProviderConfig{
		Name:           "mtls",
		BaseURL:        srv.URL,
		Timeout:        5 * time.Second,
		ClientCertFile: fixture.clientCertFile,
		ClientKeyFile:  fixture.clientKeyFile,
		CACertFile:     fixture.caCertFile,
	}, nil)
	require.NoError(t, err)

	res, err := provider.SubmitPayout(context.Background(), eftPayout("mtls-key-2"))
	require.NoError(t, err)
	assert.Equal(t, models.PayoutStatusRejected, res.Status)
	assert.Equal(t, "ACCOUNT_CLOSED", res.ProviderCode)
}
