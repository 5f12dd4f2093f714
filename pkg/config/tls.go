package config

import (
	"crypto/tls"
	"crypto/x509"

	"github.com/spf13/afero"
	"google.golang.org/grpc/credentials"

	"github.com/sidkik/ironscribe/pkg/errors"
)

// TLS holds the PEM files used to secure the connection between the client
// and server. TLS is enabled only if all three are set. Both sides present
// a certificate signed by CACert.
type TLS struct {
	CACert string `json:"caCert,omitempty"`
	Cert   string `json:"cert,omitempty"`
	Key    string `json:"key,omitempty"`
}

// Enabled returns whether TLS is configured.
func (cfg TLS) Enabled() bool {
	return cfg.CACert != "" && cfg.Cert != "" && cfg.Key != ""
}

// Validate returns an error if TLS is only partially configured.
func (cfg TLS) Validate() error {
	if cfg.Enabled() || (cfg.CACert == "" && cfg.Cert == "" && cfg.Key == "") {
		return nil
	}
	return errors.NewFriendlyError("TLS requires a CA certificate, " +
		"a certificate, and a key. Either set all three or none of them.")
}

// ServerCredentials returns transport credentials that require clients to
// present a certificate signed by the CA.
func (cfg TLS) ServerCredentials() (credentials.TransportCredentials, error) {
	cert, pool, err := cfg.load()
	if err != nil {
		return nil, err
	}

	return credentials.NewTLS(&tls.Config{
		Certificates: []tls.Certificate{cert},
		ClientCAs:    pool,
		ClientAuth:   tls.RequireAndVerifyClientCert,
		MinVersion:   tls.VersionTLS12,
	}), nil
}

// ClientCredentials returns transport credentials that verify the server
// against the CA. `serverName` is the host name the server's certificate
// must be valid for.
func (cfg TLS) ClientCredentials(serverName string) (credentials.TransportCredentials, error) {
	cert, pool, err := cfg.load()
	if err != nil {
		return nil, err
	}

	return credentials.NewTLS(&tls.Config{
		Certificates: []tls.Certificate{cert},
		RootCAs:      pool,
		ServerName:   serverName,
		MinVersion:   tls.VersionTLS12,
	}), nil
}

func (cfg TLS) load() (tls.Certificate, *x509.CertPool, error) {
	if err := cfg.Validate(); err != nil {
		return tls.Certificate{}, nil, err
	}

	caPEM, err := afero.ReadFile(fs, cfg.CACert)
	if err != nil {
		return tls.Certificate{}, nil, errors.WithContext(err, "read CA certificate")
	}

	pool := x509.NewCertPool()
	if !pool.AppendCertsFromPEM(caPEM) {
		return tls.Certificate{}, nil, errors.NewFriendlyError(
			"No certificates found in CA file %q.", cfg.CACert)
	}

	certPEM, err := afero.ReadFile(fs, cfg.Cert)
	if err != nil {
		return tls.Certificate{}, nil, errors.WithContext(err, "read certificate")
	}

	keyPEM, err := afero.ReadFile(fs, cfg.Key)
	if err != nil {
		return tls.Certificate{}, nil, errors.WithContext(err, "read key")
	}

	cert, err := tls.X509KeyPair(certPEM, keyPEM)
	if err != nil {
		return tls.Certificate{}, nil, errors.WithContext(err, "parse key pair")
	}
	return cert, pool, nil
}
