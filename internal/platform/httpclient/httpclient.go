package httpclient

import (
	"errors"
	"io"
	"net/http"
	"time"
)

const (
	DefaultTimeout = 10 * time.Second

	// MaxBodyBytes limita cuánto leemos de un upstream (1MB).
	MaxBodyBytes = 1 << 20
)

// Client envuelve un único *http.Client reutilizable (connection pooling).
// Se crea una vez en el arranque y se comparte entre todos los providers;
// crear un cliente por request desperdicia el pool de conexiones.
type Client struct {
	HTTP *http.Client
}

// New crea un Client con timeout razonable.
func New(timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		HTTP: &http.Client{
			Timeout: timeout,
		},
	}
}

// NewWithTransport permite inyectar un Transport (p.ej. para tests).
func NewWithTransport(timeout time.Duration, tr http.RoundTripper) *Client {
	c := New(timeout)
	if tr != nil {
		c.HTTP.Transport = tr
	}
	return c
}

// Do ejecuta el request con el cliente compartido.
func (c *Client) Do(req *http.Request) (*http.Response, error) {
	if c == nil || c.HTTP == nil {
		return nil, errors.New("httpclient: nil client")
	}
	return c.HTTP.Do(req)
}

// ReadBody materializa el body con un tope de bytes.
// El caller sigue siendo responsable de resp.Body.Close().
func ReadBody(r io.Reader) ([]byte, error) {
	return io.ReadAll(io.LimitReader(r, MaxBodyBytes))
}
