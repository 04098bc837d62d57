package api

import (
	"net"
	"net/http"
	"os"
	"time"

	"pulse-cli/auth"
	"pulse-cli/types"
)

const dialTimeout = 10 * time.Second
const reqTimeout = 30 * time.Second

type Api struct{}

var apiHost string

var Client types.ApiClient = (*Api)(nil)

func init() {
	if host := os.Getenv("PULSE_API_HOST"); host != "" {
		apiHost = host
	} else if os.Getenv("PULSE_ENV") == "development" {
		apiHost = "http://localhost:8000"
	} else {
		apiHost = "https://api.pulse.social"
	}
}

func getApiHost() string {
	return apiHost
}

type sessionTransport struct {
	underlyingTransport http.RoundTripper
}

// RoundTrip executes a single HTTP transaction and attaches the session cookie
func (t *sessionTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	auth.SetRequestSession(req)
	return t.underlyingTransport.RoundTrip(req)
}

var netDialer = &net.Dialer{
	Timeout: dialTimeout,
}

var unauthenticatedClient = &http.Client{
	Transport: &http.Transport{
		Dial: netDialer.Dial,
	},
	Timeout: reqTimeout,
}

var authenticatedClient = &http.Client{
	Transport: &sessionTransport{
		underlyingTransport: &http.Transport{
			Dial: netDialer.Dial,
		},
	},
	Timeout: reqTimeout,
}
