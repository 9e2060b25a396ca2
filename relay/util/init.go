package util

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"time"

	"github.com/songquanpeng/fal-relay/common/config"
	"github.com/songquanpeng/fal-relay/common/logger"
	"golang.org/x/net/proxy"
)

// HTTPClient is shared by every upstream call.
var HTTPClient *http.Client

func init() {
	HTTPClient = NewHTTPClient(config.RelayTimeout, config.RelayProxy)
}

// NewHTTPClient builds an upstream client. timeout 0 means no deadline; proxyURL may be
// http(s):// or socks5:// and is ignored when it cannot be parsed.
func NewHTTPClient(timeout int, proxyURL string) *http.Client {
	transport := http.DefaultTransport.(*http.Transport).Clone()
	if proxyURL != "" {
		if err := applyProxy(transport, proxyURL); err != nil {
			logger.SysError(fmt.Sprintf("invalid RELAY_PROXY %q, connecting directly: %s", proxyURL, err.Error()))
		}
	}
	client := &http.Client{Transport: transport}
	if timeout > 0 {
		client.Timeout = time.Duration(timeout) * time.Second
	}
	return client
}

func applyProxy(transport *http.Transport, proxyURL string) error {
	u, err := url.Parse(proxyURL)
	if err != nil {
		return err
	}
	switch u.Scheme {
	case "http", "https":
		transport.Proxy = http.ProxyURL(u)
		return nil
	case "socks5", "socks5h":
		dialer, err := proxy.FromURL(u, proxy.Direct)
		if err != nil {
			return err
		}
		transport.Proxy = nil
		if contextDialer, ok := dialer.(proxy.ContextDialer); ok {
			transport.DialContext = contextDialer.DialContext
		} else {
			transport.DialContext = func(ctx context.Context, network, addr string) (net.Conn, error) {
				return dialer.Dial(network, addr)
			}
		}
		return nil
	}
	return fmt.Errorf("unsupported proxy scheme %q", u.Scheme)
}
