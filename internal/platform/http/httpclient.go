// Package http provides the outbound HTTP client shared by the content providers.
package http

import (
	"net"
	"net/http"
	"time"
)

// DefaultTimeout bounds a whole provider round trip when the caller passes zero.
const DefaultTimeout = 10 * time.Second

// NewHTTPClient は外部API（動画検索・名言API）呼び出し用のHTTPクライアントを作成します。
//
// http.DefaultClient has no timeout, so providers always go through this client.
// The transport keeps a small idle pool because each request makes a single call.
func NewHTTPClient(timeout time.Duration) *http.Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	t := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   5 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		MaxIdleConns:        20,
		MaxIdleConnsPerHost: 10,
		IdleConnTimeout:     90 * time.Second,
		TLSHandshakeTimeout: 5 * time.Second,
	}
	return &http.Client{Timeout: timeout, Transport: t}
}
