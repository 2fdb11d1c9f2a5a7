package xlookup

import (
	"context"
	"errors"
	"net/http"
	"net/netip"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeFetcher 按 URL 返回预置响应，未命中时返回 404。
type fakeFetcher struct {
	payloads map[string][]byte
	err      error
	calls    []string
}

func (f *fakeFetcher) Fetch(_ context.Context, url string) ([]byte, error) {
	f.calls = append(f.calls, url)
	if f.err != nil {
		return nil, f.err
	}
	body, ok := f.payloads[url]
	if !ok {
		return nil, &StatusError{StatusCode: http.StatusNotFound, URL: url}
	}
	return body, nil
}

func TestNew_Defaults(t *testing.T) {
	c := New()
	cfg := c.Config()
	assert.Equal(t, DefaultConfig(), cfg)
	assert.NotNil(t, c.fetcher)
	assert.NotNil(t, c.logger)
}

func TestNew_PartialConfigFilled(t *testing.T) {
	c := New(WithConfig(Config{WhoisEndpoint: "https://example.test"}))
	cfg := c.Config()
	assert.Equal(t, "https://example.test", cfg.WhoisEndpoint)
	assert.Equal(t, DefaultConfig().CurrentEndpoint, cfg.CurrentEndpoint)
	assert.Equal(t, DefaultTimeout, cfg.Timeout)
}

func TestClient_Whois(t *testing.T) {
	fetcher := &fakeFetcher{payloads: map[string][]byte{
		"https://ipapi.co/8.8.8.8/json/": []byte(`{
			"ip": "8.8.8.8",
			"version": "IPv4",
			"city": "Mountain View",
			"region": "California",
			"country_name": "United States",
			"asn": "AS15169",
			"org": "GOOGLE"
		}`),
	}}
	c := New(WithFetcher(fetcher))

	rec, err := c.Whois(context.Background(), netip.MustParseAddr("8.8.8.8"))
	require.NoError(t, err)
	assert.Equal(t, "8.8.8.8", rec.IP)
	assert.Equal(t, "GOOGLE", rec.Org)
	assert.Equal(t, "AS15169", rec.ASN)
	require.Len(t, fetcher.calls, 1)
	assert.Equal(t, "https://ipapi.co/8.8.8.8/json/", fetcher.calls[0])
}

func TestClient_Whois_InvalidAddr(t *testing.T) {
	c := New(WithFetcher(&fakeFetcher{}))
	_, err := c.Whois(context.Background(), netip.Addr{})
	assert.ErrorIs(t, err, ErrInvalidAddress)
}

func TestClient_WhoisString(t *testing.T) {
	fetcher := &fakeFetcher{payloads: map[string][]byte{
		"https://ipapi.co/2001:db8::1/json/": []byte(`{"ip": "2001:db8::1", "version": "IPv6"}`),
	}}
	c := New(WithFetcher(fetcher))

	rec, err := c.WhoisString(context.Background(), "2001:db8::1")
	require.NoError(t, err)
	assert.Equal(t, "IPv6", rec.Version)

	_, err = c.WhoisString(context.Background(), "not an ip")
	assert.ErrorIs(t, err, ErrInvalidAddress)
}

func TestClient_Whois_FetchError(t *testing.T) {
	wantErr := errors.New("boom")
	c := New(WithFetcher(&fakeFetcher{err: wantErr}))
	_, err := c.Whois(context.Background(), netip.MustParseAddr("8.8.8.8"))
	assert.ErrorIs(t, err, wantErr)
}

func TestClient_Whois_DecodeError(t *testing.T) {
	fetcher := &fakeFetcher{payloads: map[string][]byte{
		"https://ipapi.co/8.8.8.8/json/": []byte("<html>rate limited</html>"),
	}}
	c := New(WithFetcher(fetcher))
	_, err := c.Whois(context.Background(), netip.MustParseAddr("8.8.8.8"))
	assert.ErrorIs(t, err, ErrDecodeFailed)
}

func TestClient_Current(t *testing.T) {
	fetcher := &fakeFetcher{payloads: map[string][]byte{
		"https://ipinfo.io/json": []byte(`{
			"ip": "203.0.113.77",
			"hostname": "example.net",
			"city": "Amsterdam",
			"country": "NL",
			"org": "AS64496 Example"
		}`),
	}}
	c := New(WithFetcher(fetcher))

	rec, err := c.Current(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "203.0.113.77", rec.IP)
	assert.Equal(t, "NL", rec.Country)

	addr, err := rec.Addr()
	require.NoError(t, err)
	assert.Equal(t, netip.MustParseAddr("203.0.113.77"), addr)
}

func TestClient_CurrentAddr(t *testing.T) {
	fetcher := &fakeFetcher{payloads: map[string][]byte{
		"https://ipinfo.io/json": []byte(`{"ip": "198.51.100.9"}`),
	}}
	c := New(WithFetcher(fetcher))

	addr, err := c.CurrentAddr(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "198.51.100.9", addr.String())
}

func TestClient_CurrentAddr_BadIP(t *testing.T) {
	fetcher := &fakeFetcher{payloads: map[string][]byte{
		"https://ipinfo.io/json": []byte(`{"ip": "garbage"}`),
	}}
	c := New(WithFetcher(fetcher))
	_, err := c.CurrentAddr(context.Background())
	assert.ErrorIs(t, err, ErrInvalidAddress)
}

func TestClient_StatusErrorPropagates(t *testing.T) {
	c := New(WithFetcher(&fakeFetcher{}))
	_, err := c.Current(context.Background())
	var statusErr *StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusNotFound, statusErr.StatusCode)
}

func TestClient_ConfigTimeoutUsed(t *testing.T) {
	c := New(WithConfig(Config{Timeout: 3 * time.Second}))
	assert.Equal(t, 3*time.Second, c.Config().Timeout)
}
