package clients

import (
	"errors"
	"io"
	"net/http"
	"time"
)

// requestTimeout bounds every call to the external measurement store; the
// telemetry retry loop supplies its own backoff on top.
const requestTimeout = 15 * time.Second

var ErrFailedCloseResponseBody = errors.New("failed close response body")

type HTTPClientI interface {
	Do(req *http.Request) (*http.Response, error)
	Get(url string, headers http.Header) (statusCode int, respBody []byte, respHeaders http.Header, err error)
}

// HTTPClient is the outbound client used by the telemetry pusher. The inner
// HTTPClientI is swappable so tests can intercept requests.
type HTTPClient struct {
	client HTTPClientI
}

func NewHTTPClient() *HTTPClient {
	return &HTTPClient{
		client: &httpClientAdapter{
			client: &http.Client{Timeout: requestTimeout},
		},
	}
}

func (h *HTTPClient) Do(req *http.Request) (*http.Response, error) {
	return h.client.Do(req)
}

func (h *HTTPClient) Get(url string, headers http.Header) (int, []byte, http.Header, error) {
	return h.client.Get(url, headers)
}

func (h *HTTPClient) SetClient(client HTTPClientI) {
	h.client = client
}

type httpClientAdapter struct {
	client *http.Client
}

func (a *httpClientAdapter) Do(req *http.Request) (*http.Response, error) {
	return a.client.Do(req)
}

func (a *httpClientAdapter) Get(url string, headers http.Header) (statusCode int, respBody []byte, respHeaders http.Header, err error) {
	req, err := http.NewRequest(http.MethodGet, url, http.NoBody)
	if err != nil {
		return
	}
	req.Header = headers

	resp, err := a.client.Do(req)
	if err != nil {
		return
	}
	defer func() {
		if e := resp.Body.Close(); e != nil {
			err = errors.Join(err, ErrFailedCloseResponseBody)
		}
	}()

	respBody, err = io.ReadAll(resp.Body)
	if err != nil {
		return
	}
	statusCode = resp.StatusCode
	respHeaders = resp.Header
	return
}
