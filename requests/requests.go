package requests

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strconv"
)

func setupHeaders(req *http.Request) {
	req.Header.Add("User-Agent", "DmhyFeed 0.1")
	req.Header.Add("cache-control", "no-cache")
	req.Header.Add("Accept-Charset", "utf-8")
}

// Get fetches a route and returns its body. A status of 400 or above is an
// error carrying the status code, with the body still returned for logging.
func Get(client *http.Client, route string, headers map[string]string) ([]byte, error) {
	if client == nil {
		return []byte{}, errors.New("null transport client")
	}
	ctx := context.Background()
	req, err := http.NewRequestWithContext(ctx, "GET", route, nil)
	if err != nil {
		return nil, err
	}
	setupHeaders(req)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	res, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()
	body, err := io.ReadAll(res.Body)
	if res.StatusCode >= 400 {
		return body, errors.New(strconv.Itoa(res.StatusCode))
	}
	return body, err
}
