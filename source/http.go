package source

import (
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"

	"solarGallery/gallery"
)

const userAgent = "solarGallery/1.0"

// HTTP fetches images over http(s).
type HTTP struct {
	client  *http.Client
	MaxSize int64
}

func NewHTTP(timeout time.Duration, maxSize int64) *HTTP {
	return &HTTP{
		client:  &http.Client{Timeout: timeout},
		MaxSize: maxSize,
	}
}

func (h *HTTP) do(method, url string) (*http.Response, error) {
	req, err := http.NewRequest(method, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", userAgent)
	return h.client.Do(req)
}

func (h *HTTP) Exists(locator string) bool {
	resp, err := h.do(http.MethodHead, locator)
	if err != nil {
		logrus.Debugf("HEAD %s failed: %v", locator, err)
		return false
	}
	resp.Body.Close()
	return resp.StatusCode == http.StatusOK
}

func (h *HTTP) ReadAll(locator string) ([]byte, error) {
	resp, err := h.do(http.MethodGet, locator)
	if err != nil {
		return nil, fmt.Errorf("failed to download %s: %w", locator, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound || resp.StatusCode == http.StatusGone:
		return nil, fmt.Errorf("%s returned status %d: %w", locator, resp.StatusCode, gallery.ErrNotFound)
	case resp.StatusCode != http.StatusOK:
		return nil, fmt.Errorf("failed to download image: status %d", resp.StatusCode)
	}

	var body io.Reader = resp.Body
	if h.MaxSize > 0 {
		body = io.LimitReader(resp.Body, h.MaxSize+1)
	}
	data, err := io.ReadAll(body)
	if err != nil {
		return nil, err
	}
	if h.MaxSize > 0 && int64(len(data)) > h.MaxSize {
		return nil, fmt.Errorf("%s exceeds %d bytes: %w", locator, h.MaxSize, gallery.ErrDecodeFailure)
	}
	return data, nil
}
