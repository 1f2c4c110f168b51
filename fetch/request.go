package fetch

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"reflect"
	"strings"
)

// Request is a small wrapper around *http.Request
type Request struct {
	*http.Request

	// Optional response body encoding. Leave empty for automatic detection.
	// If you're having issues with auto-detection, set this.
	Encoding string

	// Set this true to cancel Request.
	Cancelled bool

	retryCounter int
}

// Cancel request.
func (r *Request) Cancel() {
	r.Cancelled = true
}

// NewRequest returns a new Request given a method, URL, optional body, optional headers.
func NewRequest(method, u string, body any, headers map[string]string) (*Request, error) {
	var reqBody io.Reader = http.NoBody
	if body != nil {
		// Convert body to io.Reader
		switch data := body.(type) {
		default:
			if kind := reflect.ValueOf(body).Kind(); kind == reflect.Struct || kind == reflect.Map {
				j, err := json.Marshal(body)
				if err != nil {
					return nil, err
				}
				if headers == nil {
					headers = make(map[string]string)
				}
				if _, ok := headers["Content-Type"]; !ok {
					headers["Content-Type"] = "application/json"
				}
				reqBody = bytes.NewReader(j)
			}
		case *bytes.Buffer:
			reqBody = data
		case *bytes.Reader:
			reqBody = data
		case *strings.Reader:
			reqBody = data
		case string:
			reqBody = bytes.NewBufferString(data)
		case []byte:
			reqBody = bytes.NewBuffer(data)
		}
	}

	req, err := http.NewRequest(method, u, reqBody)
	if err != nil {
		return nil, err
	}

	if headers != nil {
		// set headers
		for k, v := range headers {
			req.Header.Set(k, v)
		}
	}
	setDefaultHeader(req.Header)

	return &Request{Request: req}, nil
}

func setDefaultHeader(reqHeader http.Header) {
	for k, v := range DefaultHeaders {
		if _, ok := reqHeader[k]; !ok {
			reqHeader.Set(k, v)
		}
	}
}
