package fyers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-resty/resty/v2"
	"github.com/pkg/errors"
)

// Envelope is the top-level JSON object every endpoint returns. The remote
// contract is not controlled by this client, so payload fields stay untyped;
// only the status indicator ("s" or "status") is interpreted.
type Envelope map[string]any

type requestOptions struct {
	params map[string]string
	body   any
}

// doRequest runs one blocking round trip through the shared transport and
// normalizes the response. Every public method funnels through here.
func (c *Client) doRequest(ctx context.Context, method, endpoint string, opt *requestOptions) (Envelope, error) {
	r := c.http.R().SetContext(ctx)
	if opt != nil {
		if opt.params != nil {
			r.SetQueryParams(opt.params)
		}
		if opt.body != nil {
			r.SetBody(opt.body)
		}
	}

	var (
		resp *resty.Response
		err  error
	)
	switch method {
	case http.MethodGet:
		resp, err = r.Get(endpoint)
	case http.MethodPost:
		resp, err = r.Post(endpoint)
	case http.MethodPut:
		resp, err = r.Put(endpoint)
	case http.MethodDelete:
		resp, err = r.Delete(endpoint)
	default:
		return nil, errors.Errorf("unsupported method: %s", method)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "%s %s", method, endpoint)
	}
	return normalize(resp)
}

// normalize applies the uniform response contract: non-2xx status is a
// transport failure, the body must decode as JSON, and the envelope's
// "s"/"status" field must be one of the accepted success tokens.
func normalize(resp *resty.Response) (Envelope, error) {
	if resp.IsError() {
		return nil, &TransportError{StatusCode: resp.StatusCode(), Body: string(resp.Body())}
	}

	var data Envelope
	if err := json.Unmarshal(resp.Body(), &data); err != nil {
		return nil, &DecodeError{Err: err}
	}

	status, ok := envelopeStatus(data)
	if !ok || (status != "ok" && status != "success") {
		return nil, &APIError{Body: data}
	}
	return data, nil
}

// envelopeStatus resolves the status indicator. "s" wins when it carries a
// usable value; "status" is consulted only when "s" is absent, null, or an
// empty string. A non-string "s" is a failed indicator, not a fallthrough.
func envelopeStatus(data Envelope) (string, bool) {
	if v, present := data["s"]; present && v != nil {
		s, isString := v.(string)
		if !isString {
			return "", false
		}
		if s != "" {
			return s, true
		}
	}
	if v, present := data["status"]; present {
		s, isString := v.(string)
		return s, isString
	}
	return "", false
}

// stringField returns data[key] if it is a non-empty string, else "".
func stringField(data Envelope, key string) string {
	if v, ok := data[key].(string); ok {
		return v
	}
	return ""
}
