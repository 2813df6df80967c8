// Package namecheap is a client for the Namecheap domain-registrar XML API.
//
// Every operation is a single signed HTTP GET against the API endpoint whose
// response is an XML envelope; see https://www.namecheap.com/support/api/ for
// the remote side of the contract. The client performs no retries and keeps no
// state between calls, so a single Client is safe for concurrent use.
package namecheap

import (
	"context"
	"net/url"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/sirupsen/logrus"
)

const (
	// ProductionEndpoint is the live API. Mutating commands spend real money.
	ProductionEndpoint = "https://api.namecheap.com/xml.response"
	// SandboxEndpoint answers the same protocol against test data.
	SandboxEndpoint = "https://api.sandbox.namecheap.com/xml.response"

	defaultTimeout   = 30 * time.Second
	defaultUserAgent = "namecheap-go"
)

// ClientOptions carries the credentials and endpoint selection. Credentials
// are supplied by the embedding application; nothing is read from files or
// the environment here.
type ClientOptions struct {
	APIUser  string
	APIKey   string
	Username string
	ClientIP string

	// Sandbox selects the sandbox endpoint. Endpoint, when set, overrides
	// both (used by tests to point at a local fake).
	Sandbox  bool
	Endpoint string

	Timeout   time.Duration
	UserAgent string
}

// Client issues Namecheap API commands. The zero value is not usable; call
// NewClient.
type Client struct {
	opts     ClientOptions
	endpoint string
	http     *resty.Client
	log      *logrus.Entry
}

func NewClient(opts ClientOptions) (*Client, error) {
	opts.APIUser = strings.TrimSpace(opts.APIUser)
	opts.APIKey = strings.TrimSpace(opts.APIKey)
	opts.Username = strings.TrimSpace(opts.Username)
	opts.ClientIP = strings.TrimSpace(opts.ClientIP)

	if opts.APIUser == "" || opts.APIKey == "" || opts.Username == "" || opts.ClientIP == "" {
		return nil, &InputError{Reason: "missing credentials (api user, api key, username and client ip are all required)"}
	}
	if opts.Timeout <= 0 {
		opts.Timeout = defaultTimeout
	}
	if opts.UserAgent == "" {
		opts.UserAgent = defaultUserAgent
	}

	endpoint := opts.Endpoint
	if endpoint == "" {
		if opts.Sandbox {
			endpoint = SandboxEndpoint
		} else {
			endpoint = ProductionEndpoint
		}
	}

	httpc := resty.New().
		SetTimeout(opts.Timeout).
		SetHeader("User-Agent", opts.UserAgent).
		SetRetryCount(0)

	return &Client{
		opts:     opts,
		endpoint: endpoint,
		http:     httpc,
		log:      logrus.WithField("component", "namecheap"),
	}, nil
}

// Endpoint returns the URL commands are issued against.
func (c *Client) Endpoint() string {
	return c.endpoint
}

// query issues one GET for the named command and returns the raw response
// body. Connection failures, timeouts and non-2xx statuses surface as
// *TransportError; nothing is retried.
func (c *Client) query(ctx context.Context, command string, params url.Values) ([]byte, error) {
	q := url.Values{}
	q.Set("ApiUser", c.opts.APIUser)
	q.Set("ApiKey", c.opts.APIKey)
	q.Set("UserName", c.opts.Username)
	q.Set("ClientIp", c.opts.ClientIP)
	q.Set("Command", command)
	for k, vs := range params {
		for _, v := range vs {
			q.Add(k, v)
		}
	}

	c.log.WithField("command", command).Debug("issuing API request")

	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParamsFromValues(q).
		Get(c.endpoint)
	if err != nil {
		return nil, &TransportError{Err: err}
	}
	if resp.IsError() {
		return nil, &TransportError{StatusCode: resp.StatusCode()}
	}

	c.log.WithFields(logrus.Fields{
		"command": command,
		"status":  resp.StatusCode(),
		"bytes":   len(resp.Body()),
	}).Debug("API response received")

	return resp.Body(), nil
}

// call runs command and unmarshals the response envelope into out, which must
// embed envelope. A Status=ERROR envelope surfaces as *APIError.
func (c *Client) call(ctx context.Context, command string, params url.Values, out enveloped) error {
	body, err := c.query(ctx, command, params)
	if err != nil {
		return err
	}
	return parseEnvelope(body, out)
}
