// Package nis provides an HTTP client for the node REST API: network
// time, chain info, account state, mosaic definitions and transaction
// announcement.
package nis

import (
	"bytes"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/xemtech/xemwallet/pkg/types"
)

// Client is an HTTP client for one node endpoint.
type Client struct {
	endpoint string
	http     *http.Client
}

// New creates a new client targeting the given endpoint URL, e.g.
// "http://localhost:7890".
func New(endpoint string) *Client {
	return NewWithTimeout(endpoint, 10*time.Second)
}

// NewWithTimeout creates a new client with a custom HTTP timeout.
func NewWithTimeout(endpoint string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		endpoint: endpoint,
		http: &http.Client{
			Timeout: timeout,
		},
	}
}

// Error is returned when the node responds with an error body.
type Error struct {
	Status  int
	Err     string
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("node error %d (%s): %s", e.Status, e.Err, e.Message)
}

// errorBody is the node's standard error response.
type errorBody struct {
	TimeStamp int64  `json:"timeStamp"`
	Err       string `json:"error"`
	Message   string `json:"message"`
	Status    int    `json:"status"`
}

// get performs a GET request and unmarshals the JSON body into result.
func (c *Client) get(path string, query url.Values, result interface{}) error {
	u := c.endpoint + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	resp, err := c.http.Get(u)
	if err != nil {
		return fmt.Errorf("http request: %w", err)
	}
	defer resp.Body.Close()

	return decode(resp, result)
}

// post performs a POST request with a JSON body.
func (c *Client) post(path string, body, result interface{}) error {
	data, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("marshal request: %w", err)
	}

	resp, err := c.http.Post(c.endpoint+path, "application/json", bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("http request: %w", err)
	}
	defer resp.Body.Close()

	return decode(resp, result)
}

func decode(resp *http.Response, result interface{}) error {
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var eb errorBody
		if err := json.Unmarshal(data, &eb); err == nil && eb.Status != 0 {
			return &Error{Status: eb.Status, Err: eb.Err, Message: eb.Message}
		}
		return &Error{Status: resp.StatusCode, Err: resp.Status, Message: string(data)}
	}

	if result != nil {
		if err := json.Unmarshal(data, result); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}

// NetworkTime returns the node's network time in seconds. Transactions
// must be stamped with this clock, not the local one.
func (c *Client) NetworkTime() (int64, error) {
	var r networkTimeResult
	if err := c.get("/time-sync/network-time", nil, &r); err != nil {
		return 0, fmt.Errorf("network time: %w", err)
	}
	// The node reports milliseconds.
	return r.ReceiveTimeStamp / 1000, nil
}

// ChainHeight returns the node's current chain height.
func (c *Client) ChainHeight() (uint64, error) {
	var r heightResult
	if err := c.get("/chain/height", nil, &r); err != nil {
		return 0, fmt.Errorf("chain height: %w", err)
	}
	return r.Height, nil
}

// Heartbeat checks that the node is alive and responding.
func (c *Client) Heartbeat() error {
	var r NodeStatus
	if err := c.get("/heartbeat", nil, &r); err != nil {
		return fmt.Errorf("heartbeat: %w", err)
	}
	if r.Code != 1 {
		return fmt.Errorf("heartbeat: node reported code %d: %s", r.Code, r.Message)
	}
	return nil
}

// Account returns the account state and metadata for an address.
func (c *Client) Account(address types.Address) (*AccountMetaDataPair, error) {
	q := url.Values{"address": {string(address)}}
	var r AccountMetaDataPair
	if err := c.get("/account/get", q, &r); err != nil {
		return nil, fmt.Errorf("account %s: %w", address, err)
	}
	return &r, nil
}

// MosaicDefinitions returns all mosaic definitions registered under a
// namespace, following the node's id-based pagination.
func (c *Client) MosaicDefinitions(namespace string) ([]MosaicDefinition, error) {
	var out []MosaicDefinition
	lastID := int64(0)
	for {
		q := url.Values{"namespace": {namespace}}
		if lastID > 0 {
			q.Set("id", strconv.FormatInt(lastID, 10))
		}

		var page mosaicDefinitionPage
		if err := c.get("/namespace/mosaic/definition/page", q, &page); err != nil {
			return nil, fmt.Errorf("mosaic definitions for %s: %w", namespace, err)
		}
		if len(page.Data) == 0 {
			return out, nil
		}
		for _, entry := range page.Data {
			out = append(out, entry.Mosaic)
			lastID = entry.Meta.ID
		}
	}
}

// MosaicSupply returns the current total supply of a mosaic in whole
// units.
func (c *Client) MosaicSupply(id types.MosaicID) (uint64, error) {
	q := url.Values{"mosaicId": {id.FullName()}}
	var r mosaicSupplyResult
	if err := c.get("/mosaic/supply", q, &r); err != nil {
		return 0, fmt.Errorf("mosaic supply for %s: %w", id.FullName(), err)
	}
	return r.Supply, nil
}

// Announce submits a signed transaction: data is the serialized
// transaction, signature its detached signature. The node validates and
// broadcasts it.
func (c *Client) Announce(data, signature []byte) (*AnnounceResult, error) {
	req := announceRequest{
		Data:      hex.EncodeToString(data),
		Signature: hex.EncodeToString(signature),
	}
	var r AnnounceResult
	if err := c.post("/transaction/announce", req, &r); err != nil {
		return nil, fmt.Errorf("announce: %w", err)
	}
	if r.Code != announceSuccess {
		return &r, fmt.Errorf("announce rejected: code %d: %s", r.Code, r.Message)
	}
	return &r, nil
}
