package payments

import (
	"bytes"
	"context"
	"encoding/xml"
	"fmt"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"unicode"

	"gateway_bridge/internal/domain/entities"
	"gateway_bridge/internal/infrastructure/transport"

	"go.uber.org/zap"
)

const braintreeAPIVersion = "6"

var braintreeBaseURLs = map[BraintreeEnvironment]string{
	BraintreeSandbox:    "https://api.sandbox.braintreegateway.com:443",
	BraintreeProduction: "https://api.braintreegateway.com:443",
}

// BraintreeHTTPClient implements BraintreeTransactor on top of the Braintree XML
// gateway API. Nested params use camelCase keys and are sent as dasherized elements.
type BraintreeHTTPClient struct {
	doer     transport.Doer
	baseURLs map[BraintreeEnvironment]string
	logger   *zap.Logger
}

var _ BraintreeTransactor = (*BraintreeHTTPClient)(nil)

func NewBraintreeHTTPClient(doer transport.Doer, logger *zap.Logger) *BraintreeHTTPClient {
	if logger == nil {
		logger = zap.NewNop()
	}
	urls := make(map[BraintreeEnvironment]string, len(braintreeBaseURLs))
	for env, u := range braintreeBaseURLs {
		urls[env] = u
	}
	return &BraintreeHTTPClient{doer: doer, baseURLs: urls, logger: logger}
}

// WithEndpoint overrides the base URL of one environment.
func (c *BraintreeHTTPClient) WithEndpoint(env BraintreeEnvironment, baseURL string) *BraintreeHTTPClient {
	c.baseURLs[env] = strings.TrimRight(baseURL, "/")
	return c
}

func (c *BraintreeHTTPClient) Perform(ctx context.Context, cfg BraintreeClientConfig, action BraintreeAction, params map[string]any) (BraintreeResult, error) {
	base, ok := c.baseURLs[cfg.Environment]
	if !ok {
		return nil, &entities.UnsupportedValueError{Kind: "braintree environment", Value: string(cfg.Environment)}
	}
	transactions := base + "/merchants/" + url.PathEscape(cfg.MerchantID) + "/transactions"

	body := make(map[string]any, len(params))
	for k, v := range params {
		if k != "id" {
			body[k] = v
		}
	}
	id := url.PathEscape(fmt.Sprintf("%v", params["id"]))

	var method, endpoint string
	switch action {
	case BraintreeActionSale:
		method, endpoint = http.MethodPost, transactions
		body["type"] = "sale"
	case BraintreeActionSubmitForSettlement:
		method, endpoint = http.MethodPut, transactions+"/"+id+"/submit_for_settlement"
	case BraintreeActionVoid:
		method, endpoint = http.MethodPut, transactions+"/"+id+"/void"
		body = nil
	case BraintreeActionRefund:
		method, endpoint = http.MethodPost, transactions+"/"+id+"/refund"
	default:
		return nil, &entities.UnsupportedValueError{Kind: "braintree action", Value: string(action)}
	}

	req := transport.Request{
		Method: method,
		URL:    endpoint,
		Headers: map[string]string{
			"Accept":       "application/xml",
			"Content-Type": "application/xml",
			"X-ApiVersion": braintreeAPIVersion,
		},
		Username: cfg.PublicKey,
		Password: cfg.PrivateKey,
	}
	if len(body) > 0 {
		payload, err := encodeBraintreeXML("transaction", body)
		if err != nil {
			return nil, err
		}
		req.Body = payload
	}

	c.logger.Debug("[payment][braintree] request", zap.String("method", method), zap.String("action", string(action)))
	reply, err := c.doer.Do(ctx, req)
	if err != nil {
		return nil, &entities.TransportError{Gateway: braintreeName, Err: err}
	}

	switch reply.StatusCode {
	case http.StatusOK, http.StatusCreated, http.StatusUnprocessableEntity:
		return decodeBraintreeResult(reply.Body)
	default:
		return nil, &entities.TransportError{
			Gateway: braintreeName,
			Err:     &transport.StatusError{StatusCode: reply.StatusCode, Body: reply.Body},
		}
	}
}

func encodeBraintreeXML(root string, params map[string]any) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(xml.Header)
	enc := xml.NewEncoder(&buf)
	if err := encodeBraintreeElement(enc, root, params); err != nil {
		return nil, err
	}
	if err := enc.Flush(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func encodeBraintreeElement(enc *xml.Encoder, name string, v any) error {
	start := xml.StartElement{Name: xml.Name{Local: dasherize(name)}}
	switch t := v.(type) {
	case nil:
		return nil
	case map[string]any:
		if err := enc.EncodeToken(start); err != nil {
			return err
		}
		keys := make([]string, 0, len(t))
		for k := range t {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			if err := encodeBraintreeElement(enc, k, t[k]); err != nil {
				return err
			}
		}
		return enc.EncodeToken(start.End())
	case bool:
		start.Attr = append(start.Attr, xml.Attr{Name: xml.Name{Local: "type"}, Value: "boolean"})
		return enc.EncodeElement(strconv.FormatBool(t), start)
	case string:
		return enc.EncodeElement(t, start)
	default:
		return enc.EncodeElement(fmt.Sprintf("%v", t), start)
	}
}

type braintreeNode struct {
	XMLName xml.Name
	Attrs   []xml.Attr      `xml:",any,attr"`
	Content string          `xml:",chardata"`
	Nodes   []braintreeNode `xml:",any"`
}

func decodeBraintreeResult(body []byte) (BraintreeResult, error) {
	var root braintreeNode
	if err := xml.Unmarshal(body, &root); err != nil {
		return nil, &entities.ParseError{Gateway: braintreeName, Err: err}
	}

	doc, _ := root.value().(map[string]any)
	if doc == nil {
		doc = map[string]any{}
	}

	switch root.XMLName.Local {
	case "transaction":
		return BraintreeSuccessResult{Transaction: braintreeTransactionFrom(doc)}, nil
	case "api-error-response":
		result := BraintreeErrorResult{Message: stringAttr(doc, "message")}
		if txn, ok := doc["transaction"].(map[string]any); ok {
			t := braintreeTransactionFrom(txn)
			result.Transaction = &t
		}
		return result, nil
	default:
		return nil, &entities.ParseError{Gateway: braintreeName, Err: fmt.Errorf("unexpected root element %q", root.XMLName.Local)}
	}
}

func (n braintreeNode) attr(name string) string {
	for _, a := range n.Attrs {
		if a.Name.Local == name {
			return a.Value
		}
	}
	return ""
}

func (n braintreeNode) value() any {
	if n.attr("nil") == "true" {
		return nil
	}
	if n.attr("type") == "array" {
		items := make([]any, 0, len(n.Nodes))
		for _, child := range n.Nodes {
			items = append(items, child.value())
		}
		return items
	}
	if len(n.Nodes) == 0 {
		text := strings.TrimSpace(n.Content)
		if n.attr("type") == "boolean" {
			return text == "true"
		}
		return text
	}
	m := make(map[string]any, len(n.Nodes))
	for _, child := range n.Nodes {
		m[camelize(child.XMLName.Local)] = child.value()
	}
	return m
}

func braintreeTransactionFrom(m map[string]any) BraintreeTransaction {
	return BraintreeTransaction{
		ID:                           stringAttr(m, "id"),
		Status:                       stringAttr(m, "status"),
		AVSPostalCodeResponseCode:    stringAttr(m, "avsPostalCodeResponseCode"),
		AVSStreetAddressResponseCode: stringAttr(m, "avsStreetAddressResponseCode"),
		CVVResponseCode:              stringAttr(m, "cvvResponseCode"),
		Attributes:                   m,
	}
}

func stringAttr(m map[string]any, key string) string {
	s, _ := m[key].(string)
	return s
}

// dasherize turns "submitForSettlement" into "submit-for-settlement".
func dasherize(s string) string {
	var b strings.Builder
	for i, r := range s {
		if unicode.IsUpper(r) {
			if i > 0 {
				b.WriteByte('-')
			}
			b.WriteRune(unicode.ToLower(r))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// camelize turns "avs-postal-code-response-code" into "avsPostalCodeResponseCode".
func camelize(s string) string {
	parts := strings.Split(s, "-")
	for i := 1; i < len(parts); i++ {
		if parts[i] != "" {
			parts[i] = strings.ToUpper(parts[i][:1]) + parts[i][1:]
		}
	}
	return strings.Join(parts, "")
}
