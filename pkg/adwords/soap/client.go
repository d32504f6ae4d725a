package soap

import (
	"bytes"
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"net/http"
	"net/http/httputil"
	"strings"

	"github.com/diwise/adwords/pkg/adwords"
	"github.com/diwise/adwords/pkg/adwords/errors"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/tracing"
	"github.com/google/uuid"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

//go:generate moq -rm -out ../test/transport_mock.go . Transport

// Transport is the seam between the services and whatever performs the remote call.
// Responses are decoded into out, which must be a pointer.
type Transport interface {
	Get(ctx context.Context, selector adwords.Selector, out any) error
	Mutate(ctx context.Context, operations any, operationType string, out any) error
}

type Uploader interface {
	Upload(ctx context.Context, media any, out any) error
}

const (
	DefaultEndpoint string = "https://adwords.google.com/api/adwords"
	DefaultVersion  string = "v201809"
)

const (
	TraceAttributeService   string = "adwords-service"
	TraceAttributeRequestID string = "request-id"
	TraceAttributeCustomer  string = "client-customer-id"
)

var tracer = otel.Tracer("adwords-soap-client")

func Debug(enabled string) func(*Client) {
	return func(c *Client) {
		c.debug = (enabled == "true")
	}
}

func Endpoint(endpoint string) func(*Client) {
	return func(c *Client) {
		c.endpoint = strings.TrimSuffix(endpoint, "/")
	}
}

func Version(version string) func(*Client) {
	return func(c *Client) {
		c.version = version
	}
}

func ClientCustomerID(customerID string) func(*Client) {
	return func(c *Client) {
		c.header.ClientCustomerID = customerID
	}
}

func DeveloperToken(token string) func(*Client) {
	return func(c *Client) {
		c.header.DeveloperToken = token
	}
}

func UserAgent(userAgent string) func(*Client) {
	return func(c *Client) {
		c.header.UserAgent = userAgent
	}
}

func PartialFailure(enabled bool) func(*Client) {
	return func(c *Client) {
		c.header.PartialFailure = enabled
	}
}

func ValidateOnly(enabled bool) func(*Client) {
	return func(c *Client) {
		c.header.ValidateOnly = enabled
	}
}

// HTTPClient replaces the default otel instrumented client, e.g. with one that
// adds OAuth2 credentials to every request.
func HTTPClient(httpClient *http.Client) func(*Client) {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// Client calls a single SOAP service, such as BudgetService. It holds no per call
// state and is safe for concurrent use.
type Client struct {
	service    string
	endpoint   string
	version    string
	header     requestHeader
	httpClient *http.Client
	debug      bool
}

func NewClient(service string, options ...func(*Client)) *Client {
	c := &Client{
		service:  service,
		endpoint: DefaultEndpoint,
		version:  DefaultVersion,
		httpClient: &http.Client{
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
	}

	for _, option := range options {
		option(c)
	}

	return c
}

func (c *Client) Service() string {
	return c.service
}

func (c *Client) URL() string {
	return fmt.Sprintf("%s/cm/%s/%s", c.endpoint, c.version, c.service)
}

func (c *Client) Namespace() string {
	return fmt.Sprintf("https://adwords.google.com/api/adwords/cm/%s", c.version)
}

func (c *Client) Get(ctx context.Context, selector adwords.Selector, out any) error {
	return c.call(ctx, "get", getRequest{
		Xmlns:    c.Namespace(),
		Selector: selector,
	}, out)
}

func (c *Client) Mutate(ctx context.Context, operations any, operationType string, out any) error {
	return c.call(ctx, "mutate", mutateRequest{
		Xmlns: c.Namespace(),
		Operations: typedElements{
			values:  operations,
			xsiType: operationType,
		},
	}, out)
}

func (c *Client) Upload(ctx context.Context, media any, out any) error {
	return c.call(ctx, "upload", uploadRequest{
		Xmlns: c.Namespace(),
		Media: media,
	}, out)
}

func (c *Client) call(ctx context.Context, action string, content any, out any) error {
	var err error

	requestID := uuid.NewString()

	ctx, span := tracer.Start(ctx, strings.ToLower(c.service)+"-"+action,
		trace.WithAttributes(attribute.String(TraceAttributeService, c.service)),
		trace.WithAttributes(attribute.String(TraceAttributeRequestID, requestID)),
		trace.WithAttributes(attribute.String(TraceAttributeCustomer, c.header.ClientCustomerID)),
	)
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	ctx = logging.NewContextWithLogger(ctx, logging.GetFromContext(ctx), "service", c.service, "request_id", requestID)

	body, err := c.newEnvelope(content)
	if err != nil {
		err = fmt.Errorf("failed to marshal %s request: %s (%w)", action, err.Error(), errors.ErrInternal)
		return err
	}

	response, responseBody, err := c.callSoapService(ctx, body)
	if err != nil {
		return err
	}

	if response.StatusCode != http.StatusOK {
		err = errors.NewErrorFromFault(response.StatusCode, responseBody)
		return err
	}

	err = decodeReturnValues(responseBody, out)
	if err != nil {
		if c.debug && len(responseBody) < 1000 {
			err = fmt.Errorf("unmarshaling of %s failed with err %s (%w)", string(responseBody), err.Error(), errors.ErrBadResponse)
		} else {
			err = fmt.Errorf("failed to decode %s response: %s (%w)", action, err.Error(), errors.ErrBadResponse)
		}
		return err
	}

	return nil
}

func (c *Client) newEnvelope(content any) ([]byte, error) {
	h := c.header
	h.Xmlns = c.Namespace()

	env := envelope{
		SoapEnv: soapEnvelopeNamespace,
		Xsi:     xsiNamespace,
		Header:  envelopeHeader{RequestHeader: h},
		Body:    envelopeBody{Content: content},
	}

	b, err := xml.Marshal(env)
	if err != nil {
		return nil, err
	}

	return append([]byte(xml.Header), b...), nil
}

func (c *Client) callSoapService(ctx context.Context, body []byte) (*http.Response, []byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.URL(), bytes.NewReader(body))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create request: %s (%w)", err.Error(), errors.ErrInternal)
	}

	req.Header.Add("Content-Type", "text/xml; charset=utf-8")
	req.Header.Add("SOAPAction", `""`)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to send request: %w (%w)", err, errors.ErrRequest)
	}

	defer resp.Body.Close()
	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read response body: %s (%w)", err.Error(), errors.ErrBadResponse)
	}

	if c.debug && resp.StatusCode >= http.StatusBadRequest {
		reqbytes, _ := httputil.DumpRequest(req, false)
		respbytes, _ := httputil.DumpResponse(resp, false)

		log := logging.GetFromContext(ctx)
		log.Error("request failed", "request", string(reqbytes), "response", string(respbytes), "body", string(respBody))
	}

	return resp, respBody, nil
}

// decodeReturnValues decodes every rval element of the response body into out. Get and
// mutate responses carry a single rval, upload responses carry one per uploaded media.
func decodeReturnValues(body []byte, out any) error {
	if out == nil {
		return nil
	}

	dec := xml.NewDecoder(bytes.NewReader(body))

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}

		start, ok := tok.(xml.StartElement)
		if !ok || start.Name.Local != "rval" {
			continue
		}

		if err := dec.DecodeElement(out, &start); err != nil {
			return err
		}
	}
}
