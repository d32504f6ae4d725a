package errors

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/diwise/adwords/pkg/adwords"
)

var ErrInternal = fmt.Errorf("internal error")
var ErrInvalidRequest = fmt.Errorf("invalid request")
var ErrNotFound = fmt.Errorf("not found")
var ErrRateExceeded = fmt.Errorf("rate exceeded")
var ErrRequest = fmt.Errorf("request error")
var ErrBadResponse = fmt.Errorf("bad response")
var ErrUnauthorized = fmt.Errorf("unauthorized")
var ErrUnknownField = fmt.Errorf("unknown field")
var ErrUnsupported = fmt.Errorf("unsupported operation")

type myError struct {
	msg    string
	target error
}

func (m myError) Error() string        { return m.msg }
func (m myError) Is(target error) bool { return target == m.target }

func NewInvalidRequestError(msg string) error {
	return &myError{
		msg:    msg,
		target: ErrInvalidRequest,
	}
}

func NewNotFoundError(msg string) error {
	return &myError{
		msg:    msg,
		target: ErrNotFound,
	}
}

func NewRateExceededError(msg string) error {
	return &myError{
		msg:    msg,
		target: ErrRateExceeded,
	}
}

func NewUnauthorizedError(msg string) error {
	return &myError{
		msg:    msg,
		target: ErrUnauthorized,
	}
}

func NewUnknownFieldError(msg string) error {
	return &myError{
		msg:    msg,
		target: ErrUnknownField,
	}
}

// ApiException is the error returned for a SOAP fault carrying an ApiExceptionFault.
// The individual api errors are kept so that callers can inspect field paths and triggers.
type ApiException struct {
	myError
	FaultCode   string
	FaultString string
	Errors      []adwords.ApiError
}

func (e *ApiException) Unwrap() []error {
	errs := make([]error, 0, len(e.Errors))
	for _, ae := range e.Errors {
		errs = append(errs, ae)
	}
	return errs
}

type fault struct {
	FaultCode   string `xml:"faultcode"`
	FaultString string `xml:"faultstring"`
	Detail      struct {
		ApiExceptionFault struct {
			Message string             `xml:"message"`
			Errors  []adwords.ApiError `xml:"errors"`
		} `xml:"ApiExceptionFault"`
	} `xml:"detail"`
}

// NewErrorFromFault decodes a SOAP fault from body and maps the first api error type
// onto one of the sentinel errors in this package.
func NewErrorFromFault(code int, body []byte) error {
	f, err := findFault(bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to process fault from soap service: %s (%w)", err.Error(), ErrBadResponse)
	}

	if f == nil {
		return fmt.Errorf("unexpected response code %d without soap fault (%w)", code, ErrBadResponse)
	}

	msg := f.FaultString
	if msg == "" {
		msg = f.Detail.ApiExceptionFault.Message
	}

	apiErrors := f.Detail.ApiExceptionFault.Errors

	return &ApiException{
		myError: myError{
			msg:    msg,
			target: targetFor(code, apiErrors),
		},
		FaultCode:   f.FaultCode,
		FaultString: f.FaultString,
		Errors:      apiErrors,
	}
}

func findFault(r io.Reader) (*fault, error) {
	dec := xml.NewDecoder(r)

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			return nil, nil
		}
		if err != nil {
			return nil, err
		}

		if start, ok := tok.(xml.StartElement); ok && start.Name.Local == "Fault" {
			f := &fault{}
			if err := dec.DecodeElement(f, &start); err != nil {
				return nil, err
			}
			return f, nil
		}
	}
}

func targetFor(code int, apiErrors []adwords.ApiError) error {
	for _, ae := range apiErrors {
		errorType := ae.Type
		if errorType == "" {
			errorType, _, _ = strings.Cut(ae.ErrorString, ".")
		}

		switch errorType {
		case "AuthenticationError", "AuthorizationError", "NotWhitelistedError":
			return ErrUnauthorized
		case "RateExceededError", "QuotaCheckError":
			return ErrRateExceeded
		case "EntityNotFound":
			return ErrNotFound
		case "SelectorError", "RequiredError", "RangeError", "StringLengthError",
			"NotEmptyError", "IdError", "OperationAccessDenied", "OperatorError",
			"RejectedError", "BudgetError", "LabelError", "AdGroupAdError",
			"CampaignError", "AdGroupServiceError", "MediaError", "ImageError",
			"ReportDefinitionError", "EntityCountLimitExceeded", "DistinctError":
			return ErrInvalidRequest
		}
	}

	switch {
	case code == http.StatusUnauthorized || code == http.StatusForbidden:
		return ErrUnauthorized
	case code == http.StatusNotFound:
		return ErrNotFound
	case code == http.StatusTooManyRequests:
		return ErrRateExceeded
	case code >= http.StatusBadRequest && code < http.StatusInternalServerError:
		return ErrInvalidRequest
	}

	return ErrInternal
}

type reportDownloadError struct {
	ApiErrors []struct {
		Type      string `xml:"type"`
		Trigger   string `xml:"trigger"`
		FieldPath string `xml:"fieldPath"`
	} `xml:"ApiError"`
}

// NewErrorFromReportDownload decodes the reportDownloadError document returned by the
// report download endpoint. Its api errors carry the qualified error string in the type element.
func NewErrorFromReportDownload(code int, body []byte) error {
	rde := reportDownloadError{}

	if err := xml.Unmarshal(body, &rde); err != nil || len(rde.ApiErrors) == 0 {
		return fmt.Errorf("unexpected response code %d from report download (%w)", code, targetFor(code, nil))
	}

	apiErrors := make([]adwords.ApiError, 0, len(rde.ApiErrors))
	for _, e := range rde.ApiErrors {
		errorType, reason, _ := strings.Cut(e.Type, ".")
		apiErrors = append(apiErrors, adwords.ApiError{
			Type:        errorType,
			FieldPath:   e.FieldPath,
			Trigger:     e.Trigger,
			ErrorString: e.Type,
			Reason:      reason,
		})
	}

	return &ApiException{
		myError: myError{
			msg:    apiErrors[0].Error(),
			target: targetFor(code, apiErrors),
		},
		Errors: apiErrors,
	}
}
