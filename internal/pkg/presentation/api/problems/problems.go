package problems

import (
	"encoding/json"
	"errors"
	"net/http"

	adwerrors "github.com/diwise/adwords/pkg/adwords/errors"
)

// ProblemDetails stores details about a certain problem according to RFC7807
// See https://tools.ietf.org/html/rfc7807
type ProblemDetails interface {
	ContentType() string
	Type() string
	Title() string
	Detail() string
	ResponseCode() int
	MarshalJSON() ([]byte, error)
	WriteResponse(w http.ResponseWriter)
}

type ProblemDetailsImpl struct {
	typ    string
	title  string
	detail string
	code   int
}

const (
	// ProblemReportContentType as required by https://tools.ietf.org/html/rfc7807
	ProblemReportContentType string = "application/problem+json"

	typeBase string = "https://diwise.io/adwords/errors/"
)

func newProblem(name, title, detail string, code int) *ProblemDetailsImpl {
	return &ProblemDetailsImpl{
		typ:    typeBase + name,
		title:  title,
		detail: detail,
		code:   code,
	}
}

func NewInvalidRequest(detail string) ProblemDetails {
	return newProblem("InvalidRequest", "Invalid Request", detail, http.StatusBadRequest)
}

func NewNotFound(detail string) ProblemDetails {
	return newProblem("ResourceNotFound", "Resource Not Found", detail, http.StatusNotFound)
}

func NewUnauthorized(detail string) ProblemDetails {
	return newProblem("Unauthorized", "Unauthorized", detail, http.StatusUnauthorized)
}

func NewRateExceeded(detail string) ProblemDetails {
	return newProblem("RateExceeded", "Rate Exceeded", detail, http.StatusTooManyRequests)
}

func NewBadGateway(detail string) ProblemDetails {
	return newProblem("BadGateway", "Bad Gateway", detail, http.StatusBadGateway)
}

func NewInternalError(detail string) ProblemDetails {
	return newProblem("InternalError", "Internal Error", detail, http.StatusInternalServerError)
}

// FromError picks the problem that corresponds to the adwords error wrapped in err.
func FromError(err error) ProblemDetails {
	detail := err.Error()

	switch {
	case errors.Is(err, adwerrors.ErrInvalidRequest), errors.Is(err, adwerrors.ErrUnknownField), errors.Is(err, adwerrors.ErrUnsupported):
		return NewInvalidRequest(detail)
	case errors.Is(err, adwerrors.ErrNotFound):
		return NewNotFound(detail)
	case errors.Is(err, adwerrors.ErrUnauthorized):
		return NewUnauthorized(detail)
	case errors.Is(err, adwerrors.ErrRateExceeded):
		return NewRateExceeded(detail)
	case errors.Is(err, adwerrors.ErrRequest), errors.Is(err, adwerrors.ErrBadResponse):
		return NewBadGateway(detail)
	default:
		return NewInternalError(detail)
	}
}

// ReportError writes the problem matching err to w.
func ReportError(w http.ResponseWriter, err error) {
	FromError(err).WriteResponse(w)
}

func ReportInvalidRequest(w http.ResponseWriter, detail string) {
	NewInvalidRequest(detail).WriteResponse(w)
}

func (p *ProblemDetailsImpl) ContentType() string {
	return ProblemReportContentType
}

func (p *ProblemDetailsImpl) Type() string {
	return p.typ
}

func (p *ProblemDetailsImpl) Title() string {
	return p.title
}

func (p *ProblemDetailsImpl) Detail() string {
	return p.detail
}

func (p *ProblemDetailsImpl) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type   string `json:"type"`
		Title  string `json:"title"`
		Status int    `json:"status"`
		Detail string `json:"detail"`
	}{
		Type:   p.typ,
		Title:  p.title,
		Status: p.ResponseCode(),
		Detail: p.detail,
	})
}

func (p *ProblemDetailsImpl) ResponseCode() int {
	if p.code != 0 {
		return p.code
	}

	return http.StatusBadRequest
}

// WriteResponse writes the contents of this instance to a http.ResponseWriter
func (p *ProblemDetailsImpl) WriteResponse(w http.ResponseWriter) {
	w.Header().Add("Content-Type", p.ContentType())
	w.Header().Add("Content-Language", "en")
	w.WriteHeader(p.ResponseCode())

	pdbytes, err := json.MarshalIndent(p, "", "  ")
	if err == nil {
		w.Write(pdbytes)
	}
}
