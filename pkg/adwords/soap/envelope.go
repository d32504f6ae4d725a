package soap

import (
	"encoding/xml"
	"reflect"

	"github.com/diwise/adwords/pkg/adwords"
)

const (
	soapEnvelopeNamespace string = "http://schemas.xmlsoap.org/soap/envelope/"
	xsiNamespace          string = "http://www.w3.org/2001/XMLSchema-instance"
)

type envelope struct {
	XMLName xml.Name       `xml:"soapenv:Envelope"`
	SoapEnv string         `xml:"xmlns:soapenv,attr"`
	Xsi     string         `xml:"xmlns:xsi,attr"`
	Header  envelopeHeader `xml:"soapenv:Header"`
	Body    envelopeBody   `xml:"soapenv:Body"`
}

type envelopeHeader struct {
	RequestHeader requestHeader `xml:"RequestHeader"`
}

type envelopeBody struct {
	Content any
}

type requestHeader struct {
	Xmlns            string `xml:"xmlns,attr"`
	ClientCustomerID string `xml:"clientCustomerId,omitempty"`
	DeveloperToken   string `xml:"developerToken,omitempty"`
	UserAgent        string `xml:"userAgent,omitempty"`
	ValidateOnly     bool   `xml:"validateOnly,omitempty"`
	PartialFailure   bool   `xml:"partialFailure,omitempty"`
}

type getRequest struct {
	XMLName  xml.Name         `xml:"get"`
	Xmlns    string           `xml:"xmlns,attr"`
	Selector adwords.Selector `xml:"serviceSelector"`
}

type mutateRequest struct {
	XMLName    xml.Name      `xml:"mutate"`
	Xmlns      string        `xml:"xmlns,attr"`
	Operations typedElements `xml:"operations"`
}

type uploadRequest struct {
	XMLName xml.Name `xml:"upload"`
	Xmlns   string   `xml:"xmlns,attr"`
	Media   any      `xml:"media"`
}

// typedElements encodes each element of a slice with the same start element, adding
// an xsi:type attribute when one is set.
type typedElements struct {
	values  any
	xsiType string
}

func (te typedElements) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	if te.xsiType != "" {
		start.Attr = append(start.Attr, xml.Attr{Name: xml.Name{Local: "xsi:type"}, Value: te.xsiType})
	}

	v := reflect.ValueOf(te.values)
	if v.Kind() != reflect.Slice && v.Kind() != reflect.Array {
		return e.EncodeElement(te.values, start)
	}

	for i := range v.Len() {
		if err := e.EncodeElement(v.Index(i).Interface(), start); err != nil {
			return err
		}
	}

	return nil
}
