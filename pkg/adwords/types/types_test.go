package types

import (
	"encoding/xml"
	"strings"
	"testing"

	"github.com/matryer/is"
)

func TestTypedAdUsesDiscriminator(t *testing.T) {
	is := is.New(t)

	ad := NewExpandedTextAd("Cruise to Mars", "Best space cruise", "Buy your tickets now!", "http://www.example.com")
	is.Equal(ad.Typed().XsiType, "ExpandedTextAd")

	rda := NewResponsiveDisplayAd("short", "long", "desc", "acme", nil, nil)
	is.Equal(rda.Typed().XsiType, "ResponsiveDisplayAd")
}

func TestTypedAdLeavesUnknownTypesAlone(t *testing.T) {
	is := is.New(t)

	ad := Ad{Type: "DEPRECATED_AD"}
	is.Equal(ad.Typed().XsiType, "")
}

func TestTypedAdDoesNotModifyReceiver(t *testing.T) {
	is := is.New(t)

	ad := NewExpandedTextAd("a", "b", "c")
	_ = ad.Typed()

	is.Equal(ad.XsiType, "")
}

func TestAdMarshalsXsiTypeAttribute(t *testing.T) {
	is := is.New(t)

	b, err := xml.Marshal(AdGroupAd{AdGroupID: "1", Ad: NewExpandedTextAd("a", "b", "c").Typed()})
	is.NoErr(err)

	is.True(strings.Contains(string(b), `<ad xsi:type="ExpandedTextAd">`))
	is.True(strings.Contains(string(b), `<headlinePart1>a</headlinePart1>`))
}

func TestMoney(t *testing.T) {
	is := is.New(t)

	m := NewMoney(12.5)
	is.Equal(m.MicroAmount, int64(12_500_000))
	is.Equal(m.Amount(), 12.5)
}

func TestNewImageEncodesData(t *testing.T) {
	is := is.New(t)

	img := NewImage("logo", []byte("hello"))
	is.Equal(img.Data, "aGVsbG8=")
	is.Equal(img.Typed().XsiType, "Image")
}
