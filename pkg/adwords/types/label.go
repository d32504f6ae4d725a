package types

type LabelStatus string

const (
	LabelEnabled LabelStatus = "ENABLED"
	LabelRemoved LabelStatus = "REMOVED"
)

type LabelType string

const (
	TextLabel LabelType = "TextLabel"
)

type LabelAttribute struct {
	XsiType         string `xml:"xsi:type,attr,omitempty" json:"-"`
	BackgroundColor string `xml:"backgroundColor,omitempty" json:"backgroundColor,omitempty"`
	Description     string `xml:"description,omitempty" json:"description,omitempty"`
}

// Label is sent with an xsi:type attribute naming its concrete type. Responses carry
// the same information in the Label.Type element.
type Label struct {
	XsiType   LabelType       `xml:"xsi:type,attr,omitempty" json:"-"`
	ID        string          `xml:"id,omitempty" json:"id,omitempty"`
	Name      string          `xml:"name,omitempty" json:"name,omitempty"`
	Status    LabelStatus     `xml:"status,omitempty" json:"status,omitempty"`
	Attribute *LabelAttribute `xml:"attribute,omitempty" json:"attribute,omitempty"`
	LabelType LabelType       `xml:"Label.Type,omitempty" json:"type,omitempty"`
}
