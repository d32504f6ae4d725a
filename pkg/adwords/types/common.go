package types

// Unit is the number of micros in one unit of the account currency.
// 1,000,000 micros = $1.00 / ¥1.00 / ...
const Unit int64 = 1000 * 1000

type Money struct {
	MicroAmount int64 `xml:"microAmount" json:"microAmount"`
}

func NewMoney(amount float64) *Money {
	return &Money{MicroAmount: int64(amount * float64(Unit))}
}

func (m Money) Amount() float64 {
	return float64(m.MicroAmount) / float64(Unit)
}

type String_StringMapEntry struct {
	Key   string `xml:"key" json:"key"`
	Value string `xml:"value" json:"value"`
}

type CustomParameter struct {
	Key      string `xml:"key" json:"key"`
	Value    string `xml:"value,omitempty" json:"value,omitempty"`
	IsRemove bool   `xml:"isRemove,omitempty" json:"isRemove,omitempty"`
}

type CustomParameters struct {
	Parameters []CustomParameter `xml:"parameters,omitempty" json:"parameters,omitempty"`
	DoReplace  bool              `xml:"doReplace,omitempty" json:"doReplace,omitempty"`
}
