package fields

var Label = NewVocabulary(
	"Label",
	"LabelAttribute",
	"LabelId",
	"LabelName",
	"LabelStatus",
)
