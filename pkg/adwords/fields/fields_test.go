package fields

import (
	"errors"
	"testing"

	"github.com/diwise/adwords/pkg/adwords"
	adwordserrors "github.com/diwise/adwords/pkg/adwords/errors"
	"github.com/matryer/is"
)

func TestVocabularyRejectsUnknownField(t *testing.T) {
	is := is.New(t)

	err := Budget.Validate(adwords.NewSelector([]string{"BudgetId", "Bogus"}))

	is.True(errors.Is(err, adwordserrors.ErrUnknownField))
}

func TestVocabularyAcceptsItsOwnFields(t *testing.T) {
	is := is.New(t)

	for _, v := range []Vocabulary{Budget, Label, AdGroupAd, Media, Campaign, AdGroup} {
		is.NoErr(v.Validate(adwords.NewSelector(v.Fields())))
	}
}

func TestFieldsReturnsACopy(t *testing.T) {
	is := is.New(t)

	f := Label.Fields()
	f[0] = "Changed"

	is.Equal(Label.Fields()[0], "LabelAttribute")
}

func TestReportFieldsAreNotEmpty(t *testing.T) {
	is := is.New(t)

	is.True(len(CampaignPerformanceReport) > 0)
	is.True(len(AdGroupPerformanceReport) > 0)
	is.True(len(AdPerformanceReport) > 0)
	is.True(len(BudgetPerformanceReport) > 0)
}
