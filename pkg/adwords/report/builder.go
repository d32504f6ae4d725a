package report

import (
	"encoding/xml"
	"fmt"

	"dario.cat/mergo"
	"github.com/diwise/adwords/pkg/adwords/errors"
)

var definitionDefaults = Definition{
	DownloadFormat: XML,
}

// Build serializes a report definition to XML. Missing values are taken from the
// defaults, currently only downloadFormat=XML. The caller's definition is left as is.
func Build(def Definition) (string, error) {
	if err := mergo.Merge(&def, definitionDefaults); err != nil {
		return "", fmt.Errorf("failed to apply report definition defaults: %s (%w)", err.Error(), errors.ErrInternal)
	}

	b, err := xml.Marshal(def)
	if err != nil {
		return "", fmt.Errorf("failed to marshal report definition: %s (%w)", err.Error(), errors.ErrInternal)
	}

	return xml.Header + string(b), nil
}

func ParseDefinition(rdxml string) (Definition, error) {
	def := Definition{}

	err := xml.Unmarshal([]byte(rdxml), &def)
	if err != nil {
		return Definition{}, fmt.Errorf("failed to unmarshal report definition: %s (%w)", err.Error(), errors.ErrInvalidRequest)
	}

	return def, nil
}
