package skipbom

import (
	"fmt"
	"io"

	"go.yaml.in/yaml/v3"
)

// CandidatesFromYAML reads a candidate marker set from its YAML
// representation, a document with an `encodings` list of stable marker
// names. Unknown names are an error.
func CandidatesFromYAML(reader io.Reader) ([]BomType, error) {
	var ymlSet yamlCandidateSet
	decoder := yaml.NewDecoder(reader)
	if err := decoder.Decode(&ymlSet); err != nil {
		return nil, fmt.Errorf("failed to decode candidate set from YAML: %w", err)
	}

	candidates := make([]BomType, 0, len(ymlSet.Encodings))
	for _, name := range ymlSet.Encodings {
		bomType, err := ParseBomType(name)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve candidate encoding: %w", err)
		}

		candidates = append(candidates, bomType)
	}

	return candidates, nil
}

// CandidatesToYAML writes a candidate marker set to its YAML representation.
func CandidatesToYAML(candidates []BomType, writer io.Writer) error {
	var ymlSet yamlCandidateSet
	for _, candidate := range candidates {
		ymlSet.Encodings = append(ymlSet.Encodings, candidate.String())
	}

	encoder := yaml.NewEncoder(writer)
	defer func() { _ = encoder.Close() }()

	if err := encoder.Encode(&ymlSet); err != nil {
		return fmt.Errorf("failed to encode candidate set to YAML: %w", err)
	}

	return nil
}

// yamlCandidateSet is an internal struct for YAML serialization.
type yamlCandidateSet struct {
	Encodings []string `yaml:"encodings"`
}
