package matching

import (
	"strings"

	"github.com/mitchellh/mapstructure"

	"github.com/pathwise/career-fit-engine/internal/domain"
)

// Normalize converts raw assessment answers into a ResponseProfile. Values
// may be a bare string, a list of strings, or anything JSON decoding hands
// us; mapstructure with weakly typed input wraps scalars into one-element
// slices and stringifies the rest. Values that still cannot be coerced are
// skipped, never an error: garbled input degrades to low scores.
func Normalize(raw map[string]any) domain.ResponseProfile {
	profile := make(domain.ResponseProfile, len(raw))
	for category, value := range raw {
		tokens := coerceTokens(value)
		if len(tokens) > 0 {
			profile[category] = tokens
		}
	}
	return profile
}

func coerceTokens(value any) []string {
	var decoded []string
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		Result:           &decoded,
	})
	if err != nil || dec.Decode(value) != nil {
		return nil
	}

	out := make([]string, 0, len(decoded))
	seen := make(map[string]bool, len(decoded))
	for _, t := range decoded {
		t = strings.TrimSpace(t)
		if t == "" || seen[t] {
			continue
		}
		seen[t] = true
		out = append(out, t)
	}
	return out
}
