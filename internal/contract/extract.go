package contract

import (
	"errors"
	"fmt"
	"strings"

	json "github.com/goccy/go-json"
)

// ErrNotFound is returned when the completion text contains no parseable
// JSON object at all.
var ErrNotFound = errors.New("JSON not found in GPT response")

var requiredKeys = []string{
	"detected_language",
	"original_text",
	"summarized_text",
	"ja_text",
	"target_text",
	"speak_original",
	"speak_target",
}

// Extract locates the contract object inside raw completion text, parses it
// and validates the schema. The whole response is tried as strict JSON first;
// only when that fails does it fall back to scanning from the first "{" to
// the last "}" (greedy, spanning newlines), which tolerates surrounding
// prose and markdown fences.
//
// A missing required key is a contract violation. A key that is present but
// null is coerced to "". speak_original is normalized to summarized_text so
// the equality holds even when the model drifts.
func Extract(raw string) (Contract, error) {
	obj, err := parseObject(raw)
	if err != nil {
		return Contract{}, err
	}

	fields := make(map[string]string, len(requiredKeys))
	for _, key := range requiredKeys {
		val, ok := obj[key]
		if !ok {
			return Contract{}, fmt.Errorf("contract is missing %q", key)
		}
		var s *string
		if err := json.Unmarshal(val, &s); err != nil {
			return Contract{}, fmt.Errorf("contract field %q is not a string: %w", key, err)
		}
		if s != nil {
			fields[key] = *s
		}
	}

	c := Contract{
		DetectedLanguage: fields["detected_language"],
		OriginalText:     fields["original_text"],
		SummarizedText:   fields["summarized_text"],
		JaText:           fields["ja_text"],
		TargetText:       fields["target_text"],
		SpeakOriginal:    fields["speak_original"],
		SpeakTarget:      fields["speak_target"],
	}
	c.SpeakOriginal = c.SummarizedText
	return c, nil
}

func parseObject(raw string) (map[string]json.RawMessage, error) {
	trimmed := strings.TrimSpace(raw)

	var obj map[string]json.RawMessage
	if err := json.Unmarshal([]byte(trimmed), &obj); err == nil {
		return obj, nil
	}

	start := strings.Index(trimmed, "{")
	end := strings.LastIndex(trimmed, "}")
	if start == -1 || end == -1 || end < start {
		return nil, ErrNotFound
	}
	if err := json.Unmarshal([]byte(trimmed[start:end+1]), &obj); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNotFound, err)
	}
	return obj, nil
}
