package briefing

import (
	"encoding/json"
	"errors"
	"strings"

	"ApexDesk/internal/domain/models"

	"github.com/tidwall/gjson"
)

// ErrInvalidJSON reports a model reply with no recoverable JSON document.
var ErrInvalidJSON = errors.New("réponse JSON invalide du modèle")

// ParseBriefing decodes the model reply tolerantly: strip markdown code
// fences, try a straight unmarshal, else extract the first balanced object
// and retry. The model occasionally wraps its JSON in prose or fences.
func ParseBriefing(raw string) (models.Briefing, error) {
	cleaned := strings.ReplaceAll(raw, "```json", "")
	cleaned = strings.ReplaceAll(cleaned, "```", "")
	cleaned = strings.TrimSpace(cleaned)

	var out models.Briefing
	if err := json.Unmarshal([]byte(cleaned), &out); err == nil {
		return out, nil
	}

	candidate := extractObject(cleaned)
	if candidate == "" || !gjson.Valid(candidate) {
		return nil, ErrInvalidJSON
	}
	if err := json.Unmarshal([]byte(candidate), &out); err != nil {
		return nil, ErrInvalidJSON
	}
	return out, nil
}

// extractObject returns the first balanced {...} block, brace-counting
// outside of string literals.
func extractObject(s string) string {
	start := strings.IndexByte(s, '{')
	if start < 0 {
		return ""
	}

	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(s); i++ {
		c := s[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return s[start : i+1]
			}
		}
	}
	return ""
}
