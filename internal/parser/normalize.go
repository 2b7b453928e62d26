package parser

import (
	"bytes"
	"encoding/json"
	"regexp"
	"strings"

	"github.com/ralphreevencarandang/contract-reader/internal/domain"
)

// bannedCounterRe matches counters the product never suggests.
var bannedCounterRe = regexp.MustCompile(`(?i)late fee`)

// NormalizeReview coerces an arbitrary LLM JSON object into a well-typed
// ReviewResult. Every required snapshot field comes out a string (never
// null), risks and counters default to empty lists, and counters mentioning
// late fees are dropped. Malformed input yields a result of empty defaults.
func NormalizeReview(raw json.RawMessage) *domain.ReviewResult {
	root := decodeObject(raw)

	result := &domain.ReviewResult{
		Risks:    []domain.Risk{},
		Counters: []string{},
	}

	snap := asObject(root["snapshot"])
	result.Snapshot = domain.Snapshot{
		Parties:        asString(snap["parties"]),
		Dates:          asString(snap["dates"]),
		Term:           asString(snap["term"]),
		Rate:           asString(snap["rate"]),
		Deliverables:   asString(snap["deliverables"]),
		Usage:          asString(snap["usage"]),
		BrandBrief:     asString(snap["brandBrief"]),
		AdditionalReqs: asString(snap["additionalReqs"]),
		Billing:        asString(snap["billing"]),
	}

	for _, item := range asArray(root["risks"]) {
		obj := asObject(item)
		label := asString(obj["label"])
		if label == "" {
			continue
		}
		result.Risks = append(result.Risks, domain.Risk{
			Label: label,
			Level: normalizeLevel(asString(obj["level"])),
			Note:  asString(obj["note"]),
		})
	}

	for _, item := range asArray(root["counters"]) {
		counter := asString(item)
		if counter == "" || bannedCounterRe.MatchString(counter) {
			continue
		}
		result.Counters = append(result.Counters, counter)
	}

	return result
}

// ExtractJSONObject pulls a JSON object out of a model reply, tolerating
// markdown code fences and surrounding prose. Returns nil when no valid
// object is present.
func ExtractJSONObject(text string) json.RawMessage {
	text = strings.TrimSpace(text)
	if strings.HasPrefix(text, "```") {
		text = strings.TrimPrefix(text, "```json")
		text = strings.TrimPrefix(text, "```")
		text = strings.TrimSuffix(strings.TrimSpace(text), "```")
		text = strings.TrimSpace(text)
	}

	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start < 0 || end <= start {
		return nil
	}
	candidate := []byte(text[start : end+1])
	if !json.Valid(candidate) {
		return nil
	}
	return candidate
}

// decodeObject decodes raw into a map, returning an empty map on any
// failure. UseNumber keeps numeric values in their literal form so "1.50"
// does not become "1.5e+00" when coerced to a string.
func decodeObject(raw json.RawMessage) map[string]interface{} {
	if len(raw) == 0 {
		return map[string]interface{}{}
	}
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var root map[string]interface{}
	if err := dec.Decode(&root); err != nil || root == nil {
		return map[string]interface{}{}
	}
	return root
}

// asString coerces an arbitrary JSON value to its string form. Null and
// missing values become "". Objects and arrays become compact JSON.
func asString(v interface{}) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(val)
	case json.Number:
		return val.String()
	case bool:
		if val {
			return "true"
		}
		return "false"
	default:
		b, err := json.Marshal(val)
		if err != nil {
			return ""
		}
		return string(b)
	}
}

func asArray(v interface{}) []interface{} {
	arr, ok := v.([]interface{})
	if !ok {
		return nil
	}
	return arr
}

func asObject(v interface{}) map[string]interface{} {
	obj, ok := v.(map[string]interface{})
	if !ok {
		return map[string]interface{}{}
	}
	return obj
}

// normalizeLevel maps free-form severity text onto the Low/Med/High scale.
// Unknown values land on Med.
func normalizeLevel(level string) domain.RiskLevel {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "low":
		return domain.RiskLow
	case "high", "critical", "severe":
		return domain.RiskHigh
	default:
		return domain.RiskMed
	}
}
