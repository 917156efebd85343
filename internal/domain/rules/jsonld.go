package rules

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/seokraft/seokraft/internal/domain"
)

// xssIndicators are substrings scanned for in the re-serialized JSON-LD
// object. Matching the serialized form rather than the input catches
// payloads hidden in nested values.
var xssIndicators = []string{
	"<script", "javascript:", "onload=", "onerror=", "onclick=",
	"eval(", "document.", "window.",
}

func checkJSONLD(clean *domain.Record) fragment {
	var f fragment
	raw := clean.JSONLD
	if raw == "" {
		return f
	}

	var obj map[string]any
	if err := json.Unmarshal([]byte(raw), &obj); err != nil {
		f.major("json_ld", "JSON-LD is not a valid JSON object",
			"Provide a JSON object with @context and @type")
		return f
	}

	if !truthy(obj["@context"]) {
		f.major("json_ld", "JSON-LD is missing @context",
			`Add "@context": "https://schema.org"`)
	}
	if !truthy(obj["@type"]) {
		f.major("json_ld", "JSON-LD is missing @type",
			`Add an "@type" such as "Product" or "Organization"`)
	}

	serialized, err := json.Marshal(obj)
	if err != nil {
		return f
	}
	lower := strings.ToLower(string(serialized))
	for _, indicator := range xssIndicators {
		if strings.Contains(lower, indicator) {
			f.critical("json_ld",
				fmt.Sprintf("JSON-LD contains potentially malicious content (%q)", indicator),
				"Remove script-like values from structured data")
			break
		}
	}

	return f
}

// truthy mirrors loose truthiness for decoded JSON values: absent, null,
// empty string, false and zero are all treated as missing.
func truthy(v any) bool {
	switch t := v.(type) {
	case nil:
		return false
	case string:
		return t != ""
	case bool:
		return t
	case float64:
		return t != 0
	default:
		return true
	}
}

// jsonLDParses reports whether the field holds a well-formed JSON object.
// The scorer awards a bonus on this alone, independent of structural issues.
func jsonLDParses(jsonLD string) bool {
	if jsonLD == "" {
		return false
	}
	var obj map[string]any
	return json.Unmarshal([]byte(jsonLD), &obj) == nil
}
