// Package llmjson recovers a JSON object from free-form language model output.
//
// Model responses are supposed to be bare JSON but often arrive wrapped in a
// markdown fence or surrounded by prose. Recovery makes exactly two attempts:
// the whole (fence-stripped) text, then the first brace-balanced block. It never
// rewrites or repairs the JSON it finds.
package llmjson

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
)

const (
	fence    = "```"
	fenceTag = "json"
)

var (
	errNotObject  = errors.New("value is not a JSON object")
	errTrailing   = errors.New("unexpected data after JSON object")
	errUnbalanced = errors.New("opening brace is never closed")
)

// Extract returns the first JSON object recoverable from text.
//
// The returned error is an *Error whose Kind is NoJSONFound when text holds no
// opening brace (or is empty) and MalformedJSON when a candidate was found but
// does not parse. Numbers are decoded as json.Number.
func Extract(text string) (map[string]any, error) {
	obj, _, err := locate(text)
	if err != nil {
		return nil, err
	}
	return obj, nil
}

// Unmarshal recovers the JSON object in text the same way Extract does and
// decodes it into v.
func Unmarshal(text string, v any) error {
	_, raw, err := locate(text)
	if err != nil {
		return err
	}

	dec := json.NewDecoder(strings.NewReader(raw))
	dec.UseNumber()
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("llmjson: decode into %T: %w", v, err)
	}
	return nil
}

// locate returns the decoded object along with the exact text it came from.
func locate(text string) (map[string]any, string, error) {
	if text == "" {
		return nil, "", newError(NoJSONFound, nil)
	}

	text = stripFences(text)
	if obj, err := decodeObject(text); err == nil {
		return obj, text, nil
	}

	start := strings.IndexByte(text, '{')
	if start < 0 {
		return nil, "", newError(NoJSONFound, nil)
	}

	block, ok := firstBalancedBlock(text[start:])
	if !ok {
		return nil, "", newError(MalformedJSON, errUnbalanced)
	}

	obj, err := decodeObject(block)
	if err != nil {
		return nil, "", newError(MalformedJSON, err)
	}
	return obj, block, nil
}

func stripFences(text string) string {
	text = strings.TrimSpace(text)
	if strings.HasPrefix(text, fence) {
		text = text[len(fence):]
		if len(text) >= len(fenceTag) && strings.EqualFold(text[:len(fenceTag)], fenceTag) {
			text = text[len(fenceTag):]
		}
	}
	text = strings.TrimSuffix(text, fence)
	return strings.TrimSpace(text)
}

// firstBalancedBlock expects s to start with '{' and returns s up to the brace
// that brings the depth back to zero. Braces inside string literals are counted
// like any other.
func firstBalancedBlock(s string) (string, bool) {
	depth := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return s[:i+1], true
			}
		}
	}
	return "", false
}

func decodeObject(s string) (map[string]any, error) {
	dec := json.NewDecoder(strings.NewReader(s))
	dec.UseNumber()

	var obj map[string]any
	if err := dec.Decode(&obj); err != nil {
		return nil, err
	}
	if obj == nil {
		return nil, errNotObject
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, errTrailing
	}
	return obj, nil
}
