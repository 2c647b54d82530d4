package llmjson

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractDirectParse(t *testing.T) {
	inputs := []string{
		`{}`,
		`{"a":1}`,
		`{"a": {"b": [1, 2, {"c": null}]}, "d": "text"}`,
		"  \n{\"recommendations\": [], \"notes\": \"ok\"}\n\t",
	}

	for _, in := range inputs {
		var want map[string]any
		dec := json.NewDecoder(strings.NewReader(in))
		dec.UseNumber()
		require.NoError(t, dec.Decode(&want))

		got, err := Extract(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
}

func TestExtractFenced(t *testing.T) {
	cases := map[string]string{
		"json tag":     "```json\n{\"a\":1}\n```",
		"no tag":       "```\n{\"a\":1}\n```",
		"upper tag":    "```JSON\n{\"a\":1}\n```",
		"one line":     "```json {\"a\":1} ```",
		"closing only": "{\"a\":1}\n```",
	}

	for name, in := range cases {
		t.Run(name, func(t *testing.T) {
			got, err := Extract(in)
			require.NoError(t, err)
			assert.Equal(t, map[string]any{"a": json.Number("1")}, got)
		})
	}
}

func TestExtractFromProse(t *testing.T) {
	got, err := Extract(`Here is your answer: {"a": {"b": 2}} thanks!`)
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"a": map[string]any{"b": json.Number("2")}}, got)
}

func TestExtractFirstBlockWins(t *testing.T) {
	got, err := Extract(`{"a":1}{"b":2}`)
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"a": json.Number("1")}, got)
}

func TestExtractDoesNotTryLaterBlocks(t *testing.T) {
	_, err := Extract(`prefix {"a": } then {"b": 2}`)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrMalformedJSON))
}

func TestExtractFailures(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want error
	}{
		{name: "empty", in: "", want: ErrNoJSONFound},
		{name: "whitespace", in: "   \n ", want: ErrNoJSONFound},
		{name: "no braces", in: "no braces here", want: ErrNoJSONFound},
		{name: "array only", in: "[1, 2, 3]", want: ErrNoJSONFound},
		{name: "empty fence", in: "```json\n```", want: ErrNoJSONFound},
		{name: "never closes", in: `{"a": 1`, want: ErrMalformedJSON},
		{name: "nested never closes", in: `text {"a": {"b": 1}`, want: ErrMalformedJSON},
		{name: "trailing comma", in: `note: {"a": 1,}`, want: ErrMalformedJSON},
		{name: "single quotes", in: `{'a': 1}`, want: ErrMalformedJSON},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Extract(tc.in)
			require.Error(t, err)
			assert.Nil(t, got)
			assert.ErrorIs(t, err, tc.want)

			var target *Error
			require.True(t, errors.As(err, &target))
			assert.Equal(t, tc.want.(*Error).Kind, target.Kind)
		})
	}
}

func TestExtractBraceInsideStringDesyncsScan(t *testing.T) {
	// The scan does not understand string literals: the "}" inside the value
	// closes the block early and the truncated candidate fails to parse.
	_, err := Extract(`answer: {"note": "use } carefully", "a": 1}`)
	assert.ErrorIs(t, err, ErrMalformedJSON)

	// Balanced braces inside strings happen to survive.
	got, err := Extract(`answer: {"note": "{x}"} done`)
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"note": "{x}"}, got)
}

func TestExtractArrayWrappingObject(t *testing.T) {
	got, err := Extract(`[{"a": 1}]`)
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"a": json.Number("1")}, got)
}

func TestExtractKeepsLargeIntegers(t *testing.T) {
	got, err := Extract(`{"wardrobe_id": 1844674407370955161}`)
	require.NoError(t, err)
	n, ok := got["wardrobe_id"].(json.Number)
	require.True(t, ok)
	v, err := n.Int64()
	require.NoError(t, err)
	assert.Equal(t, int64(1844674407370955161), v)
}

func TestExtractIsRepeatable(t *testing.T) {
	in := "Sure!\n```json\n{\"recommendations\": [{\"wardrobe_id\": 3}]}\n```"
	first, err1 := Extract(in)
	second, err2 := Extract(in)
	assert.Equal(t, err1, err2)
	assert.Equal(t, first, second)

	in = "no json"
	_, err1 = Extract(in)
	_, err2 = Extract(in)
	assert.Equal(t, err1.Error(), err2.Error())
}

func TestUnmarshal(t *testing.T) {
	var out struct {
		Notes string `json:"notes"`
		Items []struct {
			ID   int64  `json:"id"`
			Name string `json:"name"`
		} `json:"items"`
	}

	err := Unmarshal("Result:\n{\"notes\": \"fine\", \"items\": [{\"id\": 7, \"name\": \"scarf\"}]}\nBye", &out)
	require.NoError(t, err)
	assert.Equal(t, "fine", out.Notes)
	require.Len(t, out.Items, 1)
	assert.Equal(t, int64(7), out.Items[0].ID)
	assert.Equal(t, "scarf", out.Items[0].Name)

	assert.ErrorIs(t, Unmarshal("nothing", &out), ErrNoJSONFound)

	var wrong struct {
		Notes int `json:"notes"`
	}
	err = Unmarshal(`{"notes": "text"}`, &wrong)
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrMalformedJSON)
}

func TestErrorMessage(t *testing.T) {
	_, err := Extract(`{"a": 1`)
	require.Error(t, err)
	assert.Equal(t, "llmjson: malformed json: opening brace is never closed", err.Error())

	_, err = Extract("plain")
	assert.Equal(t, "llmjson: no json found", err.Error())
}
