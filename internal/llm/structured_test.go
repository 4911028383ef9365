package llm

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testPayload struct {
	InitialReaction string   `json:"initialReaction"`
	Concerns        []string `json:"concerns"`
	Score           float64  `json:"score"`
}

func TestExtractJSON_CleanJSON(t *testing.T) {
	raw := `{"initialReaction":"Broadly supportive.","score":0.95}`
	result, err := ExtractJSON[testPayload](raw, nil)
	require.NoError(t, err)
	assert.Equal(t, "Broadly supportive.", result.InitialReaction)
	assert.Equal(t, 0.95, result.Score)
}

func TestExtractJSON_FencedJSON(t *testing.T) {
	raw := "```json\n{\"initialReaction\":\"Cautious.\",\"score\":0.88}\n```"
	result, err := ExtractJSON[testPayload](raw, nil)
	require.NoError(t, err)
	assert.Equal(t, "Cautious.", result.InitialReaction)
}

func TestExtractJSON_SurroundingText(t *testing.T) {
	raw := "Here is the enhanced response:\n{\"initialReaction\":\"We see promise.\"}\nHope that helps!"
	result, err := ExtractJSON[testPayload](raw, nil)
	require.NoError(t, err)
	assert.Equal(t, "We see promise.", result.InitialReaction)
}

func TestExtractJSON_NestedAndEscaped(t *testing.T) {
	raw := `{"initialReaction":"Costs of {\"capex\"} matter","concerns":["a}b","c"]}`
	result, err := ExtractJSON[testPayload](raw, nil)
	require.NoError(t, err)
	assert.Equal(t, `Costs of {"capex"} matter`, result.InitialReaction)
	assert.Equal(t, []string{"a}b", "c"}, result.Concerns)
}

func TestExtractJSON_CommentsAndBareDecimals(t *testing.T) {
	raw := "{\n  // tone\n  \"initialReaction\": \"ok // not a comment\", /* block */\n  \"score\": .5\n}"
	result, err := ExtractJSON[testPayload](raw, nil)
	require.NoError(t, err)
	assert.Equal(t, "ok // not a comment", result.InitialReaction)
	assert.Equal(t, 0.5, result.Score)
}

func TestExtractJSON_NoJSON(t *testing.T) {
	_, err := ExtractJSON[testPayload]("The scenario looks ambitious.", nil)
	assert.ErrorIs(t, err, ErrInvalidOutput)
}

func TestExtractJSON_InvalidJSON(t *testing.T) {
	_, err := ExtractJSON[testPayload](`{"initialReaction":"x", broken}`, nil)
	assert.ErrorIs(t, err, ErrInvalidOutput)
}

func TestExtractJSON_Validation(t *testing.T) {
	validator := func(p testPayload) error {
		if p.InitialReaction == "" {
			return fmt.Errorf("initialReaction is required")
		}
		return nil
	}

	_, err := ExtractJSON(`{"score":1}`, validator)
	assert.ErrorIs(t, err, ErrInvalidOutput)
	assert.Contains(t, err.Error(), "validation failed")

	result, err := ExtractJSON(`{"initialReaction":"fine"}`, validator)
	require.NoError(t, err)
	assert.Equal(t, "fine", result.InitialReaction)
}

func TestContainsJSONObject(t *testing.T) {
	assert.True(t, ContainsJSONObject("prefix {\"a\":1} suffix"))
	assert.False(t, ContainsJSONObject("no braces here"))
	assert.False(t, ContainsJSONObject("{ unbalanced"))
}
