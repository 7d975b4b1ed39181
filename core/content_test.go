package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContent_Text(t *testing.T) {
	c := Content{
		Role: "assistant",
		Parts: []Part{
			TextPart{Text: "hello "},
			FunctionCallPart{FunctionCall: FunctionCall{Name: "noise"}},
			TextPart{Text: "world"},
		},
	}
	assert.Equal(t, "hello world", c.Text())
}

func TestContent_FunctionCalls(t *testing.T) {
	c := Content{
		Role: "assistant",
		Parts: []Part{
			TextPart{Text: "calling tools"},
			FunctionCallPart{FunctionCall: FunctionCall{ID: "1", Name: "generate_qr_code", Arguments: `{"data":"x"}`}},
			FunctionCallPart{FunctionCall: FunctionCall{ID: "2", Name: "generate_thumbnail"}},
		},
	}

	calls := c.FunctionCalls()
	assert.Len(t, calls, 2)
	assert.Equal(t, "generate_qr_code", calls[0].Name)
	assert.Equal(t, "2", calls[1].ID)
}

func TestNewUserText(t *testing.T) {
	c := NewUserText("hi")
	assert.Equal(t, "user", c.Role)
	assert.Equal(t, "hi", c.Text())
	assert.Empty(t, c.FunctionCalls())
}

func TestNewSystemText(t *testing.T) {
	c := NewSystemText("be helpful")
	assert.Equal(t, "system", c.Role)
	assert.Equal(t, "be helpful", c.Text())
}
