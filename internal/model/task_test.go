package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTaskInput_HasTitle(t *testing.T) {
	assert.True(t, TaskInput{Title: "X"}.HasTitle())
	assert.False(t, TaskInput{Description: "only description"}.HasTitle())
}

func TestTask_JSONFieldNames(t *testing.T) {
	b, err := json.Marshal(Task{ID: "1", Title: "t", Description: "d", UserID: "2"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":"1","title":"t","description":"d","userId":"2"}`, string(b))

	var in TaskInput
	require.NoError(t, json.Unmarshal([]byte(`{"title":"Y","userId":"9"}`), &in))
	assert.Equal(t, TaskInput{Title: "Y", UserID: "9"}, in)
}
