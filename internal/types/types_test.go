package types

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlexIntUnmarshal(t *testing.T) {
	var body struct {
		A FlexInt `json:"a"`
		B FlexInt `json:"b"`
		C FlexInt `json:"c"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"a":3,"b":"42","c":null}`), &body))
	assert.Equal(t, 3, body.A.Int())
	assert.Equal(t, 42, body.B.Int())
	assert.Equal(t, 0, body.C.Int())

	err := json.Unmarshal([]byte(`{"a":"x1"}`), &body)
	assert.Error(t, err)

	err = json.Unmarshal([]byte(`{"a":true}`), &body)
	assert.Error(t, err)
}

func TestCustomErrorPredicates(t *testing.T) {
	wrapped := fmt.Errorf("creating article: %w", NotFound("User with given id does not exists."))
	assert.True(t, IsNotFound(wrapped))
	assert.False(t, IsConflict(wrapped))

	ce, ok := AsCustomError(wrapped)
	require.True(t, ok)
	assert.Equal(t, http.StatusNotFound, ce.Code)

	assert.True(t, IsConflict(Conflict("dup")))
	assert.Equal(t, http.StatusBadRequest, Validation("bad").Code)
	assert.Equal(t, http.StatusUnauthorized, Unauthorized("no").Code)
	assert.False(t, IsNotFound(errors.New("plain")))
}
