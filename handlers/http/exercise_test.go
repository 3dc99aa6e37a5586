package httpHandler

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddExerciseRequestAcceptsNumericDuration(t *testing.T) {
	var req addExerciseRequest
	require.NoError(t, json.Unmarshal([]byte(`{"description":"run","duration":30}`), &req))
	assert.Equal(t, lenientString("30"), req.Duration)

	require.NoError(t, json.Unmarshal([]byte(`{"description":"run","duration":"45min"}`), &req))
	assert.Equal(t, lenientString("45min"), req.Duration)

	assert.Error(t, json.Unmarshal([]byte(`{"duration":{"minutes":5}}`), &req))
}
