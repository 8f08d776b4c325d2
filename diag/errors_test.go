package diag

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maniartech/jsonvisit"
)

func TestExplainValid(t *testing.T) {
	assert.Nil(t, Explain([]byte(`{"a":1}`), 0, nil))
}

func TestExplainEmpty(t *testing.T) {
	err := Explain(nil, 0, nil)
	require.NotNil(t, err)
	assert.Equal(t, CodeUnexpectedEOF, err.Code)
}

func TestExplainTrailingComma(t *testing.T) {
	err := Explain([]byte(`[1,2,]`), 0, nil)
	require.NotNil(t, err)
	assert.Equal(t, CodeTrailingContent, err.Code)
	assert.Equal(t, 5, err.Position.Offset)
}

func TestExplainStopIsNotAnError(t *testing.T) {
	calls := 0
	err := Explain([]byte(`{"a":1,"b":2}`), 0, func(start, end int, info jsonvisit.Info) int64 {
		calls++
		if calls == 1 {
			return jsonvisit.Continue
		}
		return jsonvisit.Stop
	})
	assert.Nil(t, err)
}

func TestLocateTracksRowsAndColumns(t *testing.T) {
	data := []byte("{\n  \"a\": ,\n}")
	pos := Locate(data, 9)
	assert.Equal(t, 2, pos.Row)
	assert.Equal(t, 8, pos.Col)
}
