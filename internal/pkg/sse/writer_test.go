package sse

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteEvent(t *testing.T) {
	var buf bytes.Buffer

	err := WriteEvent(&buf, Event{Event: "notification", Data: map[string]string{"message": "approved"}})
	require.NoError(t, err)
	assert.Equal(t, "event: notification\ndata: {\"message\":\"approved\"}\n\n", buf.String())
}

func TestWriteEvent_UnencodableData(t *testing.T) {
	var buf bytes.Buffer

	err := WriteEvent(&buf, Event{Event: "broken", Data: make(chan int)})
	assert.Error(t, err)
	assert.Empty(t, buf.String())
}
