package db

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestImporter_GetStatusWhileSleeping(t *testing.T) {
	imp := NewImporter(t.TempDir(), nil, nil)
	messageChan := make(chan string)
	done := make(chan bool)

	go func() {
		imp.ImportWhile(messageChan, 24*time.Hour)
		done <- true
	}()

	status := imp.GetStatus()
	assert.True(t, strings.Contains(status, "Sleeping"), "unexpected status: %s", status)

	close(messageChan)
	select {
	case <-done:
	case <-time.NewTimer(1 * time.Second).C:
		assert.Fail(t, "import loop did not exit after channel close")
	}
}

func TestDrainAbortMessage(t *testing.T) {
	messageChan := make(chan string, 2)

	assert.False(t, drainAbortMessage(messageChan), "empty channel reported an abort")

	messageChan <- "something else"
	messageChan <- AbortIngestJobMessage
	assert.True(t, drainAbortMessage(messageChan), "abort message was not picked up")
}
