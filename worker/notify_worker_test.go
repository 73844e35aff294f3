package worker

import (
	"bytes"
	"fmt"
	"log"
	"testing"

	"github.com/stretchr/testify/assert"

	"robocomp/registration"
)

func TestEnqueueConfirmationDropsWhenFull(t *testing.T) {
	var buf bytes.Buffer
	w := NewNotifyWorker(nil, log.New(&buf, "", 0))

	sub := registration.Submission{TeamName: "Alpha"}
	for i := 0; i < cap(w.queue); i++ {
		w.EnqueueConfirmation(fmt.Sprintf("a%d@b.com", i), sub)
	}
	assert.Empty(t, buf.String(), "queue accepts up to its capacity without drops")

	w.EnqueueConfirmation("overflow@b.com", sub)
	assert.Contains(t, buf.String(), "queue full")
	assert.Contains(t, buf.String(), "overflow@b.com")

	assert.Len(t, w.queue, cap(w.queue), "dropped job never entered the queue")
}
