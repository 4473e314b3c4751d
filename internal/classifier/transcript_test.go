package classifier

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTranscript_KeepsWindow(t *testing.T) {
	tr := newTranscript(2)
	for i := 0; i < 5; i++ {
		tr.Append(Turn{Request: fmt.Sprint(i), Directives: "general " + fmt.Sprint(i)})
	}

	history := tr.History()
	assert.Len(t, history, 4)
	assert.Equal(t, "3", history[0].Content)
	assert.Equal(t, "general 4", history[3].Content)
}

func TestTranscript_ConcurrentAppend(t *testing.T) {
	tr := newTranscript(0)
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			tr.Append(Turn{Request: fmt.Sprint(i)})
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 50, tr.Len())
}

func TestTranscriptStore_GetAndForget(t *testing.T) {
	store := NewTranscriptStore(10, time.Minute, 3)

	first := store.Get("s1")
	first.Append(Turn{Request: "안녕"})
	assert.Same(t, first, store.Get("s1"))

	store.Forget("s1")
	assert.Equal(t, 0, store.Get("s1").Len())
}
