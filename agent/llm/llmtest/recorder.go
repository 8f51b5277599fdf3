// Package llmtest provides in-memory models for tests.
package llmtest

import (
	"context"
	"fmt"
	"sync"
)

// Recorder answers every prompt from Replies in order, then repeats Reply.
// Every received prompt is kept.
type Recorder struct {
	Reply   string
	Replies []string
	Err     error

	mu      sync.Mutex
	prompts []string
}

// NewRecorder returns a Recorder that always answers reply.
func NewRecorder(reply string) *Recorder {
	return &Recorder{Reply: reply}
}

// NewScript returns a Recorder that answers with replies in sequence.
func NewScript(replies ...string) *Recorder {
	return &Recorder{Replies: replies}
}

func (r *Recorder) Generate(_ context.Context, prompt string) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := len(r.prompts)
	r.prompts = append(r.prompts, prompt)
	if r.Err != nil {
		return "", r.Err
	}
	if n < len(r.Replies) {
		return r.Replies[n], nil
	}
	if r.Reply == "" && len(r.Replies) > 0 {
		return "", fmt.Errorf("llmtest: script exhausted after %d replies", len(r.Replies))
	}
	return r.Reply, nil
}

// Prompts returns a copy of every prompt received so far.
func (r *Recorder) Prompts() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.prompts...)
}

// Calls reports how many prompts were received.
func (r *Recorder) Calls() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.prompts)
}
