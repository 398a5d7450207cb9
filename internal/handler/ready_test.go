package handler

import (
	"sync"
	"testing"
)

func TestGuildOfRequestChannelConcurrentAccess(t *testing.T) {
	// Ready and message events arrive on separate goroutines; concurrent
	// lookups must agree on the cached guild without racing on the field.
	h := &Handler{requestGuildID: "guild-1"}

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			id, err := h.guildOfRequestChannel()
			if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
			if id != "guild-1" {
				t.Errorf("expected guild-1, got %q", id)
			}
		}()
	}
	wg.Wait()
}
