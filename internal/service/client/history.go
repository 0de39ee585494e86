package client

import (
	"sync"

	"github.com/heartmarshall/bankpanel-backend/internal/domain"
)

// history keeps the most recent searches in a fixed-size ring.
type history struct {
	mu    sync.Mutex
	buf   []domain.SearchParameter
	start int
	n     int
}

func newHistory(size int) *history {
	if size < 1 {
		size = 1
	}
	return &history{buf: make([]domain.SearchParameter, size)}
}

// push appends p, overwriting the oldest entry when full.
func (h *history) push(p domain.SearchParameter) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.n < len(h.buf) {
		h.buf[(h.start+h.n)%len(h.buf)] = p
		h.n++
		return
	}
	h.buf[h.start] = p
	h.start = (h.start + 1) % len(h.buf)
}

// snapshot returns the entries oldest to newest.
func (h *history) snapshot() []domain.SearchParameter {
	h.mu.Lock()
	defer h.mu.Unlock()

	out := make([]domain.SearchParameter, 0, h.n)
	for i := range h.n {
		out = append(out, h.buf[(h.start+i)%len(h.buf)])
	}
	return out
}
