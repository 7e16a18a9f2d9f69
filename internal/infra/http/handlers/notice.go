package handlers

import (
	"net/http"
	"sync"
	"time"
)

// DefaultNoticeTTL is how long a success notice stays visible.
const DefaultNoticeTTL = 2 * time.Second

// Notice holds the transient status message shown after a successful
// submission. A shown message dismisses itself after the TTL; showing a new
// message restarts the clock.
type Notice struct {
	mu      sync.Mutex
	message string
	seq     uint64
	timer   *time.Timer
	ttl     time.Duration
}

func NewNotice(ttl time.Duration) *Notice {
	if ttl <= 0 {
		ttl = DefaultNoticeTTL
	}
	return &Notice{ttl: ttl}
}

func (n *Notice) Show(message string) {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.timer != nil {
		n.timer.Stop()
	}

	n.message = message
	n.seq++
	seq := n.seq

	// The seq guard keeps a stale timer from dismissing a newer message.
	n.timer = time.AfterFunc(n.ttl, func() {
		n.mu.Lock()
		defer n.mu.Unlock()
		if n.seq == seq {
			n.message = ""
		}
	})
}

func (n *Notice) Current() (string, bool) {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.message, n.message != ""
}

func (n *Notice) Handle(w http.ResponseWriter, r *http.Request) {
	message, visible := n.Current()
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"visible": visible,
		"message": message,
	})
}
