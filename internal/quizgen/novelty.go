package quizgen

import "sync"

// noveltySet is the append-only collection of question texts used for
// duplicate rejection. Concurrent batch workers append accepted texts as
// soon as they land so later-finishing siblings see them. Owned by a
// single GenerateQuestions invocation; never process-wide.
type noveltySet struct {
	mu    sync.RWMutex
	texts []string
}

func newNoveltySet(seed []string) *noveltySet {
	n := &noveltySet{texts: make([]string, len(seed))}
	copy(n.texts, seed)
	return n
}

func (n *noveltySet) add(text string) {
	n.mu.Lock()
	n.texts = append(n.texts, text)
	n.mu.Unlock()
}

// snapshot returns a stable copy safe to iterate while siblings append.
func (n *noveltySet) snapshot() []string {
	n.mu.RLock()
	defer n.mu.RUnlock()
	out := make([]string, len(n.texts))
	copy(out, n.texts)
	return out
}
