package testfixtures

import (
	"context"
	"sync"
)

// Publisher запоминает опубликованные причины изменений календаря
type Publisher struct {
	mu      sync.Mutex
	reasons []string
}

// Publish реализует интерфейс публикации изменений
func (p *Publisher) Publish(_ context.Context, reason string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.reasons = append(p.reasons, reason)
}

// Reasons копия опубликованных причин
func (p *Publisher) Reasons() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]string, len(p.reasons))
	copy(out, p.reasons)
	return out
}
