package notify

import (
	"context"
	"sync"
	"sync/atomic"
)

// Subscriber получает сигнал об изменении календаря
// Вызывается синхронно из Publish; долгую работу подписчик выносит в горутину сам
type Subscriber func(ctx context.Context, reason string)

// Broadcaster рассылает сигнал "calendar-data-updated" после каждой изменяющей операции
// Сигнал без данных: получатели заново читают состояние целиком
type Broadcaster struct {
	mu          sync.RWMutex
	subscribers []Subscriber
	revision    atomic.Uint64
}

// NewBroadcaster создает рассыльщик без подписчиков
func NewBroadcaster() *Broadcaster {
	return &Broadcaster{}
}

// Subscribe добавляет подписчика
func (b *Broadcaster) Subscribe(fn Subscriber) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.subscribers = append(b.subscribers, fn)
}

// Publish увеличивает ревизию календаря и оповещает подписчиков
func (b *Broadcaster) Publish(ctx context.Context, reason string) {
	b.revision.Add(1)

	b.mu.RLock()
	subscribers := make([]Subscriber, len(b.subscribers))
	copy(subscribers, b.subscribers)
	b.mu.RUnlock()

	for _, fn := range subscribers {
		fn(ctx, reason)
	}
}

// Revision текущая ревизия календаря; клиенты сравнивают ее, чтобы понять, нужно ли перечитать данные
func (b *Broadcaster) Revision() uint64 {
	return b.revision.Load()
}
