// Package screen holds the presentation state of each storefront screen.
// A screen owns one Live value per piece of state; actions post to it from
// background goroutines and any number of observers subscribe.
package screen

import "sync"

// Live is a last-write-wins holder that fans every posted value out to its
// subscribers.
type Live[T any] struct {
	mu    sync.Mutex
	value T
	subs  map[int]chan T
	next  int
}

func NewLive[T any](initial T) *Live[T] {
	return &Live[T]{value: initial, subs: map[int]chan T{}}
}

// Post replaces the value and delivers it to every subscriber. When a
// subscriber's buffer is full its oldest pending value is discarded, so the
// latest value always reaches it.
func (l *Live[T]) Post(v T) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.value = v
	for _, ch := range l.subs {
		select {
		case ch <- v:
			continue
		default:
		}
		select {
		case <-ch:
		default:
		}
		select {
		case ch <- v:
		default:
		}
	}
}

// Value returns the latest posted value.
func (l *Live[T]) Value() T {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.value
}

// Subscribe returns a channel receiving values posted from now on and a
// cancel func that closes it. buffer must be at least 1.
func (l *Live[T]) Subscribe(buffer int) (<-chan T, func()) {
	if buffer < 1 {
		panic("screen: Subscribe buffer must be at least 1")
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	id := l.next
	l.next++
	ch := make(chan T, buffer)
	l.subs[id] = ch

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			l.mu.Lock()
			defer l.mu.Unlock()
			delete(l.subs, id)
			close(ch)
		})
	}
}
