package memo

import (
	"sync"
	"sync/atomic"
)

// Memo wraps a pure function f: A → B and caches its results per argument.
// A Memo is safe for concurrent use. f runs once per distinct argument;
// concurrent first callers for the same argument wait for that single run.
type Memo[A comparable, B any] struct {
	hits  uint64 // first field, keeps 64-bit alignment for atomic access
	f     func(A) B
	lock  sync.RWMutex
	table map[A]*entry[B]
}

// entry holds the result for one argument. ok is set only after f returned
// normally.
type entry[B any] struct {
	once  sync.Once
	value B
	ok    bool
}

// Memoize creates a Memo for f. f must not be nil.
func Memoize[A comparable, B any](f func(A) B) *Memo[A, B] {
	if f == nil {
		panic("memo: cannot memoize nil function")
	}
	return &Memo[A, B]{
		f:     f,
		table: make(map[A]*entry[B]),
	}
}

// Call returns f(a), from the cache if a has been seen before.
// If f panics, the panic is passed on and a is not cached.
func (m *Memo[A, B]) Call(a A) B {
	e, found := m.lookup(a)
	if found {
		atomic.AddUint64(&m.hits, 1)
	}
	e.once.Do(func() {
		defer func() {
			if !e.ok {
				m.drop(a, e)
			}
		}()
		tracer().Debugf("memo miss for %v", a)
		e.value = m.f(a)
		e.ok = true
	})
	if !e.ok { // the first caller panicked, start over
		return m.Call(a)
	}
	return e.value
}

// lookup returns the entry for a, creating it if necessary.
func (m *Memo[A, B]) lookup(a A) (*entry[B], bool) {
	m.lock.RLock()
	e, ok := m.table[a]
	m.lock.RUnlock()
	if ok {
		return e, true
	}
	m.lock.Lock()
	defer m.lock.Unlock()
	if e, ok = m.table[a]; ok { // created by another caller in between
		return e, true
	}
	e = &entry[B]{}
	m.table[a] = e
	return e, false
}

func (m *Memo[A, B]) drop(a A, e *entry[B]) {
	m.lock.Lock()
	defer m.lock.Unlock()
	if m.table[a] == e {
		delete(m.table, a)
	}
}

// Func returns the memoized arrow A → B.
func (m *Memo[A, B]) Func() func(A) B {
	return m.Call
}

// Len returns the number of cached arguments.
func (m *Memo[A, B]) Len() int {
	m.lock.RLock()
	defer m.lock.RUnlock()
	return len(m.table)
}

// Hits returns the number of calls answered from the cache.
func (m *Memo[A, B]) Hits() uint64 {
	return atomic.LoadUint64(&m.hits)
}

// Reset drops all cached results.
func (m *Memo[A, B]) Reset() {
	m.lock.Lock()
	defer m.lock.Unlock()
	tracer().Debugf("memo reset, dropping %d entries", len(m.table))
	m.table = make(map[A]*entry[B])
	atomic.StoreUint64(&m.hits, 0)
}
