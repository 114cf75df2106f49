package memo

import (
	"fmt"
	"reflect"
	"runtime"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/on-the-ground/mutcache/shared/logging"
	"go.uber.org/zap"
)

// Func is the general shape of a memoizable function.
type Func[O any] func(args []any, kwargs Kwargs) (O, error)

// Memo caches the results of one function by call key.
//
//   - The store is unbounded and never evicts.
//   - Results are stored only when the function returns without error or panic.
//   - Hits + Misses always equals the number of calls, including calls whose
//     key could not be derived, which count as misses.
type Memo[O any] struct {
	id     string
	name   string
	fn     Func[O]
	cfg    Config
	logger *zap.Logger

	mu      sync.Mutex
	entries map[uint64]O
	hits    uint64
	misses  uint64
}

// New wraps fn in a Memo.
func New[O any](fn Func[O], opts ...Option) *Memo[O] {
	if fn == nil {
		panic("memo: nil function")
	}
	cfg := NewConfig(opts...)
	name := cfg.Name
	if name == "" {
		name = funcName(fn)
	}
	m := &Memo[O]{
		id:      uuid.New().String(),
		name:    name,
		fn:      fn,
		cfg:     cfg,
		entries: make(map[uint64]O),
	}
	m.logger = cfg.Logger.With(zap.String("memo_id", m.id), zap.String("memo", name))
	return m
}

// ID is the random id of this Memo instance.
func (m *Memo[O]) ID() string { return m.id }

// Name is the function name used in keys.
func (m *Memo[O]) Name() string { return m.name }

// Call returns the cached result for the call, computing and storing it on a miss.
// Errors from the wrapped function are returned unchanged and not cached.
func (m *Memo[O]) Call(args []any, kwargs ...Kwarg) (O, error) {
	var zero O

	key, err := MakeKey(m.name, args, kwargs, m.cfg.Key)
	if err != nil {
		m.countMiss()
		logging.Emit(m.logger, logging.LogError, "memo key derivation failed", map[string]any{
			"error": err,
		})
		return zero, fmt.Errorf("memo %s: %w", m.name, err)
	}

	if v, ok := m.lookup(key); ok {
		logging.Emit(m.logger, logging.LogDebug, "memo hit", map[string]any{
			"key": key,
		})
		return v, nil
	}

	start := time.Now()
	v, err := m.fn(args, kwargs)
	span := spanSince(start)
	if err != nil {
		logging.Emit(m.logger, logging.LogWarn, "memo compute failed", map[string]any{
			"key":   key,
			"error": err,
		})
		return zero, err
	}

	m.store(key, v)
	logging.Emit(m.logger, logging.LogDebug, "memo miss", map[string]any{
		"key":              key,
		"compute_start":    span.Start(),
		"compute_duration": span.Duration(),
	})
	return v, nil
}

// CacheInfo returns a snapshot of the counters and the live store size.
func (m *Memo[O]) CacheInfo() CacheInfo {
	m.mu.Lock()
	defer m.mu.Unlock()
	return CacheInfo{
		Hits:     m.hits,
		Misses:   m.misses,
		CurrSize: len(m.entries),
	}
}

// lookup counts the call as a hit or a miss.
func (m *Memo[O]) lookup(key uint64) (O, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.entries[key]
	if ok && !(m.cfg.NilAsAbsent && isNilLike(v)) {
		m.hits++
		return v, true
	}
	m.misses++
	var zero O
	return zero, false
}

func (m *Memo[O]) countMiss() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.misses++
}

func (m *Memo[O]) store(key uint64, v O) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[key] = v
}

// mustCall is Call for wrappers without an error result.
func (m *Memo[O]) mustCall(args ...any) O {
	v, err := m.Call(args)
	if err != nil {
		panic(err)
	}
	return v
}

func isNilLike(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Chan, reflect.Func, reflect.Interface, reflect.Map,
		reflect.Pointer, reflect.Slice, reflect.UnsafePointer:
		return rv.IsNil()
	}
	return false
}

func funcName(fn any) string {
	rv := reflect.ValueOf(fn)
	if rv.Kind() != reflect.Func || rv.IsNil() {
		return ""
	}
	if f := runtime.FuncForPC(rv.Pointer()); f != nil {
		return f.Name()
	}
	return ""
}
