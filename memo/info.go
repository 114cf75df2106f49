package memo

import "fmt"

// CacheInfo is a snapshot of a Memo's counters.
type CacheInfo struct {
	Hits     uint64
	Misses   uint64
	CurrSize int
}

// InfoFunc returns a fresh CacheInfo snapshot on each call.
type InfoFunc func() CacheInfo

// Calls is the number of calls made through the wrapper.
func (ci CacheInfo) Calls() uint64 {
	return ci.Hits + ci.Misses
}

// HitRatio is Hits / Calls, or 0 before the first call.
func (ci CacheInfo) HitRatio() float64 {
	calls := ci.Calls()
	if calls == 0 {
		return 0
	}
	return float64(ci.Hits) / float64(calls)
}

func (ci CacheInfo) String() string {
	return fmt.Sprintf("CacheInfo(hits=%d, misses=%d, currsize=%d)", ci.Hits, ci.Misses, ci.CurrSize)
}
