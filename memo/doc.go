// Package memo provides memoization for functions whose arguments are not
// comparable.
//
// Go maps need comparable keys, so slices, maps, and structs holding them
// cannot key a cache directly. A Memo instead derives a 64-bit key from a
// string form of the call: the function's name, the string form of each
// positional argument, and the names of its keyword arguments. Any value can
// take part as long as its string form is stable. Implement Keyer (or
// fmt.Stringer) to control it.
//
// Features:
//   - New / Memo.Call: the general memoizer for func(args, kwargs) (O, error).
//   - WrapI1O1 to WrapI4O1, WrapI1O1Err to WrapI4O1Err: typed drop-in wrappers.
//   - CacheInfo: hit and miss counters plus the current store size.
//   - Errors and panics from the wrapped function are never cached.
//
// Known key hazards, kept on purpose and covered by tests:
//
//	→ keyword argument values are not part of the key, only their names
//	   (opt in with WithKeywordValues);
//	→ the groups are joined without a boundary, so ("ab") and ("a", b=…) collide;
//	→ the key is a non-cryptographic hash; a collision returns the wrong value.
//
// The store is unbounded and never evicts. A Memo is safe for concurrent use,
// but the lock is not held while the wrapped function runs, so concurrent
// misses on the same key may compute twice.
//
// WARNING: Do not memoize impure functions (e.g., those depending on time, I/O, etc).
package memo
