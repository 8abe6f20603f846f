// Package fluent provides small functional helpers that Go's standard library
// leaves out: a memoizing value supplier and collectors that index or gather
// elements into read-only lists and maps.
//
// Wrap an expensive, idempotent computation with [Memoize]. The computation runs
// at most once per memo, unless it fails or returns a nil value, in which case
// the next [Memo.Get] tries again:
//
//	cfg := fluent.Memoize(loadConfig, fluent.WithName("config"))
//	c, err := cfg.Get()
//
// Concurrent callers of Get on an empty memo share a single in-flight call.
// Successful results are kept for the lifetime of the memo. Errors are not
// cached.
//
// Collectors follow a three-step reduction: supply an empty accumulator, fold
// each element into it, then finish it into the result. [Collect] and
// [CollectSlice] run a collector sequentially; [CollectParallel] accumulates
// chunks concurrently and combines the partial results in order:
//
//	byID, err := fluent.CollectSlice(users, fluent.IndexingUniquelyBy(func(u *User) string {
//		return u.ID
//	}))
//
// [IndexingUniquelyBy] fails with a [*DuplicateKeyError] naming the colliding key.
// [IndexingBy] groups elements sharing a key. [ToImmutableList] and
// [ToImmutableMap] produce [List] and [Map] values that cannot be modified.
package fluent
