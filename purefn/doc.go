// Package purefn provides memoization utilities for deferred effects.
//
// An Effect defers work; Memoize and TableizeEff additionally make the
// deferred work happen at most once. They are meant for effects whose
// underlying computation is pure (not just deterministic, but
// referentially transparent), so that replaying a cached result is
// indistinguishable from re-running the computation.
//
// Memoize caches a single effect's result after its first invocation.
// TableizeEff memoizes a whole family of effects keyed by input value,
// backed by a bounded table with dual-generation rotation; callers can
// swap in their own Store (e.g. a ristretto cache) via
// TableizeEffWithStore.
//
// WARNING: Do not memoize impure effects (e.g., those depending on
// time, I/O, etc.). The cached result is replayed and their side
// effects will not re-run.
package purefn
