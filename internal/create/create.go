// Package create is the expression core's only public construction
// surface: one function per Op kind, each running spec §4.6's eight-step
// pipeline (nil/type/size checks, symbolic propagation, Op assembly,
// simplification, cache publication). internal/expr's Assemble and
// New* constructors are reachable from any package inside
// this module, but create is the sole path meant to be called by code
// outside it.
package create

import (
	"sync"

	"clarigo/internal/coreconfig"
	"clarigo/internal/coreerr"
	"clarigo/internal/exprcache"
	"clarigo/internal/obslog"
	"clarigo/internal/simplify"

	"clarigo/internal/expr"

	"fortio.org/safecast"
)

var (
	defaultCacheOnce sync.Once
	defaultCache     *exprcache.Cache
	defaultTracer    obslog.Tracer = obslog.Nop
)

// cache lazily builds the process-wide hash-consing cache on first use,
// sized from coreconfig's default tuning (spec §9: "process-wide
// singleton with initialization on first use").
func cache() *exprcache.Cache {
	defaultCacheOnce.Do(func() {
		cfg := coreconfig.Default()
		defaultCache = exprcache.New(cfg.CacheShards)
	})
	return defaultCache
}

// SetTracer installs the obslog.Tracer every factory call reports cache
// hits, misses and simplifier rewrites to. Passing nil restores obslog.Nop.
// Not safe to call concurrently with factory calls.
func SetTracer(t obslog.Tracer) {
	if t == nil {
		t = obslog.Nop
	}
	defaultTracer = t
}

// CacheLen reports the number of entries in the shared cache (see
// exprcache.Cache.Len: dead entries not yet scrubbed are counted), for
// tests and diagnostics.
func CacheLen() int { return cache().Len() }

// affirm returns err when cond is false, nil otherwise: the Go-idiomatic
// replacement for the source's throwing affirm(cond, err, msg) guard.
func affirm(cond bool, err error) error {
	if cond {
		return nil
	}
	return err
}

func requireNonNil(op, role string, e *expr.Expression) error {
	return affirm(e != nil, coreerr.Usage(op, role, "operand must not be nil"))
}

func requireSort(op, role string, e *expr.Expression, want expr.Sort) error {
	return affirm(e.Sort == want, coreerr.Type(op, role, "must be %s, got %s", want, e.Sort))
}

func requireEqualBitLength(op, roleA, roleB string, a, b *expr.Expression) error {
	return affirm(a.BitLength == b.BitLength,
		coreerr.Size(op, roleB, "bit length %d does not match %s bit length %d", b.BitLength, roleA, a.BitLength))
}

// requireAnnotationLimit enforces coreconfig.Default()'s MaxAnnotations cap
// on annotation set length. Both sides of the comparison are narrowed
// through safecast.Conv, since both are plain ints and the set's length is
// otherwise unbounded from this package's point of view.
func requireAnnotationLimit(op string, n int) error {
	limit := coreconfig.Default().MaxAnnotations
	if limit <= 0 {
		return nil
	}
	got, err := safecast.Conv[uint32](n)
	if err != nil {
		return coreerr.UnexpectedWrap(err, "%s: annotation count overflow", op)
	}
	want, err := safecast.Conv[uint32](limit)
	if err != nil {
		return coreerr.UnexpectedWrap(err, "%s: configured annotation limit overflow", op)
	}
	return affirm(got <= want, coreerr.Usage(op, "annotations", "annotation set length %d exceeds configured max %d", got, want))
}

// publish runs simplification and cache publication: spec §4.6 steps 7-8,
// unified so that a brand-new Expression the simplifier assembles (e.g. a
// folded literal) is itself published through the cache rather than
// returned as a dangling, un-cache-consed candidate — satisfying spec
// §4.4's "new Expressions produced by the simplifier are themselves
// published through the cache".
func publish(candidate *expr.Expression) (*expr.Expression, error) {
	if err := requireAnnotationLimit(candidate.Op.Kind.String(), candidate.Annotations.Len()); err != nil {
		return nil, err
	}
	simplified, err := simplify.Simplify(candidate)
	if err != nil {
		return nil, err
	}
	if simplified != candidate {
		defaultTracer.Emit(obslog.Event{Kind: obslog.KindSimplifyRewrite, Detail: candidate.Op.Kind.String()})
	}

	result, err := cache().FindOrInsert(simplified.ID, func() (*expr.Expression, error) {
		defaultTracer.Emit(obslog.Event{Kind: obslog.KindCacheMiss, Detail: simplified.Op.Kind.String()})
		return simplified, nil
	})
	if err != nil {
		return nil, err
	}
	if result != simplified {
		defaultTracer.Emit(obslog.Event{Kind: obslog.KindCacheHit, Detail: result.Op.Kind.String()})
	}
	return result, nil
}

func anySymbolic(es ...*expr.Expression) bool {
	for _, e := range es {
		if e.Symbolic {
			return true
		}
	}
	return false
}
