package quota

import (
	"context"
	"sync"
)

// Source is one candidate for a maximum. ok=false means the source has no
// value and the next one should be asked.
type Source func(ctx context.Context) (value int64, ok bool, err error)

// Static yields v, or nothing when v is negative.
func Static(v int64) Source {
	return func(context.Context) (int64, bool, error) {
		return v, v >= 0, nil
	}
}

// Chain asks each source in turn and returns the first value offered.
func Chain(sources ...Source) Source {
	return func(ctx context.Context) (int64, bool, error) {
		for _, src := range sources {
			if src == nil {
				continue
			}
			v, ok, err := src(ctx)
			if err != nil {
				return 0, false, err
			}
			if ok && v >= 0 {
				return v, true, nil
			}
		}
		return 0, false, nil
	}
}

// once asks src at most one time and replays its answer.
func once(src Source) Source {
	var (
		o   sync.Once
		v   int64
		ok  bool
		err error
	)
	return func(ctx context.Context) (int64, bool, error) {
		o.Do(func() { v, ok, err = src(ctx) })
		return v, ok, err
	}
}

// Resolver picks the maximum of a check. Tiers are asked in order:
//
//	Configured  operator override
//	Live        limit reported by the owning service with its usage
//	Applied     Service Quotas value applied to the account
//	Default     published AWS default
//
// and Unknown is returned when none answers. An error from any tier stops
// resolution.
type Resolver struct {
	Configured Source
	Live       Source
	Applied    Source
	Default    Source
}

func (r Resolver) Maximum(ctx context.Context) (int64, error) {
	v, ok, err := Chain(r.Configured, r.Live, r.Applied, r.Default)(ctx)
	if err != nil {
		return Unknown, err
	}
	if !ok {
		return Unknown, nil
	}
	return v, nil
}
