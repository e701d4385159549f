package quota

import (
	"context"
	"sort"
	"strings"

	"github.com/pkg/errors"

	"github.com/yuxishi/aws-quota-checker/internal/aws"
)

// All selects every registered check in Registry.Select.
const All = "all"

// Registry maps check keys to checks. It is not modified after Configure and
// may be shared between goroutines.
type Registry struct {
	checks    map[string]Check
	keys      []string
	overrides map[string]int64
	defaults  map[string]int64
}

func NewRegistry(checks ...Check) (*Registry, error) {
	r := &Registry{checks: make(map[string]Check, len(checks))}
	for _, c := range checks {
		if err := c.validate(); err != nil {
			return nil, err
		}
		if _, exists := r.checks[c.Key]; exists {
			return nil, errors.Wrap(ErrDuplicateCheck, c.Key)
		}
		r.checks[c.Key] = c
		r.keys = append(r.keys, c.Key)
	}
	sort.Strings(r.keys)
	return r, nil
}

// Configure sets operator supplied maximums and defaults by check key.
func (r *Registry) Configure(overrides, defaults map[string]int64) error {
	for key, v := range overrides {
		if _, err := r.Lookup(key); err != nil {
			return errors.Wrap(err, "override")
		}
		if v < 0 {
			return errors.Errorf("override for %s is negative", key)
		}
	}
	for key, v := range defaults {
		if _, err := r.Lookup(key); err != nil {
			return errors.Wrap(err, "default")
		}
		if v < 0 {
			return errors.Errorf("default for %s is negative", key)
		}
	}
	r.overrides = overrides
	r.defaults = defaults
	return nil
}

func (r *Registry) Lookup(key string) (Check, error) {
	c, ok := r.checks[key]
	if !ok {
		return Check{}, errors.Wrapf(ErrUnknownCheck, "%q", key)
	}
	return c, nil
}

func (r *Registry) Keys() []string {
	return append([]string(nil), r.keys...)
}

// All returns every check ordered by key.
func (r *Registry) All() []Check {
	out := make([]Check, 0, len(r.keys))
	for _, k := range r.keys {
		out = append(out, r.checks[k])
	}
	return out
}

// Filter narrows the checks. Zero values match everything.
type Filter struct {
	Scope   *Scope
	Service string
}

func (f Filter) Match(c Check) bool {
	if f.Scope != nil && c.Scope != *f.Scope {
		return false
	}
	if f.Service != "" && !strings.EqualFold(c.Service, f.Service) {
		return false
	}
	return true
}

func (r *Registry) Filter(f Filter) []Check {
	var out []Check
	for _, c := range r.All() {
		if f.Match(c) {
			out = append(out, c)
		}
	}
	return out
}

// Services lists the distinct services of all checks, sorted.
func (r *Registry) Services() []string {
	seen := make(map[string]bool)
	var out []string
	for _, c := range r.checks {
		if !seen[c.Service] {
			seen[c.Service] = true
			out = append(out, c.Service)
		}
	}
	sort.Strings(out)
	return out
}

// Select resolves keys to checks, ordered by key. An empty list or "all"
// selects everything. Any unknown key fails the whole selection.
func (r *Registry) Select(keys ...string) ([]Check, error) {
	if len(keys) == 0 {
		return r.All(), nil
	}
	seen := make(map[string]bool)
	var out []Check
	for _, k := range keys {
		if k == All {
			return r.All(), nil
		}
		c, err := r.Lookup(k)
		if err != nil {
			return nil, err
		}
		if !seen[k] {
			seen[k] = true
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out, nil
}

// Bind ties c to s. Instance checks are enumerated and bound once per
// instance.
func (r *Registry) Bind(ctx context.Context, c Check, s *aws.Session) ([]*Bound, error) {
	if !c.PerInstance() {
		return []*Bound{r.bind(c, s, "")}, nil
	}
	ids, err := c.Instances(ctx, s)
	if err != nil {
		return nil, &CheckError{Key: c.Key, Region: s.Region, Err: errors.Wrap(err, "list instances")}
	}
	bounds := make([]*Bound, 0, len(ids))
	for _, id := range ids {
		bounds = append(bounds, r.bind(c, s, id))
	}
	return bounds, nil
}

func (r *Registry) bind(c Check, s *aws.Session, instanceID string) *Bound {
	b := Bind(c, s, instanceID)
	if v, ok := r.overrides[c.Key]; ok {
		b.Override = v
	}
	if v, ok := r.defaults[c.Key]; ok {
		b.DefaultOverride = v
	}
	return b
}
