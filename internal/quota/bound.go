package quota

import (
	"context"

	"github.com/pkg/errors"

	"github.com/yuxishi/aws-quota-checker/internal/aws"
	"github.com/yuxishi/aws-quota-checker/internal/model"
)

// Bound is a check tied to a session and, for instance checks, one instance.
// It holds no state beyond that binding.
type Bound struct {
	Check      Check
	Session    *aws.Session
	InstanceID string

	// Configured maximum and default from the operator, Unknown when unset.
	Override        int64
	DefaultOverride int64
}

// Bind ties c to s without any operator overrides.
func Bind(c Check, s *aws.Session, instanceID string) *Bound {
	return &Bound{
		Check:           c,
		Session:         s,
		InstanceID:      instanceID,
		Override:        Unknown,
		DefaultOverride: Unknown,
	}
}

func (b *Bound) region() string {
	if b.Session == nil {
		return ""
	}
	return b.Session.Region
}

func (b *Bound) fail(err error) error {
	if errors.Is(err, ErrInstanceNotFound) {
		return &InstanceNotFoundError{Key: b.Check.Key, InstanceID: b.InstanceID, Err: err}
	}
	return &CheckError{Key: b.Check.Key, Region: b.region(), InstanceID: b.InstanceID, Err: err}
}

func (b *Bound) Current(ctx context.Context) (int64, error) {
	n, err := b.Check.Current(ctx, b.Session, b.InstanceID)
	if err != nil {
		return 0, b.fail(err)
	}
	if n < 0 {
		return 0, b.fail(errors.Errorf("negative usage %d", n))
	}
	return n, nil
}

func (b *Bound) defaultSource() Source {
	sources := []Source{Static(b.DefaultOverride)}
	if b.Check.Default > 0 {
		sources = append(sources, Static(b.Check.Default))
	}
	if b.Check.HasServiceQuota() && b.Session != nil && b.Session.ServiceQuotas != nil {
		sources = append(sources, func(ctx context.Context) (int64, bool, error) {
			return aws.DefaultQuota(ctx, b.Session.ServiceQuotas, b.Check.ServiceCode, b.Check.QuotaCode)
		})
	}
	return Chain(sources...)
}

// Resolver builds the resolution chain for this binding. A nil def uses the
// check's own default source.
func (b *Bound) Resolver(def Source) Resolver {
	r := Resolver{
		Configured: Static(b.Override),
		Default:    def,
	}
	if def == nil {
		r.Default = b.defaultSource()
	}
	if b.Check.Live != nil {
		r.Live = func(ctx context.Context) (int64, bool, error) {
			return b.Check.Live(ctx, b.Session, b.InstanceID)
		}
	}
	if b.Check.HasServiceQuota() && b.Session != nil && b.Session.ServiceQuotas != nil {
		r.Applied = func(ctx context.Context) (int64, bool, error) {
			return aws.AppliedQuota(ctx, b.Session.ServiceQuotas, b.Check.ServiceCode, b.Check.QuotaCode)
		}
	}
	return r
}

// Maximum resolves the effective quota for the bound check.
func (b *Bound) Maximum(ctx context.Context) (int64, error) {
	return b.maximum(ctx, b.defaultSource())
}

func (b *Bound) maximum(ctx context.Context, def Source) (int64, error) {
	v, err := b.Resolver(def).Maximum(ctx)
	if err != nil {
		return Unknown, b.fail(err)
	}
	return v, nil
}

// AWSDefault returns the published default, ignoring any account increase.
func (b *Bound) AWSDefault(ctx context.Context) (int64, error) {
	return b.awsDefault(ctx, b.defaultSource())
}

func (b *Bound) awsDefault(ctx context.Context, def Source) (int64, error) {
	v, err := Resolver{Default: def}.Maximum(ctx)
	if err != nil {
		return Unknown, b.fail(err)
	}
	return v, nil
}

// Evaluate runs one bound check. Failures are recorded on the result rather
// than returned so a caller can collect partial results.
//
// The default is only consulted by the maximum when no higher tier answers.
// A failed default lookup fails the check in that case alone; otherwise the
// reported default is left Unknown.
func Evaluate(ctx context.Context, b *Bound) model.Result {
	res := model.Result{
		Key:         b.Check.Key,
		Description: b.Check.Description,
		Scope:       b.Check.Scope.String(),
		Service:     b.Check.Service,
		Region:      b.region(),
		InstanceID:  b.InstanceID,
		ServiceCode: b.Check.ServiceCode,
		QuotaCode:   b.Check.QuotaCode,
		Maximum:     Unknown,
		AWSDefault:  Unknown,
	}
	if b.Check.Scope == ScopeAccount {
		res.Region = ""
	}

	current, err := b.Current(ctx)
	if err != nil {
		return withError(res, err)
	}
	res.Current = current

	def := once(b.defaultSource())
	maximum, err := b.maximum(ctx, def)
	if err != nil {
		return withError(res, err)
	}
	res.Maximum = maximum

	if v, err := b.awsDefault(ctx, def); err == nil {
		res.AWSDefault = v
	}

	if f, ok := Fraction(current, maximum); ok {
		res.UsageFraction = &f
	}
	return res
}

func withError(res model.Result, err error) model.Result {
	res.Err = err
	res.Error = err.Error()
	return res
}
