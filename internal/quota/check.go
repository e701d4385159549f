// Package quota holds the check contract, the maximum resolution strategy and
// the registry of checks.
package quota

import (
	"context"
	"strings"

	"github.com/pkg/errors"

	"github.com/yuxishi/aws-quota-checker/internal/aws"
	"github.com/yuxishi/aws-quota-checker/internal/model"
)

const Unknown = model.Unknown

type Scope int

const (
	ScopeAccount Scope = iota
	ScopeRegion
)

func (s Scope) String() string {
	switch s {
	case ScopeAccount:
		return "ACCOUNT"
	case ScopeRegion:
		return "REGION"
	}
	return "UNKNOWN"
}

func (s Scope) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func ParseScope(v string) (Scope, error) {
	switch strings.ToUpper(v) {
	case "ACCOUNT":
		return ScopeAccount, nil
	case "REGION":
		return ScopeRegion, nil
	}
	return 0, errors.Errorf("invalid scope %q", v)
}

// CountFunc returns the usage of a resource. instanceID is empty for checks
// that are not evaluated per instance.
type CountFunc func(ctx context.Context, s *aws.Session, instanceID string) (int64, error)

// LimitFunc returns a maximum read directly from the owning service. ok is
// false when the service has no value to offer.
type LimitFunc func(ctx context.Context, s *aws.Session, instanceID string) (value int64, ok bool, err error)

// ListFunc enumerates instance identifiers in the order the service returns
// them.
type ListFunc func(ctx context.Context, s *aws.Session) ([]string, error)

// Check describes one quota: where its usage comes from and which sources may
// supply its maximum.
type Check struct {
	Key         string
	Description string
	Scope       Scope
	// Service is the AWS service the check belongs to, used for filtering.
	Service string

	// Service Quotas catalog entry, empty when there is none.
	ServiceCode string
	QuotaCode   string

	Current CountFunc
	Live    LimitFunc
	// Default is the published AWS default. Zero means none is known.
	Default int64

	// Set for checks evaluated once per named instance.
	InstanceLabel string
	Instances     ListFunc
}

func (c Check) PerInstance() bool {
	return c.Instances != nil
}

func (c Check) HasServiceQuota() bool {
	return c.ServiceCode != "" && c.QuotaCode != ""
}

func (c Check) validate() error {
	switch {
	case c.Key == "":
		return errors.New("check without key")
	case c.Current == nil:
		return errors.Errorf("check %s: no usage function", c.Key)
	case c.Default < 0:
		return errors.Errorf("check %s: negative default %d", c.Key, c.Default)
	case (c.ServiceCode == "") != (c.QuotaCode == ""):
		return errors.Errorf("check %s: service code and quota code must be set together", c.Key)
	}
	return nil
}

func (c Check) Info() model.Check {
	return model.Check{
		Key:           c.Key,
		Description:   c.Description,
		Scope:         c.Scope.String(),
		Service:       c.Service,
		ServiceCode:   c.ServiceCode,
		QuotaCode:     c.QuotaCode,
		InstanceLabel: c.InstanceLabel,
	}
}

// Fraction returns current/maximum. ok is false when maximum is unknown or
// zero.
func Fraction(current, maximum int64) (float64, bool) {
	if maximum <= 0 {
		return 0, false
	}
	return float64(current) / float64(maximum), true
}
