// Package audit runs selected checks across regions and collects their
// results.
package audit

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/yuxishi/aws-quota-checker/internal/aws"
	"github.com/yuxishi/aws-quota-checker/internal/model"
	"github.com/yuxishi/aws-quota-checker/internal/quota"
)

type SessionFactory func(ctx context.Context, region string) (*aws.Session, error)

type Request struct {
	Keys    []string
	Regions []string
	Filter  quota.Filter
}

type Runner struct {
	registry       *quota.Registry
	sessions       SessionFactory
	homeRegion     string
	maxConcurrency int
	log            logrus.FieldLogger
	now            func() time.Time
}

// NewRunner returns a Runner. Account scoped checks are evaluated once, in
// homeRegion.
func NewRunner(registry *quota.Registry, sessions SessionFactory, homeRegion string, maxConcurrency int, log logrus.FieldLogger) *Runner {
	if maxConcurrency <= 0 {
		maxConcurrency = 10
	}
	return &Runner{
		registry:       registry,
		sessions:       sessions,
		homeRegion:     homeRegion,
		maxConcurrency: maxConcurrency,
		log:            log,
		now:            time.Now,
	}
}

// Run evaluates the requested checks. Unknown keys fail before any AWS call.
// Everything else, including failed checks, ends up in the report.
func (r *Runner) Run(ctx context.Context, req Request) (*model.Report, error) {
	selected, err := r.registry.Select(req.Keys...)
	if err != nil {
		return nil, err
	}

	var account, regional []quota.Check
	for _, c := range selected {
		if !req.Filter.Match(c) {
			continue
		}
		if c.Scope == quota.ScopeAccount {
			account = append(account, c)
		} else {
			regional = append(regional, c)
		}
	}

	regions := distinct(req.Regions)
	if len(regions) == 0 {
		regions = []string{r.homeRegion}
	}

	var (
		mu      sync.Mutex
		results []model.Result
	)
	collect := func(rs []model.Result) {
		mu.Lock()
		defer mu.Unlock()
		results = append(results, rs...)
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(r.maxConcurrency)

	if len(account) > 0 {
		g.Go(func() error {
			collect(r.runRegion(ctx, r.homeRegion, account))
			return nil
		})
	}
	if len(regional) > 0 {
		for _, region := range regions {
			region := region
			g.Go(func() error {
				collect(r.runRegion(ctx, region, regional))
				return nil
			})
		}
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	sort.Slice(results, func(i, j int) bool {
		a, b := results[i], results[j]
		if a.Key != b.Key {
			return a.Key < b.Key
		}
		if a.Region != b.Region {
			return a.Region < b.Region
		}
		return a.InstanceID < b.InstanceID
	})

	return &model.Report{
		Results:     results,
		Total:       len(results),
		Regions:     regions,
		GeneratedAt: r.now(),
	}, nil
}

func (r *Runner) runRegion(ctx context.Context, region string, checks []quota.Check) []model.Result {
	log := r.log.WithField("region", region)

	sess, err := r.sessions(ctx, region)
	if err != nil {
		log.WithError(err).Warn("Cannot create AWS session")
		results := make([]model.Result, 0, len(checks))
		for _, c := range checks {
			results = append(results, failed(c, region, errors.Wrap(err, "create session")))
		}
		return results
	}

	var results []model.Result
	for _, c := range checks {
		bounds, err := r.registry.Bind(ctx, c, sess)
		if err != nil {
			log.WithError(err).WithField("check", c.Key).Warn("Cannot enumerate instances")
			results = append(results, failed(c, region, err))
			continue
		}
		for _, b := range bounds {
			res := quota.Evaluate(ctx, b)
			entry := log.WithField("check", c.Key)
			if b.InstanceID != "" {
				entry = entry.WithField("instance", b.InstanceID)
			}
			switch {
			case errors.Is(res.Err, quota.ErrInstanceNotFound):
				entry.Debug("Instance vanished before evaluation, skipping")
				continue
			case res.Err != nil:
				entry.WithError(res.Err).Warn("Check failed")
			default:
				entry.WithFields(logrus.Fields{
					"current": res.Current,
					"maximum": res.Maximum,
				}).Debug("Check evaluated")
			}
			results = append(results, res)
		}
	}
	return results
}

func failed(c quota.Check, region string, err error) model.Result {
	res := model.Result{
		Key:         c.Key,
		Description: c.Description,
		Scope:       c.Scope.String(),
		Service:     c.Service,
		Region:      region,
		ServiceCode: c.ServiceCode,
		QuotaCode:   c.QuotaCode,
		Maximum:     quota.Unknown,
		AWSDefault:  quota.Unknown,
		Err:         err,
		Error:       err.Error(),
	}
	if c.Scope == quota.ScopeAccount {
		res.Region = ""
	}
	return res
}

// distinct drops repeated entries, keeping first-seen order.
func distinct(items []string) []string {
	seen := make(map[string]struct{}, len(items))
	out := make([]string, 0, len(items))
	for _, item := range items {
		if _, ok := seen[item]; ok {
			continue
		}
		seen[item] = struct{}{}
		out = append(out, item)
	}
	return out
}
