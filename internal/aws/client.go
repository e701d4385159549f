package aws

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/aws/retry"
	"github.com/aws/aws-sdk-go-v2/config"
)

// maxAttempts per API call, up from the SDK default of 3.
const maxAttempts = 8

type options struct {
	profile string
	region  string
	retryer func() aws.Retryer
}

// Option customizes how the SDK config is loaded. With no options the shared
// config chain (env, ~/.aws/config, IMDS) is used as is.
type Option func(*options)

func WithProfile(profile string) Option {
	return func(o *options) { o.profile = profile }
}

func WithRegion(region string) Option {
	return func(o *options) { o.region = region }
}

func WithRetryer(newRetryer func() aws.Retryer) Option {
	return func(o *options) { o.retryer = newRetryer }
}

func LoadConfig(ctx context.Context, opts ...Option) (aws.Config, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	var loadOpts []func(*config.LoadOptions) error
	if o.profile != "" {
		loadOpts = append(loadOpts, config.WithSharedConfigProfile(o.profile))
	}
	if o.region != "" {
		loadOpts = append(loadOpts, config.WithRegion(o.region))
	}
	if o.retryer != nil {
		loadOpts = append(loadOpts, config.WithRetryer(o.retryer))
	}
	return config.LoadDefaultConfig(ctx, loadOpts...)
}

func newRetryer() aws.Retryer {
	return retry.AddWithMaxAttempts(retry.NewStandard(), maxAttempts)
}

// SessionFactory returns a function creating one Session per region, all
// sharing the given profile.
func SessionFactory(profile string) func(ctx context.Context, region string) (*Session, error) {
	return func(ctx context.Context, region string) (*Session, error) {
		cfg, err := LoadConfig(ctx, WithProfile(profile), WithRegion(region), WithRetryer(newRetryer))
		if err != nil {
			return nil, err
		}
		return NewSession(cfg), nil
	}
}
