package checks

import (
	"regexp"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yuxishi/aws-quota-checker/internal/quota"
)

var keyPattern = regexp.MustCompile(`^[a-z0-9]+(_[a-z0-9]+)*$`)

func TestCatalog(t *testing.T) {
	r, err := NewRegistry()
	require.NoError(t, err)
	assert.Len(t, r.Keys(), len(All()))

	for _, c := range All() {
		t.Run(c.Key, func(t *testing.T) {
			assert.Regexp(t, keyPattern, c.Key)
			assert.NotEmpty(t, c.Description)
			assert.NotEmpty(t, c.Service)
			if c.PerInstance() {
				assert.NotEmpty(t, c.InstanceLabel)
			}
			if c.HasServiceQuota() {
				assert.Regexp(t, `^L-[0-9A-F]{8}$`, c.QuotaCode)
			}
		})
	}
}

func TestCatalogScopes(t *testing.T) {
	r, err := NewRegistry()
	require.NoError(t, err)

	for key, scope := range map[string]quota.Scope{
		"iam_user_count":            quota.ScopeAccount,
		"s3_bucket_count":           quota.ScopeAccount,
		"cf_distribution_count":     quota.ScopeAccount,
		"route53_hosted_zone_count": quota.ScopeAccount,
		"vpc_count":                 quota.ScopeRegion,
		"asg_count":                 quota.ScopeRegion,
		"ecsstrg_count":             quota.ScopeRegion,
		"rds_instance_count":        quota.ScopeRegion,
	} {
		c, err := r.Lookup(key)
		require.NoError(t, err, key)
		assert.Equal(t, scope, c.Scope, key)
	}
}

func TestInt64Value(t *testing.T) {
	assert.Equal(t, int64(4), int64Value(int64(4)))
	assert.Equal(t, int64(5), int64Value(aws.Int64(5)))
	assert.Equal(t, int64(6), int64Value(int32(6)))
	assert.Equal(t, int64(7), int64Value(aws.Int32(7)))
	assert.Equal(t, int64(0), int64Value((*int64)(nil)))
}
