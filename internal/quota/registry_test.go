package quota

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yuxishi/aws-quota-checker/internal/aws"
)

func zero(context.Context, *aws.Session, string) (int64, error) { return 0, nil }

func testChecks() []Check {
	return []Check{
		{Key: "s3_bucket_count", Scope: ScopeAccount, Service: "s3", Current: zero},
		{Key: "vpc_count", Scope: ScopeRegion, Service: "ec2", Current: zero},
		{Key: "igw_count", Scope: ScopeRegion, Service: "ec2", Current: zero},
		{Key: "iam_user_count", Scope: ScopeAccount, Service: "iam", Current: zero},
	}
}

func TestNewRegistry(t *testing.T) {
	r, err := NewRegistry(testChecks()...)
	require.NoError(t, err)
	assert.Equal(t, []string{"iam_user_count", "igw_count", "s3_bucket_count", "vpc_count"}, r.Keys())
	assert.Equal(t, []string{"ec2", "iam", "s3"}, r.Services())
}

func TestNewRegistryRejectsDuplicates(t *testing.T) {
	checks := append(testChecks(), Check{Key: "vpc_count", Current: zero})
	_, err := NewRegistry(checks...)
	assert.ErrorIs(t, err, ErrDuplicateCheck)
}

func TestNewRegistryRejectsInvalid(t *testing.T) {
	_, err := NewRegistry(Check{Key: "broken"})
	assert.Error(t, err)
}

func TestLookupUnknown(t *testing.T) {
	r, err := NewRegistry(testChecks()...)
	require.NoError(t, err)

	_, err = r.Lookup("ec2_spot_fleet_count")
	assert.ErrorIs(t, err, ErrUnknownCheck)
	assert.Contains(t, err.Error(), "ec2_spot_fleet_count")

	c, err := r.Lookup("vpc_count")
	require.NoError(t, err)
	assert.Equal(t, "ec2", c.Service)
}

func keysOf(checks []Check) []string {
	out := make([]string, 0, len(checks))
	for _, c := range checks {
		out = append(out, c.Key)
	}
	return out
}

func TestSelect(t *testing.T) {
	r, err := NewRegistry(testChecks()...)
	require.NoError(t, err)

	tests := []struct {
		name     string
		keys     []string
		expected []string
		err      error
	}{
		{name: "empty selects all", expected: r.Keys()},
		{name: "all keyword", keys: []string{"vpc_count", All}, expected: r.Keys()},
		{name: "subset ordered by key", keys: []string{"vpc_count", "igw_count"}, expected: []string{"igw_count", "vpc_count"}},
		{name: "duplicates collapse", keys: []string{"vpc_count", "vpc_count"}, expected: []string{"vpc_count"}},
		{name: "unknown fails", keys: []string{"vpc_count", "nope"}, err: ErrUnknownCheck},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := r.Select(tt.keys...)
			if tt.err != nil {
				assert.ErrorIs(t, err, tt.err)
				assert.Nil(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, keysOf(got))
		})
	}
}

func TestFilter(t *testing.T) {
	r, err := NewRegistry(testChecks()...)
	require.NoError(t, err)

	account := ScopeAccount
	assert.Equal(t, []string{"iam_user_count", "s3_bucket_count"}, keysOf(r.Filter(Filter{Scope: &account})))
	assert.Equal(t, []string{"igw_count", "vpc_count"}, keysOf(r.Filter(Filter{Service: "EC2"})))
	assert.Len(t, r.Filter(Filter{}), 4)
	assert.Empty(t, r.Filter(Filter{Scope: &account, Service: "ec2"}))
}

func TestConfigure(t *testing.T) {
	r, err := NewRegistry(testChecks()...)
	require.NoError(t, err)

	err = r.Configure(map[string]int64{"nope": 3}, nil)
	assert.ErrorIs(t, err, ErrUnknownCheck)

	err = r.Configure(map[string]int64{"vpc_count": -1}, nil)
	assert.Error(t, err)

	err = r.Configure(nil, map[string]int64{"nope": 3})
	assert.ErrorIs(t, err, ErrUnknownCheck)

	require.NoError(t, r.Configure(map[string]int64{"vpc_count": 20}, map[string]int64{"igw_count": 7}))

	c, _ := r.Lookup("vpc_count")
	bounds, err := r.Bind(context.Background(), c, &aws.Session{Region: "eu-west-1"})
	require.NoError(t, err)
	require.Len(t, bounds, 1)
	assert.Equal(t, int64(20), bounds[0].Override)
	assert.Equal(t, Unknown, bounds[0].DefaultOverride)

	c, _ = r.Lookup("igw_count")
	bounds, err = r.Bind(context.Background(), c, &aws.Session{Region: "eu-west-1"})
	require.NoError(t, err)
	assert.Equal(t, Unknown, bounds[0].Override)
	assert.Equal(t, int64(7), bounds[0].DefaultOverride)
}

func TestBindInstances(t *testing.T) {
	c := Check{
		Key:     "sg_rules_per_group",
		Scope:   ScopeRegion,
		Current: zero,
		Instances: func(context.Context, *aws.Session) ([]string, error) {
			return []string{"sg-2", "sg-1", "sg-3"}, nil
		},
	}
	r, err := NewRegistry(c)
	require.NoError(t, err)

	bounds, err := r.Bind(context.Background(), c, &aws.Session{Region: "us-east-2"})
	require.NoError(t, err)
	require.Len(t, bounds, 3)
	for i, id := range []string{"sg-2", "sg-1", "sg-3"} {
		assert.Equal(t, id, bounds[i].InstanceID)
		assert.Equal(t, "us-east-2", bounds[i].Session.Region)
	}
}

func TestBindInstancesListError(t *testing.T) {
	c := Check{
		Key:     "sg_rules_per_group",
		Current: zero,
		Instances: func(context.Context, *aws.Session) ([]string, error) {
			return nil, errors.New("access denied")
		},
	}
	r, err := NewRegistry(c)
	require.NoError(t, err)

	_, err = r.Bind(context.Background(), c, &aws.Session{Region: "us-east-2"})
	var checkErr *CheckError
	require.ErrorAs(t, err, &checkErr)
	assert.Equal(t, "sg_rules_per_group", checkErr.Key)
	assert.Equal(t, "us-east-2", checkErr.Region)
	assert.Contains(t, err.Error(), "access denied")
}
