package checks

import (
	"context"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/route53"
	r53types "github.com/aws/aws-sdk-go-v2/service/route53/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	awsclient "github.com/yuxishi/aws-quota-checker/internal/aws"
	"github.com/yuxishi/aws-quota-checker/internal/aws/awstest"
	"github.com/yuxishi/aws-quota-checker/internal/quota"
)

func TestRoute53RecordsPerZone(t *testing.T) {
	r53 := &awstest.Route53{}
	r53.On("ListHostedZones", mock.Anything, mock.Anything).Return(&route53.ListHostedZonesOutput{
		HostedZones: []r53types.HostedZone{
			{Id: aws.String("/hostedzone/Z111"), Name: aws.String("example.com.")},
			{Id: aws.String("/hostedzone/Z222"), Name: aws.String("example.org.")},
		},
	}, nil)
	zone := func(id string) interface{} {
		return mock.MatchedBy(func(in *route53.GetHostedZoneLimitInput) bool {
			return aws.ToString(in.HostedZoneId) == id
		})
	}
	r53.On("GetHostedZoneLimit", mock.Anything, zone("Z111")).Return(&route53.GetHostedZoneLimitOutput{
		Count: 42,
		Limit: &r53types.HostedZoneLimit{Type: r53types.HostedZoneLimitTypeMaxRrsetsByZone, Value: aws.Int64(10000)},
	}, nil)
	r53.On("GetHostedZoneLimit", mock.Anything, zone("Z222")).
		Return(nil, awstest.APIError(awsclient.CodeNoSuchHostedZone))

	r, c := lookup(t, "route53_records_per_zone")
	bounds, err := r.Bind(context.Background(), c, &awsclient.Session{Region: "us-east-1", Route53: r53})
	require.NoError(t, err)
	require.Len(t, bounds, 2)
	assert.Equal(t, "Z111", bounds[0].InstanceID)

	res := quota.Evaluate(context.Background(), bounds[0])
	require.NoError(t, res.Err)
	assert.Equal(t, int64(42), res.Current)
	assert.Equal(t, int64(10000), res.Maximum)

	res = quota.Evaluate(context.Background(), bounds[1])
	assert.ErrorIs(t, res.Err, quota.ErrInstanceNotFound)
}

func TestRoute53HostedZoneCount(t *testing.T) {
	r53 := &awstest.Route53{}
	r53.On("GetAccountLimit", mock.Anything, mock.Anything).Return(&route53.GetAccountLimitOutput{
		Count: 12,
		Limit: &r53types.AccountLimit{Type: r53types.AccountLimitTypeMaxHostedZonesByOwner, Value: aws.Int64(500)},
	}, nil)
	sq := &awstest.ServiceQuotas{}
	sq.On("GetAWSDefaultServiceQuota", mock.Anything, mock.Anything).
		Return(nil, awstest.APIError(awsclient.CodeNoSuchResource))

	_, c := lookup(t, "route53_hosted_zone_count")
	res := quota.Evaluate(context.Background(), quota.Bind(c, &awsclient.Session{Region: "us-east-1", Route53: r53, ServiceQuotas: sq}, ""))

	require.NoError(t, res.Err)
	assert.Equal(t, int64(12), res.Current)
	assert.Equal(t, int64(500), res.Maximum)
	assert.InDelta(t, 0.024, *res.UsageFraction, 1e-9)
}
