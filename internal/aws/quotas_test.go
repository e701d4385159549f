package aws_test

import (
	"context"
	"testing"
	"time"

	sdkaws "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/cloudwatch"
	cwtypes "github.com/aws/aws-sdk-go-v2/service/cloudwatch/types"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	ec2types "github.com/aws/aws-sdk-go-v2/service/ec2/types"
	"github.com/aws/aws-sdk-go-v2/service/servicequotas"
	sqtypes "github.com/aws/aws-sdk-go-v2/service/servicequotas/types"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/yuxishi/aws-quota-checker/internal/aws"
	"github.com/yuxishi/aws-quota-checker/internal/aws/awstest"
	"github.com/yuxishi/aws-quota-checker/internal/model"
)

func TestIsNotFound(t *testing.T) {
	err := awstest.APIError(aws.CodeNoSuchResource)
	assert.True(t, aws.IsNotFound(err, aws.CodeNoSuchResource))
	assert.True(t, aws.IsNotFound(errors.Wrap(err, "get quota"), aws.CodeNoSuchEntity, aws.CodeNoSuchResource))
	assert.False(t, aws.IsNotFound(err, aws.CodeNoSuchEntity))
	assert.False(t, aws.IsNotFound(errors.New("NoSuchResourceException"), aws.CodeNoSuchResource))
	assert.False(t, aws.IsNotFound(nil, aws.CodeNoSuchResource))
}

func TestAppliedQuota(t *testing.T) {
	tests := []struct {
		name    string
		output  *servicequotas.GetServiceQuotaOutput
		err     error
		value   int64
		ok      bool
		wantErr bool
	}{
		{
			name:   "value is rounded",
			output: &servicequotas.GetServiceQuotaOutput{Quota: &sqtypes.ServiceQuota{Value: sdkaws.Float64(199.6)}},
			value:  200,
			ok:     true,
		},
		{
			name: "not in catalog",
			err:  awstest.APIError(aws.CodeNoSuchResource),
		},
		{
			name:   "missing value",
			output: &servicequotas.GetServiceQuotaOutput{Quota: &sqtypes.ServiceQuota{}},
		},
		{
			name:    "negative value",
			output:  &servicequotas.GetServiceQuotaOutput{Quota: &sqtypes.ServiceQuota{Value: sdkaws.Float64(-1)}},
			wantErr: true,
		},
		{
			name:    "access denied",
			err:     awstest.APIError("AccessDeniedException"),
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sq := &awstest.ServiceQuotas{}
			sq.On("GetServiceQuota", mock.Anything, mock.MatchedBy(func(in *servicequotas.GetServiceQuotaInput) bool {
				return sdkaws.ToString(in.ServiceCode) == "vpc" && sdkaws.ToString(in.QuotaCode) == "L-F678F1CE"
			})).Return(tt.output, tt.err)

			v, ok, err := aws.AppliedQuota(context.Background(), sq, "vpc", "L-F678F1CE")
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.value, v)
			}
			sq.AssertExpectations(t)
		})
	}
}

func TestDefaultQuota(t *testing.T) {
	sq := &awstest.ServiceQuotas{}
	sq.On("GetAWSDefaultServiceQuota", mock.Anything, mock.Anything).Return(&servicequotas.GetAWSDefaultServiceQuotaOutput{
		Quota: &sqtypes.ServiceQuota{Value: sdkaws.Float64(5)},
	}, nil)

	v, ok, err := aws.DefaultQuota(context.Background(), sq, "vpc", "L-F678F1CE")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, int64(5), v)
}

func TestUsageFromMetric(t *testing.T) {
	now := time.Now()
	older, newer := now.Add(-10*time.Minute), now.Add(-5*time.Minute)

	cw := &awstest.CloudWatch{}
	cw.On("GetMetricStatistics", mock.Anything, mock.MatchedBy(func(in *cloudwatch.GetMetricStatisticsInput) bool {
		return sdkaws.ToString(in.Namespace) == "AWS/Usage" &&
			len(in.Statistics) == 1 && in.Statistics[0] == cwtypes.StatisticMaximum &&
			len(in.Dimensions) == 1 && sdkaws.ToString(in.Dimensions[0].Name) == "Class"
	})).Return(&cloudwatch.GetMetricStatisticsOutput{
		Datapoints: []cwtypes.Datapoint{
			{Timestamp: &older, Maximum: sdkaws.Float64(12)},
			{Maximum: sdkaws.Float64(99)},
			{Timestamp: &newer, Maximum: sdkaws.Float64(16)},
		},
	}, nil)

	v, err := aws.UsageFromMetric(context.Background(), cw, &sqtypes.MetricInfo{
		MetricNamespace:  sdkaws.String("AWS/Usage"),
		MetricName:       sdkaws.String("ResourceCount"),
		MetricDimensions: map[string]string{"Class": "Standard/OnDemand"},
	})
	require.NoError(t, err)
	assert.Equal(t, float64(16), v)
	cw.AssertExpectations(t)
}

func TestUsageFromMetricNoData(t *testing.T) {
	cw := &awstest.CloudWatch{}
	cw.On("GetMetricStatistics", mock.Anything, mock.Anything).Return(&cloudwatch.GetMetricStatisticsOutput{}, nil)

	v, err := aws.UsageFromMetric(context.Background(), cw, &sqtypes.MetricInfo{
		MetricNamespace:               sdkaws.String("AWS/Usage"),
		MetricName:                    sdkaws.String("ResourceCount"),
		MetricStatisticRecommendation: sdkaws.String("Sum"),
	})
	require.NoError(t, err)
	assert.Zero(t, v)
}

func TestQuotaUsage(t *testing.T) {
	metric := &sqtypes.MetricInfo{
		MetricNamespace: sdkaws.String("AWS/Usage"),
		MetricName:      sdkaws.String("ResourceCount"),
	}
	sq := &awstest.ServiceQuotas{}
	sq.On("GetServiceQuota", mock.Anything, mock.Anything).Return(nil, awstest.APIError(aws.CodeNoSuchResource))
	sq.On("GetAWSDefaultServiceQuota", mock.Anything, mock.Anything).Return(&servicequotas.GetAWSDefaultServiceQuotaOutput{
		Quota: &sqtypes.ServiceQuota{Value: sdkaws.Float64(5), UsageMetric: metric},
	}, nil)
	ts := time.Now()
	cw := &awstest.CloudWatch{}
	cw.On("GetMetricStatistics", mock.Anything, mock.Anything).Return(&cloudwatch.GetMetricStatisticsOutput{
		Datapoints: []cwtypes.Datapoint{{Timestamp: &ts, Maximum: sdkaws.Float64(31.2)}},
	}, nil)

	n, err := aws.QuotaUsage(context.Background(), &aws.Session{ServiceQuotas: sq, CloudWatch: cw}, "ec2", "L-1216C47A")
	require.NoError(t, err)
	assert.Equal(t, int64(32), n)
}

func TestQuotaUsageWithoutMetric(t *testing.T) {
	sq := &awstest.ServiceQuotas{}
	sq.On("GetServiceQuota", mock.Anything, mock.Anything).Return(&servicequotas.GetServiceQuotaOutput{
		Quota: &sqtypes.ServiceQuota{Value: sdkaws.Float64(5)},
	}, nil)

	_, err := aws.QuotaUsage(context.Background(), &aws.Session{ServiceQuotas: sq, CloudWatch: &awstest.CloudWatch{}}, "ec2", "L-1216C47A")
	assert.ErrorContains(t, err, "no usage metric")
}

func TestGetRegions(t *testing.T) {
	ec2Mock := &awstest.EC2{}
	ec2Mock.On("DescribeRegions", mock.Anything, mock.Anything).Return(&ec2.DescribeRegionsOutput{
		Regions: []ec2types.Region{
			{RegionName: sdkaws.String("us-west-2")},
			{RegionName: sdkaws.String("eu-west-1")},
			{RegionName: sdkaws.String("ap-south-1")},
		},
	}, nil)

	regions, err := aws.GetRegions(context.Background(), ec2Mock)
	require.NoError(t, err)
	assert.Equal(t, []model.Region{
		{Code: "ap-south-1", Name: "ap-south-1"},
		{Code: "eu-west-1", Name: "eu-west-1"},
		{Code: "us-west-2", Name: "us-west-2"},
	}, regions)
}

func TestGetRegionsError(t *testing.T) {
	ec2Mock := &awstest.EC2{}
	ec2Mock.On("DescribeRegions", mock.Anything, mock.Anything).Return(nil, awstest.APIError("UnauthorizedOperation"))

	_, err := aws.GetRegions(context.Background(), ec2Mock)
	assert.Error(t, err)
}
