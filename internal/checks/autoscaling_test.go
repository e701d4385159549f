package checks

import (
	"context"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/applicationautoscaling"
	aastypes "github.com/aws/aws-sdk-go-v2/service/applicationautoscaling/types"
	"github.com/aws/aws-sdk-go-v2/service/servicequotas"
	sqtypes "github.com/aws/aws-sdk-go-v2/service/servicequotas/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	awsclient "github.com/yuxishi/aws-quota-checker/internal/aws"
	"github.com/yuxishi/aws-quota-checker/internal/aws/awstest"
	"github.com/yuxishi/aws-quota-checker/internal/quota"
)

func defaultQuota(v float64) *servicequotas.GetAWSDefaultServiceQuotaOutput {
	return &servicequotas.GetAWSDefaultServiceQuotaOutput{Quota: &sqtypes.ServiceQuota{Value: aws.Float64(v)}}
}

func TestECSScalableTargetCount(t *testing.T) {
	page := func(token string) interface{} {
		return mock.MatchedBy(func(in *applicationautoscaling.DescribeScalableTargetsInput) bool {
			return in.ServiceNamespace == aastypes.ServiceNamespaceEcs && aws.ToString(in.NextToken) == token
		})
	}
	aas := &awstest.ApplicationAutoScaling{}
	aas.On("DescribeScalableTargets", mock.Anything, page("")).Return(&applicationautoscaling.DescribeScalableTargetsOutput{
		ScalableTargets: []aastypes.ScalableTarget{{ResourceId: aws.String("service/default/web")}, {ResourceId: aws.String("service/default/api")}},
		NextToken:       aws.String("p2"),
	}, nil)
	aas.On("DescribeScalableTargets", mock.Anything, page("p2")).Return(&applicationautoscaling.DescribeScalableTargetsOutput{
		ScalableTargets: []aastypes.ScalableTarget{{ResourceId: aws.String("service/batch/worker")}},
	}, nil)
	sq := &awstest.ServiceQuotas{}
	sq.On("GetServiceQuota", mock.Anything, mock.Anything).
		Return(nil, awstest.APIError(awsclient.CodeNoSuchResource))
	sq.On("GetAWSDefaultServiceQuota", mock.Anything, mock.Anything).Return(defaultQuota(3000), nil)

	_, c := lookup(t, "ecsstrg_count")
	res := quota.Evaluate(context.Background(), quota.Bind(c, &awsclient.Session{Region: "eu-west-1", ApplicationAutoScaling: aas, ServiceQuotas: sq}, ""))

	require.NoError(t, res.Err)
	assert.Equal(t, "eu-west-1", res.Region)
	assert.Equal(t, int64(3), res.Current)
	assert.Equal(t, int64(3000), res.Maximum)
	assert.Equal(t, "application-autoscaling", res.ServiceCode)
	aas.AssertExpectations(t)
}

func TestECSScalableTargetCountError(t *testing.T) {
	aas := &awstest.ApplicationAutoScaling{}
	aas.On("DescribeScalableTargets", mock.Anything, mock.Anything).Return(nil, awstest.APIError("AccessDeniedException"))

	_, c := lookup(t, "ecsstrg_count")
	res := quota.Evaluate(context.Background(), quota.Bind(c, &awsclient.Session{Region: "eu-west-1", ApplicationAutoScaling: aas}, ""))
	assert.True(t, res.Failed())
	assert.Contains(t, res.Error, "AccessDeniedException")
}
