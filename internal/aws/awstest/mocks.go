// Package awstest provides testify mocks of the AWS client interfaces.
package awstest

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/applicationautoscaling"
	"github.com/aws/aws-sdk-go-v2/service/autoscaling"
	"github.com/aws/aws-sdk-go-v2/service/cloudfront"
	"github.com/aws/aws-sdk-go-v2/service/cloudwatch"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	"github.com/aws/aws-sdk-go-v2/service/iam"
	"github.com/aws/aws-sdk-go-v2/service/rds"
	"github.com/aws/aws-sdk-go-v2/service/route53"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/servicequotas"
	"github.com/aws/smithy-go"
	"github.com/stretchr/testify/mock"

	awsclient "github.com/yuxishi/aws-quota-checker/internal/aws"
)

// APIError builds a service error carrying code.
func APIError(code string) error {
	return &smithy.GenericAPIError{Code: code, Message: code}
}

func output[T any](args mock.Arguments) (T, error) {
	out, _ := args.Get(0).(T)
	return out, args.Error(1)
}

type ServiceQuotas struct{ mock.Mock }

var _ awsclient.ServiceQuotasAPI = (*ServiceQuotas)(nil)

func (m *ServiceQuotas) GetServiceQuota(ctx context.Context, in *servicequotas.GetServiceQuotaInput, _ ...func(*servicequotas.Options)) (*servicequotas.GetServiceQuotaOutput, error) {
	return output[*servicequotas.GetServiceQuotaOutput](m.Called(ctx, in))
}

func (m *ServiceQuotas) GetAWSDefaultServiceQuota(ctx context.Context, in *servicequotas.GetAWSDefaultServiceQuotaInput, _ ...func(*servicequotas.Options)) (*servicequotas.GetAWSDefaultServiceQuotaOutput, error) {
	return output[*servicequotas.GetAWSDefaultServiceQuotaOutput](m.Called(ctx, in))
}

type CloudWatch struct{ mock.Mock }

var _ awsclient.CloudWatchAPI = (*CloudWatch)(nil)

func (m *CloudWatch) GetMetricStatistics(ctx context.Context, in *cloudwatch.GetMetricStatisticsInput, _ ...func(*cloudwatch.Options)) (*cloudwatch.GetMetricStatisticsOutput, error) {
	return output[*cloudwatch.GetMetricStatisticsOutput](m.Called(ctx, in))
}

type IAM struct{ mock.Mock }

var _ awsclient.IAMAPI = (*IAM)(nil)

func (m *IAM) GetAccountSummary(ctx context.Context, in *iam.GetAccountSummaryInput, _ ...func(*iam.Options)) (*iam.GetAccountSummaryOutput, error) {
	return output[*iam.GetAccountSummaryOutput](m.Called(ctx, in))
}

func (m *IAM) ListUsers(ctx context.Context, in *iam.ListUsersInput, _ ...func(*iam.Options)) (*iam.ListUsersOutput, error) {
	return output[*iam.ListUsersOutput](m.Called(ctx, in))
}

func (m *IAM) ListGroups(ctx context.Context, in *iam.ListGroupsInput, _ ...func(*iam.Options)) (*iam.ListGroupsOutput, error) {
	return output[*iam.ListGroupsOutput](m.Called(ctx, in))
}

func (m *IAM) ListRoles(ctx context.Context, in *iam.ListRolesInput, _ ...func(*iam.Options)) (*iam.ListRolesOutput, error) {
	return output[*iam.ListRolesOutput](m.Called(ctx, in))
}

func (m *IAM) ListAttachedUserPolicies(ctx context.Context, in *iam.ListAttachedUserPoliciesInput, _ ...func(*iam.Options)) (*iam.ListAttachedUserPoliciesOutput, error) {
	return output[*iam.ListAttachedUserPoliciesOutput](m.Called(ctx, in))
}

func (m *IAM) ListAttachedGroupPolicies(ctx context.Context, in *iam.ListAttachedGroupPoliciesInput, _ ...func(*iam.Options)) (*iam.ListAttachedGroupPoliciesOutput, error) {
	return output[*iam.ListAttachedGroupPoliciesOutput](m.Called(ctx, in))
}

func (m *IAM) ListAttachedRolePolicies(ctx context.Context, in *iam.ListAttachedRolePoliciesInput, _ ...func(*iam.Options)) (*iam.ListAttachedRolePoliciesOutput, error) {
	return output[*iam.ListAttachedRolePoliciesOutput](m.Called(ctx, in))
}

type S3 struct{ mock.Mock }

var _ awsclient.S3API = (*S3)(nil)

func (m *S3) ListBuckets(ctx context.Context, in *s3.ListBucketsInput, _ ...func(*s3.Options)) (*s3.ListBucketsOutput, error) {
	return output[*s3.ListBucketsOutput](m.Called(ctx, in))
}

type AutoScaling struct{ mock.Mock }

var _ awsclient.AutoScalingAPI = (*AutoScaling)(nil)

func (m *AutoScaling) DescribeAutoScalingGroups(ctx context.Context, in *autoscaling.DescribeAutoScalingGroupsInput, _ ...func(*autoscaling.Options)) (*autoscaling.DescribeAutoScalingGroupsOutput, error) {
	return output[*autoscaling.DescribeAutoScalingGroupsOutput](m.Called(ctx, in))
}

func (m *AutoScaling) DescribeLaunchConfigurations(ctx context.Context, in *autoscaling.DescribeLaunchConfigurationsInput, _ ...func(*autoscaling.Options)) (*autoscaling.DescribeLaunchConfigurationsOutput, error) {
	return output[*autoscaling.DescribeLaunchConfigurationsOutput](m.Called(ctx, in))
}

type ApplicationAutoScaling struct{ mock.Mock }

var _ awsclient.ApplicationAutoScalingAPI = (*ApplicationAutoScaling)(nil)

func (m *ApplicationAutoScaling) DescribeScalableTargets(ctx context.Context, in *applicationautoscaling.DescribeScalableTargetsInput, _ ...func(*applicationautoscaling.Options)) (*applicationautoscaling.DescribeScalableTargetsOutput, error) {
	return output[*applicationautoscaling.DescribeScalableTargetsOutput](m.Called(ctx, in))
}

type CloudFront struct{ mock.Mock }

var _ awsclient.CloudFrontAPI = (*CloudFront)(nil)

func (m *CloudFront) ListDistributions(ctx context.Context, in *cloudfront.ListDistributionsInput, _ ...func(*cloudfront.Options)) (*cloudfront.ListDistributionsOutput, error) {
	return output[*cloudfront.ListDistributionsOutput](m.Called(ctx, in))
}

type EC2 struct{ mock.Mock }

var _ awsclient.EC2API = (*EC2)(nil)

func (m *EC2) DescribeRegions(ctx context.Context, in *ec2.DescribeRegionsInput, _ ...func(*ec2.Options)) (*ec2.DescribeRegionsOutput, error) {
	return output[*ec2.DescribeRegionsOutput](m.Called(ctx, in))
}

func (m *EC2) DescribeVpcs(ctx context.Context, in *ec2.DescribeVpcsInput, _ ...func(*ec2.Options)) (*ec2.DescribeVpcsOutput, error) {
	return output[*ec2.DescribeVpcsOutput](m.Called(ctx, in))
}

func (m *EC2) DescribeInternetGateways(ctx context.Context, in *ec2.DescribeInternetGatewaysInput, _ ...func(*ec2.Options)) (*ec2.DescribeInternetGatewaysOutput, error) {
	return output[*ec2.DescribeInternetGatewaysOutput](m.Called(ctx, in))
}

func (m *EC2) DescribeAddresses(ctx context.Context, in *ec2.DescribeAddressesInput, _ ...func(*ec2.Options)) (*ec2.DescribeAddressesOutput, error) {
	return output[*ec2.DescribeAddressesOutput](m.Called(ctx, in))
}

func (m *EC2) DescribeSecurityGroups(ctx context.Context, in *ec2.DescribeSecurityGroupsInput, _ ...func(*ec2.Options)) (*ec2.DescribeSecurityGroupsOutput, error) {
	return output[*ec2.DescribeSecurityGroupsOutput](m.Called(ctx, in))
}

func (m *EC2) DescribeNetworkInterfaces(ctx context.Context, in *ec2.DescribeNetworkInterfacesInput, _ ...func(*ec2.Options)) (*ec2.DescribeNetworkInterfacesOutput, error) {
	return output[*ec2.DescribeNetworkInterfacesOutput](m.Called(ctx, in))
}

type RDS struct{ mock.Mock }

var _ awsclient.RDSAPI = (*RDS)(nil)

func (m *RDS) DescribeAccountAttributes(ctx context.Context, in *rds.DescribeAccountAttributesInput, _ ...func(*rds.Options)) (*rds.DescribeAccountAttributesOutput, error) {
	return output[*rds.DescribeAccountAttributesOutput](m.Called(ctx, in))
}

type Route53 struct{ mock.Mock }

var _ awsclient.Route53API = (*Route53)(nil)

func (m *Route53) GetAccountLimit(ctx context.Context, in *route53.GetAccountLimitInput, _ ...func(*route53.Options)) (*route53.GetAccountLimitOutput, error) {
	return output[*route53.GetAccountLimitOutput](m.Called(ctx, in))
}

func (m *Route53) ListHostedZones(ctx context.Context, in *route53.ListHostedZonesInput, _ ...func(*route53.Options)) (*route53.ListHostedZonesOutput, error) {
	return output[*route53.ListHostedZonesOutput](m.Called(ctx, in))
}

func (m *Route53) GetHostedZoneLimit(ctx context.Context, in *route53.GetHostedZoneLimitInput, _ ...func(*route53.Options)) (*route53.GetHostedZoneLimitOutput, error) {
	return output[*route53.GetHostedZoneLimitOutput](m.Called(ctx, in))
}
