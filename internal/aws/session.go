package aws

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/applicationautoscaling"
	"github.com/aws/aws-sdk-go-v2/service/autoscaling"
	"github.com/aws/aws-sdk-go-v2/service/cloudfront"
	"github.com/aws/aws-sdk-go-v2/service/cloudwatch"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	"github.com/aws/aws-sdk-go-v2/service/ecr"
	"github.com/aws/aws-sdk-go-v2/service/eks"
	"github.com/aws/aws-sdk-go-v2/service/elasticloadbalancingv2"
	"github.com/aws/aws-sdk-go-v2/service/iam"
	"github.com/aws/aws-sdk-go-v2/service/lambda"
	"github.com/aws/aws-sdk-go-v2/service/rds"
	"github.com/aws/aws-sdk-go-v2/service/route53"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/servicequotas"
	"github.com/aws/aws-sdk-go-v2/service/sns"
)

// The interfaces below list only the calls the checks make, so tests can
// substitute fakes for any single service.

type ServiceQuotasAPI interface {
	GetServiceQuota(ctx context.Context, params *servicequotas.GetServiceQuotaInput, optFns ...func(*servicequotas.Options)) (*servicequotas.GetServiceQuotaOutput, error)
	GetAWSDefaultServiceQuota(ctx context.Context, params *servicequotas.GetAWSDefaultServiceQuotaInput, optFns ...func(*servicequotas.Options)) (*servicequotas.GetAWSDefaultServiceQuotaOutput, error)
}

type CloudWatchAPI interface {
	GetMetricStatistics(ctx context.Context, params *cloudwatch.GetMetricStatisticsInput, optFns ...func(*cloudwatch.Options)) (*cloudwatch.GetMetricStatisticsOutput, error)
}

type IAMAPI interface {
	GetAccountSummary(ctx context.Context, params *iam.GetAccountSummaryInput, optFns ...func(*iam.Options)) (*iam.GetAccountSummaryOutput, error)
	ListUsers(ctx context.Context, params *iam.ListUsersInput, optFns ...func(*iam.Options)) (*iam.ListUsersOutput, error)
	ListGroups(ctx context.Context, params *iam.ListGroupsInput, optFns ...func(*iam.Options)) (*iam.ListGroupsOutput, error)
	ListRoles(ctx context.Context, params *iam.ListRolesInput, optFns ...func(*iam.Options)) (*iam.ListRolesOutput, error)
	ListAttachedUserPolicies(ctx context.Context, params *iam.ListAttachedUserPoliciesInput, optFns ...func(*iam.Options)) (*iam.ListAttachedUserPoliciesOutput, error)
	ListAttachedGroupPolicies(ctx context.Context, params *iam.ListAttachedGroupPoliciesInput, optFns ...func(*iam.Options)) (*iam.ListAttachedGroupPoliciesOutput, error)
	ListAttachedRolePolicies(ctx context.Context, params *iam.ListAttachedRolePoliciesInput, optFns ...func(*iam.Options)) (*iam.ListAttachedRolePoliciesOutput, error)
}

type S3API interface {
	ListBuckets(ctx context.Context, params *s3.ListBucketsInput, optFns ...func(*s3.Options)) (*s3.ListBucketsOutput, error)
}

type AutoScalingAPI interface {
	DescribeAutoScalingGroups(ctx context.Context, params *autoscaling.DescribeAutoScalingGroupsInput, optFns ...func(*autoscaling.Options)) (*autoscaling.DescribeAutoScalingGroupsOutput, error)
	DescribeLaunchConfigurations(ctx context.Context, params *autoscaling.DescribeLaunchConfigurationsInput, optFns ...func(*autoscaling.Options)) (*autoscaling.DescribeLaunchConfigurationsOutput, error)
}

type ApplicationAutoScalingAPI interface {
	DescribeScalableTargets(ctx context.Context, params *applicationautoscaling.DescribeScalableTargetsInput, optFns ...func(*applicationautoscaling.Options)) (*applicationautoscaling.DescribeScalableTargetsOutput, error)
}

type EC2API interface {
	DescribeRegions(ctx context.Context, params *ec2.DescribeRegionsInput, optFns ...func(*ec2.Options)) (*ec2.DescribeRegionsOutput, error)
	DescribeVpcs(ctx context.Context, params *ec2.DescribeVpcsInput, optFns ...func(*ec2.Options)) (*ec2.DescribeVpcsOutput, error)
	DescribeInternetGateways(ctx context.Context, params *ec2.DescribeInternetGatewaysInput, optFns ...func(*ec2.Options)) (*ec2.DescribeInternetGatewaysOutput, error)
	DescribeAddresses(ctx context.Context, params *ec2.DescribeAddressesInput, optFns ...func(*ec2.Options)) (*ec2.DescribeAddressesOutput, error)
	DescribeSecurityGroups(ctx context.Context, params *ec2.DescribeSecurityGroupsInput, optFns ...func(*ec2.Options)) (*ec2.DescribeSecurityGroupsOutput, error)
	DescribeNetworkInterfaces(ctx context.Context, params *ec2.DescribeNetworkInterfacesInput, optFns ...func(*ec2.Options)) (*ec2.DescribeNetworkInterfacesOutput, error)
}

type ELBv2API interface {
	DescribeLoadBalancers(ctx context.Context, params *elasticloadbalancingv2.DescribeLoadBalancersInput, optFns ...func(*elasticloadbalancingv2.Options)) (*elasticloadbalancingv2.DescribeLoadBalancersOutput, error)
	DescribeTargetGroups(ctx context.Context, params *elasticloadbalancingv2.DescribeTargetGroupsInput, optFns ...func(*elasticloadbalancingv2.Options)) (*elasticloadbalancingv2.DescribeTargetGroupsOutput, error)
}

type EKSAPI interface {
	ListClusters(ctx context.Context, params *eks.ListClustersInput, optFns ...func(*eks.Options)) (*eks.ListClustersOutput, error)
}

type LambdaAPI interface {
	GetAccountSettings(ctx context.Context, params *lambda.GetAccountSettingsInput, optFns ...func(*lambda.Options)) (*lambda.GetAccountSettingsOutput, error)
}

type RDSAPI interface {
	DescribeAccountAttributes(ctx context.Context, params *rds.DescribeAccountAttributesInput, optFns ...func(*rds.Options)) (*rds.DescribeAccountAttributesOutput, error)
}

type DynamoDBAPI interface {
	ListTables(ctx context.Context, params *dynamodb.ListTablesInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ListTablesOutput, error)
}

type SNSAPI interface {
	ListTopics(ctx context.Context, params *sns.ListTopicsInput, optFns ...func(*sns.Options)) (*sns.ListTopicsOutput, error)
}

type Route53API interface {
	GetAccountLimit(ctx context.Context, params *route53.GetAccountLimitInput, optFns ...func(*route53.Options)) (*route53.GetAccountLimitOutput, error)
	ListHostedZones(ctx context.Context, params *route53.ListHostedZonesInput, optFns ...func(*route53.Options)) (*route53.ListHostedZonesOutput, error)
	GetHostedZoneLimit(ctx context.Context, params *route53.GetHostedZoneLimitInput, optFns ...func(*route53.Options)) (*route53.GetHostedZoneLimitOutput, error)
}

type ECRAPI interface {
	DescribeRepositories(ctx context.Context, params *ecr.DescribeRepositoriesInput, optFns ...func(*ecr.Options)) (*ecr.DescribeRepositoriesOutput, error)
}

type CloudFrontAPI interface {
	ListDistributions(ctx context.Context, params *cloudfront.ListDistributionsInput, optFns ...func(*cloudfront.Options)) (*cloudfront.ListDistributionsOutput, error)
}

var (
	_ ServiceQuotasAPI          = (*servicequotas.Client)(nil)
	_ CloudWatchAPI             = (*cloudwatch.Client)(nil)
	_ IAMAPI                    = (*iam.Client)(nil)
	_ S3API                     = (*s3.Client)(nil)
	_ AutoScalingAPI            = (*autoscaling.Client)(nil)
	_ ApplicationAutoScalingAPI = (*applicationautoscaling.Client)(nil)
	_ EC2API                    = (*ec2.Client)(nil)
	_ ELBv2API                  = (*elasticloadbalancingv2.Client)(nil)
	_ EKSAPI                    = (*eks.Client)(nil)
	_ LambdaAPI                 = (*lambda.Client)(nil)
	_ RDSAPI                    = (*rds.Client)(nil)
	_ DynamoDBAPI               = (*dynamodb.Client)(nil)
	_ SNSAPI                    = (*sns.Client)(nil)
	_ Route53API                = (*route53.Client)(nil)
	_ ECRAPI                    = (*ecr.Client)(nil)
	_ CloudFrontAPI             = (*cloudfront.Client)(nil)
)

// Session is a set of service clients bound to one region. It is read-only
// after construction and safe to share between checks.
type Session struct {
	Region string

	ServiceQuotas          ServiceQuotasAPI
	CloudWatch             CloudWatchAPI
	IAM                    IAMAPI
	S3                     S3API
	AutoScaling            AutoScalingAPI
	ApplicationAutoScaling ApplicationAutoScalingAPI
	EC2                    EC2API
	ELBv2                  ELBv2API
	EKS                    EKSAPI
	Lambda                 LambdaAPI
	RDS                    RDSAPI
	DynamoDB               DynamoDBAPI
	SNS                    SNSAPI
	Route53                Route53API
	ECR                    ECRAPI
	CloudFront             CloudFrontAPI
}

func NewSession(cfg aws.Config) *Session {
	return &Session{
		Region:                 cfg.Region,
		ServiceQuotas:          servicequotas.NewFromConfig(cfg),
		CloudWatch:             cloudwatch.NewFromConfig(cfg),
		IAM:                    iam.NewFromConfig(cfg),
		S3:                     s3.NewFromConfig(cfg),
		AutoScaling:            autoscaling.NewFromConfig(cfg),
		ApplicationAutoScaling: applicationautoscaling.NewFromConfig(cfg),
		EC2:                    ec2.NewFromConfig(cfg),
		ELBv2:                  elasticloadbalancingv2.NewFromConfig(cfg),
		EKS:                    eks.NewFromConfig(cfg),
		Lambda:                 lambda.NewFromConfig(cfg),
		RDS:                    rds.NewFromConfig(cfg),
		DynamoDB:               dynamodb.NewFromConfig(cfg),
		SNS:                    sns.NewFromConfig(cfg),
		Route53:                route53.NewFromConfig(cfg),
		ECR:                    ecr.NewFromConfig(cfg),
		CloudFront:             cloudfront.NewFromConfig(cfg),
	}
}
