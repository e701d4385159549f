package checks

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/applicationautoscaling"
	aastypes "github.com/aws/aws-sdk-go-v2/service/applicationautoscaling/types"
	"github.com/aws/aws-sdk-go-v2/service/autoscaling"

	awsclient "github.com/yuxishi/aws-quota-checker/internal/aws"
	"github.com/yuxishi/aws-quota-checker/internal/quota"
)

func autoscalingChecks() []quota.Check {
	return []quota.Check{
		{
			Key:         "asg_count",
			Description: "Auto Scaling groups per region",
			Scope:       quota.ScopeRegion,
			Service:     "autoscaling",
			ServiceCode: "autoscaling",
			QuotaCode:   "L-CDE20ADC",
			Current:     countAutoScalingGroups,
		},
		{
			Key:         "ecsstrg_count",
			Description: "ECS scalable targets per region",
			Scope:       quota.ScopeRegion,
			Service:     "application-autoscaling",
			ServiceCode: "application-autoscaling",
			QuotaCode:   "L-782A3EE2",
			Current:     countECSScalableTargets,
		},
		{
			Key:         "lc_count",
			Description: "Launch configurations per region",
			Scope:       quota.ScopeRegion,
			Service:     "autoscaling",
			ServiceCode: "autoscaling",
			QuotaCode:   "L-6B80B8FA",
			Current:     countLaunchConfigurations,
		},
	}
}

func countAutoScalingGroups(ctx context.Context, s *awsclient.Session, _ string) (int64, error) {
	var count int64
	paginator := autoscaling.NewDescribeAutoScalingGroupsPaginator(s.AutoScaling, &autoscaling.DescribeAutoScalingGroupsInput{})
	for paginator.HasMorePages() {
		output, err := paginator.NextPage(ctx)
		if err != nil {
			return 0, err
		}
		count += int64(len(output.AutoScalingGroups))
	}
	return count, nil
}

func countECSScalableTargets(ctx context.Context, s *awsclient.Session, _ string) (int64, error) {
	var count int64
	paginator := applicationautoscaling.NewDescribeScalableTargetsPaginator(s.ApplicationAutoScaling, &applicationautoscaling.DescribeScalableTargetsInput{
		ServiceNamespace: aastypes.ServiceNamespaceEcs,
	})
	for paginator.HasMorePages() {
		output, err := paginator.NextPage(ctx)
		if err != nil {
			return 0, err
		}
		count += int64(len(output.ScalableTargets))
	}
	return count, nil
}

func countLaunchConfigurations(ctx context.Context, s *awsclient.Session, _ string) (int64, error) {
	var count int64
	paginator := autoscaling.NewDescribeLaunchConfigurationsPaginator(s.AutoScaling, &autoscaling.DescribeLaunchConfigurationsInput{})
	for paginator.HasMorePages() {
		output, err := paginator.NextPage(ctx)
		if err != nil {
			return 0, err
		}
		count += int64(len(output.LaunchConfigurations))
	}
	return count, nil
}
