package checks

import (
	"context"
	"strings"

	"github.com/aws/aws-sdk-go-v2/service/elasticloadbalancingv2"

	awsclient "github.com/yuxishi/aws-quota-checker/internal/aws"
	"github.com/yuxishi/aws-quota-checker/internal/quota"
)

func elbChecks() []quota.Check {
	return []quota.Check{
		{
			Key:         "alb_count",
			Description: "Application Load Balancers per region",
			Scope:       quota.ScopeRegion,
			Service:     "elasticloadbalancing",
			ServiceCode: "elasticloadbalancing",
			QuotaCode:   "L-53DA6B97",
			Current:     countLoadBalancers("application"),
		},
		{
			Key:         "nlb_count",
			Description: "Network Load Balancers per region",
			Scope:       quota.ScopeRegion,
			Service:     "elasticloadbalancing",
			ServiceCode: "elasticloadbalancing",
			QuotaCode:   "L-69A177A2",
			Current:     countLoadBalancers("network"),
		},
		{
			Key:         "tg_count",
			Description: "Target groups per region",
			Scope:       quota.ScopeRegion,
			Service:     "elasticloadbalancing",
			ServiceCode: "elasticloadbalancing",
			QuotaCode:   "L-B22855CB",
			Current:     countTargetGroups,
		},
	}
}

func countLoadBalancers(lbType string) quota.CountFunc {
	return func(ctx context.Context, s *awsclient.Session, _ string) (int64, error) {
		var count int64
		paginator := elasticloadbalancingv2.NewDescribeLoadBalancersPaginator(s.ELBv2, &elasticloadbalancingv2.DescribeLoadBalancersInput{})
		for paginator.HasMorePages() {
			output, err := paginator.NextPage(ctx)
			if err != nil {
				return 0, err
			}
			for _, lb := range output.LoadBalancers {
				if strings.EqualFold(string(lb.Type), lbType) {
					count++
				}
			}
		}
		return count, nil
	}
}

func countTargetGroups(ctx context.Context, s *awsclient.Session, _ string) (int64, error) {
	var count int64
	paginator := elasticloadbalancingv2.NewDescribeTargetGroupsPaginator(s.ELBv2, &elasticloadbalancingv2.DescribeTargetGroupsInput{})
	for paginator.HasMorePages() {
		output, err := paginator.NextPage(ctx)
		if err != nil {
			return 0, err
		}
		count += int64(len(output.TargetGroups))
	}
	return count, nil
}
