package checks

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/cloudfront"

	awsclient "github.com/yuxishi/aws-quota-checker/internal/aws"
	"github.com/yuxishi/aws-quota-checker/internal/quota"
)

func cloudfrontChecks() []quota.Check {
	return []quota.Check{
		{
			Key:         "cf_distribution_count",
			Description: "CloudFront distributions per account",
			Scope:       quota.ScopeAccount,
			Service:     "cloudfront",
			ServiceCode: "cloudfront",
			QuotaCode:   "L-24B04930",
			Current:     countDistributions,
		},
	}
}

func countDistributions(ctx context.Context, s *awsclient.Session, _ string) (int64, error) {
	var count int64
	paginator := cloudfront.NewListDistributionsPaginator(s.CloudFront, &cloudfront.ListDistributionsInput{})
	for paginator.HasMorePages() {
		output, err := paginator.NextPage(ctx)
		if err != nil {
			return 0, err
		}
		if output.DistributionList != nil {
			count += int64(len(output.DistributionList.Items))
		}
	}
	return count, nil
}
