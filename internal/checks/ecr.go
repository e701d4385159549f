package checks

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/ecr"

	awsclient "github.com/yuxishi/aws-quota-checker/internal/aws"
	"github.com/yuxishi/aws-quota-checker/internal/quota"
)

func ecrChecks() []quota.Check {
	return []quota.Check{
		{
			Key:         "ecr_repository_count",
			Description: "ECR repositories per region",
			Scope:       quota.ScopeRegion,
			Service:     "ecr",
			ServiceCode: "ecr",
			QuotaCode:   "L-CFEB8E8D",
			Current:     countRepositories,
		},
	}
}

func countRepositories(ctx context.Context, s *awsclient.Session, _ string) (int64, error) {
	var count int64
	paginator := ecr.NewDescribeRepositoriesPaginator(s.ECR, &ecr.DescribeRepositoriesInput{})
	for paginator.HasMorePages() {
		output, err := paginator.NextPage(ctx)
		if err != nil {
			return 0, err
		}
		count += int64(len(output.Repositories))
	}
	return count, nil
}
