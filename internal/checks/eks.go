package checks

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/eks"

	awsclient "github.com/yuxishi/aws-quota-checker/internal/aws"
	"github.com/yuxishi/aws-quota-checker/internal/quota"
)

func eksChecks() []quota.Check {
	return []quota.Check{
		{
			Key:         "eks_cluster_count",
			Description: "EKS clusters per region",
			Scope:       quota.ScopeRegion,
			Service:     "eks",
			ServiceCode: "eks",
			QuotaCode:   "L-1194D53C",
			Current:     countEKSClusters,
		},
	}
}

func countEKSClusters(ctx context.Context, s *awsclient.Session, _ string) (int64, error) {
	var count int64
	paginator := eks.NewListClustersPaginator(s.EKS, &eks.ListClustersInput{})
	for paginator.HasMorePages() {
		output, err := paginator.NextPage(ctx)
		if err != nil {
			return 0, err
		}
		count += int64(len(output.Clusters))
	}
	return count, nil
}
