package checks

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/s3"

	awsclient "github.com/yuxishi/aws-quota-checker/internal/aws"
	"github.com/yuxishi/aws-quota-checker/internal/quota"
)

func s3Checks() []quota.Check {
	return []quota.Check{
		{
			// ListBuckets returns the buckets of every region.
			Key:         "s3_bucket_count",
			Description: "S3 Buckets per account",
			Scope:       quota.ScopeAccount,
			Service:     "s3",
			ServiceCode: "s3",
			QuotaCode:   "L-DC2B2D3D",
			Current:     countBuckets,
		},
	}
}

func countBuckets(ctx context.Context, s *awsclient.Session, _ string) (int64, error) {
	var count int64
	paginator := s3.NewListBucketsPaginator(s.S3, &s3.ListBucketsInput{})
	for paginator.HasMorePages() {
		output, err := paginator.NextPage(ctx)
		if err != nil {
			return 0, err
		}
		count += int64(len(output.Buckets))
	}
	return count, nil
}
