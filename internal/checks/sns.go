package checks

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/sns"

	awsclient "github.com/yuxishi/aws-quota-checker/internal/aws"
	"github.com/yuxishi/aws-quota-checker/internal/quota"
)

func snsChecks() []quota.Check {
	return []quota.Check{
		{
			Key:         "sns_topic_count",
			Description: "SNS topics per region",
			Scope:       quota.ScopeRegion,
			Service:     "sns",
			ServiceCode: "sns",
			QuotaCode:   "L-61103206",
			Current:     countTopics,
		},
	}
}

func countTopics(ctx context.Context, s *awsclient.Session, _ string) (int64, error) {
	var count int64
	paginator := sns.NewListTopicsPaginator(s.SNS, &sns.ListTopicsInput{})
	for paginator.HasMorePages() {
		output, err := paginator.NextPage(ctx)
		if err != nil {
			return 0, err
		}
		count += int64(len(output.Topics))
	}
	return count, nil
}
