package checks

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"

	awsclient "github.com/yuxishi/aws-quota-checker/internal/aws"
	"github.com/yuxishi/aws-quota-checker/internal/quota"
)

func dynamodbChecks() []quota.Check {
	return []quota.Check{
		{
			Key:         "dynamodb_table_count",
			Description: "DynamoDB tables per region",
			Scope:       quota.ScopeRegion,
			Service:     "dynamodb",
			ServiceCode: "dynamodb",
			QuotaCode:   "L-F98FE922",
			Current:     countTables,
		},
	}
}

func countTables(ctx context.Context, s *awsclient.Session, _ string) (int64, error) {
	var count int64
	paginator := dynamodb.NewListTablesPaginator(s.DynamoDB, &dynamodb.ListTablesInput{})
	for paginator.HasMorePages() {
		output, err := paginator.NextPage(ctx)
		if err != nil {
			return 0, err
		}
		count += int64(len(output.TableNames))
	}
	return count, nil
}
