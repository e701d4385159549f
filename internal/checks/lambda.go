package checks

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/lambda"

	awsclient "github.com/yuxishi/aws-quota-checker/internal/aws"
	"github.com/yuxishi/aws-quota-checker/internal/quota"
)

func lambdaChecks() []quota.Check {
	return []quota.Check{
		{
			// Bytes. The Service Quotas entry is expressed in GB, so the
			// account settings call is the only maximum source.
			Key:         "lambda_code_storage",
			Description: "Lambda function and layer storage (bytes) per region",
			Scope:       quota.ScopeRegion,
			Service:     "lambda",
			Current:     lambdaCodeSize,
			Live:        lambdaCodeSizeLimit,
			Default:     75 * 1024 * 1024 * 1024,
		},
	}
}

func lambdaCodeSize(ctx context.Context, s *awsclient.Session, _ string) (int64, error) {
	output, err := s.Lambda.GetAccountSettings(ctx, &lambda.GetAccountSettingsInput{})
	if err != nil {
		return 0, err
	}
	if output.AccountUsage == nil {
		return 0, nil
	}
	return int64Value(output.AccountUsage.TotalCodeSize), nil
}

func lambdaCodeSizeLimit(ctx context.Context, s *awsclient.Session, _ string) (int64, bool, error) {
	output, err := s.Lambda.GetAccountSettings(ctx, &lambda.GetAccountSettingsInput{})
	if err != nil {
		return 0, false, err
	}
	if output.AccountLimit == nil {
		return 0, false, nil
	}
	v := int64Value(output.AccountLimit.TotalCodeSize)
	return v, v > 0, nil
}
