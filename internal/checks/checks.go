// Package checks is the catalog of quota checks. Each file describes the
// checks of one AWS service.
package checks

import (
	"github.com/aws/aws-sdk-go-v2/aws"

	"github.com/yuxishi/aws-quota-checker/internal/quota"
)

// All returns every known check.
func All() []quota.Check {
	var all []quota.Check
	for _, group := range [][]quota.Check{
		autoscalingChecks(),
		cloudfrontChecks(),
		dynamodbChecks(),
		ec2Checks(),
		ecrChecks(),
		eksChecks(),
		elbChecks(),
		iamChecks(),
		lambdaChecks(),
		rdsChecks(),
		route53Checks(),
		s3Checks(),
		snsChecks(),
	} {
		all = append(all, group...)
	}
	return all
}

// NewRegistry builds a registry holding the whole catalog.
func NewRegistry() (*quota.Registry, error) {
	return quota.NewRegistry(All()...)
}

// int64Value flattens the numeric fields of SDK outputs, some of which are
// pointers and some plain values depending on the service.
func int64Value[T int64 | *int64 | int32 | *int32](v T) int64 {
	switch x := any(v).(type) {
	case int64:
		return x
	case *int64:
		return aws.ToInt64(x)
	case int32:
		return int64(x)
	case *int32:
		return int64(aws.ToInt32(x))
	}
	return 0
}
