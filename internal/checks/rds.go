package checks

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/rds"
	"github.com/pkg/errors"

	awsclient "github.com/yuxishi/aws-quota-checker/internal/aws"
	"github.com/yuxishi/aws-quota-checker/internal/quota"
)

func rdsChecks() []quota.Check {
	return []quota.Check{
		{
			Key:         "rds_instance_count",
			Description: "RDS DB instances per region",
			Scope:       quota.ScopeRegion,
			Service:     "rds",
			ServiceCode: "rds",
			QuotaCode:   "L-7B6409FD",
			Current:     rdsUsed("DBInstances"),
			Live:        rdsMax("DBInstances"),
		},
		{
			Key:         "rds_cluster_count",
			Description: "RDS DB clusters per region",
			Scope:       quota.ScopeRegion,
			Service:     "rds",
			ServiceCode: "rds",
			QuotaCode:   "L-952B80B8",
			Current:     rdsUsed("DBClusters"),
			Live:        rdsMax("DBClusters"),
		},
		{
			Key:         "rds_manual_snapshot_count",
			Description: "RDS manual DB instance snapshots per region",
			Scope:       quota.ScopeRegion,
			Service:     "rds",
			ServiceCode: "rds",
			QuotaCode:   "L-272F1212",
			Current:     rdsUsed("ManualSnapshots"),
			Live:        rdsMax("ManualSnapshots"),
		},
	}
}

// rdsAttribute returns used and max of one named RDS account quota.
func rdsAttribute(ctx context.Context, s *awsclient.Session, name string) (used, maximum int64, found bool, err error) {
	output, err := s.RDS.DescribeAccountAttributes(ctx, &rds.DescribeAccountAttributesInput{})
	if err != nil {
		return 0, 0, false, err
	}
	for _, q := range output.AccountQuotas {
		if aws.ToString(q.AccountQuotaName) == name {
			return int64Value(q.Used), int64Value(q.Max), true, nil
		}
	}
	return 0, 0, false, nil
}

func rdsUsed(name string) quota.CountFunc {
	return func(ctx context.Context, s *awsclient.Session, _ string) (int64, error) {
		used, _, found, err := rdsAttribute(ctx, s, name)
		if err != nil {
			return 0, err
		}
		if !found {
			return 0, errors.Errorf("rds account attributes have no %s", name)
		}
		return used, nil
	}
}

func rdsMax(name string) quota.LimitFunc {
	return func(ctx context.Context, s *awsclient.Session, _ string) (int64, bool, error) {
		_, maximum, found, err := rdsAttribute(ctx, s, name)
		return maximum, found, err
	}
}
