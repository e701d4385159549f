package checks

import (
	"context"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/route53"
	r53types "github.com/aws/aws-sdk-go-v2/service/route53/types"
	"github.com/pkg/errors"

	awsclient "github.com/yuxishi/aws-quota-checker/internal/aws"
	"github.com/yuxishi/aws-quota-checker/internal/quota"
)

func route53Checks() []quota.Check {
	return []quota.Check{
		{
			Key:         "route53_hosted_zone_count",
			Description: "Route 53 hosted zones per account",
			Scope:       quota.ScopeAccount,
			Service:     "route53",
			ServiceCode: "route53",
			QuotaCode:   "L-4EA4796A",
			Current: func(ctx context.Context, s *awsclient.Session, _ string) (int64, error) {
				count, _, err := hostedZoneAccountLimit(ctx, s)
				return count, err
			},
			Live: func(ctx context.Context, s *awsclient.Session, _ string) (int64, bool, error) {
				_, limit, err := hostedZoneAccountLimit(ctx, s)
				return limit, limit > 0, err
			},
		},
		{
			Key:           "route53_records_per_zone",
			Description:   "Route 53 records per hosted zone",
			Scope:         quota.ScopeAccount,
			Service:       "route53",
			ServiceCode:   "route53",
			QuotaCode:     "L-E209CC9F",
			Default:       10000,
			InstanceLabel: "Hosted Zone ID",
			Instances:     listHostedZones,
			Current: func(ctx context.Context, s *awsclient.Session, zoneID string) (int64, error) {
				count, _, err := recordsLimit(ctx, s, zoneID)
				return count, err
			},
			Live: func(ctx context.Context, s *awsclient.Session, zoneID string) (int64, bool, error) {
				_, limit, err := recordsLimit(ctx, s, zoneID)
				return limit, limit > 0, err
			},
		},
	}
}

func hostedZoneAccountLimit(ctx context.Context, s *awsclient.Session) (count, limit int64, err error) {
	output, err := s.Route53.GetAccountLimit(ctx, &route53.GetAccountLimitInput{
		Type: r53types.AccountLimitTypeMaxHostedZonesByOwner,
	})
	if err != nil {
		return 0, 0, err
	}
	if output.Limit != nil {
		limit = int64Value(output.Limit.Value)
	}
	return int64Value(output.Count), limit, nil
}

func listHostedZones(ctx context.Context, s *awsclient.Session) ([]string, error) {
	var ids []string
	paginator := route53.NewListHostedZonesPaginator(s.Route53, &route53.ListHostedZonesInput{})
	for paginator.HasMorePages() {
		output, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, z := range output.HostedZones {
			ids = append(ids, strings.TrimPrefix(aws.ToString(z.Id), "/hostedzone/"))
		}
	}
	return ids, nil
}

func recordsLimit(ctx context.Context, s *awsclient.Session, zoneID string) (count, limit int64, err error) {
	output, err := s.Route53.GetHostedZoneLimit(ctx, &route53.GetHostedZoneLimitInput{
		HostedZoneId: aws.String(zoneID),
		Type:         r53types.HostedZoneLimitTypeMaxRrsetsByZone,
	})
	if err != nil {
		if awsclient.IsNotFound(err, awsclient.CodeNoSuchHostedZone) {
			return 0, 0, errors.Wrap(quota.ErrInstanceNotFound, err.Error())
		}
		return 0, 0, err
	}
	if output.Limit != nil {
		limit = int64Value(output.Limit.Value)
	}
	return int64Value(output.Count), limit, nil
}
