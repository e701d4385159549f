package checks

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	ec2types "github.com/aws/aws-sdk-go-v2/service/ec2/types"
	"github.com/pkg/errors"

	awsclient "github.com/yuxishi/aws-quota-checker/internal/aws"
	"github.com/yuxishi/aws-quota-checker/internal/quota"
)

const onDemandStandardQuota = "L-1216C47A"

func ec2Checks() []quota.Check {
	return []quota.Check{
		{
			Key:         "vpc_count",
			Description: "VPCs per region",
			Scope:       quota.ScopeRegion,
			Service:     "ec2",
			ServiceCode: "vpc",
			QuotaCode:   "L-F678F1CE",
			Current:     countVPCs,
		},
		{
			Key:         "igw_count",
			Description: "Internet gateways per region",
			Scope:       quota.ScopeRegion,
			Service:     "ec2",
			ServiceCode: "vpc",
			QuotaCode:   "L-A4707A72",
			Current:     countInternetGateways,
		},
		{
			Key:         "eip_count",
			Description: "EC2-VPC Elastic IPs per region",
			Scope:       quota.ScopeRegion,
			Service:     "ec2",
			ServiceCode: "ec2",
			QuotaCode:   "L-0263D0A3",
			Current:     countElasticIPs,
		},
		{
			Key:         "sg_count",
			Description: "VPC security groups per region",
			Scope:       quota.ScopeRegion,
			Service:     "ec2",
			ServiceCode: "vpc",
			QuotaCode:   "L-E79EC296",
			Current:     countSecurityGroups,
		},
		{
			Key:         "eni_count",
			Description: "Network interfaces per region",
			Scope:       quota.ScopeRegion,
			Service:     "ec2",
			ServiceCode: "vpc",
			QuotaCode:   "L-DF5E4CA3",
			Current:     countNetworkInterfaces,
		},
		{
			Key:           "sg_rules_per_group",
			Description:   "Inbound or outbound rules per security group",
			Scope:         quota.ScopeRegion,
			Service:       "ec2",
			ServiceCode:   "vpc",
			QuotaCode:     "L-0EA8095F",
			Default:       60,
			InstanceLabel: "Security Group ID",
			Instances:     listSecurityGroups,
			Current:       securityGroupRules,
		},
		{
			Key:         "ec2_ondemand_standard_vcpus",
			Description: "Running On-Demand Standard instance vCPUs per region",
			Scope:       quota.ScopeRegion,
			Service:     "ec2",
			ServiceCode: "ec2",
			QuotaCode:   onDemandStandardQuota,
			Current: func(ctx context.Context, s *awsclient.Session, _ string) (int64, error) {
				return awsclient.QuotaUsage(ctx, s, "ec2", onDemandStandardQuota)
			},
		},
	}
}

func countVPCs(ctx context.Context, s *awsclient.Session, _ string) (int64, error) {
	var count int64
	paginator := ec2.NewDescribeVpcsPaginator(s.EC2, &ec2.DescribeVpcsInput{})
	for paginator.HasMorePages() {
		output, err := paginator.NextPage(ctx)
		if err != nil {
			return 0, err
		}
		count += int64(len(output.Vpcs))
	}
	return count, nil
}

func countInternetGateways(ctx context.Context, s *awsclient.Session, _ string) (int64, error) {
	var count int64
	paginator := ec2.NewDescribeInternetGatewaysPaginator(s.EC2, &ec2.DescribeInternetGatewaysInput{})
	for paginator.HasMorePages() {
		output, err := paginator.NextPage(ctx)
		if err != nil {
			return 0, err
		}
		count += int64(len(output.InternetGateways))
	}
	return count, nil
}

func countElasticIPs(ctx context.Context, s *awsclient.Session, _ string) (int64, error) {
	output, err := s.EC2.DescribeAddresses(ctx, &ec2.DescribeAddressesInput{
		Filters: []ec2types.Filter{
			{
				Name:   aws.String("domain"),
				Values: []string{"vpc"},
			},
		},
	})
	if err != nil {
		return 0, err
	}
	return int64(len(output.Addresses)), nil
}

func countSecurityGroups(ctx context.Context, s *awsclient.Session, _ string) (int64, error) {
	ids, err := listSecurityGroups(ctx, s)
	return int64(len(ids)), err
}

func countNetworkInterfaces(ctx context.Context, s *awsclient.Session, _ string) (int64, error) {
	var count int64
	paginator := ec2.NewDescribeNetworkInterfacesPaginator(s.EC2, &ec2.DescribeNetworkInterfacesInput{})
	for paginator.HasMorePages() {
		output, err := paginator.NextPage(ctx)
		if err != nil {
			return 0, err
		}
		count += int64(len(output.NetworkInterfaces))
	}
	return count, nil
}

func listSecurityGroups(ctx context.Context, s *awsclient.Session) ([]string, error) {
	var ids []string
	paginator := ec2.NewDescribeSecurityGroupsPaginator(s.EC2, &ec2.DescribeSecurityGroupsInput{})
	for paginator.HasMorePages() {
		output, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, sg := range output.SecurityGroups {
			ids = append(ids, aws.ToString(sg.GroupId))
		}
	}
	return ids, nil
}

// securityGroupRules counts the larger of the inbound and outbound rule sets;
// the quota applies to each direction separately.
func securityGroupRules(ctx context.Context, s *awsclient.Session, groupID string) (int64, error) {
	output, err := s.EC2.DescribeSecurityGroups(ctx, &ec2.DescribeSecurityGroupsInput{
		GroupIds: []string{groupID},
	})
	if err != nil {
		if awsclient.IsNotFound(err, awsclient.CodeSecurityGroupGone, awsclient.CodeSecurityGroupIDBad) {
			return 0, errors.Wrap(quota.ErrInstanceNotFound, err.Error())
		}
		return 0, err
	}
	if len(output.SecurityGroups) == 0 {
		return 0, errors.Wrap(quota.ErrInstanceNotFound, groupID)
	}
	sg := output.SecurityGroups[0]
	return max(countRules(sg.IpPermissions), countRules(sg.IpPermissionsEgress)), nil
}

func countRules(perms []ec2types.IpPermission) int64 {
	var n int
	for _, p := range perms {
		n += len(p.IpRanges) + len(p.Ipv6Ranges) + len(p.PrefixListIds) + len(p.UserIdGroupPairs)
	}
	return int64(n)
}
