package checks

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/iam"
	"github.com/pkg/errors"

	awsclient "github.com/yuxishi/aws-quota-checker/internal/aws"
	"github.com/yuxishi/aws-quota-checker/internal/quota"
)

// IAM account summary keys. The summary returns each usage next to its quota,
// so it is preferred over Service Quotas for every IAM check.
const (
	summaryGroups                   = "Groups"
	summaryGroupsQuota              = "GroupsQuota"
	summaryRolesQuota               = "RolesQuota"
	summaryUsers                    = "Users"
	summaryUsersQuota               = "UsersQuota"
	summaryPolicies                 = "Policies"
	summaryPoliciesQuota            = "PoliciesQuota"
	summaryPolicyVersionsInUse      = "PolicyVersionsInUse"
	summaryPolicyVersionsInUseQuota = "PolicyVersionsInUseQuota"
	summaryServerCertificates       = "ServerCertificates"
	summaryServerCertificatesQuota  = "ServerCertificatesQuota"
	summaryAttachedPerUserQuota     = "AttachedPoliciesPerUserQuota"
	summaryAttachedPerGroupQuota    = "AttachedPoliciesPerGroupQuota"
	summaryAttachedPerRoleQuota     = "AttachedPoliciesPerRoleQuota"
)

func iamChecks() []quota.Check {
	return []quota.Check{
		{
			Key:         "iam_group_count",
			Description: "IAM groups per Account",
			Scope:       quota.ScopeAccount,
			Service:     "iam",
			Current:     summaryCount(summaryGroups),
			Live:        summaryLimit(summaryGroupsQuota),
			Default:     300,
		},
		{
			Key:         "iam_role_count",
			Description: "IAM roles per Account",
			Scope:       quota.ScopeAccount,
			Service:     "iam",
			ServiceCode: "iam",
			QuotaCode:   "L-FE177D64",
			Current:     countRoles,
			Live:        summaryLimit(summaryRolesQuota),
		},
		{
			Key:         "iam_user_count",
			Description: "IAM users per Account",
			Scope:       quota.ScopeAccount,
			Service:     "iam",
			ServiceCode: "iam",
			QuotaCode:   "L-F55AF5E4",
			Current:     summaryCount(summaryUsers),
			Live:        summaryLimit(summaryUsersQuota),
		},
		{
			Key:         "iam_policy_count",
			Description: "IAM policies per Account",
			Scope:       quota.ScopeAccount,
			Service:     "iam",
			Current:     summaryCount(summaryPolicies),
			Live:        summaryLimit(summaryPoliciesQuota),
			Default:     1500,
		},
		{
			Key:         "iam_policy_version_count",
			Description: "IAM policy versions in use per Account",
			Scope:       quota.ScopeAccount,
			Service:     "iam",
			Current:     summaryCount(summaryPolicyVersionsInUse),
			Live:        summaryLimit(summaryPolicyVersionsInUseQuota),
			Default:     10000,
		},
		{
			Key:         "iam_server_certificate_count",
			Description: "IAM server certificates per Account",
			Scope:       quota.ScopeAccount,
			Service:     "iam",
			Current:     summaryCount(summaryServerCertificates),
			Live:        summaryLimit(summaryServerCertificatesQuota),
			Default:     20,
		},
		{
			Key:           "iam_attached_policy_per_user",
			Description:   "Attached IAM policies per user",
			Scope:         quota.ScopeAccount,
			Service:       "iam",
			InstanceLabel: "User Name",
			Instances:     listUsers,
			Current:       attachedUserPolicies,
			Live:          summaryLimit(summaryAttachedPerUserQuota),
			Default:       10,
		},
		{
			Key:           "iam_attached_policy_per_group",
			Description:   "Attached IAM policies per group",
			Scope:         quota.ScopeAccount,
			Service:       "iam",
			InstanceLabel: "Group Name",
			Instances:     listGroups,
			Current:       attachedGroupPolicies,
			Live:          summaryLimit(summaryAttachedPerGroupQuota),
			Default:       10,
		},
		{
			Key:           "iam_attached_policy_per_role",
			Description:   "Attached IAM policies per role",
			Scope:         quota.ScopeAccount,
			Service:       "iam",
			InstanceLabel: "Role Name",
			Instances:     listRoles,
			Current:       attachedRolePolicies,
			Live:          summaryLimit(summaryAttachedPerRoleQuota),
			Default:       10,
		},
	}
}

func accountSummary(ctx context.Context, s *awsclient.Session) (map[string]int32, error) {
	output, err := s.IAM.GetAccountSummary(ctx, &iam.GetAccountSummaryInput{})
	if err != nil {
		return nil, err
	}
	return output.SummaryMap, nil
}

func summaryCount(key string) quota.CountFunc {
	return func(ctx context.Context, s *awsclient.Session, _ string) (int64, error) {
		summary, err := accountSummary(ctx, s)
		if err != nil {
			return 0, err
		}
		v, ok := summary[key]
		if !ok {
			return 0, errors.Errorf("account summary has no %s", key)
		}
		return int64(v), nil
	}
}

func summaryLimit(key string) quota.LimitFunc {
	return func(ctx context.Context, s *awsclient.Session, _ string) (int64, bool, error) {
		summary, err := accountSummary(ctx, s)
		if err != nil {
			return 0, false, err
		}
		v, ok := summary[key]
		return int64(v), ok, nil
	}
}

func countRoles(ctx context.Context, s *awsclient.Session, _ string) (int64, error) {
	roles, err := listRoles(ctx, s)
	return int64(len(roles)), err
}

func listUsers(ctx context.Context, s *awsclient.Session) ([]string, error) {
	var names []string
	paginator := iam.NewListUsersPaginator(s.IAM, &iam.ListUsersInput{})
	for paginator.HasMorePages() {
		output, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, u := range output.Users {
			names = append(names, aws.ToString(u.UserName))
		}
	}
	return names, nil
}

func listGroups(ctx context.Context, s *awsclient.Session) ([]string, error) {
	var names []string
	paginator := iam.NewListGroupsPaginator(s.IAM, &iam.ListGroupsInput{})
	for paginator.HasMorePages() {
		output, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, g := range output.Groups {
			names = append(names, aws.ToString(g.GroupName))
		}
	}
	return names, nil
}

func listRoles(ctx context.Context, s *awsclient.Session) ([]string, error) {
	var names []string
	paginator := iam.NewListRolesPaginator(s.IAM, &iam.ListRolesInput{})
	for paginator.HasMorePages() {
		output, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, r := range output.Roles {
			names = append(names, aws.ToString(r.RoleName))
		}
	}
	return names, nil
}

// notFound turns IAM's NoSuchEntity into quota.ErrInstanceNotFound.
func notFound(err error) error {
	if awsclient.IsNotFound(err, awsclient.CodeNoSuchEntity) {
		return errors.Wrap(quota.ErrInstanceNotFound, err.Error())
	}
	return err
}

func attachedUserPolicies(ctx context.Context, s *awsclient.Session, user string) (int64, error) {
	var n int64
	paginator := iam.NewListAttachedUserPoliciesPaginator(s.IAM, &iam.ListAttachedUserPoliciesInput{
		UserName: aws.String(user),
	})
	for paginator.HasMorePages() {
		output, err := paginator.NextPage(ctx)
		if err != nil {
			return 0, notFound(err)
		}
		n += int64(len(output.AttachedPolicies))
	}
	return n, nil
}

func attachedGroupPolicies(ctx context.Context, s *awsclient.Session, group string) (int64, error) {
	var n int64
	paginator := iam.NewListAttachedGroupPoliciesPaginator(s.IAM, &iam.ListAttachedGroupPoliciesInput{
		GroupName: aws.String(group),
	})
	for paginator.HasMorePages() {
		output, err := paginator.NextPage(ctx)
		if err != nil {
			return 0, notFound(err)
		}
		n += int64(len(output.AttachedPolicies))
	}
	return n, nil
}

func attachedRolePolicies(ctx context.Context, s *awsclient.Session, role string) (int64, error) {
	var n int64
	paginator := iam.NewListAttachedRolePoliciesPaginator(s.IAM, &iam.ListAttachedRolePoliciesInput{
		RoleName: aws.String(role),
	})
	for paginator.HasMorePages() {
		output, err := paginator.NextPage(ctx)
		if err != nil {
			return 0, notFound(err)
		}
		n += int64(len(output.AttachedPolicies))
	}
	return n, nil
}
