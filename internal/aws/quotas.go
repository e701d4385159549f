package aws

import (
	"context"
	"math"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/cloudwatch"
	cwtypes "github.com/aws/aws-sdk-go-v2/service/cloudwatch/types"
	"github.com/aws/aws-sdk-go-v2/service/servicequotas"
	sqtypes "github.com/aws/aws-sdk-go-v2/service/servicequotas/types"
	"github.com/pkg/errors"
)

// AppliedQuota returns the value currently applied to this account. ok is
// false when Service Quotas has no record of the quota.
func AppliedQuota(ctx context.Context, client ServiceQuotasAPI, serviceCode, quotaCode string) (int64, bool, error) {
	output, err := client.GetServiceQuota(ctx, &servicequotas.GetServiceQuotaInput{
		ServiceCode: aws.String(serviceCode),
		QuotaCode:   aws.String(quotaCode),
	})
	if err != nil {
		if IsNotFound(err, CodeNoSuchResource) {
			return 0, false, nil
		}
		return 0, false, err
	}
	return quotaValue(output.Quota)
}

// DefaultQuota returns the value AWS ships before any increase request.
func DefaultQuota(ctx context.Context, client ServiceQuotasAPI, serviceCode, quotaCode string) (int64, bool, error) {
	output, err := client.GetAWSDefaultServiceQuota(ctx, &servicequotas.GetAWSDefaultServiceQuotaInput{
		ServiceCode: aws.String(serviceCode),
		QuotaCode:   aws.String(quotaCode),
	})
	if err != nil {
		if IsNotFound(err, CodeNoSuchResource) {
			return 0, false, nil
		}
		return 0, false, err
	}
	return quotaValue(output.Quota)
}

func quotaValue(q *sqtypes.ServiceQuota) (int64, bool, error) {
	if q == nil || q.Value == nil {
		return 0, false, nil
	}
	if *q.Value < 0 {
		return 0, false, errors.Errorf("quota %s reported negative value %v", safeString(q.QuotaCode), *q.Value)
	}
	return int64(math.Round(*q.Value)), true, nil
}

// QuotaUsage reads the usage of a quota from the CloudWatch metric Service
// Quotas publishes for it. Quotas without a usage metric are an error.
func QuotaUsage(ctx context.Context, s *Session, serviceCode, quotaCode string) (int64, error) {
	metric, err := usageMetric(ctx, s.ServiceQuotas, serviceCode, quotaCode)
	if err != nil {
		return 0, err
	}
	value, err := UsageFromMetric(ctx, s.CloudWatch, metric)
	if err != nil {
		return 0, err
	}
	return int64(math.Ceil(value)), nil
}

func usageMetric(ctx context.Context, client ServiceQuotasAPI, serviceCode, quotaCode string) (*sqtypes.MetricInfo, error) {
	var q *sqtypes.ServiceQuota
	applied, err := client.GetServiceQuota(ctx, &servicequotas.GetServiceQuotaInput{
		ServiceCode: aws.String(serviceCode),
		QuotaCode:   aws.String(quotaCode),
	})
	switch {
	case err == nil:
		q = applied.Quota
	case IsNotFound(err, CodeNoSuchResource):
		def, err := client.GetAWSDefaultServiceQuota(ctx, &servicequotas.GetAWSDefaultServiceQuotaInput{
			ServiceCode: aws.String(serviceCode),
			QuotaCode:   aws.String(quotaCode),
		})
		if err != nil {
			return nil, err
		}
		q = def.Quota
	default:
		return nil, err
	}

	if q == nil || q.UsageMetric == nil || q.UsageMetric.MetricNamespace == nil || q.UsageMetric.MetricName == nil {
		return nil, errors.Errorf("quota %s/%s has no usage metric", serviceCode, quotaCode)
	}
	return q.UsageMetric, nil
}

// UsageFromMetric returns the latest datapoint of a usage metric over the
// last day. No datapoints means nothing was in use.
func UsageFromMetric(ctx context.Context, client CloudWatchAPI, metric *sqtypes.MetricInfo) (float64, error) {
	stat := getStatisticFromRecommendation(metric.MetricStatisticRecommendation)
	endTime := time.Now()
	startTime := endTime.Add(-24 * time.Hour)

	result, err := client.GetMetricStatistics(ctx, &cloudwatch.GetMetricStatisticsInput{
		Namespace:  metric.MetricNamespace,
		MetricName: metric.MetricName,
		Dimensions: buildCloudWatchDimensions(metric.MetricDimensions),
		StartTime:  &startTime,
		EndTime:    &endTime,
		Period:     aws.Int32(300),
		Statistics: []cwtypes.Statistic{cwtypes.Statistic(stat)},
	})
	if err != nil {
		return 0, errors.Wrapf(err, "query %s/%s", safeString(metric.MetricNamespace), safeString(metric.MetricName))
	}

	latest := findLatestDatapoint(result.Datapoints)
	if latest == nil {
		return 0, nil
	}
	return extractValueFromDatapoint(latest, stat), nil
}

func getStatisticFromRecommendation(recommendation *string) string {
	if recommendation != nil && *recommendation != "" {
		return *recommendation
	}
	return "Maximum"
}

func buildCloudWatchDimensions(metricDimensions map[string]string) []cwtypes.Dimension {
	var dimensions []cwtypes.Dimension
	for key, value := range metricDimensions {
		dimensions = append(dimensions, cwtypes.Dimension{
			Name:  aws.String(key),
			Value: aws.String(value),
		})
	}
	return dimensions
}

func findLatestDatapoint(datapoints []cwtypes.Datapoint) *cwtypes.Datapoint {
	var latest *cwtypes.Datapoint
	for i := range datapoints {
		if datapoints[i].Timestamp == nil {
			continue
		}
		if latest == nil || datapoints[i].Timestamp.After(*latest.Timestamp) {
			latest = &datapoints[i]
		}
	}
	return latest
}

func extractValueFromDatapoint(datapoint *cwtypes.Datapoint, stat string) float64 {
	var v *float64
	switch stat {
	case "Average":
		v = datapoint.Average
	case "Sum":
		v = datapoint.Sum
	case "Minimum":
		v = datapoint.Minimum
	default:
		v = datapoint.Maximum
	}
	return aws.ToFloat64(v)
}

func safeString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
