package aws

import (
	"github.com/aws/smithy-go"
	"github.com/pkg/errors"
)

const (
	CodeNoSuchResource     = "NoSuchResourceException"
	CodeNoSuchEntity       = "NoSuchEntity"
	CodeNoSuchHostedZone   = "NoSuchHostedZone"
	CodeSecurityGroupGone  = "InvalidGroup.NotFound"
	CodeSecurityGroupIDBad = "InvalidGroupId.Malformed"
)

// IsNotFound reports whether err is an API error carrying one of the given
// error codes.
func IsNotFound(err error, codes ...string) bool {
	var apiErr smithy.APIError
	if !errors.As(err, &apiErr) {
		return false
	}
	for _, code := range codes {
		if apiErr.ErrorCode() == code {
			return true
		}
	}
	return false
}
