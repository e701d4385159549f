package aws_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yuxishi/aws-quota-checker/internal/aws"
)

func isolate(t *testing.T) {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("AWS_CONFIG_FILE", filepath.Join(dir, "config"))
	t.Setenv("AWS_SHARED_CREDENTIALS_FILE", filepath.Join(dir, "credentials"))
	t.Setenv("AWS_PROFILE", "")
	t.Setenv("AWS_REGION", "")
	t.Setenv("AWS_DEFAULT_REGION", "")
}

func TestLoadConfig(t *testing.T) {
	isolate(t)

	cfg, err := aws.LoadConfig(context.Background(), aws.WithRegion("eu-west-1"))
	require.NoError(t, err)
	assert.Equal(t, "eu-west-1", cfg.Region)
}

func TestLoadConfigUnknownProfile(t *testing.T) {
	isolate(t)

	_, err := aws.LoadConfig(context.Background(), aws.WithProfile("does-not-exist"))
	assert.Error(t, err)
}

func TestSessionFactory(t *testing.T) {
	isolate(t)

	sess, err := aws.SessionFactory("")(context.Background(), "ap-southeast-2")
	require.NoError(t, err)
	assert.Equal(t, "ap-southeast-2", sess.Region)
	assert.NotNil(t, sess.ServiceQuotas)
	assert.NotNil(t, sess.IAM)
	assert.NotNil(t, sess.CloudFront)
}
