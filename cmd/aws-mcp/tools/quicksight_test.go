package tools

import (
	"context"
	"errors"
	"testing"

	awssts "github.com/lxman/mcp-cloudtools/service/aws/sts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeIdentity struct {
	info  *awssts.AccountInfo
	err   error
	calls int
}

func (f *fakeIdentity) GetAccountInfo(ctx context.Context) (*awssts.AccountInfo, error) {
	f.calls++
	return f.info, f.err
}

func TestResolveAccountIDPrefersConfigured(t *testing.T) {
	identity := &fakeIdentity{err: errors.New("unexpected call")}

	id, err := resolveAccountID(context.Background(), "123456789012", identity)
	require.NoError(t, err)
	assert.Equal(t, "123456789012", id)
	assert.Zero(t, identity.calls)
}

func TestResolveAccountIDFallsBackToCallerIdentity(t *testing.T) {
	identity := &fakeIdentity{info: &awssts.AccountInfo{AccountID: "210987654321"}}

	id, err := resolveAccountID(context.Background(), "", identity)
	require.NoError(t, err)
	assert.Equal(t, "210987654321", id)
	assert.Equal(t, 1, identity.calls)
}

func TestResolveAccountIDPropagatesError(t *testing.T) {
	identity := &fakeIdentity{err: errors.New("no credentials")}

	_, err := resolveAccountID(context.Background(), "", identity)
	assert.Error(t, err)
}
