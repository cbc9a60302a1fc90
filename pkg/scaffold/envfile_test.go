package scaffold

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/movekit/movekit/pkg/account"
	"github.com/movekit/movekit/pkg/errors"
	"github.com/movekit/movekit/pkg/testutil"
	"github.com/movekit/movekit/pkg/types"
)

// fixedProvisioner returns a canned account, or an error when set
type fixedProvisioner struct {
	acct *account.Account
	err  error
}

func (p *fixedProvisioner) Provision(ctx context.Context, sel types.Selections) (*account.Account, error) {
	if p.err != nil {
		return nil, p.err
	}
	return p.acct, nil
}

func testAccount() *account.Account {
	return &account.Account{
		Address:    "0xaaaa",
		PrivateKey: "0xbbbb",
		PublicKey:  "0xcccc",
	}
}

func TestGenerateEnvFileBaseOnly(t *testing.T) {
	target := t.TempDir()
	sel := types.Selections{ProjectName: "demo", Network: types.NetworkTestnet}

	err := GenerateEnvFile(context.Background(), target, sel,
		&fixedProvisioner{acct: testAccount()}, "")
	require.NoError(t, err)

	content := testutil.ReadFile(t, filepath.Join(target, ".env"))
	want := strings.Join([]string{
		"PROJECT_NAME=demo",
		"VITE_APP_NETWORK=testnet",
		"VITE_MODULE_PUBLISHER_ACCOUNT_ADDRESS=0xaaaa",
		"VITE_MODULE_PUBLISHER_ACCOUNT_PRIVATE_KEY=0xbbbb",
		"VITE_MODULE_PUBLISHER_ACCOUNT_PUBLIC_KEY=0xcccc",
	}, "\n") + "\n"
	assert.Equal(t, want, content, "base fields only, no trailing blank block")
}

func TestGenerateEnvFileWithAdditionalContent(t *testing.T) {
	target := t.TempDir()
	sel := types.Selections{ProjectName: "demo", Network: types.NetworkDevnet}

	err := GenerateEnvFile(context.Background(), target, sel,
		&fixedProvisioner{acct: testAccount()}, seamlessSigningEnvExtra)
	require.NoError(t, err)

	content := testutil.ReadFile(t, filepath.Join(target, ".env"))
	assert.Contains(t, content, "VITE_MODULE_PUBLISHER_ACCOUNT_ADDRESS=0xaaaa")
	assert.Contains(t, content, "\n\n# App ID from the Mizu wallet developer dashboard\n")
	assert.True(t, strings.HasSuffix(content, "VITE_MIZU_WALLET_APP_ID=\"\"\n"))
}

func TestGenerateEnvFileOverwrites(t *testing.T) {
	target := t.TempDir()
	testutil.WriteFile(t, filepath.Join(target, ".env"), "STALE=1\n")

	err := GenerateEnvFile(context.Background(), target,
		types.Selections{ProjectName: "demo"}, &fixedProvisioner{acct: testAccount()}, "")
	require.NoError(t, err)

	content := testutil.ReadFile(t, filepath.Join(target, ".env"))
	assert.NotContains(t, content, "STALE")
}

func TestGenerateEnvFileProvisionerError(t *testing.T) {
	provErr := errors.New(errors.ErrAccountCreate, "faucet unreachable")

	err := GenerateEnvFile(context.Background(), t.TempDir(),
		types.Selections{}, &fixedProvisioner{err: provErr}, "")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrAccountCreate))
}

func TestGenerateEnvFileWriteError(t *testing.T) {
	target := filepath.Join(t.TempDir(), "does-not-exist")

	err := GenerateEnvFile(context.Background(), target,
		types.Selections{}, &fixedProvisioner{acct: testAccount()}, "")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrFileWrite))
}
