// Package account provisions the module-publisher account whose credentials
// populate the generated project's environment file.
package account

import (
	"context"
	"crypto/ed25519"
	"crypto/rand"
	"encoding/hex"

	"golang.org/x/crypto/sha3"

	"github.com/movekit/movekit/pkg/errors"
	"github.com/movekit/movekit/pkg/logging"
	"github.com/movekit/movekit/pkg/types"
)

// ed25519Scheme is the Aptos authentication-key scheme byte for single
// ed25519 keys
const ed25519Scheme = 0x00

// Account is a freshly provisioned module-publisher identity. Created once
// per scaffold run and persisted only inside the written environment file.
type Account struct {
	Address    string
	PrivateKey string
	PublicKey  string
}

// Provisioner creates a module-publisher account for a scaffold run. The call
// may be slow (crypto or network work); no timeout is imposed here.
type Provisioner interface {
	Provision(ctx context.Context, sel types.Selections) (*Account, error)
}

// LocalProvisioner generates the keypair locally without contacting a faucet
type LocalProvisioner struct{}

// NewLocalProvisioner creates the default provisioner
func NewLocalProvisioner() *LocalProvisioner {
	return &LocalProvisioner{}
}

// Provision generates an ed25519 keypair and derives the account address
// from it (sha3-256 of the public key followed by the scheme byte)
func (p *LocalProvisioner) Provision(ctx context.Context, sel types.Selections) (*Account, error) {
	logger := logging.GetLogger("account")

	if err := ctx.Err(); err != nil {
		return nil, errors.Wrap(err, errors.ErrAccountCreate, "account provisioning cancelled")
	}

	pub, priv, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrAccountCreate, "failed to generate keypair")
	}

	acct := &Account{
		Address:    deriveAddress(pub),
		PrivateKey: "0x" + hex.EncodeToString(priv.Seed()),
		PublicKey:  "0x" + hex.EncodeToString(pub),
	}

	logger.Info().
		Str("address", acct.Address).
		Str("network", string(sel.Network)).
		Msg("Provisioned module publisher account")

	return acct, nil
}

// deriveAddress computes the Aptos account address for an ed25519 public key
func deriveAddress(pub ed25519.PublicKey) string {
	h := sha3.New256()
	h.Write(pub)
	h.Write([]byte{ed25519Scheme})
	return "0x" + hex.EncodeToString(h.Sum(nil))
}
