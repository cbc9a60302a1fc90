package scaffold

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/movekit/movekit/pkg/account"
	"github.com/movekit/movekit/pkg/errors"
	"github.com/movekit/movekit/pkg/logging"
	"github.com/movekit/movekit/pkg/types"
)

// EnvFileName is the environment file written at the target's root
const EnvFileName = ".env"

// GenerateEnvFile provisions one module-publisher account, serializes its
// credentials as the base KEY=value block, appends additionalContent after a
// blank-line separator when present, and writes the target's env file
// (overwriting any existing one). The base account fields are always present.
func GenerateEnvFile(ctx context.Context, targetDir string, sel types.Selections,
	provisioner account.Provisioner, additionalContent string,
) error {
	logger := logging.GetLogger("scaffold.envfile")

	acct, err := provisioner.Provision(ctx, sel)
	if err != nil {
		return err
	}

	content := baseEnvContent(sel, acct)
	if additionalContent != "" {
		content += "\n\n" + additionalContent
	}
	content += "\n"

	path := filepath.Join(targetDir, EnvFileName)
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		return errors.Wrapf(err, errors.ErrFileWrite, "failed to write %s", path)
	}

	logger.Info().Str("path", path).Msg("Environment file written")
	return nil
}

// baseEnvContent serializes the account into the fixed base block
func baseEnvContent(sel types.Selections, acct *account.Account) string {
	lines := []string{
		"PROJECT_NAME=" + sel.ProjectName,
		"VITE_APP_NETWORK=" + string(sel.Network),
		"VITE_MODULE_PUBLISHER_ACCOUNT_ADDRESS=" + acct.Address,
		"VITE_MODULE_PUBLISHER_ACCOUNT_PRIVATE_KEY=" + acct.PrivateKey,
		"VITE_MODULE_PUBLISHER_ACCOUNT_PUBLIC_KEY=" + acct.PublicKey,
	}
	return strings.Join(lines, "\n")
}
