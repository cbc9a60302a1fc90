package scaffold

import (
	"os"
	"path/filepath"

	"github.com/movekit/movekit/pkg/errors"
	"github.com/movekit/movekit/pkg/logging"
	"github.com/movekit/movekit/pkg/manifest"
	"github.com/movekit/movekit/pkg/templates"
	"github.com/movekit/movekit/pkg/types"
)

// Signing-variant layout inside the clicker template
const (
	componentsDir      = "frontend/components"
	variantDirExplicit = "explicitSigning"
	variantDirSeamless = "seamlessSigning"

	// walletAdapterDep is only used by the seamless variant
	walletAdapterDep = "@aptos-labs/wallet-adapter-react"
)

// signingVariantFiles are overwritten from the chosen variant directory
var signingVariantFiles = []string{
	"Counter.tsx",
	"WalletProvider.tsx",
	"WalletSelector.tsx",
}

// Template-specific env placeholder blocks appended after the base account
// fields. Each key is left empty for the user to fill in.
const (
	nftMintingEnvExtra = "# Address of the collection the minting UI reads from\n" +
		"VITE_COLLECTION_ADDRESS=\"\""

	tokenMintingEnvExtra = "# Address of the fungible asset the minting UI reads from\n" +
		"VITE_FA_ADDRESS=\"\""

	seamlessSigningEnvExtra = "# App ID from the Mizu wallet developer dashboard\n" +
		"VITE_MIZU_WALLET_APP_ID=\"\""
)

// ResolveVariants performs template-specific post-materialization edits in
// targetDir and returns the extra env-file block for the selection. The
// dispatch is exhaustive: an identifier outside the catalog's dispatch keys
// is a fatal input error, never a silently-skipped step.
func ResolveVariants(targetDir string, sel types.Selections) (string, error) {
	switch sel.TemplateID {
	case templates.Boilerplate:
		return "", nil
	case templates.NFTMinting:
		return nftMintingEnvExtra, nil
	case templates.TokenMinting:
		return tokenMintingEnvExtra, nil
	case templates.ClickerGame:
		return resolveClickerSigning(targetDir, sel)
	default:
		return "", errors.Newf(errors.ErrTemplateUnsupported,
			"unsupported template %q", sel.TemplateID).WithDetail("template", sel.TemplateID)
	}
}

// resolveClickerSigning applies the signing-mode variant: the chosen
// variant's components overwrite the defaults, the explicit variant drops the
// wallet adapter from the manifest, and both variant directories are removed
// once their content has been extracted. File operations run sequentially
// and must all finish before env generation starts.
func resolveClickerSigning(targetDir string, sel types.Selections) (string, error) {
	logger := logging.GetLogger("scaffold.variants")

	var variantDir string
	switch sel.SigningOption {
	case types.SigningExplicit:
		variantDir = variantDirExplicit
	case types.SigningSeamless:
		variantDir = variantDirSeamless
	default:
		return "", errors.Newf(errors.ErrSigningUnsupported,
			"unsupported signing option %q", sel.SigningOption).
			WithDetail("signingOption", string(sel.SigningOption))
	}

	components := filepath.Join(targetDir, filepath.FromSlash(componentsDir))

	for _, file := range signingVariantFiles {
		src := filepath.Join(components, variantDir, file)
		dst := filepath.Join(components, file)
		if err := copyEntry(src, dst); err != nil {
			return "", err
		}
		logger.Debug().
			Str("variant", variantDir).
			Str("file", file).
			Msg("Applied signing variant file")
	}

	if sel.SigningOption == types.SigningExplicit {
		manifestPath := filepath.Join(targetDir, "package.json")
		m, err := manifest.Load(manifestPath)
		if err != nil {
			return "", err
		}
		if m.RemoveDependency(walletAdapterDep) {
			if err := m.Write(); err != nil {
				return "", err
			}
		}
	}

	// Both variant directories go away regardless of the choice; their
	// content has been extracted above, so removal must come last.
	for _, dir := range []string{variantDirExplicit, variantDirSeamless} {
		path := filepath.Join(components, dir)
		if err := os.RemoveAll(path); err != nil {
			return "", errors.Wrapf(err, errors.ErrFileRemove,
				"failed to remove variant directory %s", path)
		}
	}

	logger.Info().
		Str("signingOption", string(sel.SigningOption)).
		Msg("Resolved signing variant")

	if sel.SigningOption == types.SigningSeamless {
		return seamlessSigningEnvExtra, nil
	}
	return "", nil
}
