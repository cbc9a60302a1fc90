// Package testutil provides fixture builders and filesystem assertions
// shared by the scaffolding tests.
package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// WriteFile writes content at path, creating parent directories
func WriteFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

// ReadFile reads path and fails the test on error
func ReadFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

// AssertExists asserts a file or directory exists at path
func AssertExists(t *testing.T, path string) {
	t.Helper()
	_, err := os.Stat(path)
	assert.NoError(t, err, "expected %s to exist", path)
}

// AssertNotExists asserts nothing exists at path
func AssertNotExists(t *testing.T, path string) {
	t.Helper()
	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err), "expected %s to be absent", path)
}

// ClickerManifest is a realistic clicker-template package.json carrying the
// wallet adapter dependency the explicit signing variant removes
const ClickerManifest = `{
  "name": "clicker-game",
  "version": "0.1.0",
  "dependencies": {
    "@aptos-labs/ts-sdk": "^1.27.0",
    "@aptos-labs/wallet-adapter-react": "^3.7.0",
    "react": "^18.3.1"
  },
  "devDependencies": {
    "vite": "^5.2.0"
  }
}
`

// BuildBoilerplateTemplate lays out a minimal boilerplate template under
// root/boilerplate-template and returns its path
func BuildBoilerplateTemplate(t *testing.T, root string) string {
	t.Helper()
	dir := filepath.Join(root, "boilerplate-template")

	WriteFile(t, filepath.Join(dir, "_gitignore"), "node_modules\ndist\n")
	WriteFile(t, filepath.Join(dir, "package.json"), `{"name": "boilerplate", "version": "0.1.0"}`+"\n")
	WriteFile(t, filepath.Join(dir, "README.md"), "# Boilerplate\n")
	WriteFile(t, filepath.Join(dir, "frontend", "src", "App.tsx"), "export const App = () => null;\n")

	// Entries the exclusion set must keep out of the target
	WriteFile(t, filepath.Join(dir, ".env"), "LEAKED_SECRET=1\n")
	WriteFile(t, filepath.Join(dir, "node_modules", "leftpad", "index.js"), "module.exports = {};\n")
	WriteFile(t, filepath.Join(dir, "package-lock.json"), "{}\n")

	return dir
}

// BuildClickerTemplate lays out the clicker template with both signing
// variant directories under root/clicker-game-tg-mini-app-template
func BuildClickerTemplate(t *testing.T, root string) string {
	t.Helper()
	dir := filepath.Join(root, "clicker-game-tg-mini-app-template")
	components := filepath.Join(dir, "frontend", "components")

	WriteFile(t, filepath.Join(dir, "_gitignore"), "node_modules\n")
	WriteFile(t, filepath.Join(dir, "package.json"), ClickerManifest)

	for _, f := range []string{"Counter.tsx", "WalletProvider.tsx", "WalletSelector.tsx"} {
		WriteFile(t, filepath.Join(components, f), "// default "+f+"\n")
		WriteFile(t, filepath.Join(components, "explicitSigning", f), "// explicit "+f+"\n")
		WriteFile(t, filepath.Join(components, "seamlessSigning", f), "// seamless "+f+"\n")
	}

	return dir
}
