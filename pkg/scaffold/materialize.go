package scaffold

import (
	stderrors "errors"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/movekit/movekit/pkg/errors"
	"github.com/movekit/movekit/pkg/logging"
)

// renameMap maps template filenames to their destination names. Dotfiles are
// shipped under placeholder names because npm strips them from packages.
var renameMap = map[string]string{
	"_gitignore": ".gitignore",
	"_npmrc":     ".npmrc",
}

// exclusionSet lists entries never copied out of a template: local build
// artifacts, VCS metadata, lockfiles, secrets, generated output.
var exclusionSet = map[string]struct{}{
	"node_modules":      {},
	"package-lock.json": {},
	".env":              {},
	".aptos":            {},
	"build":             {},
	"dist":              {},
	".git":              {},
	".DS_Store":         {},
}

// Materialize copies the template tree at srcDir into targetDir, applying the
// exclusion set and rename map. Top-level entries are copied concurrently;
// the call returns only after every copy has settled, joining all failures.
// On failure the target holds whatever the in-flight copies reached.
func Materialize(srcDir, targetDir string) error {
	logger := logging.GetLogger("scaffold.materialize")

	entries, err := os.ReadDir(srcDir)
	if err != nil {
		return errors.Wrapf(err, errors.ErrFileCopy, "failed to read template directory %s", srcDir)
	}

	var wg sync.WaitGroup
	errCh := make(chan error, len(entries))

	for _, entry := range entries {
		name := entry.Name()
		if _, excluded := exclusionSet[name]; excluded {
			logger.Debug().Str("entry", name).Msg("Excluded template entry")
			continue
		}

		dest := name
		if renamed, ok := renameMap[name]; ok {
			dest = renamed
			logger.Debug().Str("from", name).Str("to", dest).Msg("Renamed template entry")
		}

		src := filepath.Join(srcDir, name)
		dst := filepath.Join(targetDir, dest)

		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := copyEntry(src, dst); err != nil {
				errCh <- err
			}
		}()
	}

	wg.Wait()
	close(errCh)

	var errs []error
	for err := range errCh {
		errs = append(errs, err)
	}
	if len(errs) > 0 {
		logger.Error().Int("failures", len(errs)).Str("target", targetDir).Msg("Materialization failed")
		return stderrors.Join(errs...)
	}

	logger.Info().Str("source", srcDir).Str("target", targetDir).Msg("Template materialized")
	return nil
}

// copyEntry copies a file or directory tree. Exclusion and renaming apply at
// every depth so nested artifacts never leak into the target.
func copyEntry(src, dst string) error {
	info, err := os.Lstat(src)
	if err != nil {
		return errors.Wrapf(err, errors.ErrFileCopy, "failed to stat %s", src)
	}

	if info.IsDir() {
		return copyDir(src, dst)
	}
	return copyFile(src, dst, info.Mode())
}

func copyDir(src, dst string) error {
	if err := os.MkdirAll(dst, 0755); err != nil {
		return errors.Wrapf(err, errors.ErrDirCreate, "failed to create directory %s", dst)
	}

	entries, err := os.ReadDir(src)
	if err != nil {
		return errors.Wrapf(err, errors.ErrFileCopy, "failed to read directory %s", src)
	}

	for _, entry := range entries {
		name := entry.Name()
		if _, excluded := exclusionSet[name]; excluded {
			continue
		}
		dest := name
		if renamed, ok := renameMap[name]; ok {
			dest = renamed
		}
		if err := copyEntry(filepath.Join(src, name), filepath.Join(dst, dest)); err != nil {
			return err
		}
	}
	return nil
}

func copyFile(src, dst string, mode os.FileMode) error {
	in, err := os.Open(src)
	if err != nil {
		return errors.Wrapf(err, errors.ErrFileCopy, "failed to open %s", src)
	}
	defer func() { _ = in.Close() }()

	out, err := os.OpenFile(dst, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, mode.Perm())
	if err != nil {
		return errors.Wrapf(err, errors.ErrFileCopy, "failed to create %s", dst)
	}
	defer func() { _ = out.Close() }()

	if _, err := io.Copy(out, in); err != nil {
		return errors.Wrapf(err, errors.ErrFileCopy, "failed to copy %s", src)
	}
	return nil
}
