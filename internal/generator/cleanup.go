package generator

import (
	"io/fs"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/meshstack-ai/mesh-cli/internal/constants"
)

// RemoveRedundantKeepFiles deletes placeholder .gitkeep files from every
// directory under root that has gained real content. Placeholders in still
// otherwise-empty directories are left alone.
func RemoveRedundantKeepFiles(log *zerolog.Logger, root string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}

		keepPath := filepath.Join(path, constants.DefaultKeepFileName)
		if _, err := os.Stat(keepPath); err != nil {
			return nil
		}

		entries, err := os.ReadDir(path)
		if err != nil {
			return err
		}
		if len(entries) <= 1 {
			return nil
		}

		if err := os.Remove(keepPath); err != nil {
			return err
		}
		log.Debug().Msgf("Removed placeholder file %s", keepPath)
		return nil
	})
}
