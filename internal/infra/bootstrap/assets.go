package bootstrap

import (
	"context"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

// SyncAssets clears the working image folder and repopulates it from the
// backup folder. The file phase is best-effort and runs outside any
// database transaction; an interrupted sync can leave partial contents.
func (b *Bootstrapper) SyncAssets(ctx context.Context) error {
	bootstrapMu.Lock()
	defer bootstrapMu.Unlock()

	if err := ctx.Err(); err != nil {
		return errors.Wrap(err, "asset sync cancelled")
	}

	if err := b.clearImageFolder(); err != nil {
		return err
	}

	return b.copyBackupImages()
}

// clearImageFolder deletes every file under the working image folder,
// walking recursively. A missing folder is a no-op, not an error.
func (b *Bootstrapper) clearImageFolder() error {
	dir := b.cfg.ImageDir

	if _, err := os.Stat(dir); os.IsNotExist(err) {
		b.logger.Info("image folder does not exist, nothing to clear", slog.String("dir", dir))

		return nil
	}

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		return os.Remove(path)
	})
	if err != nil {
		return errors.Wrapf(err, "failed to clear image folder %s", dir)
	}
	b.logger.Info("cleared image folder", slog.String("dir", dir))

	return nil
}

// copyBackupImages copies every regular file from the backup folder into the
// working folder, overwriting on conflict. A missing backup folder is an
// error: without it the store would end up with no images at all.
func (b *Bootstrapper) copyBackupImages() error {
	source, destination := b.cfg.ImageBackupDir, b.cfg.ImageDir

	if _, err := os.Stat(source); err != nil {
		return errors.Wrapf(err, "backup image folder %s is not accessible", source)
	}

	if err := os.MkdirAll(destination, 0o755); err != nil {
		return errors.Wrapf(err, "failed to create image folder %s", destination)
	}

	dirEntries, err := os.ReadDir(source)
	if err != nil {
		return errors.Wrapf(err, "failed to read backup image folder %s", source)
	}

	copied := 0
	for _, dirEntry := range dirEntries {
		if !dirEntry.Type().IsRegular() {
			continue
		}

		srcPath := filepath.Join(source, dirEntry.Name())
		dstPath := filepath.Join(destination, dirEntry.Name())
		if err := copyFile(srcPath, dstPath); err != nil {
			return errors.Wrapf(err, "failed to copy %s", dirEntry.Name())
		}
		copied++
	}

	b.logger.Info("copied backup images",
		slog.String("from", source),
		slog.String("to", destination),
		slog.Int("files", copied),
	)

	return nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()

		return err
	}

	return out.Close()
}
