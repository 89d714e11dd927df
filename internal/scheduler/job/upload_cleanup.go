package job

import (
	"context"
	"log/slog"
	"os"
	"strings"
	"time"

	"FindThemAPI/internal/adapter"
	"FindThemAPI/internal/config"
	"FindThemAPI/internal/repository"
)

// RunUploadCleanup deletes uploaded photo files that no report references and
// that are older than the retention window. Local mode only: in s3 mode the
// records carry absolute URLs and the bucket owns its own lifecycle rules.
func RunUploadCleanup(ctx context.Context, repo *repository.Repository, storage *adapter.StorageAdapter, cfg *config.AppConfig) error {
	if storage.Mode() != "local" {
		slog.Info("Skipping Upload Cleanup, storage mode is not local", "mode", storage.Mode())
		return nil
	}

	retentionDays := cfg.UploadRetentionDays
	if retentionDays < 0 {
		retentionDays = 7.0
	}
	cutoff := time.Now().UTC().Add(-time.Duration(retentionDays * 24 * float64(time.Hour)))

	slog.Info("Running Upload Cleanup", "retentionDays", retentionDays, "cutoff", cutoff)

	referenced := map[string]bool{}
	for _, r := range repo.Report.Approved.Load() {
		referenced[fileNameFromImageRef(r.Image)] = true
	}
	for _, r := range repo.Report.Pending.Load() {
		referenced[fileNameFromImageRef(r.Image)] = true
	}

	entries, err := os.ReadDir(storage.UploadDir())
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		slog.Error("Failed to read uploads directory", "error", err)
		return err
	}

	removed := 0
	for _, entry := range entries {
		if entry.IsDir() || referenced[entry.Name()] {
			continue
		}

		info, err := entry.Info()
		if err != nil {
			slog.Error("Failed to stat upload", "file", entry.Name(), "error", err)
			continue
		}
		if info.ModTime().UTC().After(cutoff) {
			continue
		}

		if err := storage.Delete(entry.Name()); err != nil {
			slog.Error("Failed to delete orphan upload", "file", entry.Name(), "error", err)
			continue
		}
		removed++
		slog.Info("Deleted orphan upload", "file", entry.Name())
	}

	slog.Info("Upload Cleanup finished", "scanned", len(entries), "removed", removed)
	return nil
}

// fileNameFromImageRef strips the site-relative path prefix from an image
// reference. Data URIs and absolute URLs map to names no directory entry
// matches, which is the safe direction.
func fileNameFromImageRef(ref string) string {
	if idx := strings.LastIndex(ref, "/"); idx >= 0 {
		return ref[idx+1:]
	}
	return ref
}
