package usecase

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/kirillkom/doc-catalog/internal/core/catalog"
	"github.com/kirillkom/doc-catalog/internal/core/domain"
	"github.com/kirillkom/doc-catalog/internal/core/ports"
)

const uploadTimeLayout = "2006-01-02 15:04:05"

// ExtractorResolver maps an uploaded filename to the extractor for its
// type, or reports that the type is not allowed.
type ExtractorResolver interface {
	ForFilename(filename string) (ports.TextExtractor, error)
}

type UploadDocumentUseCase struct {
	gateway    ports.StorageGateway
	extractors ExtractorResolver
	catalog    *catalog.Catalog
	spoolDir   string
}

func NewUploadDocumentUseCase(
	gateway ports.StorageGateway,
	extractors ExtractorResolver,
	cat *catalog.Catalog,
	spoolDir string,
) *UploadDocumentUseCase {
	return &UploadDocumentUseCase{
		gateway:    gateway,
		extractors: extractors,
		catalog:    cat,
		spoolDir:   spoolDir,
	}
}

// Upload validates the filename against the extension allow-list, spools
// the body to a transient local file, pushes it to the storage gateway,
// extracts title and text, and appends the record to the catalog. The spool
// file is removed on every exit path, including gateway failure. A gateway
// failure aborts the upload with the raw underlying error preserved; there
// is no retry.
func (uc *UploadDocumentUseCase) Upload(
	ctx context.Context,
	filename string,
	body io.Reader,
) (*domain.Document, error) {
	if strings.TrimSpace(filename) == "" {
		return nil, domain.WrapError(domain.ErrInvalidInput, "upload", fmt.Errorf("filename is empty"))
	}
	extractor, err := uc.extractors.ForFilename(filename)
	if err != nil {
		return nil, domain.WrapError(domain.ErrInvalidInput, "upload", err)
	}

	localPath, size, err := uc.spool(filename, body)
	if err != nil {
		return nil, fmt.Errorf("spool upload: %w", err)
	}
	defer func() {
		if removeErr := os.Remove(localPath); removeErr != nil {
			slog.Warn("spool_cleanup_failed", "path", localPath, "error", removeErr)
		}
	}()

	id := uuid.NewString()
	storageKey := fmt.Sprintf("%s_%s", id, sanitizeFilename(filename))

	if err := uc.gateway.Put(ctx, localPath, storageKey); err != nil {
		return nil, domain.WrapError(domain.ErrStorageGateway, "put object", err)
	}

	title, content, err := extractor.Extract(ctx, localPath, filename)
	if err != nil {
		// The record is still appended: extraction failure degrades to
		// empty content, it does not fail the upload.
		slog.Warn("extract_failed", "filename", filename, "error", err)
		title, content = filename, ""
	}
	if content == "" && err == nil {
		slog.Warn("extract_empty", "filename", filename)
	}

	doc := domain.Document{
		ID:         id,
		Title:      title,
		Content:    content,
		Path:       localPath,
		StorageKey: storageKey,
		Size:       size,
		UploadTime: time.Now().UTC().Format(uploadTimeLayout),
	}
	uc.catalog.Append(doc)

	return &doc, nil
}

func (uc *UploadDocumentUseCase) spool(filename string, body io.Reader) (string, int64, error) {
	f, err := os.CreateTemp(uc.spoolDir, "upload-*"+strings.ToLower(filepath.Ext(filename)))
	if err != nil {
		return "", 0, fmt.Errorf("create spool file: %w", err)
	}
	defer f.Close()

	size, err := io.Copy(f, body)
	if err != nil {
		_ = os.Remove(f.Name())
		return "", 0, fmt.Errorf("write spool file: %w", err)
	}
	return f.Name(), size, nil
}

func sanitizeFilename(name string) string {
	base := filepath.Base(name)
	base = strings.ReplaceAll(base, " ", "_")
	base = strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z':
			return r
		case r >= 'A' && r <= 'Z':
			return r
		case r >= '0' && r <= '9':
			return r
		case r == '.', r == '-', r == '_':
			return r
		default:
			return '_'
		}
	}, base)
	if base == "" {
		return "document.bin"
	}
	return base
}
