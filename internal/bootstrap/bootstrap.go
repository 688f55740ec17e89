package bootstrap

import (
	"fmt"

	"github.com/kirillkom/doc-catalog/internal/config"
	"github.com/kirillkom/doc-catalog/internal/core/catalog"
	"github.com/kirillkom/doc-catalog/internal/core/classifier"
	"github.com/kirillkom/doc-catalog/internal/core/ports"
	"github.com/kirillkom/doc-catalog/internal/core/usecase"
	"github.com/kirillkom/doc-catalog/internal/infrastructure/extractor"
	"github.com/kirillkom/doc-catalog/internal/infrastructure/extractor/docx"
	"github.com/kirillkom/doc-catalog/internal/infrastructure/extractor/pdf"
	"github.com/kirillkom/doc-catalog/internal/infrastructure/storage/localfs"
	"github.com/kirillkom/doc-catalog/internal/infrastructure/storage/s3"
	"github.com/kirillkom/doc-catalog/internal/observability/metrics"
)

type App struct {
	Config config.Config

	Catalog  *catalog.Catalog
	UploadUC ports.DocumentUploader
	QueryUC  ports.CatalogQuerier
	Metrics  *metrics.CatalogMetrics
}

func New(cfg config.Config) (*App, error) {
	gateway, err := newStorageGateway(cfg)
	if err != nil {
		return nil, fmt.Errorf("init storage gateway: %w", err)
	}

	registry := extractor.NewRegistry()
	registry.Register("pdf", pdf.NewExtractor())
	registry.Register("docx", docx.NewExtractor())

	cat := catalog.New()
	cls := classifier.New(cfg.Categories)

	uploadUC := usecase.NewUploadDocumentUseCase(gateway, registry, cat, cfg.SpoolDir)
	queryUC := usecase.NewCatalogQueryUseCase(cat, cls)

	return &App{
		Config:   cfg,
		Catalog:  cat,
		UploadUC: uploadUC,
		QueryUC:  queryUC,
		Metrics:  metrics.NewCatalogMetrics("doc-catalog-api"),
	}, nil
}

func newStorageGateway(cfg config.Config) (ports.StorageGateway, error) {
	switch cfg.StorageBackend {
	case "s3":
		return s3.New(cfg)
	case "localfs":
		return localfs.New(cfg.LocalStoragePath)
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.StorageBackend)
	}
}
