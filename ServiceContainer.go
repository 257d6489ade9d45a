package main

import (
	"context"
	"fmt"
	"github.com/cnuhqi5485/certification/contracts"
	"github.com/gin-gonic/gin"
	"go.etcd.io/bbolt"
	"go.uber.org/zap"
	"time"
)

const defaultBoltSheetId = "checklist"

const boltOpenTimeout = time.Second

type ServiceContainer struct {
	Config              *Config
	Logger              *zap.Logger
	Database            *bbolt.DB
	SheetBackend        contracts.SheetBackend
	ChecklistRepository contracts.ChecklistRepository
	WebhookDispatcher   contracts.EventDispatcher
	ResultExporter      contracts.ResultExporter
	ApiController       contracts.ApiController
	Router              *gin.Engine
}

func BuildServiceContainer(ctx context.Context, config *Config, logger *zap.Logger) (container ServiceContainer, err error) {
	container.Config = config
	container.Logger = logger

	backend, err := container.buildSheetBackend(ctx)
	if err != nil {
		return
	}
	container.SheetBackend = NewSharedSheetReader(backend)

	canonicalizer := NewCanonicalizer()
	normalizer := NewRowNormalizer(config.Normalizer, canonicalizer)

	container.WebhookDispatcher = NewWebhookDispatcher(config.Webhooks, logger.Named("webhooks"))
	container.ResultExporter = NewResultExporter()
	container.ChecklistRepository = NewChecklistRepository(
		container.SheetBackend, normalizer, canonicalizer, NewAssignmentRuleEvaluator(),
		container.WebhookDispatcher, container.ResultExporter, config, logger.Named("checklist"),
	)
	container.ApiController = NewApiController(container.ChecklistRepository, container.ResultExporter, config.VerdictOptions)

	container.Router = SetupRouter(container.ApiController, config.AdminPassword, logger.Named("http"))

	return
}

// Close flushes queued webhooks and releases the database.
func (c *ServiceContainer) Close() {
	if c.WebhookDispatcher != nil {
		c.WebhookDispatcher.Close()
	}
	if c.Database != nil {
		_ = c.Database.Close()
	}
}

func (c *ServiceContainer) buildSheetBackend(ctx context.Context) (contracts.SheetBackend, error) {
	backendConfig := c.Config.Backend

	switch backendConfig.Type {
	case BackendBolt:
		db, err := OpenDatabase(backendConfig.BoltPath)
		if err != nil {
			return nil, err
		}
		c.Database = db
		return NewBoltSheetBackend(db, BoltSheetId(backendConfig), NewRowBinarySerializer()), nil

	case BackendXlsx:
		return NewXlsxSheetBackend(backendConfig.XlsxPath, backendConfig.Sheet), nil

	case BackendGSheets:
		return NewGoogleSheetBackend(ctx, backendConfig)
	}

	return nil, fmt.Errorf("%w: unknown backend type %q", ConfigError, backendConfig.Type)
}

func OpenDatabase(path string) (*bbolt.DB, error) {
	db, err := bbolt.Open(path, 0600, &bbolt.Options{Timeout: boltOpenTimeout})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", contracts.BackendError, err)
	}
	return db, nil
}

func BoltSheetId(config BackendConfig) string {
	if config.Sheet == "" {
		return defaultBoltSheetId
	}
	return config.Sheet
}
