package main

import (
	"context"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.etcd.io/bbolt"
	"go.uber.org/zap"
	"os"
	"path/filepath"
	"testing"
)

func TestBuildServiceContainer(t *testing.T) {
	gin.SetMode(gin.TestMode)

	f, err := os.CreateTemp("", "db_*.db")
	require.NoError(t, err)
	_ = f.Close()
	defer os.Remove(f.Name())

	config := DefaultConfig()
	config.Backend.BoltPath = f.Name()

	serviceContainer, err := BuildServiceContainer(context.Background(), config, zap.NewNop())
	assert.NoError(t, err)

	// check database
	assert.NotNil(t, serviceContainer.Database)
	assert.IsType(t, &bbolt.DB{}, serviceContainer.Database)

	// check sheet backend
	assert.IsType(t, &SharedSheetReader{}, serviceContainer.SheetBackend)
	sharedReader := serviceContainer.SheetBackend.(*SharedSheetReader)
	assert.IsType(t, &BoltSheetBackend{}, sharedReader.backend)
	assert.Equal(t, []byte(defaultBoltSheetId), sharedReader.backend.(*BoltSheetBackend).sheetId)

	// check webhook dispatcher
	assert.NotNil(t, serviceContainer.WebhookDispatcher)
	assert.IsType(t, &WebhookDispatcher{}, serviceContainer.WebhookDispatcher)

	// check checklist repository
	assert.IsType(t, &ChecklistRepository{}, serviceContainer.ChecklistRepository)

	checklistRepository := serviceContainer.ChecklistRepository.(*ChecklistRepository)
	assert.Equal(t, serviceContainer.SheetBackend, checklistRepository.backend)
	assert.Equal(t, serviceContainer.WebhookDispatcher, checklistRepository.dispatcher)
	assert.Equal(t, serviceContainer.ResultExporter, checklistRepository.exporter)
	assert.IsType(t, &RowNormalizer{}, checklistRepository.normalizer)
	assert.IsType(t, &Canonicalizer{}, checklistRepository.canonicalizer)
	assert.IsType(t, &AssignmentRuleEvaluator{}, checklistRepository.rules)
	assert.Equal(t, MatchingToken, checklistRepository.matching)

	// check api controller
	assert.IsType(t, &ApiController{}, serviceContainer.ApiController)

	apiController := serviceContainer.ApiController.(*ApiController)
	assert.Equal(t, serviceContainer.ChecklistRepository, apiController.ChecklistRepository)
	assert.Equal(t, config.VerdictOptions, apiController.VerdictOptions)

	// check router
	assert.NotNil(t, serviceContainer.Router)
	assert.IsType(t, &gin.Engine{}, serviceContainer.Router)
	// 8 api routes + health check + metrics
	assert.GreaterOrEqual(t, len(serviceContainer.Router.Routes()), 10)

	serviceContainer.Close()
}

func TestBuildServiceContainer_Backends(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("xlsx", func(t *testing.T) {
		config := DefaultConfig()
		config.Backend.Type = BackendXlsx
		config.Backend.XlsxPath = filepath.Join(t.TempDir(), "checklist.xlsx")
		config.Backend.Sheet = "Sheet1"

		serviceContainer, err := BuildServiceContainer(context.Background(), config, zap.NewNop())
		assert.NoError(t, err)
		defer serviceContainer.Close()

		assert.Nil(t, serviceContainer.Database)
		assert.IsType(t, &XlsxSheetBackend{}, serviceContainer.SheetBackend.(*SharedSheetReader).backend)
	})

	t.Run("unknown", func(t *testing.T) {
		config := DefaultConfig()
		config.Backend.Type = "csv"

		_, err := BuildServiceContainer(context.Background(), config, zap.NewNop())
		assert.ErrorIs(t, err, ConfigError)
	})

	t.Run("bolt open error", func(t *testing.T) {
		config := DefaultConfig()
		config.Backend.BoltPath = filepath.Join(t.TempDir(), "missing", "db.db")

		_, err := BuildServiceContainer(context.Background(), config, zap.NewNop())
		assert.True(t, IsBackendError(err))
	})
}
