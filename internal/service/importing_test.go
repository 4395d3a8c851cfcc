package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/Anant2019/home-kitchen-app/internal/domain"
	"github.com/Anant2019/home-kitchen-app/internal/queue"
	"github.com/Anant2019/home-kitchen-app/internal/store/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubSheetSource struct {
	items []domain.MenuItem
	err   error
}

func (s *stubSheetSource) ParseMenu(_ context.Context, _ string) ([]domain.MenuItem, error) {
	return s.items, s.err
}

func newImportService(sheets SheetSource, broker queue.Broker) (*ImportService, *memory.ImportTaskRepository, *memory.MenuRepository) {
	taskRepo := memory.NewImportTaskRepository()
	menuRepo := memory.NewMenuRepository()
	return NewImportService(taskRepo, menuRepo, sheets, broker, zap.NewNop().Sugar()), taskRepo, menuRepo
}

func TestCreateImportTaskPublishesMessage(t *testing.T) {
	broker := newRecordingBroker()
	svc, _, _ := newImportService(&stubSheetSource{}, broker)

	taskID, err := svc.CreateImportTask(context.Background(), "sheet-123", "kitchen1")
	require.NoError(t, err)
	require.False(t, taskID.IsZero())

	task, err := svc.GetTaskStatus(context.Background(), taskID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusQueued, task.Status)
	assert.Equal(t, "sheet-123", task.SpreadsheetID)

	msgs := broker.messages(queue.QueueMenuImport)
	require.Len(t, msgs, 1)

	var msg domain.MenuImportMessage
	require.NoError(t, json.Unmarshal(msgs[0], &msg))
	assert.Equal(t, taskID.Hex(), msg.TaskID)
	assert.Equal(t, "sheet-123", msg.SpreadsheetID)
	assert.Equal(t, "kitchen1", msg.KitchenID)
}

func TestCreateImportTaskPublishFailureMarksFailed(t *testing.T) {
	broker := newRecordingBroker()
	broker.err = errors.New("broker down")
	svc, taskRepo, _ := newImportService(&stubSheetSource{}, broker)

	_, err := svc.CreateImportTask(context.Background(), "sheet-123", "kitchen1")
	require.Error(t, err)

	tasks := taskRepo.All()
	require.Len(t, tasks, 1)
	assert.Equal(t, domain.StatusFailed, tasks[0].Status)
	assert.Contains(t, tasks[0].ErrorMessage, "broker down")
}

func TestProcessImportTaskReplacesMenu(t *testing.T) {
	items := []domain.MenuItem{
		{ID: 1, Name: "burger", Price: 100},
		{ID: 2, Name: "fries", Price: 50},
	}
	svc, _, menuRepo := newImportService(&stubSheetSource{items: items}, queue.NoopBroker{})
	ctx := context.Background()

	taskID, err := svc.CreateImportTask(ctx, "sheet-123", "kitchen1")
	require.NoError(t, err)

	require.NoError(t, svc.ProcessImportTask(ctx, taskID))

	task, err := svc.GetTaskStatus(ctx, taskID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCompleted, task.Status)
	assert.Equal(t, 2, task.ItemCount)

	menu, err := menuRepo.GetMenu(ctx, "kitchen1")
	require.NoError(t, err)
	assert.Equal(t, items, menu)
}

func TestProcessImportTaskParseFailureMarksFailed(t *testing.T) {
	svc, _, menuRepo := newImportService(&stubSheetSource{err: errors.New("sheet unreadable")}, queue.NoopBroker{})
	ctx := context.Background()

	taskID, err := svc.CreateImportTask(ctx, "sheet-123", "kitchen1")
	require.NoError(t, err)

	err = svc.ProcessImportTask(ctx, taskID)
	require.Error(t, err)

	task, err := svc.GetTaskStatus(ctx, taskID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusFailed, task.Status)
	assert.Contains(t, task.ErrorMessage, "sheet unreadable")

	// a failed import never clobbers the existing menu
	menu, err := menuRepo.GetMenu(ctx, "kitchen1")
	require.NoError(t, err)
	assert.Empty(t, menu)
}
