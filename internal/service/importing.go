package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/Anant2019/home-kitchen-app/internal/domain"
	"github.com/Anant2019/home-kitchen-app/internal/queue"
	"github.com/Anant2019/home-kitchen-app/internal/repo"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// SheetSource turns a spreadsheet into menu items.
type SheetSource interface {
	ParseMenu(ctx context.Context, spreadsheetID string) ([]domain.MenuItem, error)
}

type ImportService struct {
	taskRepo repo.ImportTaskRepository
	menuRepo repo.MenuRepository
	sheets   SheetSource
	broker   queue.Broker
	logger   *zap.SugaredLogger
}

func NewImportService(
	taskRepo repo.ImportTaskRepository,
	menuRepo repo.MenuRepository,
	sheets SheetSource,
	broker queue.Broker,
	logger *zap.SugaredLogger,
) *ImportService {
	return &ImportService{
		taskRepo: taskRepo,
		menuRepo: menuRepo,
		sheets:   sheets,
		broker:   broker,
		logger:   logger,
	}
}

func (s *ImportService) CreateImportTask(ctx context.Context, spreadsheetID, kitchenID string) (primitive.ObjectID, error) {
	task := &domain.ImportTask{
		Status:        domain.StatusQueued,
		SpreadsheetID: spreadsheetID,
		KitchenID:     kitchenID,
		RetryCount:    0,
	}

	if err := s.taskRepo.Create(ctx, task); err != nil {
		return primitive.NilObjectID, fmt.Errorf("failed to create import task: %w", err)
	}

	message := domain.MenuImportMessage{
		TaskID:        task.ID.Hex(),
		SpreadsheetID: spreadsheetID,
		KitchenID:     kitchenID,
	}

	messageBytes, err := json.Marshal(message)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("failed to marshal message: %w", err)
	}

	if err := s.broker.Publish(ctx, queue.QueueMenuImport, messageBytes); err != nil {
		_ = s.taskRepo.UpdateStatus(ctx, task.ID, domain.StatusFailed, err.Error())
		return primitive.NilObjectID, fmt.Errorf("failed to publish message: %w", err)
	}

	s.logger.Infow("import task created", "task_id", task.ID.Hex(), "spreadsheet_id", spreadsheetID, "kitchen_id", kitchenID)

	return task.ID, nil
}

func (s *ImportService) GetTaskStatus(ctx context.Context, taskID primitive.ObjectID) (*domain.ImportTask, error) {
	task, err := s.taskRepo.GetByID(ctx, taskID)
	if err != nil {
		return nil, fmt.Errorf("failed to get import task: %w", err)
	}

	return task, nil
}

func (s *ImportService) ProcessImportTask(ctx context.Context, taskID primitive.ObjectID) error {
	task, err := s.taskRepo.GetByID(ctx, taskID)
	if err != nil {
		return fmt.Errorf("failed to get task: %w", err)
	}

	if err := s.taskRepo.UpdateStatus(ctx, taskID, domain.StatusProcessing, ""); err != nil {
		return fmt.Errorf("failed to update task status: %w", err)
	}

	s.logger.Infow("processing import task", "task_id", taskID.Hex())

	items, err := s.sheets.ParseMenu(ctx, task.SpreadsheetID)
	if err != nil {
		s.logger.Errorw("failed to parse menu sheet", "task_id", taskID.Hex(), "error", err)
		_ = s.taskRepo.UpdateStatus(ctx, taskID, domain.StatusFailed, err.Error())
		return fmt.Errorf("failed to parse menu sheet: %w", err)
	}

	// the replace is atomic; readers see the old menu until it lands
	if err := s.menuRepo.ReplaceMenu(ctx, task.KitchenID, items); err != nil {
		s.logger.Errorw("failed to replace menu", "task_id", taskID.Hex(), "error", err)
		_ = s.taskRepo.UpdateStatus(ctx, taskID, domain.StatusFailed, err.Error())
		return fmt.Errorf("failed to replace menu: %w", err)
	}

	if err := s.taskRepo.MarkCompleted(ctx, taskID, len(items)); err != nil {
		return fmt.Errorf("failed to mark task completed: %w", err)
	}

	s.logger.Infow("import task completed", "task_id", taskID.Hex(), "kitchen_id", task.KitchenID, "item_count", len(items))

	return nil
}
