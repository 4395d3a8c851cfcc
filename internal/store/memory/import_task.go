package memory

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/Anant2019/home-kitchen-app/internal/domain"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ImportTaskRepository struct {
	mu    sync.RWMutex
	tasks map[primitive.ObjectID]domain.ImportTask
}

func NewImportTaskRepository() *ImportTaskRepository {
	return &ImportTaskRepository{
		tasks: make(map[primitive.ObjectID]domain.ImportTask),
	}
}

func (r *ImportTaskRepository) Create(_ context.Context, task *domain.ImportTask) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if task.ID.IsZero() {
		task.ID = primitive.NewObjectID()
	}
	task.CreatedAt = time.Now()
	task.UpdatedAt = time.Now()

	r.tasks[task.ID] = *task

	return nil
}

func (r *ImportTaskRepository) GetByID(_ context.Context, id primitive.ObjectID) (*domain.ImportTask, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	task, ok := r.tasks[id]
	if !ok {
		return nil, fmt.Errorf("import task not found")
	}

	return &task, nil
}

// All snapshots every stored task, in no particular order.
func (r *ImportTaskRepository) All() []domain.ImportTask {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.ImportTask, 0, len(r.tasks))
	for _, task := range r.tasks {
		out = append(out, task)
	}

	return out
}

func (r *ImportTaskRepository) UpdateStatus(_ context.Context, id primitive.ObjectID, status domain.ImportTaskStatus, errorMsg string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	task, ok := r.tasks[id]
	if !ok {
		return fmt.Errorf("import task not found")
	}

	task.Status = status
	task.ErrorMessage = errorMsg
	task.UpdatedAt = time.Now()
	r.tasks[id] = task

	return nil
}

func (r *ImportTaskRepository) MarkCompleted(_ context.Context, id primitive.ObjectID, itemCount int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	task, ok := r.tasks[id]
	if !ok {
		return fmt.Errorf("import task not found")
	}

	task.Status = domain.StatusCompleted
	task.ItemCount = itemCount
	task.UpdatedAt = time.Now()
	r.tasks[id] = task

	return nil
}
