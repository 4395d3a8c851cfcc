package memory

import (
	"context"
	"sync"
	"time"

	"github.com/Anant2019/home-kitchen-app/internal/domain"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type OrderAuditRepository struct {
	mu     sync.Mutex
	audits []domain.OrderAudit
}

func NewOrderAuditRepository() *OrderAuditRepository {
	return &OrderAuditRepository{}
}

func (r *OrderAuditRepository) Create(_ context.Context, audit *domain.OrderAudit) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if audit.ID.IsZero() {
		audit.ID = primitive.NewObjectID()
	}
	if audit.Timestamp.IsZero() {
		audit.Timestamp = time.Now()
	}

	r.audits = append(r.audits, *audit)

	return nil
}

func (r *OrderAuditRepository) GetByOrderID(_ context.Context, orderID string, limit int) ([]domain.OrderAudit, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []domain.OrderAudit
	for i := len(r.audits) - 1; i >= 0 && (limit <= 0 || len(out) < limit); i-- {
		if r.audits[i].OrderID == orderID {
			out = append(out, r.audits[i])
		}
	}

	return out, nil
}
