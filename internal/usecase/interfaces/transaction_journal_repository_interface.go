package interfaces

import (
	"context"

	"gateway_bridge/internal/domain/entities"
)

// ITransactionJournalRepository abstracts DynamoDB persistence for TransactionRecord.
// The journal is write-mostly and is never consulted to correlate gateway calls.
type ITransactionJournalRepository interface {
	Append(ctx context.Context, r entities.TransactionRecord) (entities.TransactionRecord, error)
	GetByID(ctx context.Context, id string) (entities.TransactionRecord, error)
	ListByAuthorization(ctx context.Context, authorization string) ([]entities.TransactionRecord, error)
}
