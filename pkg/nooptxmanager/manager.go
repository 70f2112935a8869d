package nooptxmanager

import "context"

// TransactionManager passthrough-реализация для бэкендов, которые управляют
// транзакциями самостоятельно (mongo-адаптер оборачивает батчи в сессионные
// транзакции внутри репозитория)
type TransactionManager struct{}

// NewTransactionManager создает passthrough менеджер
func NewTransactionManager() *TransactionManager {
	return &TransactionManager{}
}

func (m *TransactionManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func (m *TransactionManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func (m *TransactionManager) DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}
