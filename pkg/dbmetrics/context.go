package dbmetrics

import "context"

type txContextKey struct{}

// WithTx кладет транзакцию в контекст
// Репозитории через GetExecutor будут выполнять запросы в рамках этой транзакции
func WithTx(ctx context.Context, tx TxExecutor) context.Context {
	return context.WithValue(ctx, txContextKey{}, tx)
}

// TxFromContext извлекает транзакцию из контекста
func TxFromContext(ctx context.Context) (TxExecutor, bool) {
	tx, ok := ctx.Value(txContextKey{}).(TxExecutor)
	return tx, ok
}

// GetExecutor возвращает executor для выполнения запроса
// Если в контексте есть активная транзакция - возвращает её, иначе дефолтный executor
func GetExecutor(ctx context.Context, def DBExecutor) DBExecutor {
	if tx, ok := TxFromContext(ctx); ok {
		return tx
	}
	return def
}
