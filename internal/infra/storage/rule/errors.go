package rule

import "errors"

var (
	// ErrRuleNotFound возвращается, когда правило не найдено
	ErrRuleNotFound = errors.New("rule.repository: pricing rule not found")

	// ErrInvalidRuleRow возвращается, когда строка в БД не соответствует
	// ожидаемой комбинации категории и параметров
	ErrInvalidRuleRow = errors.New("rule.repository: invalid rule row")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("rule.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("rule.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("rule.repository: failed to scan row")
)
