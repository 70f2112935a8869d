package allocation

import "errors"

var (
	// ErrAllocationNotFound возвращается, когда на указанный день нет аллокации
	ErrAllocationNotFound = errors.New("allocation.repository: allocation not found")

	// ErrEmptyRange возвращается при попытке записать или удалить пустой диапазон
	ErrEmptyRange = errors.New("allocation.repository: range expands to zero days")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("allocation.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("allocation.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("allocation.repository: failed to scan row")
)
