package allocationmongo

import "errors"

var (
	// ErrAllocationNotFound возвращается, когда на указанный день нет аллокации
	ErrAllocationNotFound = errors.New("allocation.mongo: allocation not found")

	// ErrEmptyRange возвращается при попытке записать или удалить пустой диапазон
	ErrEmptyRange = errors.New("allocation.mongo: range expands to zero days")

	// ErrExecQuery возвращается при ошибке выполнения запроса к mongo
	ErrExecQuery = errors.New("allocation.mongo: failed to execute query")

	// ErrDecodeDocument возвращается при ошибке декодирования документа
	ErrDecodeDocument = errors.New("allocation.mongo: failed to decode document")
)
