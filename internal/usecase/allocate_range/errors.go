package allocate_range

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("allocate_range: invalid input data")

	// ErrInvalidRange возвращается для пустого, перевёрнутого или слишком длинного диапазона
	ErrInvalidRange = errors.New("allocate_range: invalid date range")

	// ErrRangeConflict возвращается, когда хотя бы один день диапазона
	// уже занят другим владельцем или административной блокировкой
	ErrRangeConflict = errors.New("allocate_range: range conflicts with existing allocations")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("allocate_range: internal error")
)
