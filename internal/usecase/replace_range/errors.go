package replace_range

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("replace_range: invalid input data")

	// ErrInvalidRange возвращается для пустого, перевёрнутого или слишком длинного диапазона
	ErrInvalidRange = errors.New("replace_range: invalid date range")

	// ErrRangeConflict возвращается, когда новый диапазон пересекается
	// с аллокациями другого владельца
	ErrRangeConflict = errors.New("replace_range: new range conflicts with existing allocations")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("replace_range: internal error")
)
