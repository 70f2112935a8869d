package check_conflicts

import "errors"

var (
	// ErrInvalidRange возвращается для пустого, перевёрнутого или слишком длинного диапазона
	ErrInvalidRange = errors.New("check_conflicts: invalid date range")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("check_conflicts: internal error")
)
