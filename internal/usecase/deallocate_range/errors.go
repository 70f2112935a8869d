package deallocate_range

import "errors"

var (
	// ErrInvalidRange возвращается для пустого, перевёрнутого или слишком длинного диапазона
	ErrInvalidRange = errors.New("deallocate_range: invalid date range")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("deallocate_range: internal error")
)
