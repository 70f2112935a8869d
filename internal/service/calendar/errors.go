package calendar

import "errors"

var (
	// ErrDayNotAllocated возвращается, когда на запрошенную дату нет аллокации
	ErrDayNotAllocated = errors.New("calendar: day is not allocated")

	// ErrInvalidDate возвращается при некорректном формате даты
	ErrInvalidDate = errors.New("calendar: invalid date")

	// ErrInvalidMonth возвращается при некорректном годе или месяце
	ErrInvalidMonth = errors.New("calendar: invalid month")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("calendar: internal error")
)
