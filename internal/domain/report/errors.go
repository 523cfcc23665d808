package report

import "errors"

var (
	ErrInvalidGroupBy = errors.New("group_by must be one of employee, department, plant")
)
