package service

import "errors"

var (
	ErrItemNotFound  = errors.New("no task, test or class with that name")
	ErrDuplicateName = errors.New("a task or test with that name already exists")
)
