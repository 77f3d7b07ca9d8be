package project

import "errors"

var (
	ErrProjectNotFound  = errors.New("project not found")
	ErrSlugAlreadyTaken = errors.New("slug already used on this website")
)
