package template

import "errors"

// ErrTemplateNotFound indicates the template doesn't exist.
var ErrTemplateNotFound = errors.New("template not found")
