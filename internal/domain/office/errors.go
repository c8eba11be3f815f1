package office

import "errors"

var (
	ErrOfficeNotFound   = errors.New("office location not found")
	ErrOfficeNameExists = errors.New("office location with this name already exists")
	ErrOfficeInUse      = errors.New("office location still has shifts or time logs")
)
