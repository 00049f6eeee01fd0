package qml

import "errors"

// Errors returned by parsing and validation.
var (
	// ErrMalformed indicates the input is not well-formed XML or is not
	// rooted at a <qgis> element.
	ErrMalformed = errors.New("malformed style document")
	// ErrInvalid indicates the document parsed but fails structural
	// validation (dangling symbol reference, duplicate rule key, ...).
	ErrInvalid = errors.New("invalid style document")
)
