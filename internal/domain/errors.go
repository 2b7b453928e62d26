package domain

import "errors"

var (
	ErrMissingFile         = errors.New("file field is required")
	ErrUnsupportedFileType = errors.New("unsupported file type")
	ErrFileTooLarge        = errors.New("file exceeds maximum allowed size")
	ErrUnreadableDocument  = errors.New("could not extract text from document")
	ErrTextTooShort        = errors.New("extracted text is too short to review")
	ErrNoParserConfigured  = errors.New("no review parser provider is configured")
)
