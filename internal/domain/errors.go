package domain

import "errors"

var (
	ErrDecode           = errors.New("document is not valid UTF-8 text")
	ErrMissingModelData = errors.New("sentence tokenizer model data unavailable")
	ErrUnknownSplitter  = errors.New("unknown splitter engine")
	ErrNoDocuments      = errors.New("no documents supplied")
	ErrTooManyFiles     = errors.New("too many files in request")
	ErrFileTooLarge     = errors.New("file exceeds maximum allowed size")
	ErrArchiveFailed    = errors.New("document archive to storage failed")
)
