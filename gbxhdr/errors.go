package gbxhdr

import "errors"

var (
	ErrorTruncated       = errors.New("File is too short for the header field")
	ErrorInvalidPreamble = errors.New("File does not start with a Gbx signature")
)
