package fontset

import (
	"errors"

	"github.com/npillmayer/fontsets/core"
)

// Errors of fontset operations. Errors returned by this package wrap one of
// these into a core.AppError, carrying an error code and a user message.
// Use errors.Is to test for them and core.Code to get the error code.
var (
	ErrInvalidCharacter      = errors.New("invalid character")
	ErrInvalidRange          = errors.New("invalid character range")
	ErrUnknownFontset        = errors.New("fontset does not exist")
	ErrDuplicateFontset      = errors.New("fontset exists")
	ErrInvalidRegistryString = errors.New("invalid registry and encoding name")
	ErrFontLoadFailure       = errors.New("font not available")
	ErrInvalidFontList       = errors.New("invalid font list")
	ErrInvalidFontset        = errors.New("invalid fontset id")
)

var errorCodes = map[error]int{
	ErrInvalidCharacter:      core.EINVALID,
	ErrInvalidRange:          core.EINVALID,
	ErrUnknownFontset:        core.EMISSING,
	ErrDuplicateFontset:      core.EDUPLICATE,
	ErrInvalidRegistryString: core.EINVALID,
	ErrFontLoadFailure:       core.EFONTLOAD,
	ErrInvalidFontList:       core.EINVALID,
	ErrInvalidFontset:        core.EINVALID,
}

func failure(sentinel error, format string, v ...interface{}) error {
	return core.WrapError(sentinel, errorCodes[sentinel], format, v...)
}
