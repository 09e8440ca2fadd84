package httperr

import "errors"

// Kind classifies a constraint failure raised at the data-access boundary.
type Kind int

const (
	KindValidation Kind = iota
	KindUniqueConflict
	KindReferential
	KindNotFound
)

type BusinessError struct {
	Kind    Kind
	Code    string
	Message string
}

func (e BusinessError) Error() string {
	return e.Code
}

func Validation(code, message string) error {
	return BusinessError{Kind: KindValidation, Code: code, Message: message}
}

func UniqueConflict(code, message string) error {
	return BusinessError{Kind: KindUniqueConflict, Code: code, Message: message}
}

func Referential(code, message string) error {
	return BusinessError{Kind: KindReferential, Code: code, Message: message}
}

func NotFoundError(code, message string) error {
	return BusinessError{Kind: KindNotFound, Code: code, Message: message}
}

func IsKind(err error, kind Kind) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Kind == kind
	}
	return false
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}
