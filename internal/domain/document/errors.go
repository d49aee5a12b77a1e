package document

import "errors"

var (
	ErrDocumentNotFound    = errors.New("document not found")
	ErrContractNotFound    = errors.New("contract not found")
	ErrLeaveRecordNotFound = errors.New("leave record not found")
	ErrInvalidStatus       = errors.New("invalid document status")
	ErrInvalidLeaveKind    = errors.New("invalid leave kind")
	ErrInvalidPeriod       = errors.New("end date must not be before start date")
)
