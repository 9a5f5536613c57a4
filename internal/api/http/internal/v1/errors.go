package v1

// Errors
const (
	UnknownErrorCode    = 0
	UnknownErrorMessage = "unknown error"

	CountryNotFoundCode    = 1001
	CountryNotFoundMessage = "country not found"
	RegionNotFoundCode     = 1002
	RegionNotFoundMessage  = "region not found"
	InvalidIDCode          = 1003
	InvalidIDMessage       = "id must be a positive integer"
)

type ErrorCode int
type ErrorMessage string

type ErrorStruct struct {
	ErrorCode    `json:"error_code"`
	ErrorMessage `json:"error_message"`
} // @name ErrorStruct

func getErrorStruct(code ErrorCode) *ErrorStruct {
	errorStruct := &ErrorStruct{
		ErrorCode:    UnknownErrorCode,
		ErrorMessage: UnknownErrorMessage,
	}

	switch code {
	case CountryNotFoundCode:
		errorStruct.ErrorCode = CountryNotFoundCode
		errorStruct.ErrorMessage = CountryNotFoundMessage
	case RegionNotFoundCode:
		errorStruct.ErrorCode = RegionNotFoundCode
		errorStruct.ErrorMessage = RegionNotFoundMessage
	case InvalidIDCode:
		errorStruct.ErrorCode = InvalidIDCode
		errorStruct.ErrorMessage = InvalidIDMessage
	}

	return errorStruct
}
