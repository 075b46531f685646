package response

const (
	MessageSuccess = "Success"

	DefaultErrorMessage     = "Something went wrong"
	InternalServerErrorCode = 500
	ValidationErrorCode     = 400
	TooManyRequestsCode     = 429
)
