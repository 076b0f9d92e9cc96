package response

const (
	MessageSuccess          = "Success"
	DefaultErrorMessage     = "Something went wrong. Please try again."
	InternalServerErrorCode = 500
	ErrorCodeBadRequest     = 1
)
