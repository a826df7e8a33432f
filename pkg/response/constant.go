package response

// Messages and error codes used by the standard response helpers.
const (
	MessageSuccess      = "Success"
	DefaultErrorMessage = "Internal Server Error"

	InternalServerErrorCode = 500
)

// Wire date formats.
const (
	DateFormat     = "2006-01-02"
	DateTimeFormat = "2006-01-02 15:04:05"
)
