package errno

const (
	StatusOK = 10000
)

const (
	TokenEmpty = 40000 + iota
	TokenInvalidFormat
	TokenExpired
	TokenInvalid
	UserNotFound
	InvalidCredentials
)

const (
	InternalError = 50000 + iota
	InvalidParam
	UserAlreadyExists
	WardrobeItemNotFound
	NoFilesUploaded
	FileTooLarge
	RateLimited
)

const (
	UpstreamModelError = 60000 + iota
	UpstreamWeatherError
)
