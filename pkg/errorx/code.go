package errorx

type Code int

var Unknown = Error{Code: 100000, Message: "Request failed"}

const (
	// Common codes
	BadRequest      Code = 100001
	BadResponse     Code = 100002
	NotFound        Code = 100003
	Internal        Code = 100004
	TooManyRequests Code = 100005

	// Model codes
	UnknownModelKind Code = 200001
	MalformedPayload Code = 200002
	InvalidContract  Code = 200003
	RegistryFrozen   Code = 200004

	// Gateway codes
	GatewayClosed        Code = 300001
	UnexpectedPayload    Code = 300002
	AuthenticationFailed Code = 300003

	// Command codes
	ParseError        Code = 400001
	CannotCastTypes   Code = 400002
	ReusedCommandName Code = 400003
)
