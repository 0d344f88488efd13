package constvars

// Client-facing messages.
const (
	ErrClientSomethingWrongWithApplication = "Something went wrong with the application, please try again later"
	ErrClientCannotProcessRequest          = "Cannot process the request, please check your input"
	ErrClientNotAuthorized                 = "You are not authorized to perform this action"
	ErrClientNotLoggedIn                   = "You are not logged in, please login first"
	ErrClientInvalidEmailOrPassword        = "Invalid email or password"
	ErrClientEmailAlreadyExists            = "Email already registered"
	ErrClientPasswordsDoNotMatch           = "Passwords do not match"
	ErrClientAccountDeactivated            = "Your account has been deactivated"
	ErrClientServerLongRespond             = "Server took too long to respond, please try again later"
	ErrClientFileTooLarge                  = "The uploaded file exceeds the maximum allowed size"
	ErrClientDataNotFound                  = "The requested data was not found"
	ErrClientDataAlreadyExists             = "The data already exists"
)

// Developer-facing messages.
const (
	ErrDevValidationFailed          = "request validation failed"
	ErrDevCannotParseJSON           = "cannot parse request body as JSON"
	ErrDevCannotMarshalJSON         = "cannot marshal value as JSON"
	ErrDevFailedToHashPassword      = "failed to hash password"
	ErrDevInvalidCredentials        = "invalid credentials supplied"
	ErrDevEmailAlreadyExists        = "email already exists"
	ErrDevPasswordsDoNotMatch       = "passwords do not match"
	ErrDevUserNotExists             = "user does not exist"
	ErrDevUserDeactivated           = "user account is deactivated"
	ErrDevInvalidRoleType           = "role is not one of the enumerated role set"
	ErrDevAuthTokenMissing          = "authorization token is missing"
	ErrDevAuthTokenInvalidOrExpired = "authorization token is invalid or expired"
	ErrDevAuthGenerateToken         = "failed to generate token"
	ErrDevAuthInvalidSession        = "session not found or expired"
	ErrDevAuthSigningMethod         = "unexpected token signing method"
	ErrDevInsufficientPermission    = "actor lacks permission for the requested action"
	ErrDevServerDeadlineExceeded    = "server deadline exceeded"
	ErrDevServerProcess             = "failed to process the request"
	ErrDevDataNotFound              = "requested document not found"
	ErrDevFileTooLarge              = "upload exceeds configured size limit"
	ErrDevDataAlreadyExists         = "document with the same unique key already exists"

	ErrDevDBFailedToFindDocument    = "database failed to find document"
	ErrDevDBFailedToInsertDocument  = "database failed to insert document"
	ErrDevDBFailedToUpdateDocument  = "database failed to update document"
	ErrDevDBFailedToDeleteDocument  = "database failed to delete document"
	ErrDevDBFailedToIterateDocument = "database failed to iterate documents"
	ErrDevDBStringNotObjectID       = "identifier is not a valid object id"

	ErrDevDBFailedToFindData    = "postgres failed to find data"
	ErrDevDBFailedToInsertData  = "postgres failed to insert data"
	ErrDevDBFailedToUpdateData  = "postgres failed to update data"
	ErrDevDBFailedToDeleteData  = "postgres failed to delete data"
	ErrDevDBFailedToIterateData = "postgres failed to iterate dataset"

	ErrDevRedisSetData    = "redis failed to set data"
	ErrDevRedisGetData    = "redis failed to get data"
	ErrDevRedisDeleteData = "redis failed to delete data"

	ErrDevMinioFailedToCreateObject = "minio failed to create object in bucket %s"
	ErrDevMinioFailedToGetObject    = "minio failed to fetch object from bucket %s"

	ErrDevRabbitMQPublishMessage = "rabbitmq failed to publish message to queue %s"
)
