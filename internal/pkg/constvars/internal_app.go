package constvars

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY           ContextKey = "requestID"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY ContextKey = "isClientRequestID"
	CONTEXT_ACTOR_KEY                ContextKey = "actor"
	CONTEXT_SESSION_ID_KEY           ContextKey = "sessionID"
)

const (
	RoleAdmin   = "admin"
	RoleDoctor  = "doctor"
	RolePatient = "patient"
)

const (
	MongoCollectionUsers          = "users"
	MongoCollectionRoles          = "roles"
	MongoCollectionPatients       = "patients"
	MongoCollectionDoctors        = "doctors"
	MongoCollectionAppointments   = "appointments"
	MongoCollectionMedicalRecords = "medical_records"
	MongoCollectionPrescriptions  = "prescriptions"
	MongoCollectionMedicines      = "medicines"
)

const (
	AppointmentStatusPending   = "pending"
	AppointmentStatusConfirmed = "confirmed"
	AppointmentStatusCanceled  = "canceled"
	AppointmentStatusCompleted = "completed"
)

const (
	DatabaseDriverMongo    = "mongo"
	DatabaseDriverPostgres = "postgres"
)

const (
	AppPaginationUrlFormat = "%s?page=%d&page_size=%d"
)

const (
	RedisSessionKeyFormat = "session:%s"
)
