package apperror

// Code represents a unique error code for the application
type Code string

// General error codes
const (
	CodeRequiredField   Code = "REQUIRED_FIELD"
	CodeInvalidInput    Code = "INVALID_INPUT"
	CodeInvalidFormat   Code = "INVALID_FORMAT"
	CodeNotFound        Code = "NOT_FOUND"
	CodeValidationError Code = "VALIDATION_ERROR"

	CodeConfigurationError Code = "CONFIGURATION_ERROR"

	CodeInternalError Code = "INTERNAL_ERROR"
	CodeUnknownError  Code = "UNKNOWN_ERROR"
)

// Tracker-specific error codes
const (
	// Project fixtures
	CodeFixtureReadFailed   Code = "FIXTURE_READ_FAILED"
	CodeFixtureDecodeFailed Code = "FIXTURE_DECODE_FAILED"
	CodeUnsupportedFixture  Code = "UNSUPPORTED_FIXTURE"
	CodeProjectNotFound     Code = "PROJECT_NOT_FOUND"
	CodeInvalidProject      Code = "INVALID_PROJECT"
	CodeInvalidContractAddr Code = "INVALID_CONTRACT_ADDRESS"
	CodeDuplicateProject    Code = "DUPLICATE_PROJECT"

	// Metrics
	CodeUnknownMetric     Code = "UNKNOWN_METRIC"
	CodeInvalidTimeframe  Code = "INVALID_TIMEFRAME"
	CodeMetricFetchFailed Code = "METRIC_FETCH_FAILED"

	// Telemetry
	CodeTelemetryInitFailed Code = "TELEMETRY_INIT_FAILED"
)
