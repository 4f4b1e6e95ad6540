package apperror

// messages maps error codes to human-readable messages
var messages = map[Code]string{
	CodeRequiredField:   "Required field is missing",
	CodeInvalidInput:    "Invalid input provided",
	CodeInvalidFormat:   "Invalid data format",
	CodeNotFound:        "Resource not found",
	CodeValidationError: "Validation error",

	CodeConfigurationError: "Configuration error",

	CodeInternalError: "Internal error",
	CodeUnknownError:  "An unknown error occurred",

	CodeFixtureReadFailed:   "Failed to read project fixture",
	CodeFixtureDecodeFailed: "Failed to decode project fixture",
	CodeUnsupportedFixture:  "Unsupported project fixture format",
	CodeProjectNotFound:     "Project not found",
	CodeInvalidProject:      "Invalid project data",
	CodeInvalidContractAddr: "Invalid contract address",
	CodeDuplicateProject:    "Duplicate project ID",

	CodeUnknownMetric:     "Unknown metric",
	CodeInvalidTimeframe:  "Invalid timeframe",
	CodeMetricFetchFailed: "Failed to load metric details",

	CodeTelemetryInitFailed: "Failed to initialize telemetry",
}
