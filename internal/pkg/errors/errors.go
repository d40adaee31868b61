package errors

import "net/http"

// Search parameter validation. The message texts are part of the API
// contract and must not be reworded.
var (
	ErrCoordinatesRequired = New(
		"COORDINATES_REQUIRED",
		"Latitude and longitude are required",
		http.StatusBadRequest,
	)

	ErrInvalidLatitude = New(
		"INVALID_LATITUDE",
		"Invalid latitude. Must be between -90 and 90",
		http.StatusBadRequest,
	)

	ErrInvalidLongitude = New(
		"INVALID_LONGITUDE",
		"Invalid longitude. Must be between -180 and 180",
		http.StatusBadRequest,
	)

	ErrInvalidRadius = New(
		"INVALID_RADIUS",
		"Invalid radius. Must be between 0 and 50 kilometers",
		http.StatusBadRequest,
	)

	ErrInvalidLimit = New(
		"INVALID_LIMIT",
		"Invalid limit. Must be between 1 and 100",
		http.StatusBadRequest,
	)

	ErrInvalidPage = New(
		"INVALID_PAGE",
		"Invalid page. Must be a positive integer",
		http.StatusBadRequest,
	)

	ErrInvalidServiceType = New(
		"INVALID_SERVICE_TYPE",
		"Invalid service type. Must be a positive integer",
		http.StatusBadRequest,
	)

	ErrInvalidServiceID = New(
		"INVALID_SERVICE_ID",
		"Invalid service ID",
		http.StatusBadRequest,
	)

	ErrServiceIDRequired = New(
		"SERVICE_ID_REQUIRED",
		"Service ID is required",
		http.StatusBadRequest,
	)

	ErrSearchTermRequired = New(
		"SEARCH_TERM_REQUIRED",
		"Search term is required",
		http.StatusBadRequest,
	)
)

// Domain conflicts and lookups.
var (
	ErrServiceNotFound = New(
		"SERVICE_NOT_FOUND",
		"Service not found",
		http.StatusNotFound,
	)

	ErrAlreadyFavorite = New(
		"ALREADY_FAVORITE",
		"Service is already in favorites",
		http.StatusConflict,
	)

	ErrNotFavorite = New(
		"NOT_FAVORITE",
		"Service is not in favorites",
		http.StatusNotFound,
	)

	ErrUserExists = New(
		"USER_EXISTS",
		"User with this email or username already exists",
		http.StatusConflict,
	)

	ErrInvalidCredentials = New(
		"INVALID_CREDENTIALS",
		"Invalid email or password",
		http.StatusUnauthorized,
	)

	ErrUnauthorized = New(
		"UNAUTHORIZED",
		"Authentication required",
		http.StatusUnauthorized,
	)

	ErrInvalidToken = New(
		"INVALID_TOKEN",
		"Invalid or expired token",
		http.StatusUnauthorized,
	)
)

// Infrastructure.
var (
	ErrDatabaseError = New(
		"DATABASE_ERROR",
		"Database operation failed",
		http.StatusInternalServerError,
	)

	ErrCacheError = New(
		"CACHE_ERROR",
		"Cache operation failed",
		http.StatusInternalServerError,
	)

	ErrInvalidRequest = New(
		"INVALID_REQUEST",
		"Invalid request parameters",
		http.StatusBadRequest,
	)

	ErrInternalServer = New(
		"INTERNAL_SERVER_ERROR",
		"Internal server error",
		http.StatusInternalServerError,
	)
)
