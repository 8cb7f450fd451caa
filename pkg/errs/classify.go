package errs

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"net"
	"net/http"
	"net/url"
	"regexp"
	"strconv"
	"syscall"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Result is the normalized outcome of classifying a failure.
type Result struct {
	Success    bool   `json:"success"`
	StatusCode int    `json:"statusCode"`
	Message    string `json:"message"`
}

// mongoWriteConflict is the server error code returned when a write loses a
// concurrency race inside the storage engine.
const mongoWriteConflict = 112

// Matches the offending key in a duplicate key error message, e.g.
// `... dup key: { name: "Widget" }`.
var dupKeyPattern = regexp.MustCompile(`dup key: \{ ([^:{}]+): "?([^"{}]*?)"? \}`)

// Classify maps an arbitrary failure to a stable status code and client-safe
// message. The match is strictly ordered: application-raised errors win over
// storage errors, specific storage shapes win over generic ones. Every branch
// logs with the given context label; internal detail for server-attributable
// failures is logged here and never included in the returned message.
func Classify(err error, context string) Result {
	result, internal := classify(err)

	event := log.Error().Str("component", context).Err(err).Int("statusCode", result.StatusCode)
	if internal {
		event = event.Str("detail", fmt.Sprintf("%+v", err)).Str("type", fmt.Sprintf("%T", err))
	}
	event.Msg(result.Message)

	return result
}

func classify(err error) (result Result, internal bool) {
	// Application-raised errors carry their own status code.
	var appErr *Error
	if errors.As(err, &appErr) {
		return failure(appErr.StatusCode, appErr.Message), false
	}

	// Field-level validation failures: report every violation at once.
	var violations FieldViolations
	if errors.As(err, &violations) {
		return failure(http.StatusBadRequest, violations.Error()), false
	}

	// Malformed identifiers, translated at the persistence boundary.
	var invalidID *InvalidID
	if errors.As(err, &invalidID) {
		return failure(http.StatusBadRequest, invalidID.Error()), false
	}
	if errors.Is(err, primitive.ErrInvalidHex) {
		return failure(http.StatusBadRequest, "Invalid ObjectID format"), false
	}

	// Duplicate unique key: surface the offending field and value.
	if mongo.IsDuplicateKeyError(err) {
		message := "Duplicate Entry: a record with this value already exists"
		if match := dupKeyPattern.FindStringSubmatch(err.Error()); match != nil {
			message = fmt.Sprintf("Duplicate Entry: %s '%s' already exists", match[1], match[2])
		}
		return failure(http.StatusConflict, message), false
	}

	if errors.Is(err, mongo.ErrNoDocuments) {
		return failure(http.StatusNotFound, "Requested document not found"), false
	}

	// Lost write race inside the storage engine.
	var srvErr mongo.ServerError
	if errors.As(err, &srvErr) && srvErr.HasErrorCode(mongoWriteConflict) {
		return failure(http.StatusConflict, "Document was modified by another process. Please try again."), false
	}

	// Outbound HTTP client failures arrive wrapped in *url.Error; classify
	// them before the storage transport checks so they are not mistaken for
	// database connectivity problems.
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		if urlErr.Timeout() {
			return failure(http.StatusRequestTimeout, "Request timeout. Please try again."), false
		}
		return failure(http.StatusServiceUnavailable, "Unable to connect to external service"), true
	}

	if mongo.IsNetworkError(err) {
		return failure(http.StatusServiceUnavailable, "Database connection failed. Please try again later."), true
	}

	if mongo.IsTimeout(err) {
		return failure(http.StatusRequestTimeout, "Database operation timed out. Please try again."), true
	}

	if errors.As(err, &srvErr) {
		return failure(http.StatusInternalServerError, "A database error occurred while processing your request"), true
	}

	// Request body failures.
	var syntaxErr *json.SyntaxError
	if errors.As(err, &syntaxErr) {
		return failure(http.StatusBadRequest, "Invalid JSON format in request body"), false
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		return failure(http.StatusBadRequest,
			fmt.Sprintf("Invalid data type: field '%s' expects %s, got %s", typeErr.Field, typeErr.Type, typeErr.Value)), false
	}

	var numErr *strconv.NumError
	if errors.As(err, &numErr) {
		if errors.Is(numErr.Err, strconv.ErrRange) {
			return failure(http.StatusBadRequest, fmt.Sprintf("Value out of range: %s", numErr.Num)), false
		}
		return failure(http.StatusBadRequest, fmt.Sprintf("Invalid data type: %s is not a valid number", numErr.Num)), false
	}

	// Raw network failures outside the storage driver.
	var dnsErr *net.DNSError
	if errors.Is(err, syscall.ECONNREFUSED) || errors.As(err, &dnsErr) {
		return failure(http.StatusServiceUnavailable, "Unable to connect to external service"), true
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return failure(http.StatusRequestTimeout, "Request timeout. Please try again."), false
	}

	// Local filesystem failures.
	if errors.Is(err, fs.ErrNotExist) {
		return failure(http.StatusNotFound, "File or directory not found"), false
	}
	if errors.Is(err, fs.ErrPermission) {
		return failure(http.StatusForbidden, "Permission denied"), true
	}
	if errors.Is(err, syscall.ENOSPC) {
		return failure(http.StatusInternalServerError, "Insufficient storage space"), true
	}

	// Failures reported by upstream HTTP services, sub-classified by the
	// upstream's own status code.
	var upstream *Upstream
	if errors.As(err, &upstream) {
		return classifyUpstream(upstream), false
	}

	return failure(http.StatusInternalServerError, "An unexpected error occurred while processing your request"), true
}

func classifyUpstream(upstream *Upstream) Result {
	switch {
	case upstream.StatusCode == http.StatusBadRequest:
		return failure(http.StatusBadRequest, fmt.Sprintf("External API error: %s", upstream.Message))
	case upstream.StatusCode == http.StatusUnauthorized:
		return failure(http.StatusUnauthorized, fmt.Sprintf("External API authentication failed: %s", upstream.Message))
	case upstream.StatusCode == http.StatusForbidden:
		return failure(http.StatusForbidden, fmt.Sprintf("External API access denied: %s", upstream.Message))
	case upstream.StatusCode == http.StatusNotFound:
		return failure(http.StatusNotFound, fmt.Sprintf("External API resource not found: %s", upstream.Message))
	case upstream.StatusCode == http.StatusRequestTimeout || upstream.StatusCode == http.StatusGatewayTimeout:
		return failure(http.StatusRequestTimeout, fmt.Sprintf("External API timeout: %s", upstream.Message))
	case upstream.StatusCode >= http.StatusInternalServerError:
		return failure(http.StatusServiceUnavailable, fmt.Sprintf("External API unavailable: %s", upstream.Message))
	default:
		return failure(http.StatusInternalServerError, "An unexpected error occurred while processing your request")
	}
}

func failure(statusCode int, message string) Result {
	return Result{Success: false, StatusCode: statusCode, Message: message}
}
