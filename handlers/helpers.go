package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/Dosada05/tournament-draws/models"
	"github.com/Dosada05/tournament-draws/repositories"
	"github.com/Dosada05/tournament-draws/services"
	"github.com/go-chi/chi/v5"
)

type jsonResponse map[string]interface{}

// errorBody is the failure record: {"error": {"code": ..., "message": ...}}.
type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

const (
	codeBadRequest   = "INVALID_VALUES"
	codeUnauthorized = "UNAUTHORIZED"
	codeConflict     = "CONFLICT"
	codeUnavailable  = "SERVICE_UNAVAILABLE"
	codeNotReady     = "MATCHUP_NOT_READY"
)

func readJSON(w http.ResponseWriter, r *http.Request, dst interface{}) error {
	maxBytes := 1_048_576 // 1MB
	r.Body = http.MaxBytesReader(w, r.Body, int64(maxBytes))

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	err := dec.Decode(dst)
	if err != nil {
		var syntaxError *json.SyntaxError
		var unmarshalTypeError *json.UnmarshalTypeError
		var invalidUnmarshalError *json.InvalidUnmarshalError
		var maxBytesError *http.MaxBytesError

		switch {
		case errors.As(err, &syntaxError):
			return fmt.Errorf("body contains badly-formed JSON (at character %d)", syntaxError.Offset)
		case errors.Is(err, io.ErrUnexpectedEOF):
			return errors.New("body contains badly-formed JSON")
		case errors.As(err, &unmarshalTypeError):
			if unmarshalTypeError.Field != "" {
				return fmt.Errorf("body contains incorrect JSON type for field %q", unmarshalTypeError.Field)
			}
			return fmt.Errorf("body contains incorrect JSON type (at character %d)", unmarshalTypeError.Offset)
		case errors.Is(err, io.EOF):
			return errors.New("body must not be empty")
		case strings.HasPrefix(err.Error(), "json: unknown field "):
			fieldName := strings.TrimPrefix(err.Error(), "json: unknown field ")
			return fmt.Errorf("body contains unknown key %s", fieldName)
		case errors.As(err, &maxBytesError):
			return fmt.Errorf("body must not be larger than %d bytes", maxBytes)
		case errors.As(err, &invalidUnmarshalError):
			panic(err)
		default:
			return err
		}
	}

	err = dec.Decode(&struct{}{})
	if !errors.Is(err, io.EOF) {
		return errors.New("body must only contain a single JSON value")
	}

	return nil
}

func writeJSON(w http.ResponseWriter, status int, data interface{}, headers http.Header) error {
	js, err := json.MarshalIndent(data, "", "\t")
	if err != nil {
		return err
	}
	js = append(js, '\n')

	for key, value := range headers {
		w.Header()[key] = value
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, err = w.Write(js)
	return err
}

// successResponse writes {"success": true, ...payload}.
func successResponse(w http.ResponseWriter, r *http.Request, status int, payload jsonResponse) {
	env := jsonResponse{"success": true}
	for k, v := range payload {
		env[k] = v
	}
	if err := writeJSON(w, status, env, nil); err != nil {
		slog.ErrorContext(r.Context(), "failed to write response", slog.String("path", r.URL.Path), slog.Any("error", err))
	}
}

func errorResponse(w http.ResponseWriter, r *http.Request, status int, code, message string) {
	env := jsonResponse{"error": errorBody{Code: code, Message: message}}
	if err := writeJSON(w, status, env, nil); err != nil {
		slog.ErrorContext(r.Context(), "failed to write error response", slog.String("path", r.URL.Path), slog.Any("error", err))
		w.WriteHeader(http.StatusInternalServerError)
	}
}

func serverErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	slog.ErrorContext(r.Context(), "internal server error",
		slog.String("method", r.Method),
		slog.String("path", r.URL.Path),
		slog.Any("error", err))
	message := "the server encountered a problem and could not process your request"
	errorResponse(w, r, http.StatusInternalServerError, string(models.CodeUnknown), message)
}

func badRequestResponse(w http.ResponseWriter, r *http.Request, err error) {
	errorResponse(w, r, http.StatusBadRequest, codeBadRequest, err.Error())
}

func unauthorizedResponse(w http.ResponseWriter, r *http.Request, message string) {
	errorResponse(w, r, http.StatusUnauthorized, codeUnauthorized, message)
}

// statusForCode maps a core error code to its HTTP status by code family.
func statusForCode(code models.ErrorCode) int {
	c := string(code)
	switch {
	case code == models.CodeCannotChangeWinningSide:
		return http.StatusConflict
	case strings.HasPrefix(c, "MISSING_"), strings.HasPrefix(c, "INVALID_"), strings.HasPrefix(c, "UNRECOGNIZED_"):
		return http.StatusBadRequest
	case strings.HasSuffix(c, "NOT_FOUND"):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// mapServiceErrorToHTTP turns service and core errors into failure records.
func mapServiceErrorToHTTP(w http.ResponseWriter, r *http.Request, err error) {
	var coded *models.CodedError
	switch {
	case errors.Is(err, services.ErrAuthInvalidCredentials):
		unauthorizedResponse(w, r, err.Error())
	case errors.Is(err, services.ErrAuthDisabled), errors.Is(err, services.ErrArchiveDisabled):
		errorResponse(w, r, http.StatusServiceUnavailable, codeUnavailable, err.Error())
	case errors.Is(err, services.ErrScoreNotAccepted):
		errorResponse(w, r, http.StatusConflict, codeNotReady, err.Error())
	case errors.Is(err, repositories.ErrDrawIDConflict):
		errorResponse(w, r, http.StatusConflict, codeConflict, err.Error())
	case errors.As(err, &coded):
		status := statusForCode(coded.Code)
		if status == http.StatusInternalServerError {
			serverErrorResponse(w, r, err)
			return
		}
		errorResponse(w, r, status, string(coded.Code), err.Error())
	default:
		serverErrorResponse(w, r, err)
	}
}

func urlParam(r *http.Request, name string) (string, error) {
	value := strings.TrimSpace(chi.URLParam(r, name))
	if value == "" {
		return "", fmt.Errorf("missing URL parameter %q", name)
	}
	return value, nil
}

// queryBool reads an optional boolean query parameter; absent means false.
func queryBool(r *http.Request, name string) (bool, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return false, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, fmt.Errorf("query parameter %q must be a boolean", name)
	}
	return v, nil
}
