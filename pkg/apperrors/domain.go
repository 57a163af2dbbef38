package apperrors

import (
	"net/http"
)

// Predefined errors for the job-portal business rules. Services return
// these directly; the HTTP layer maps them via HandleError.

// --- Authorization ---

// ErrInsufficientPermissions - the actor is not party to the entity it is
// trying to read or mutate.
var ErrInsufficientPermissions = New(
	CodeForbidden,
	"auth",
	"Insufficient permissions",
	http.StatusForbidden,
)

// ErrInvalidUserRole - the operation is not available for the actor's role
// (e.g. an employer calling applyToJob).
var ErrInvalidUserRole = New(
	CodeForbidden,
	"auth",
	"Operation not allowed for this user role",
	http.StatusForbidden,
)

// --- Accounts ---

var ErrEmailAlreadyExists = New(
	CodeAlreadyExists,
	"auth",
	"Email already in use",
	http.StatusConflict,
)

var ErrInvalidCredentials = New(
	CodeInvalidCredentials,
	"auth",
	"Invalid email or password",
	http.StatusUnauthorized,
)

var ErrInvalidToken = New(
	CodeInvalidToken,
	"auth",
	"Invalid or expired token",
	http.StatusUnauthorized,
)

// --- Applications ---

// ErrResumeRequired - a jobseeker must have a resume on file before
// applying. Distinct code so the client can prompt an upload.
var ErrResumeRequired = New(
	CodeResumeRequired,
	"application",
	"You must upload a resume before applying to a job",
	http.StatusBadRequest,
)

// ErrAlreadyApplied - at most one application per (job, applicant) pair.
var ErrAlreadyApplied = New(
	CodeAlreadyExists,
	"application",
	"Already applied to this job",
	http.StatusBadRequest,
)

// ErrInvalidApplicationStatus - status update outside the recognized
// enumeration.
var ErrInvalidApplicationStatus = New(
	CodeInvalidStatus,
	"application",
	"Unrecognized application status",
	http.StatusBadRequest,
)

// --- Jobs ---

var ErrJobClosed = New(
	CodeInvalidOperation,
	"job",
	"This job is no longer accepting applications",
	http.StatusBadRequest,
)

// --- Saved jobs ---

var ErrAlreadySaved = New(
	CodeAlreadyExists,
	"saved_job",
	"Job already saved",
	http.StatusBadRequest,
)

// --- Media ---

var ErrResumeNotFound = New(
	CodeNotFound,
	"media",
	"Resume not found",
	http.StatusNotFound,
)
