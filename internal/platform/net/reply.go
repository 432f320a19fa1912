package net

import (
	"net/http"

	perr "timewarp/internal/platform/errors"
)

// Detail is the wire error body. The archive API returns resource payloads
// bare, so errors are the only shaped body: a single human-readable message
type Detail struct {
	Detail string `json:"detail"`
}

// OK builds a 200 reply
func OK(data any) (int, any) { return http.StatusOK, data }

// Created builds a 201 reply
func Created(data any) (int, any) { return http.StatusCreated, data }

// Error maps a project error to (status, Detail)
func Error(err error) (int, Detail) {
	if err == nil {
		return http.StatusOK, Detail{}
	}
	return perr.HTTPStatus(err), Detail{Detail: perr.WireFrom(err).Message}
}
