// Package respond renders the canonical response envelope used by every
// endpoint. Success and error paths share the same shape; they differ only in
// status code and the semantic content of message/data.
package respond

import "github.com/labstack/echo/v4"

// Meta is the pagination descriptor carried in every envelope.
type Meta struct {
	Page       int   `json:"page"`
	Size       int   `json:"size"`
	TotalData  int64 `json:"totalData"`
	TotalPages int   `json:"totalPages"`
}

// Body is the uniform payload: {message, data, meta}.
type Body struct {
	Message string `json:"message"`
	Data    any    `json:"data"`
	Meta    Meta   `json:"meta"`
}

// DefaultMeta returns the meta applied when a caller supplies none.
func DefaultMeta() Meta {
	return Meta{Page: 1, Size: 10, TotalData: 0, TotalPages: 0}
}

// JSON writes the envelope with the given status code. A nil meta falls back
// to DefaultMeta; a supplied meta is preserved verbatim.
func JSON(c echo.Context, statusCode int, message string, data any, meta *Meta) error {
	m := DefaultMeta()
	if meta != nil {
		m = *meta
	}
	return c.JSON(statusCode, Body{Message: message, Data: data, Meta: m})
}
