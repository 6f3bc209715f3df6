package http

import (
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// --- Response Types ---

// ErrorResponse is the standard error format for all API errors: a single
// human-readable detail message.
type ErrorResponse struct {
	Detail string `json:"detail"`
}

// MessageResponse acknowledges an operation with no record to return.
type MessageResponse struct {
	Mensaje string `json:"mensaje"`
}

// --- Error Response Helpers ---

// respondBadRequest sends a 400 Bad Request response.
func respondBadRequest(c *gin.Context, detail string) {
	c.JSON(http.StatusBadRequest, ErrorResponse{Detail: detail})
}

// respondNotFound sends a 404 Not Found response.
func respondNotFound(c *gin.Context, detail string) {
	c.JSON(http.StatusNotFound, ErrorResponse{Detail: detail})
}

// respondUnauthorized sends a 401 response with a bearer challenge.
func respondUnauthorized(c *gin.Context, detail string) {
	c.Header("WWW-Authenticate", "Bearer")
	c.JSON(http.StatusUnauthorized, ErrorResponse{Detail: detail})
}

// respondInternalError logs the error and sends a generic 500 response.
// The actual error is logged but not exposed to the client.
func respondInternalError(c *gin.Context, err error, context string) {
	log.Printf("Internal error (%s): %v", context, err)
	c.JSON(http.StatusInternalServerError, ErrorResponse{Detail: "Error interno del servidor"})
}

// --- Success Response Helpers ---

// respondCreated sends a 201 Created response with data.
func respondCreated(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, data)
}

// respondMessage sends a 200 OK acknowledgement.
func respondMessage(c *gin.Context, mensaje string) {
	c.JSON(http.StatusOK, MessageResponse{Mensaje: mensaje})
}

// --- Parameter Parsing ---

// parseIDParam extracts and validates an unsigned integer ID from URL
// parameters. Responds with 400 and returns false on garbage input.
func parseIDParam(c *gin.Context, paramName string) (uint, bool) {
	idStr := c.Param(paramName)
	id, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil {
		respondBadRequest(c, "ID inválido: "+idStr)
		return 0, false
	}
	return uint(id), true
}
