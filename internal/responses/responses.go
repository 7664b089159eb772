package responses

import (
	"net/http"

	"github.com/AmirH031/SamanKhojo-sub003/internal/structs"
)

const (
	UnauthorizedCode = http.StatusUnauthorized
	ForbiddenCode    = http.StatusForbidden
)

var (
	Success      = structs.Response{Status: "OK"}
	BadRequest   = structs.Response{Status: "BAD_REQUEST", Description: "invalid request payload"}
	NotFound     = structs.Response{Status: "NOT_FOUND", Description: "resource not found"}
	InternalErr  = structs.Response{Status: "INTERNAL_ERROR", Description: "internal server error"}
	Unauthorized = structs.Response{Status: "UNAUTHORIZED", Description: "authentication required"}
	Forbidden    = structs.Response{Status: "FORBIDDEN", Description: "permission denied"}
)
