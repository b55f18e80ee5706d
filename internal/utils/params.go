package utils

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
)

var errInvalidID = errors.New("invalid id parameter")

// ParseIDParam reads a positive numeric path parameter. Handlers map
// the failure to a resource-specific message.
func ParseIDParam(ctx *gin.Context, name string) (uint, error) {
	raw := ctx.Param(name)

	if raw == "" {
		return 0, errInvalidID
	}

	id, err := strconv.ParseUint(raw, 10, 32)

	if err != nil || id == 0 {
		return 0, errInvalidID
	}

	return uint(id), nil
}
