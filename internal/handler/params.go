package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	appErrors "github.com/deepaksx/rawabi-workshop-app/pkg/errors"
)

func pathID(c *gin.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, appErrors.Clone(appErrors.ErrValidation, "invalid "+name)
	}
	return id, nil
}

func queryInt64(c *gin.Context, name string) int64 {
	value, err := strconv.ParseInt(c.Query(name), 10, 64)
	if err != nil {
		return 0
	}
	return value
}
