package handler

import (
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"
)

// parsePagination reads limit/offset with their defaults. Values must be
// integers; anything else about them is left to the database.
func parsePagination(c *gin.Context) (limit, offset int, err error) {
	limit, err = strconv.Atoi(c.DefaultQuery("limit", "20"))
	if err != nil {
		return 0, 0, fmt.Errorf("invalid limit parameter")
	}
	offset, err = strconv.Atoi(c.DefaultQuery("offset", "0"))
	if err != nil {
		return 0, 0, fmt.Errorf("invalid offset parameter")
	}
	return limit, offset, nil
}
