package handlers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/vetclinic/clinic-records/internal/httperr"
)

const dateLayout = "2006-01-02"

// parseIDParam reads a numeric path parameter and reports the failure to the
// client itself, so handlers can bail with a bare return.
func parseIDParam(c *gin.Context, name string) (uint, bool) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		httperr.BadRequest(c, "invalid_id", "Identifier must be a positive integer.")
		return 0, false
	}
	return uint(id), true
}

// parseIDQuery reads an optional numeric query parameter. Zero means absent.
func parseIDQuery(c *gin.Context, name string) (uint, bool) {
	raw := c.Query(name)
	if raw == "" {
		return 0, true
	}

	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_query_param", "Query parameter "+name+" must be numeric.")
		return 0, false
	}
	return uint(id), true
}

// parseDate parses an optional YYYY-MM-DD value.
func parseDate(raw string) (*time.Time, error) {
	if raw == "" {
		return nil, nil
	}
	t, err := time.Parse(dateLayout, raw)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
