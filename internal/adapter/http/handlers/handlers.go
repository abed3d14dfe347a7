// Package handlers contains the gin handlers for the admin API. Every list
// endpoint projects the collection through the shared search/filter/paginate
// pipeline and replies with a full-page envelope.
package handlers

import (
	"net/http"
	"strconv"

	"clicknova_admin/internal/domain/listing"
	"clicknova_admin/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidPayload = pkg.NewDomainErrorSimple("VALIDATION_ERROR", "Invalid request payload", http.StatusBadRequest)

// listQuery reads the shared list-view parameters. Every query param other
// than search/page/pageSize that matches an allowed filter key becomes an
// equality filter; "All" disables one.
func listQuery(c *gin.Context, filterKeys ...string) listing.Query {
	return listQuerySized(c, listing.DefaultPageSize, filterKeys...)
}

func listQuerySized(c *gin.Context, defaultPageSize int, filterKeys ...string) listing.Query {
	q := listing.Query{
		Search:   c.Query("search"),
		Page:     intQuery(c, "page", 1),
		PageSize: intQuery(c, "pageSize", defaultPageSize),
	}
	for _, key := range filterKeys {
		if v := c.Query(key); v != "" {
			if q.Filters == nil {
				q.Filters = make(map[string]string)
			}
			q.Filters[key] = v
		}
	}
	return q
}

func intQuery(c *gin.Context, key string, def int) int {
	v := c.Query(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 1 {
		return def
	}
	return n
}

func respondError(c *gin.Context, appErr *pkg.AppError) {
	if appErr.Err != nil {
		_ = c.Error(appErr)
	}
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}
