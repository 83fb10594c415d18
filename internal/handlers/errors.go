package handlers

import (
	"errors"

	"github.com/lib/pq"
)

// PostgreSQL error codes the handlers translate into specific statuses.
const (
	pqUniqueViolation  = "23505"
	pqNotNullViolation = "23502"
	pqCheckViolation   = "23514"
)

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == pqUniqueViolation
}

// isSchemaViolation reports store-level field validation failures, which
// map to 422 on update endpoints.
func isSchemaViolation(err error) bool {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return false
	}
	return pqErr.Code == pqNotNullViolation || pqErr.Code == pqCheckViolation
}
