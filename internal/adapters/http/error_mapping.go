package httpadapter

import (
	"net/http"

	"github.com/kirillkom/doc-catalog/internal/core/domain"
)

func mapErrorToHTTPStatus(err error) int {
	switch {
	case domain.IsKind(err, domain.ErrInvalidInput):
		return http.StatusBadRequest
	case domain.IsKind(err, domain.ErrStorageGateway):
		return http.StatusBadGateway
	case domain.IsKind(err, domain.ErrExtraction):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}
