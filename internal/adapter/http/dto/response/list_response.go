package response

import "clicknova_admin/internal/domain/listing"

// ListResponse is the envelope of every collection page. Data is the full
// page, never a delta; clients swap their local list for it wholesale.
type ListResponse[T any] struct {
	Data []T          `json:"data"`
	Meta listing.Meta `json:"meta"`
}

func NewListResponse[T any](data []T, meta listing.Meta) ListResponse[T] {
	if data == nil {
		data = []T{}
	}
	return ListResponse[T]{Data: data, Meta: meta}
}
