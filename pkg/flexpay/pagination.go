package flexpay

import (
	"strconv"

	"github.com/flexpay/flexpay-go/internal/types"
	"github.com/samber/lo"
)

type SortOrder = types.SortOrder

const (
	SortOrderAscending  = types.SortOrderAscending
	SortOrderDescending = types.SortOrderDescending
)

const (
	DefaultPageSize = types.DefaultPageSize
	MinPageSize     = types.MinPageSize
	MaxPageSize     = types.MaxPageSize
)

// ListParams selects a page of a list. The zero value requests the first
// DefaultPageSize items in ascending order.
type ListParams struct {
	// PageID is the token of the item after which the page starts
	PageID string
	// PageSize is clamped into [MinPageSize, MaxPageSize], zero means DefaultPageSize
	PageSize int
	// SortOrder defaults to ascending
	SortOrder SortOrder
}

// ConstrainPageSize clamps size into [MinPageSize, MaxPageSize]
func ConstrainPageSize(size int) int {
	return types.ConstrainPageSize(size)
}

func (p ListParams) query() map[string]*string {
	size := p.PageSize
	if size == 0 {
		size = DefaultPageSize
	}
	order := p.SortOrder
	if order == "" {
		order = SortOrderAscending
	}

	return map[string]*string{
		"order":      lo.ToPtr(string(order)),
		"count":      lo.ToPtr(strconv.Itoa(ConstrainPageSize(size))),
		"sinceToken": types.ToNillableString(p.PageID),
	}
}
