package utils_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/service-directory/internal/pkg/utils"
)

func TestPaginate(t *testing.T) {
	tests := []struct {
		name        string
		total       int
		page        int
		limit       int
		totalPages  int
		hasNext     bool
		hasPrevious bool
	}{
		{"first of three pages", 47, 1, 20, 3, true, false},
		{"middle page", 47, 2, 20, 3, true, true},
		{"last page", 47, 3, 20, 3, false, true},
		{"exact multiple", 40, 2, 20, 2, false, true},
		{"single partial page", 5, 1, 20, 1, false, false},
		{"empty result", 0, 1, 20, 0, false, false},
		{"page beyond the end", 10, 5, 20, 1, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := utils.Paginate(tt.total, tt.page, tt.limit)
			assert.Equal(t, tt.total, p.Total)
			assert.Equal(t, tt.page, p.Page)
			assert.Equal(t, tt.limit, p.Limit)
			assert.Equal(t, tt.totalPages, p.TotalPages)
			assert.Equal(t, tt.hasNext, p.HasNext)
			assert.Equal(t, tt.hasPrevious, p.HasPrevious)
		})
	}
}

func TestOffset(t *testing.T) {
	assert.Equal(t, 0, utils.Offset(1, 20))
	assert.Equal(t, 20, utils.Offset(2, 20))
	assert.Equal(t, 90, utils.Offset(10, 10))
}
