package hr

import (
	"testing"

	"github.com/BerryBytes/hrctl/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeList(t *testing.T) {
	tests := []struct {
		name          string
		body          string
		expectedIDs   []int64
		expectedNext  string
		expectedError bool
	}{
		{name: "bare array", body: `[{"id":1},{"id":2}]`, expectedIDs: []int64{1, 2}},
		{
			name:         "page with next",
			body:         `{"count":3,"next":"http://localhost:8000/api/employees/?page=2","previous":null,"results":[{"id":1}]}`,
			expectedIDs:  []int64{1},
			expectedNext: "http://localhost:8000/api/employees/?page=2",
		},
		{name: "last page", body: `{"count":1,"next":null,"previous":null,"results":[{"id":9}]}`, expectedIDs: []int64{9}},
		{name: "empty body", body: ``},
		{name: "garbage", body: `{"results": 5}`, expectedError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			items, next, err := decodeList[models.Department]([]byte(tt.body))
			if tt.expectedError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)

			var ids []int64
			for _, it := range items {
				ids = append(ids, it.ID)
			}
			assert.Equal(t, tt.expectedIDs, ids)
			assert.Equal(t, tt.expectedNext, next)
		})
	}
}
