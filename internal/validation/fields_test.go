package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCoerce(t *testing.T) {
	tests := []struct {
		name    string
		fields  Fields
		numeric []string
		boolean []string
		want    Fields
	}{
		{
			name:    "string numbers and bools parse",
			fields:  Fields{"price": "120.50", "category": "2", "isUsed": "true"},
			numeric: []string{"price", "category"},
			boolean: []string{"isUsed"},
			want:    Fields{"price": 120.50, "category": 2.0, "isUsed": true},
		},
		{
			name:    "failed parse leaves the original value",
			fields:  Fields{"price": "cheap", "isUsed": "yes"},
			numeric: []string{"price"},
			boolean: []string{"isUsed"},
			want:    Fields{"price": "cheap", "isUsed": "yes"},
		},
		{
			name:    "already-typed values pass through",
			fields:  Fields{"price": 99.0, "isUsed": false},
			numeric: []string{"price"},
			boolean: []string{"isUsed"},
			want:    Fields{"price": 99.0, "isUsed": false},
		},
		{
			name:    "only named fields are touched",
			fields:  Fields{"title": "123", "price": "123"},
			numeric: []string{"price"},
			want:    Fields{"title": "123", "price": 123.0},
		},
		{
			name:    "bool parsing is strict true/false",
			fields:  Fields{"isUsed": "TRUE"},
			boolean: []string{"isUsed"},
			want:    Fields{"isUsed": "TRUE"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Coerce(tt.fields, tt.numeric, tt.boolean)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCoerceDoesNotMutateInput(t *testing.T) {
	fields := Fields{"price": "10"}
	Coerce(fields, []string{"price"}, nil)
	assert.Equal(t, "10", fields["price"])
}
