package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCerealFromMapRequiredFields(t *testing.T) {
	tests := []struct {
		name    string
		input   map[string]any
		wantErr error
	}{
		{
			name:  "all required present",
			input: map[string]any{"name": "Bran", "mfr": "K", "type": "C"},
		},
		{
			name:    "missing name",
			input:   map[string]any{"mfr": "K", "type": "C"},
			wantErr: ErrMissingField,
		},
		{
			name:    "missing mfr",
			input:   map[string]any{"name": "Bran", "type": "C"},
			wantErr: ErrMissingField,
		},
		{
			name:    "missing type",
			input:   map[string]any{"name": "Bran", "mfr": "K"},
			wantErr: ErrMissingField,
		},
		{
			name:    "empty name rejected",
			input:   map[string]any{"name": "  ", "mfr": "K", "type": "C"},
			wantErr: ErrMissingField,
		},
		{
			name:    "empty map",
			input:   map[string]any{},
			wantErr: ErrMissingField,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := CerealFromMap(tt.input)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, c)
			} else {
				assert.NoError(t, err)
				require.NotNil(t, c)
			}
		})
	}
}

func TestCerealFromMapDefaults(t *testing.T) {
	c, err := CerealFromMap(map[string]any{"name": "Bran", "mfr": "K", "type": "C"})
	require.NoError(t, err)

	assert.Zero(t, c.ID)
	assert.Equal(t, 0, c.Calories)
	assert.Equal(t, 0, c.Protein)
	assert.Equal(t, 0, c.Fat)
	assert.Equal(t, 0, c.Sodium)
	assert.Equal(t, 0, c.Sugars)
	assert.Equal(t, 0, c.Potass)
	assert.Equal(t, 0, c.Vitamins)
	assert.Equal(t, 0, c.Shelf)
	assert.Equal(t, 0.0, c.Fiber)
	assert.Equal(t, 0.0, c.Carbo)
	assert.Equal(t, 0.0, c.Weight)
	assert.Equal(t, 0.0, c.Cups)
	assert.Equal(t, 0.0, c.Rating)
}

func TestCerealFromMapCoercion(t *testing.T) {
	tests := []struct {
		name  string
		input map[string]any
		check func(t *testing.T, c *Cereal)
	}{
		{
			name: "JSON numbers decode as float64",
			input: map[string]any{
				"name": "Bran", "mfr": "K", "type": "C",
				"calories": float64(70), "fiber": float64(9.5),
			},
			check: func(t *testing.T, c *Cereal) {
				assert.Equal(t, 70, c.Calories)
				assert.Equal(t, 9.5, c.Fiber)
			},
		},
		{
			name: "CSV cells arrive as strings",
			input: map[string]any{
				"name": "Bran", "mfr": "K", "type": "C",
				"calories": "70", "rating": "68.402973", "shelf": "3",
			},
			check: func(t *testing.T, c *Cereal) {
				assert.Equal(t, 70, c.Calories)
				assert.Equal(t, 68.402973, c.Rating)
				assert.Equal(t, 3, c.Shelf)
			},
		},
		{
			name: "empty string cell defaults to zero",
			input: map[string]any{
				"name": "Bran", "mfr": "K", "type": "C",
				"potass": "",
			},
			check: func(t *testing.T, c *Cereal) {
				assert.Equal(t, 0, c.Potass)
			},
		},
		{
			name: "id from body is kept",
			input: map[string]any{
				"name": "Bran", "mfr": "K", "type": "C",
				"id": float64(7),
			},
			check: func(t *testing.T, c *Cereal) {
				assert.Equal(t, int64(7), c.ID)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := CerealFromMap(tt.input)
			require.NoError(t, err)
			tt.check(t, c)
		})
	}
}

func TestCerealFromMapBadNumbers(t *testing.T) {
	tests := []struct {
		name  string
		input map[string]any
	}{
		{
			name: "non-numeric string",
			input: map[string]any{
				"name": "Bran", "mfr": "K", "type": "C",
				"calories": "lots",
			},
		},
		{
			name: "non-numeric float field",
			input: map[string]any{
				"name": "Bran", "mfr": "K", "type": "C",
				"rating": "high",
			},
		},
		{
			name: "wrong value kind",
			input: map[string]any{
				"name": "Bran", "mfr": "K", "type": "C",
				"shelf": []any{1},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := CerealFromMap(tt.input)
			assert.ErrorIs(t, err, ErrBadNumber)
		})
	}
}

func TestCerealRoundTrip(t *testing.T) {
	input := map[string]any{
		"name": "All-Bran", "mfr": "K", "type": "C",
		"calories": "70", "protein": "4", "fat": "1", "sodium": "260",
		"fiber": "9", "carbo": "7", "sugars": "5", "potass": "320",
		"vitamins": "25", "shelf": "3", "weight": "1", "cups": "0.33",
		"rating": "59.425505",
	}

	c, err := CerealFromMap(input)
	require.NoError(t, err)

	m := c.ToMap(false)
	assert.NotContains(t, m, "id")
	assert.Equal(t, "All-Bran", m["name"])
	assert.Equal(t, "K", m["mfr"])
	assert.Equal(t, "C", m["type"])
	assert.Equal(t, 70, m["calories"])
	assert.Equal(t, 4, m["protein"])
	assert.Equal(t, 1, m["fat"])
	assert.Equal(t, 260, m["sodium"])
	assert.Equal(t, 9.0, m["fiber"])
	assert.Equal(t, 7.0, m["carbo"])
	assert.Equal(t, 5, m["sugars"])
	assert.Equal(t, 320, m["potass"])
	assert.Equal(t, 25, m["vitamins"])
	assert.Equal(t, 3, m["shelf"])
	assert.Equal(t, 1.0, m["weight"])
	assert.Equal(t, 0.33, m["cups"])
	assert.Equal(t, 59.425505, m["rating"])

	// Feeding the mapping back through the parser reproduces the record.
	again, err := CerealFromMap(m)
	require.NoError(t, err)
	assert.Equal(t, c, again)
}

func TestCerealToMapIncludesID(t *testing.T) {
	c := &Cereal{ID: 12, Name: "Cheerios", Mfr: "G", Type: "C"}

	withID := c.ToMap(true)
	assert.Equal(t, int64(12), withID["id"])

	withoutID := c.ToMap(false)
	assert.NotContains(t, withoutID, "id")
}
