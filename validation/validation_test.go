package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestText_Bounds(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"one char rejected", "a", true},
		{"two chars accepted", "ab", false},
		{"eighty chars accepted", strings.Repeat("x", 80), false},
		{"eighty-one chars rejected", strings.Repeat("x", 81), true},
		{"empty rejected", "", true},
		{"whitespace only rejected", "   ", true},
		{"cyrillic counted as runes", strings.Repeat("ж", 80), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Text("name", tt.input)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestText_Trims(t *testing.T) {
	v, err := Text("name", "  Landing page  ")
	require.NoError(t, err)
	assert.Equal(t, "Landing page", v)
}

func TestStatus(t *testing.T) {
	v, err := Status("Completed", ProjectStatuses)
	require.NoError(t, err)
	assert.Equal(t, "Completed", v)

	_, err = Status("Done", ProjectStatuses)
	assert.Error(t, err)

	// report enum is distinct from the project enum
	_, err = Status("Completed", ReportStatuses)
	assert.Error(t, err)

	v, err = Status(" On Time ", ReportStatuses)
	require.NoError(t, err)
	assert.Equal(t, "On Time", v)
}

func TestPercent(t *testing.T) {
	tests := []struct {
		input   string
		want    int
		wantErr bool
	}{
		{"0", 0, false},
		{"100", 100, false},
		{"42", 42, false},
		{"-1", 0, true},
		{"101", 0, true},
		{"50.5", 0, true},
		{"", 0, true},
		{"+5", 0, true},
		{"abc", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := Percent(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestBudget(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    int64
		wantErr bool
	}{
		{"plain number", "100000", 100000, false},
		{"zero rejected", "0", 0, true},
		{"over max rejected", "1000000000", 0, true},
		{"exactly max accepted", "999999999", 999999999, false},
		{"internal whitespace stripped", "12 345", 12345, false},
		{"negative rejected", "-5", 0, true},
		{"decimal rejected", "10.5", 0, true},
		{"empty rejected", "", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Budget(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestFormatBudget(t *testing.T) {
	assert.Equal(t, "100000 руб.", FormatBudget(100000, "руб."))
}

func TestEmail(t *testing.T) {
	tests := []struct {
		input   string
		wantErr bool
	}{
		{"a@b.co", false},
		{"ivanov@example.com", false},
		{"a@b", true},
		{"@b.co", true},
		{"a b@c.co", true},
		{"", false}, // optional when empty
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			_, err := Email(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestPhone(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"formatted 11 digits", "+7 (922) 005-10-33", false},
		{"bare 10 digits", "9220051033", false},
		{"fifteen digits", "123456789012345", false},
		{"five digits", "12345", true},
		{"sixteen digits", "1234567890123456", true},
		{"empty accepted", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Phone(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestComment(t *testing.T) {
	_, err := Comment(strings.Repeat("x", 300))
	assert.NoError(t, err)

	_, err = Comment(strings.Repeat("x", 301))
	assert.Error(t, err)

	v, err := Comment("")
	require.NoError(t, err)
	assert.Equal(t, "", v)
}

func TestRequired(t *testing.T) {
	_, err := Required("company", "")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "company")

	_, err = Required("company", "   ")
	assert.Error(t, err)

	v, err := Required("company", " Орозалиев ")
	require.NoError(t, err)
	assert.Equal(t, "Орозалиев", v)
}
