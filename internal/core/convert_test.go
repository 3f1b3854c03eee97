package core

import "testing"

// ----------------------------------------------------------------------------
// ToAmount Tests
// ----------------------------------------------------------------------------

func TestToAmount(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantValid bool
		want      float64
	}{
		// Valid: plain numbers
		{
			name:      "plain integer",
			input:     "1720",
			wantValid: true,
			want:      1720,
		},
		{
			name:      "plain decimal",
			input:     "13.54",
			wantValid: true,
			want:      13.54,
		},
		{
			name:      "zero",
			input:     "0",
			wantValid: true,
			want:      0,
		},

		// Valid: currency symbols
		{
			name:      "euro suffix",
			input:     "5€",
			wantValid: true,
			want:      5,
		},
		{
			name:      "euro with grouping comma",
			input:     "1,720€",
			wantValid: true,
			want:      1720,
		},
		{
			name:      "dollar with grouping and decimal",
			input:     "$1,234.56",
			wantValid: true,
			want:      1234.56,
		},
		{
			name:      "euro with space before symbol",
			input:     "12.30 €",
			wantValid: true,
			want:      12.3,
		},

		// Valid: French decimal comma
		{
			name:      "decimal comma two digits",
			input:     "1720,50",
			wantValid: true,
			want:      1720.5,
		},
		{
			name:      "decimal comma one digit",
			input:     "9,5€",
			wantValid: true,
			want:      9.5,
		},
		{
			name:      "repeated grouping commas",
			input:     "1,234,567",
			wantValid: true,
			want:      1234567,
		},

		// Valid: negative (range checks are the validator's job)
		{
			name:      "negative amount",
			input:     "-42.50",
			wantValid: true,
			want:      -42.5,
		},

		// Invalid
		{
			name:      "empty",
			input:     "",
			wantValid: false,
		},
		{
			name:      "whitespace only",
			input:     "   ",
			wantValid: false,
		},
		{
			name:      "words",
			input:     "gratuit",
			wantValid: false,
		},
		{
			name:      "double decimal point",
			input:     "12.34.56",
			wantValid: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ToAmount(tt.input)
			if got.Valid != tt.wantValid {
				t.Fatalf("ToAmount(%q).Valid = %v, want %v", tt.input, got.Valid, tt.wantValid)
			}
			if got.Valid && got.Float64 != tt.want {
				t.Errorf("ToAmount(%q) = %v, want %v", tt.input, got.Float64, tt.want)
			}
		})
	}
}

// ----------------------------------------------------------------------------
// ToDate Tests
// ----------------------------------------------------------------------------

func TestToDate(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantValid bool
		want      string
	}{
		{
			name:      "iso",
			input:     "2024-11-01",
			wantValid: true,
			want:      "2024-11-01",
		},
		{
			name:      "iso slashes",
			input:     "2024/11/01",
			wantValid: true,
			want:      "2024-11-01",
		},
		{
			name:      "french day first",
			input:     "01/11/2024",
			wantValid: true,
			want:      "2024-11-01",
		},
		{
			name:      "french day first single digits",
			input:     "3/2/2023",
			wantValid: true,
			want:      "2023-02-03",
		},
		{
			name:      "day first with dashes",
			input:     "01-11-2024",
			wantValid: true,
			want:      "2024-11-01",
		},
		{
			name:      "two digit year in the past",
			input:     "15/06/99",
			wantValid: true,
			want:      "1999-06-15",
		},
		{
			name:      "compact",
			input:     "20241101",
			wantValid: true,
			want:      "2024-11-01",
		},
		{
			name:      "surrounding whitespace",
			input:     "  2024-11-01  ",
			wantValid: true,
			want:      "2024-11-01",
		},
		{
			name:      "empty",
			input:     "",
			wantValid: false,
		},
		{
			name:      "nonsense",
			input:     "novembre",
			wantValid: false,
		},
		{
			name:      "month out of range",
			input:     "2024-13-01",
			wantValid: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ToDate(tt.input)
			if got.Valid != tt.wantValid {
				t.Fatalf("ToDate(%q).Valid = %v, want %v", tt.input, got.Valid, tt.wantValid)
			}
			if got.Valid && got.String != tt.want {
				t.Errorf("ToDate(%q) = %q, want %q", tt.input, got.String, tt.want)
			}
		})
	}
}

// ----------------------------------------------------------------------------
// ToText / ToQuantity Tests
// ----------------------------------------------------------------------------

func TestToText(t *testing.T) {
	if got := ToText("  Le Gourmet  "); !got.Valid || got.String != "Le Gourmet" {
		t.Errorf("ToText trimming: got %+v", got)
	}
	if got := ToText(`"Soupe"`); !got.Valid || got.String != "Soupe" {
		t.Errorf("ToText quote stripping: got %+v", got)
	}
	if got := ToText("   "); got.Valid {
		t.Errorf("ToText whitespace should be missing, got %+v", got)
	}
}

func TestToQuantity(t *testing.T) {
	if got := ToQuantity("112"); !got.Valid || got.Int64 != 112 {
		t.Errorf("ToQuantity(112) = %+v", got)
	}
	if got := ToQuantity("beaucoup"); got.Valid {
		t.Errorf("ToQuantity should reject words, got %+v", got)
	}
	if got := ToQuantity(""); got.Valid {
		t.Errorf("ToQuantity empty should be missing, got %+v", got)
	}
}

// ----------------------------------------------------------------------------
// Header Tests
// ----------------------------------------------------------------------------

func TestMakeHeaderIndex(t *testing.T) {
	idx := MakeHeaderIndex([]string{"Nom", " PRIX ", "adresse"})

	for key, want := range map[string]int{"nom": 0, "prix": 1, "adresse": 2} {
		if got, ok := idx[key]; !ok || got != want {
			t.Errorf("idx[%q] = %d, %v; want %d", key, got, ok, want)
		}
	}
}

func TestCellMissingColumn(t *testing.T) {
	idx := MakeHeaderIndex([]string{"nom"})
	if got := cell([]string{"Soupe"}, idx, "prix"); got != "" {
		t.Errorf("cell for absent column = %q, want empty", got)
	}
	// Short row: header says the column exists, the row does not reach it
	idx = MakeHeaderIndex([]string{"nom", "prix"})
	if got := cell([]string{"Soupe"}, idx, "prix"); got != "" {
		t.Errorf("cell for short row = %q, want empty", got)
	}
}
