package form

import "testing"

func TestCheck_Label(t *testing.T) {
	tests := []struct {
		check Check
		want  string
	}{
		{CheckUnset, ""},
		{CheckYes, "あり"},
		{CheckNo, "なし"},
	}
	for _, tc := range tests {
		if got := tc.check.Label(); got != tc.want {
			t.Errorf("%v.Label() = %q, want %q", tc.check, got, tc.want)
		}
	}
}

func TestParseCheck_Valid(t *testing.T) {
	tests := []struct {
		input string
		want  Check
	}{
		{"", CheckUnset},
		{"yes", CheckYes},
		{"YES", CheckYes},
		{"1", CheckYes},
		{"あり", CheckYes},
		{"no", CheckNo},
		{" no ", CheckNo},
		{"0", CheckNo},
		{"なし", CheckNo},
	}
	for _, tc := range tests {
		got, err := ParseCheck(tc.input)
		if err != nil {
			t.Errorf("ParseCheck(%q) returned error: %v", tc.input, err)
		}
		if got != tc.want {
			t.Errorf("ParseCheck(%q) = %v, want %v", tc.input, got, tc.want)
		}
	}
}

func TestParseCheck_Invalid(t *testing.T) {
	if _, err := ParseCheck("maybe"); err == nil {
		t.Error("ParseCheck(maybe) should return error")
	}
}

func TestCheck_TextRoundTrip(t *testing.T) {
	for _, c := range []Check{CheckUnset, CheckYes, CheckNo} {
		text, err := c.MarshalText()
		if err != nil {
			t.Fatalf("MarshalText failed: %v", err)
		}
		var got Check
		if err := got.UnmarshalText(text); err != nil {
			t.Fatalf("UnmarshalText(%q) failed: %v", text, err)
		}
		if got != c {
			t.Errorf("round trip of %v gave %v", c, got)
		}
	}
}

func TestTransition(t *testing.T) {
	tests := []struct {
		name      string
		from      ConsultationField
		to        Check
		wantValue string
	}{
		{"unset to yes keeps", ConsultationField{Value: "増量"}, CheckYes, "増量"},
		{"yes to no clears", ConsultationField{Value: "増量", Check: CheckYes}, CheckNo, ""},
		{"no to yes stays empty", ConsultationField{Check: CheckNo}, CheckYes, ""},
		{"yes to unset keeps", ConsultationField{Value: "減量", Check: CheckYes}, CheckUnset, "減量"},
		{"no to no clears", ConsultationField{Value: "x", Check: CheckNo}, CheckNo, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.from.transition(tt.to)
			if got.Check != tt.to {
				t.Errorf("Expected check %v, got %v", tt.to, got.Check)
			}
			if got.Value != tt.wantValue {
				t.Errorf("Expected value %q, got %q", tt.wantValue, got.Value)
			}
		})
	}
}
