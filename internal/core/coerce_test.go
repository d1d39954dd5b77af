package core

import (
	"errors"
	"testing"
)

func TestStripNonNumeric(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr error
	}{
		{in: "$90.68", want: "90.68"},
		{in: "5.26%", want: "5.26"},
		{in: "$1,234.50", want: "1234.50"},
		{in: " 100 ", want: "100"},
		{in: "€ 42", want: "42"},
		{in: "£42.00", want: "42.00"},
		{in: "(12.00)", want: "-12.00"},
		{in: ".5", want: ".5"},
		{in: "N/A", wantErr: ErrNoNumericContent},
		{in: "$", wantErr: ErrNoNumericContent},
		{in: "1.2.3", wantErr: ErrNoNumericContent},
		{in: "call for price", wantErr: ErrNoNumericContent},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := StripNonNumeric(tt.in)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("StripNonNumeric(%q) error = %v, want %v", tt.in, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("StripNonNumeric(%q) unexpected error: %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("StripNonNumeric(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseInteger(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "2", want: "2"},
		{in: "02", want: "2"},
		{in: " 10 ", want: "10"},
		{in: "-1", want: "-1"},
		{in: "2-3", wantErr: true},
		{in: "2.5", wantErr: true},
		{in: "two", wantErr: true},
		{in: "99999999999999999999", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseInteger(tt.in)
			if tt.wantErr {
				if !errors.Is(err, ErrNotInteger) {
					t.Fatalf("ParseInteger(%q) error = %v, want ErrNotInteger", tt.in, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseInteger(%q) unexpected error: %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ParseInteger(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestExtractMinEducation(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"High School Diploma", EducationHighSchool},
		{"GED", EducationHighSchool},
		{"Associate's Degree", EducationAssociates},
		{"Bachelor’s", EducationBachelors},
		{"BA/BS", EducationBachelors},
		{"Bachelors or Masters", EducationBachelors},
		{"MBA", EducationMasters},
		{"Master's degree", EducationMasters},
		{"MS in Computer Science", EducationMasters},
		{"MS degree", EducationMasters},
		{"BS or MS", EducationBachelors},
		{"Masters/MS", EducationMasters},
		{"MS Office Specialist certification", "MS Office Specialist certification"},
		{"Ph.D.", EducationPhD},
		{"Doctorate", EducationPhD},
		{"Professional Certification", "Professional Certification"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ExtractMinEducation(tt.in)
			if err != nil {
				t.Fatalf("ExtractMinEducation(%q) error = %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ExtractMinEducation(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestExtractHourUnitOfIssue(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"hour", UnitHour},
		{"Hour", UnitHour},
		{"HOURS", UnitHour},
		{"Hr", UnitHour},
		{"hrs.", UnitHour},
		{"Hourly", UnitHour},
		{"per  hour", UnitHour},
		{"Labor Hour", UnitHour},
		{"Task", "Task"},
		{"Sq Ft", "Sq Ft"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ExtractHourUnitOfIssue(tt.in)
			if err != nil {
				t.Fatalf("ExtractHourUnitOfIssue(%q) error = %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ExtractHourUnitOfIssue(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestCoercersAreDeterministic(t *testing.T) {
	inputs := []string{"$90.68", "2-3", "Bachelor's", "hr", "", "  "}
	for _, name := range CoercerNames() {
		c, ok := LookupCoercer(name)
		if !ok {
			t.Fatalf("LookupCoercer(%q) not found", name)
		}
		for _, in := range inputs {
			a, errA := c(in)
			b, errB := c(in)
			if a != b || (errA == nil) != (errB == nil) {
				t.Errorf("%s(%q) not deterministic: %q/%v then %q/%v", name, in, a, errA, b, errB)
			}
		}
	}
}

func TestLookupCoercer(t *testing.T) {
	want := []string{"extract_hour_unit_of_issue", "extract_min_education", "integer", "strip_non_numeric"}
	got := CoercerNames()
	if len(got) != len(want) {
		t.Fatalf("CoercerNames() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("CoercerNames()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
	if _, ok := LookupCoercer("shout"); ok {
		t.Error("LookupCoercer(shout) should not be found")
	}
}
