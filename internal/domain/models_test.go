package domain

import "testing"

func TestReportInputValidate(t *testing.T) {
	valid := ReportInput{
		Location:    LocationKampus,
		Perpetrator: PerpetratorLecturer,
		Description: IncidentInappropriateComments,
		Evidence:    EvidenceWitness,
		UserGoal:    GoalDocumentSafely,
	}
	if err := valid.Validate(); err != nil {
		t.Fatalf("valid input rejected: %v", err)
	}

	cases := []struct {
		name  string
		field string
		mod   func(in *ReportInput)
	}{
		{"location", "location", func(in *ReportInput) { in.Location = "somewhere else" }},
		{"perpetrator", "perpetrator", func(in *ReportInput) { in.Perpetrator = "friend" }},
		{"description", "description", func(in *ReportInput) { in.Description = "other" }},
		{"evidence", "evidence", func(in *ReportInput) { in.Evidence = "photos" }},
		{"user_goal", "user_goal", func(in *ReportInput) { in.UserGoal = "revenge" }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := valid
			tc.mod(&in)
			err := in.Validate()
			if err == nil {
				t.Fatal("expected validation error")
			}
			valErr, ok := err.(*ValidationError)
			if !ok {
				t.Fatalf("expected *ValidationError, got %T", err)
			}
			if valErr.Field != tc.field {
				t.Fatalf("expected field %q, got %q", tc.field, valErr.Field)
			}
		})
	}
}

func TestRoleValid(t *testing.T) {
	if !RoleUser.Valid() || !RoleAssistant.Valid() {
		t.Fatal("expected built-in roles to be valid")
	}
	if Role("system").Valid() {
		t.Fatal("unexpected role accepted")
	}
}

func TestReportInputRoundTrip(t *testing.T) {
	r := &Report{
		Location:    LocationOnline,
		Perpetrator: PerpetratorStranger,
		Description: IncidentDigitalHarassment,
		Evidence:    EvidenceMessages,
		UserGoal:    GoalExploreOptions,
	}
	in := r.Input()
	if in.Location != r.Location || in.Perpetrator != r.Perpetrator ||
		in.Description != r.Description || in.Evidence != r.Evidence ||
		in.UserGoal != r.UserGoal {
		t.Fatalf("Input() dropped fields: %+v", in)
	}
}
