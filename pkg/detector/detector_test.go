package detector

import "testing"

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		text string
		want Profile
	}{
		{"empty text", "", ProfileGeneric},
		{"no markers", "Quarterly engineering report with several sections.", ProfileGeneric},
		{"application form", "Please fill out this Application Form before the deadline.", ProfileForm},
		{"government servant", "Name of the GOVERNMENT SERVANT and designation.", ProfileForm},
		{"pathway options", "Choose from the PATHWAY OPTIONS below.", ProfilePathwayFlyer},
		{"stem pathways", "Explore STEM Pathways at our school.", ProfilePathwayFlyer},
		{"rsvp", "Party! Please RSVP by Friday.", ProfileRSVPInvite},
		{"hope to see you", "We hope to see you there!", ProfileRSVPInvite},
		{"foundation level", "Tester Foundation Level syllabus overview.", ProfileFoundation},
		{"rfp", "This RFP describes the requirements.", ProfileRFP},
		{"digital library", "Plan for the Ontario Digital Library.", ProfileRFP},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(tt.text); got != tt.want {
				t.Errorf("Classify(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestClassifyPrecedence(t *testing.T) {
	tests := []struct {
		name string
		text string
		want Profile
	}{
		// Form beats everything else.
		{"form over rfp", "application form for the RFP process", ProfileForm},
		// Flyer and invite beat the keyword-table profiles.
		{"pathway over foundation", "pathway options for foundation level study", ProfilePathwayFlyer},
		{"rsvp over rfp", "rsvp for the digital library gala", ProfileRSVPInvite},
		// Foundation beats RFP when both markers appear.
		{"foundation over rfp", "foundation level extension to the rfp", ProfileFoundation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(tt.text); got != tt.want {
				t.Errorf("Classify(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestHeadingKeywords(t *testing.T) {
	if got := len(ProfileFoundation.HeadingKeywords()); got != 15 {
		t.Errorf("foundation keyword table has %d entries, want 15", got)
	}
	if got := len(ProfileRFP.HeadingKeywords()); got != 7 {
		t.Errorf("rfp keyword table has %d entries, want 7", got)
	}
	if got := ProfileGeneric.HeadingKeywords(); got != nil {
		t.Errorf("generic profile keyword table = %v, want nil", got)
	}
	if got := ProfileForm.HeadingKeywords(); got != nil {
		t.Errorf("form profile keyword table = %v, want nil", got)
	}
}

func TestProfileString(t *testing.T) {
	tests := []struct {
		profile Profile
		want    string
	}{
		{ProfileGeneric, "generic"},
		{ProfileForm, "form"},
		{ProfilePathwayFlyer, "pathway-flyer"},
		{ProfileRSVPInvite, "rsvp-invite"},
		{ProfileFoundation, "foundation"},
		{ProfileRFP, "rfp"},
		{Profile(99), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.profile.String(); got != tt.want {
			t.Errorf("Profile(%d).String() = %q, want %q", tt.profile, got, tt.want)
		}
	}
}
