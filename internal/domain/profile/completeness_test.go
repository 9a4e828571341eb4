package profile

import "testing"

func TestCompletionScore(t *testing.T) {
	tests := []struct {
		name    string
		profile *Profile
		want    int
	}{
		{
			name:    "nil profile",
			profile: nil,
			want:    0,
		},
		{
			name:    "all tracked fields blank",
			profile: &Profile{Email: "a@b.com"},
			want:    0,
		},
		{
			name: "whitespace only counts as blank",
			profile: &Profile{
				FullName: "   ",
				Phone:    "\t",
			},
			want: 0,
		},
		{
			name: "all six filled",
			profile: &Profile{
				FullName:     "Jordan Reyes",
				BusinessName: "Reyes Moving Co",
				Phone:        "+15551230000",
				City:         "Austin",
				State:        "TX",
				LogoURL:      "https://cdn.example.com/logo.png",
			},
			want: 100,
		},
		{
			name: "three of six filled",
			profile: &Profile{
				FullName: "Jordan Reyes",
				City:     "Austin",
				State:    "TX",
			},
			want: 50,
		},
		{
			name: "one of six rounds half up",
			profile: &Profile{
				City: "Austin",
			},
			want: 17,
		},
		{
			name: "five of six",
			profile: &Profile{
				FullName:     "Jordan Reyes",
				BusinessName: "Reyes Moving Co",
				Phone:        "+15551230000",
				City:         "Austin",
				State:        "TX",
			},
			want: 83,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CompletionScore(tt.profile); got != tt.want {
				t.Errorf("CompletionScore() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestCompletionScoreIgnoresUntrackedFields(t *testing.T) {
	price := 99.0
	p := &Profile{
		Email:         "a@b.com",
		Plan:          PlanPro,
		Status:        StatusActive,
		StartingPrice: &price,
	}
	if got := CompletionScore(p); got != 0 {
		t.Errorf("CompletionScore() = %d, want 0 for profile with only untracked fields", got)
	}
}
