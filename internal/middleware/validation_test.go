package middleware

import "testing"

func TestValidateUserID(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    int64
		wantErr bool
	}{
		{"valid", "42", 42, false},
		{"trims whitespace", " 7 ", 7, false},
		{"empty", "", 0, true},
		{"zero", "0", 0, true},
		{"negative", "-3", 0, true},
		{"non-numeric", "abc", 0, true},
		{"sql injection", "1; DROP--", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, errMsg := ValidateUserID(tt.input)
			if tt.wantErr && errMsg == "" {
				t.Errorf("expected error, got none")
			}
			if !tt.wantErr && errMsg != "" {
				t.Errorf("unexpected error: %s", errMsg)
			}
			if got != tt.want {
				t.Errorf("got %d, want %d", got, tt.want)
			}
		})
	}
}

func TestValidateContentType(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{"job tag", "job", "job", false},
		{"opportunity tag", "opportunity", "opportunity", false},
		{"uppercase kind", "NEWS", "NEWS", false},
		{"with underscore", "news_item", "news_item", false},
		{"trims whitespace", "  job  ", "job", false},
		{"empty", "", "", true},
		{"too long", "abcdefghijklmnopqrstuvwxyzabcdefg", "", true},
		{"leading digit", "1job", "", true},
		{"invalid chars", "job posting", "", true},
		{"sql injection", "job'; DROP--", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, errMsg := ValidateContentType(tt.input)
			if tt.wantErr && errMsg == "" {
				t.Errorf("expected error, got none")
			}
			if !tt.wantErr && errMsg != "" {
				t.Errorf("unexpected error: %s", errMsg)
			}
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestValidateContentID(t *testing.T) {
	if errMsg := ValidateContentID(1); errMsg != "" {
		t.Errorf("unexpected error: %s", errMsg)
	}
	if errMsg := ValidateContentID(0); errMsg == "" {
		t.Error("expected error for zero id")
	}
	if errMsg := ValidateContentID(-5); errMsg == "" {
		t.Error("expected error for negative id")
	}
}

func TestValidateAction(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{"like", "like", "like", false},
		{"uppercase normalized", "LIKE", "like", false},
		{"trims whitespace", " repost ", "repost", false},
		{"empty", "", "", true},
		{"too long", "averyverylongaction", "", true},
		{"digits", "like2", "", true},
		{"invalid chars", "like!", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, errMsg := ValidateAction(tt.input)
			if tt.wantErr && errMsg == "" {
				t.Errorf("expected error, got none")
			}
			if !tt.wantErr && errMsg != "" {
				t.Errorf("unexpected error: %s", errMsg)
			}
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestValidateCommentText(t *testing.T) {
	long := make([]byte, MaxCommentLen+1)
	for i := range long {
		long[i] = 'a'
	}

	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{"valid", "great opportunity!", "great opportunity!", false},
		{"trims whitespace", "  hi  ", "hi", false},
		{"empty", "", "", true},
		{"whitespace only", "   ", "", true},
		{"too long", string(long), "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, errMsg := ValidateCommentText(tt.input)
			if tt.wantErr && errMsg == "" {
				t.Errorf("expected error, got none")
			}
			if !tt.wantErr && errMsg != "" {
				t.Errorf("unexpected error: %s", errMsg)
			}
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestValidateCoordinates(t *testing.T) {
	f := func(v float64) *float64 { return &v }

	tests := []struct {
		name    string
		lat     *float64
		lon     *float64
		wantErr bool
	}{
		{"both absent", nil, nil, false},
		{"valid pair", f(27.7), f(85.3), false},
		{"lat only", f(27.7), nil, true},
		{"lon only", nil, f(85.3), true},
		{"lat out of range", f(91), f(0), true},
		{"lon out of range", f(0), f(181), true},
		{"boundary values", f(-90), f(180), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errMsg := ValidateCoordinates(tt.lat, tt.lon)
			if tt.wantErr && errMsg == "" {
				t.Errorf("expected error, got none")
			}
			if !tt.wantErr && errMsg != "" {
				t.Errorf("unexpected error: %s", errMsg)
			}
		})
	}
}
