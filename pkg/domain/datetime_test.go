package domain

import "testing"

func TestParseDatetime(t *testing.T) {
	tests := []struct {
		input string
		want  string // RFC3339 UTC
	}{
		{"2016-06-21T13:08:27Z", "2016-06-21T13:08:27Z"},
		{"2016-06-21 13:08:27Z", "2016-06-21T13:08:27Z"},
		{"2016-06-21T13:08:27z", "2016-06-21T13:08:27Z"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseDatetime(tt.input)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got.String() != tt.want {
				t.Errorf("ParseDatetime(%q) = %q, want %q", tt.input, got.String(), tt.want)
			}
		})
	}
}

func TestParseDatetimeUnix(t *testing.T) {
	got, err := ParseDatetime("1527155786")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.T.Unix() != 1527155786 {
		t.Errorf("expected unix seconds 1527155786, got %d", got.T.Unix())
	}
}

func TestDatetimeAdd(t *testing.T) {
	base, _ := ParseDatetime("2016-06-21T13:08:27Z")
	delta, _ := ParseTimedelta("3600")
	got := base.Add(delta)
	want := "2016-06-21T14:08:27Z"
	if got.String() != want {
		t.Errorf("got %q, want %q", got.String(), want)
	}
}
