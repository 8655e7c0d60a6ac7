package extract

import "testing"

func TestMatchWeekdayHeader(t *testing.T) {
	tests := []struct {
		name     string
		line     string
		expected string
		ok       bool
	}{
		{
			name:     "Abbreviated weekday and month",
			line:     "Mon 3rd Feb deliveries",
			expected: "03/02/",
			ok:       true,
		},
		{
			name:     "Full weekday and month",
			line:     "Wednesday 5 March",
			expected: "05/03/",
			ok:       true,
		},
		{
			name:     "Weekday with time on same line",
			line:     "Wed 5th Mar 09:00",
			expected: "05/03/",
			ok:       true,
		},
		{
			name:     "Prose between weekday and date",
			line:     "Friday call sheet for 21st June",
			expected: "21/06/",
			ok:       true,
		},
		{
			name: "No weekday",
			line: "3rd Feb deliveries",
			ok:   false,
		},
		{
			name: "Day out of range",
			line: "Mon 45 March",
			ok:   false,
		},
		{
			name: "Unrecognized month token",
			line: "Mon 3rd Febtember",
			ok:   false,
		},
		{
			name: "Plain prose",
			line: "please confirm the crew list",
			ok:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := matchWeekdayHeader(tt.line)
			if ok != tt.ok {
				t.Fatalf("matchWeekdayHeader(%q) ok = %v, want %v", tt.line, ok, tt.ok)
			}
			if got != tt.expected {
				t.Errorf("matchWeekdayHeader(%q) = %q, want %q", tt.line, got, tt.expected)
			}
		})
	}
}

func TestMatchBareDate(t *testing.T) {
	tests := []struct {
		name     string
		line     string
		expected string
		ok       bool
	}{
		{
			name:     "Ordinal day",
			line:     "crew on site 3rd Feb",
			expected: "03/02/",
			ok:       true,
		},
		{
			name:     "Plain day with of",
			line:     "load out on the 21 of June",
			expected: "21/06/",
			ok:       true,
		},
		{
			name:     "Full month name",
			line:     "9th September pickup",
			expected: "09/09/",
			ok:       true,
		},
		{
			name: "Day out of range",
			line: "32 March",
			ok:   false,
		},
		{
			name: "Month token embedded in word",
			line: "15 Smarch",
			ok:   false,
		},
		{
			name: "No date",
			line: "two vans needed",
			ok:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := matchBareDate(tt.line)
			if ok != tt.ok {
				t.Fatalf("matchBareDate(%q) ok = %v, want %v", tt.line, ok, tt.ok)
			}
			if got != tt.expected {
				t.Errorf("matchBareDate(%q) = %q, want %q", tt.line, got, tt.expected)
			}
		})
	}
}

func TestFindTime(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected string
		ok       bool
	}{
		{name: "24-hour colon", text: "14:30", expected: "14:30", ok: true},
		{name: "24-hour dot", text: "9.05am", expected: "09:05", ok: true},
		{name: "24-hour space", text: "briefing at 7 45 sharp", expected: "07:45", ok: true},
		{name: "12-hour pm", text: "2pm", expected: "14:00", ok: true},
		{name: "12-hour midnight", text: "12am", expected: "00:00", ok: true},
		{name: "12-hour noon", text: "12pm", expected: "12:00", ok: true},
		{name: "12-hour without minutes", text: "arrive by 6 pm", expected: "18:00", ok: true},
		{name: "24-hour form wins over trailing pm", text: "6:15 pm", expected: "06:15", ok: true},
		{name: "Hour out of range", text: "25:10", ok: false},
		{name: "No time", text: "Warehouse 1", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := findTime(tt.text)
			if ok != tt.ok {
				t.Fatalf("findTime(%q) ok = %v, want %v", tt.text, ok, tt.ok)
			}
			if got != tt.expected {
				t.Errorf("findTime(%q) = %q, want %q", tt.text, got, tt.expected)
			}
		})
	}
}

func TestIsIgnorable(t *testing.T) {
	tests := []struct {
		name      string
		line      string
		ignorable bool
	}{
		{name: "Subject header", line: "Subject: Move schedule", ignorable: true},
		{name: "Cc header", line: "Cc: ops@example.com", ignorable: true},
		{name: "Forwarded marker", line: "---------- Forwarded message ---------", ignorable: true},
		{name: "Reply separator", line: "-----", ignorable: true},
		{name: "Line with URL", line: "map here https://maps.example.com/x", ignorable: true},
		{name: "From line with address", line: "From: ops@example.com", ignorable: true},
		{name: "From line with place", line: "From: Warehouse 1", ignorable: false},
		{name: "Section boundary is not ignorable", line: "--", ignorable: false},
		{name: "Plain content", line: "2 vans to Stage 3", ignorable: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := isIgnorable(tt.line); got != tt.ignorable {
				t.Errorf("isIgnorable(%q) = %v, want %v", tt.line, got, tt.ignorable)
			}
		})
	}
}

func TestIsBoundary(t *testing.T) {
	tests := []struct {
		line     string
		boundary bool
	}{
		{"--", true},
		{"_____", true},
		{"________________", true},
		{"----", false},
		{"__", false},
		{"From: Depot", false},
	}

	for _, tt := range tests {
		if got := isBoundary(tt.line); got != tt.boundary {
			t.Errorf("isBoundary(%q) = %v, want %v", tt.line, got, tt.boundary)
		}
	}
}

func TestMatchRoutePhrase(t *testing.T) {
	tests := []struct {
		name        string
		line        string
		origin      string
		destination string
		ok          bool
	}{
		{
			name:        "Moved from-to with at terminator",
			line:        "The team moved from Depot A to Site B at 9am",
			origin:      "Depot A",
			destination: "Site B",
			ok:          true,
		},
		{
			name:        "Plain from-to at end of line",
			line:        "running from The Yard to Stage 4",
			origin:      "The Yard",
			destination: "Stage 4",
			ok:          true,
		},
		{
			name:        "Punctuation terminator",
			line:        "kit goes from Unit Base to Studio 2, then back",
			origin:      "Unit Base",
			destination: "Studio 2",
			ok:          true,
		},
		{
			name: "No route phrase",
			line: "please confirm numbers for tomorrow",
			ok:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			origin, destination, ok := matchRoutePhrase(tt.line)
			if ok != tt.ok {
				t.Fatalf("matchRoutePhrase(%q) ok = %v, want %v", tt.line, ok, tt.ok)
			}
			if origin != tt.origin || destination != tt.destination {
				t.Errorf("matchRoutePhrase(%q) = (%q, %q), want (%q, %q)",
					tt.line, origin, destination, tt.origin, tt.destination)
			}
		})
	}
}

func TestMatchAddressField(t *testing.T) {
	tests := []struct {
		name     string
		line     string
		timeText string
		place    string
		ok       bool
	}{
		{
			name:     "Collection with embedded time",
			line:     "Collection: 09:30 - Unit Base - Top Field",
			timeText: "09:30",
			place:    "Unit Base - Top Field",
			ok:       true,
		},
		{
			name:  "Collection address without time",
			line:  "Collection address: The Old Granary",
			place: "The Old Granary",
			ok:    true,
		},
		{
			name:  "Collection without colon",
			line:  "Collection Stage Door",
			place: "Stage Door",
			ok:    true,
		},
		{
			name: "Unrelated word sharing the prefix",
			line: "Collections are handled weekly",
			ok:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			timeText, place, ok := matchAddressField(collectionRe, tt.line)
			if ok != tt.ok {
				t.Fatalf("matchAddressField(%q) ok = %v, want %v", tt.line, ok, tt.ok)
			}
			if timeText != tt.timeText || place != tt.place {
				t.Errorf("matchAddressField(%q) = (%q, %q), want (%q, %q)",
					tt.line, timeText, place, tt.timeText, tt.place)
			}
		})
	}
}
