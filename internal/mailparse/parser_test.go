package mailparse

import "testing"

func TestDecodeHeader(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
		wantErr  bool
	}{
		{
			name:     "Plain ASCII",
			input:    "Move schedule w/c 3rd Feb",
			expected: "Move schedule w/c 3rd Feb",
			wantErr:  false,
		},
		{
			name:     "UTF-8 quoted-printable",
			input:    "=?UTF-8?Q?Transport_plan_=E2=80=93_March?=",
			expected: "Transport plan – March",
			wantErr:  false,
		},
		{
			name:     "ISO-8859-1 encoded",
			input:    "=?ISO-8859-1?Q?Caf=E9?=",
			expected: "Café",
			wantErr:  false,
		},
		{
			name:     "Base64 encoded",
			input:    "=?UTF-8?B?SGVsbG8gV29ybGQ=?=",
			expected: "Hello World",
			wantErr:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DecodeHeader(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("DecodeHeader() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if got != tt.expected {
				t.Errorf("DecodeHeader() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestExtractEmailAddress(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "Simple email",
			input:    "ops@example.com",
			expected: "ops@example.com",
		},
		{
			name:     "Email with name",
			input:    "Ops Team <ops@example.com>",
			expected: "ops@example.com",
		},
		{
			name:     "Email with quotes",
			input:    `"Dispatch Scheduling" <scheduling@example.com>`,
			expected: "scheduling@example.com",
		},
		{
			name:     "No email",
			input:    "Just some text",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExtractEmailAddress(tt.input)
			if got != tt.expected {
				t.Errorf("ExtractEmailAddress() = %v, want %v", got, tt.expected)
			}
		})
	}
}
