package tasks

import (
	"testing"
)

func TestRenderTemplate(t *testing.T) {
	user := ReminderUser{
		Username:    "Alice",
		Email:       "alice@example.com",
		ProjectLink: "https://hub.example.com/projects/3fa85f64-5717-4562-b3fc-2c963f66afa6",
	}
	args := SendReminderArgs{
		Subject:     "Meeting reminder: Apollo",
		ProjectName: "Apollo",
		MeetingTime: "Mon, 24 Aug 2026 10:00:00 UTC",
	}

	tests := []struct {
		name     string
		template string
		expected string
	}{
		{
			name:     "all placeholders",
			template: "Hi $name, \"$project_name\" meets on $meeting_time. Details: $projectlink",
			expected: "Hi Alice, \"Apollo\" meets on Mon, 24 Aug 2026 10:00:00 UTC. Details: https://hub.example.com/projects/3fa85f64-5717-4562-b3fc-2c963f66afa6",
		},
		{
			name:     "username and email",
			template: "$username <$email>",
			expected: "Alice <alice@example.com>",
		},
		{
			name:     "no placeholders untouched",
			template: "plain text",
			expected: "plain text",
		},
		{
			name:     "repeated placeholder",
			template: "$name $name",
			expected: "Alice Alice",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := renderTemplate(tt.template, user, args)
			if result != tt.expected {
				t.Errorf("renderTemplate(%q) = %q; want %q", tt.template, result, tt.expected)
			}
		})
	}
}
