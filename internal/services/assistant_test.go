package services

import "testing"

func TestAssistantRecognizesLoginHelp(t *testing.T) {
	svc := NewAssistantService()

	cases := []struct {
		message string
		intent  string
	}{
		{"how do I login?", IntentLoginHelp},
		{"I cannot log in to my account", IntentLoginHelp},
		{"Help me SIGN IN please", IntentLoginHelp},
		{"when is move-in day?", IntentFallback},
		{"", IntentFallback},
	}

	for _, tc := range cases {
		reply := svc.Handle(tc.message)
		if reply.Intent != tc.intent {
			t.Errorf("Handle(%q) intent = %q, want %q", tc.message, reply.Intent, tc.intent)
		}
		if reply.Reply == "" {
			t.Errorf("Handle(%q) returned an empty reply", tc.message)
		}
	}
}
