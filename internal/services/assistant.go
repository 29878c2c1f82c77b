package services

import (
	"strings"
)

// AssistantService is the chat assistant stub. It recognizes a single
// login-help intent and answers everything else with a fallback, without
// calling any external NLU service.
type AssistantService struct{}

func NewAssistantService() *AssistantService {
	return &AssistantService{}
}

type AssistantReply struct {
	Intent string `json:"intent"`
	Reply  string `json:"reply"`
}

const (
	IntentLoginHelp = "login_help"
	IntentFallback  = "fallback"
)

// Handle classifies a chat message and returns the canned fulfillment.
func (s *AssistantService) Handle(message string) AssistantReply {
	m := strings.ToLower(message)
	if strings.Contains(m, "login") || strings.Contains(m, "log in") || strings.Contains(m, "sign in") {
		return AssistantReply{
			Intent: IntentLoginHelp,
			Reply:  "In order for you to login, you must fill out the CAS form on your device.",
		}
	}
	return AssistantReply{
		Intent: IntentFallback,
		Reply:  "Sorry, I can only help with login questions right now.",
	}
}
