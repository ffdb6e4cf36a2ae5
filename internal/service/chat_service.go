package service

import (
	"fmt"
	"time"
)

const chatPromptTemplate = `You are an AI Study Buddy, a helpful and encouraging tutor.
Subject context: %s

Rules:
- Give clear, step-by-step explanations
- Use simple language appropriate for students
- Be encouraging and supportive
- If it's a math problem, show each step
- If it's a concept, use analogies and examples
- Keep responses under 200 words for mobile

Student question: %s
`

type ChatService struct {
	ai TextGenerator
}

func NewChatService(ai TextGenerator) *ChatService {
	return &ChatService{ai: ai}
}

type ChatReply struct {
	Response  string `json:"response"`
	Timestamp string `json:"timestamp"`
}

// Ask wraps the student's message in the tutoring template and sends it to
// the model. The subject defaults to "General" when the client omits it; the
// word cap is only requested of the model, not enforced.
func (s *ChatService) Ask(message, subject string) (*ChatReply, error) {
	if subject == "" {
		subject = "General"
	}

	text, err := s.ai.GenerateContent(fmt.Sprintf(chatPromptTemplate, subject, message))
	if err != nil {
		return nil, err
	}

	return &ChatReply{
		Response:  text,
		Timestamp: time.Now().Format(time.RFC3339),
	}, nil
}
