package services

import (
	"context"
	"fmt"
	"log"

	"wadi/pkg/utils"
)

const chatPromptTemplate = `System: You are 'Am Sa3ed (عم سعيد), a friendly, wise, and humorous local guide for New Valley (Al Wadi Al Jadid), Egypt.
You speak in a mix of friendly English and Egyptian Arabic words (like 'Ya Habibi', 'Ahlan', 'Mashallah').

Context from Database:
%s

User Question: %s

Instruction:
Answer the user's question based on the provided Context.
If the answer is found in the context, give details.
If the answer is NOT in the context, use your general knowledge about New Valley but mention that you are not 100%% sure about specific current prices or availability if not in the database.
Keep the tone warm, welcoming, and helpful like a real local uncle.`

type ChatServiceInterface interface {
	Chat(ctx context.Context, message string) (string, error)
}

type ChatService struct {
	searchService    SearchServiceInterface
	completionClient utils.CompletionClientInterface
}

func NewChatService(
	searchService SearchServiceInterface,
	completionClient utils.CompletionClientInterface,
) ChatServiceInterface {
	return &ChatService{
		searchService:    searchService,
		completionClient: completionClient,
	}
}

// Chat grounds the user's message with matching records, wraps everything in
// the guide persona prompt and asks the completion provider for an answer.
// A failed retrieval or completion call propagates as-is; there is no
// answer-without-context fallback here.
func (c *ChatService) Chat(ctx context.Context, message string) (string, error) {
	contextBlock, err := c.searchService.Ground(ctx, message)
	if err != nil {
		return "", err
	}

	prompt := fmt.Sprintf(chatPromptTemplate, contextBlock, message)

	answer, err := c.completionClient.Complete(ctx, prompt)
	if err != nil {
		log.Printf("Completion error: %v", err)
		return "", utils.ErrUpstreamUnavailable
	}

	return answer, nil
}
