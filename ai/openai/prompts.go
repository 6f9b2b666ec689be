package openai

import (
	"fmt"
	"strings"

	"github.com/poiesic/answerit/core"
)

const routerSystemPrompt = `You are an expert at routing a user question to a vectorstore or web search.
The vectorstore contains documents related to:
- Agents and agent memory
- Prompt engineering techniques (including chain of thought prompting, few-shot prompting, etc.)
- Adversarial attacks in AI
- AI frameworks/libraries like LangGraph, LangChain
- Machine learning concepts and techniques

Use the vectorstore for questions on these topics. For all other questions (like cooking, weather, general knowledge), use web search.

Respond with ONLY valid JSON of the form {"datasource": "vectorstore"} or {"datasource": "websearch"}.
Do not include any preamble, explanation, or extraneous text outside the object.`

const relevanceSystemPrompt = `You are a grader assessing relevance of a retrieved document to a user question.
If the document contains keyword(s) or semantic meaning related to the question, grade it as relevant.
Give a binary score 'yes' or 'no' to indicate whether the document is relevant to the question.

Respond with ONLY valid JSON of the form {"binary_score": "yes"} or {"binary_score": "no"}.`

const groundednessSystemPrompt = `You are a grader assessing whether an LLM generation is grounded in / supported by a set of retrieved facts.
Give a binary score 'yes' or 'no'. 'Yes' means that the answer is grounded in / supported by the set of facts.

Respond with ONLY valid JSON of the form {"binary_score": "yes"} or {"binary_score": "no"}.`

const answerfulnessSystemPrompt = `You are a grader assessing whether an answer addresses / resolves a user question.
Give a binary score 'yes' or 'no'. 'Yes' means that the answer resolves the question.

Respond with ONLY valid JSON of the form {"binary_score": "yes"} or {"binary_score": "no"}.`

const generationSystemPrompt = `You are an assistant for question-answering tasks.
Use the following pieces of retrieved context to answer the question.
If you don't know the answer, just say that you don't know.
Use three sentences maximum and keep the answer concise.`

func buildRelevancePrompt(question, content string) string {
	return fmt.Sprintf("Retrieved document:\n\n%s\n\nUser question: %s", content, question)
}

func buildGroundednessPrompt(documents []*core.Document, answer string) string {
	return fmt.Sprintf("Set of facts:\n\n%s\n\nLLM generation: %s", joinDocuments(documents), answer)
}

func buildAnswerfulnessPrompt(question, answer string) string {
	return fmt.Sprintf("User question:\n\n%s\n\nLLM generation: %s", question, answer)
}

func buildGenerationPrompt(question string, documents []*core.Document) string {
	return fmt.Sprintf("Context:\n\n%s\n\nQuestion: %s", joinDocuments(documents), question)
}

// joinDocuments concatenates document contents for prompt context.
func joinDocuments(documents []*core.Document) string {
	parts := make([]string, 0, len(documents))
	for _, doc := range documents {
		if doc == nil || doc.Content == "" {
			continue
		}
		parts = append(parts, doc.Content)
	}
	return strings.Join(parts, "\n\n")
}
