package ai

// RouteTarget is the router's verdict on where a question should be answered.
type RouteTarget int

const (
	// RouteUnknown is the zero value, returned alongside an error.
	RouteUnknown RouteTarget = iota
	// RouteVectorStore sends the question to local retrieval.
	RouteVectorStore
	// RouteWebSearch sends the question to live web search.
	RouteWebSearch
)

func (t RouteTarget) String() string {
	switch t {
	case RouteVectorStore:
		return "vectorstore"
	case RouteWebSearch:
		return "websearch"
	default:
		return "unknown"
	}
}

// Relevance is the relevance grader's verdict on a single document.
type Relevance int

const (
	RelevanceUnknown Relevance = iota
	DocumentRelevant
	DocumentIrrelevant
)

func (r Relevance) String() string {
	switch r {
	case DocumentRelevant:
		return "relevant"
	case DocumentIrrelevant:
		return "irrelevant"
	default:
		return "unknown"
	}
}

// Groundedness is the hallucination grader's verdict on an answer.
type Groundedness int

const (
	GroundednessUnknown Groundedness = iota
	AnswerGrounded
	AnswerHallucinated
)

func (g Groundedness) String() string {
	switch g {
	case AnswerGrounded:
		return "grounded"
	case AnswerHallucinated:
		return "hallucinated"
	default:
		return "unknown"
	}
}

// Answerfulness is the usefulness grader's verdict on an answer.
type Answerfulness int

const (
	AnswerfulnessUnknown Answerfulness = iota
	AnswerAddresses
	AnswerDoesNotAddress
)

func (a Answerfulness) String() string {
	switch a {
	case AnswerAddresses:
		return "addresses"
	case AnswerDoesNotAddress:
		return "does-not-address"
	default:
		return "unknown"
	}
}
