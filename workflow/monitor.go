package workflow

import "github.com/poiesic/answerit/ai"

// RunMonitor observes the stages of a workflow run. Implementations
// receive callbacks in pipeline order and must not block; the run waits
// for each callback to return.
type RunMonitor interface {
	// Start is called once at the beginning of a run.
	Start(question string)

	// AfterRoute is called with the routing decision. failedOpen is true
	// when the router errored or produced an unknown label and the run
	// fell back to web search.
	AfterRoute(target ai.RouteTarget, failedOpen bool)

	// AfterRetrieve is called after vector store retrieval.
	AfterRetrieve(count int)

	// AfterGradeDocuments is called after relevance grading with the
	// number of documents kept out of the total graded.
	AfterGradeDocuments(kept, total int)

	// AfterWebSearch is called after a web search, whether routed or
	// reached by fallback.
	AfterWebSearch(count int)

	// AfterGenerate is called after each generation attempt. attempt is
	// zero for the first generation and counts retries after that.
	AfterGenerate(attempt int)

	// AfterGroundednessCheck is called with each hallucination verdict.
	AfterGroundednessCheck(verdict ai.Groundedness)

	// AfterAnswerfulnessCheck is called with the usefulness verdict.
	// Skipped when the run exhausted its retries without a grounded answer.
	AfterAnswerfulnessCheck(verdict ai.Answerfulness)

	// Finish is called once with the final result.
	Finish(result *Result)
}

type noopRunMonitor struct{}

func (noopRunMonitor) Start(string)                             {}
func (noopRunMonitor) AfterRoute(ai.RouteTarget, bool)          {}
func (noopRunMonitor) AfterRetrieve(int)                        {}
func (noopRunMonitor) AfterGradeDocuments(int, int)             {}
func (noopRunMonitor) AfterWebSearch(int)                       {}
func (noopRunMonitor) AfterGenerate(int)                        {}
func (noopRunMonitor) AfterGroundednessCheck(ai.Groundedness)   {}
func (noopRunMonitor) AfterAnswerfulnessCheck(ai.Answerfulness) {}
func (noopRunMonitor) Finish(*Result)                           {}
