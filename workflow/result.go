package workflow

import "github.com/poiesic/answerit/core"

// Result is the outcome of a workflow run.
//
// A Result is returned for every run that completes the pipeline, even
// when verification found problems with the answer. Callers decide what
// to do with an answer that is not grounded or does not address the
// question; the run itself never discards a generation it has already
// paid for.
type Result struct {
	// Question is the question the run answered.
	Question string

	// Generation is the final answer text.
	Generation string

	// Source identifies where the evidence documents came from.
	Source core.Source

	// Documents is the evidence set the answer was generated from.
	Documents []*core.Document

	// Grounded reports whether the answer passed the hallucination check.
	// False means the retry budget was exhausted with no grounded answer.
	Grounded bool

	// AddressesQuestion reports whether the answer was judged to actually
	// address the question. Only meaningful when Grounded is true; a run
	// that exhausted its retries skips the usefulness check.
	AddressesQuestion bool

	// RetriesUsed counts regeneration attempts consumed by hallucination
	// verdicts. Zero when the first generation was grounded.
	RetriesUsed int
}
