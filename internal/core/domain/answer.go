package domain

// Answer is the outcome of one assistant submission. Backend failures are
// carried as a value rather than an error so the display layer can render
// them like any other answer; the failure cause is kept separately for
// status reporting.
type Answer struct {
	// Question is the question text as submitted.
	Question string

	// Text is the answer shown to the user. On failure it is a
	// user-facing diagnostic embedding the cause.
	Text string

	// Product is the name of the resolved record the answer is grounded on.
	Product string

	// FromCache is true when the answer was served without a backend call.
	FromCache bool

	// Failed is true when the backend call did not produce an answer.
	// Failed answers are never cached, so a retry reaches the backend again.
	Failed bool

	// Cause holds the underlying failure description when Failed is set.
	Cause string
}

// PromptContext is the fully built input for one generation request.
type PromptContext struct {
	// System asserts the assistant's domain specialization and output language.
	System string

	// User is the grounding-constrained prompt: labeled record sections in a
	// fixed order, the literal question, and an answer marker.
	User string
}
