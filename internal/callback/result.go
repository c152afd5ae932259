package callback

// Result is the outcome of a key-press handler: either keep editing, or
// end the prompt with a submission. The two cases are explicit so a host
// can never mistake an empty submission for "stay on this prompt".
type Result struct {
	submit bool
	text   string
	caret  int
}

// Continue keeps the prompt in its editing loop.
func Continue() Result {
	return Result{}
}

// Submit ends the prompt with the given text and caret.
func Submit(text string, caret int) Result {
	return Result{submit: true, text: text, caret: caret}
}

// IsSubmit returns true if the result ends the prompt.
func (r Result) IsSubmit() bool {
	return r.submit
}

// Submission returns the submitted text and caret. ok is false for a
// Continue result, in which case both values are zero.
func (r Result) Submission() (text string, caret int, ok bool) {
	if !r.submit {
		return "", 0, false
	}
	return r.text, r.caret, true
}

// String returns "continue" or the submission in debug form.
func (r Result) String() string {
	if !r.submit {
		return "continue"
	}
	return "submit(" + r.text + ")"
}
