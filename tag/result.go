package tag

// Outcome is the three-way answer of a check.
type Outcome int

const (
	// Failed means the check could not be performed; Result.Err says why.
	Failed Outcome = iota
	// Tagged means the directory holds a valid CACHEDIR.TAG.
	Tagged
	// NotTagged means the directory could be read and holds no valid tag.
	NotTagged
)

func (o Outcome) String() string {
	switch o {
	case Tagged:
		return "tagged"
	case NotTagged:
		return "not-tagged"
	default:
		return "failed"
	}
}

// Result is the outcome of [Check]. Err is non-nil exactly when Outcome is
// Failed.
type Result struct {
	Outcome Outcome
	Err     *Error
}

// Check is [Inspect] folded into a three-way result, for callers that want
// to switch over every outcome:
//
//	switch r := tag.Check(dir); r.Outcome {
//	case tag.Tagged:
//	case tag.NotTagged:
//	case tag.Failed:
//		log.Print(r.Err)
//	}
func Check(dir string) Result {
	r, err := Inspect(dir)
	if err != nil {
		return Result{Outcome: Failed, Err: Classify(dir, err)}
	}
	if r.Tagged() {
		return Result{Outcome: Tagged}
	}
	return Result{Outcome: NotTagged}
}
