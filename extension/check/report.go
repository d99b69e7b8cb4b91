// report.go defines the structured result shared by JSON output and MCP
// tools.

package check

import (
	"github.com/jpl-au/cachedir/cmd"
	"github.com/jpl-au/cachedir/internal/explain"
	"github.com/jpl-au/cachedir/tag"
)

// report is the JSON shape of a check.
type report struct {
	Path    string          `json:"path"`
	Tagged  bool            `json:"tagged"`
	Outcome string          `json:"outcome,omitempty"`
	State   string          `json:"state,omitempty"`
	Error   string          `json:"error,omitempty"`
	Kind    string          `json:"kind,omitempty"`
	Explain *explain.Result `json:"explain,omitempty"`
}

// resultReport builds a report from a three-way check result.
func resultReport(dir string, r tag.Result) report {
	rep := report{
		Path:    dir,
		Tagged:  r.Outcome == tag.Tagged,
		Outcome: r.Outcome.String(),
	}
	if r.Err != nil {
		rep.Error = r.Err.Error()
		rep.Kind = r.Err.Kind.String()
	}
	return rep
}

// stateReport builds a report from an inspection. With explain set, a
// present or wrong header gets a header comparison attached.
func stateReport(dir string, r tag.Report, err error, withExplain bool) report {
	rep := report{Path: dir}
	if err != nil {
		e := tag.Classify(dir, err)
		rep.Error = e.Error()
		rep.Kind = e.Kind.String()
		return rep
	}
	rep.Tagged = r.Tagged()
	rep.State = r.State.String()
	if withExplain && r.State != tag.Absent {
		x := explain.Header(r.Header)
		rep.Explain = &x
	}
	return rep
}

// outcomeCode maps a check outcome to the process exit code.
func outcomeCode(o tag.Outcome) int {
	switch o {
	case tag.Tagged:
		return cmd.ExitTagged
	case tag.NotTagged:
		return cmd.ExitNotTagged
	default:
		return cmd.ExitFailure
	}
}

// exit returns nil for a zero code so cobra sees success.
func exit(code int) error {
	if code == cmd.ExitTagged {
		return nil
	}
	return cmd.Exit(code)
}
