package laws

import (
	"errors"
	"fmt"

	tp "github.com/xlab/treeprint"
)

// ErrLawViolated is wrapped by every error returned from a failed Report.
var ErrLawViolated = errors.New("category law violated")

// Violation records a sample for which the two sides of a law differ.
type Violation struct {
	Sample string // the input, formatted with %v
	Left   string // left-hand side of the law
	Right  string // right-hand side of the law
}

func (v Violation) String() string {
	return fmt.Sprintf("%s: %s ≠ %s", v.Sample, v.Left, v.Right)
}

// Report is the outcome of checking one law.
type Report struct {
	Law        string
	Samples    int
	Violations []Violation
}

// OK is true if the law held for every sample.
func (r *Report) OK() bool {
	return len(r.Violations) == 0
}

// Err returns nil if r is OK, otherwise an error wrapping ErrLawViolated.
func (r *Report) Err() error {
	if r.OK() {
		return nil
	}
	return fmt.Errorf("%w: %s fails for %d of %d samples, first: %s",
		ErrLawViolated, r.Law, len(r.Violations), r.Samples, r.Violations[0])
}

func (r *Report) String() string {
	printer := tp.New()
	r.print(printer)
	return printer.String()
}

func (r *Report) print(printer tp.Tree) {
	if r.OK() {
		printer.AddNode(fmt.Sprintf("ok    %s (%d samples)", r.Law, r.Samples))
		return
	}
	branch := printer.AddBranch(fmt.Sprintf("FAIL  %s (%d of %d samples)",
		r.Law, len(r.Violations), r.Samples))
	for _, v := range r.Violations {
		branch.AddNode(v.String())
	}
}

// --- Suite -----------------------------------------------------------------

// Suite collects the reports for a family of arrows.
type Suite struct {
	Name    string
	reports []*Report
}

// NewSuite creates an empty suite.
func NewSuite(name string) *Suite {
	return &Suite{Name: name}
}

// Add appends a report and returns s, for chaining.
func (s *Suite) Add(r *Report) *Suite {
	assertThat(r != nil, "cannot add nil report to suite %q", s.Name)
	s.reports = append(s.reports, r)
	return s
}

// Reports returns the reports in the order they were added.
func (s *Suite) Reports() []*Report {
	return s.reports
}

// OK is true if every report is OK.
func (s *Suite) OK() bool {
	for _, r := range s.reports {
		if !r.OK() {
			return false
		}
	}
	return true
}

// Err joins the errors of all failed reports, or returns nil.
func (s *Suite) Err() error {
	var errs []error
	for _, r := range s.reports {
		if err := r.Err(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (s *Suite) String() string {
	header := fmt.Sprintf("%s\n", s.Name)
	printer := tp.New()
	for _, r := range s.reports {
		r.print(printer)
	}
	return header + printer.String()
}
