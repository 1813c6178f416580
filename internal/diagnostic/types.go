package diagnostic

import (
	"errors"
	"slices"
	"strings"

	"go.uber.org/multierr"

	"path-flattener/internal/common"
)

// Severity ranks a diagnostic. Only errors make a shape unusable.
type Severity int

const (
	SeverityInfo Severity = iota
	SeverityWarning
	SeverityError
)

var severityNames = [...]string{
	SeverityInfo:    "info",
	SeverityWarning: "warning",
	SeverityError:   "error",
}

func (s Severity) String() string {
	if s < 0 || int(s) >= len(severityNames) {
		return common.UnknownStr
	}

	return severityNames[s]
}

// Diagnostic is a single finding about a shape or one of its fields.
type Diagnostic struct {
	Severity Severity
	// Code identifies the kind of finding, e.g. "duplicate_field".
	Code    string
	Message string
	// Shape is the name of the root shape, FieldPath the dotted path below it.
	// Both may be empty.
	Shape     string
	FieldPath string
}

// String renders "[Shape] path: [code] message", leaving out empty parts.
func (d Diagnostic) String() string {
	var b strings.Builder

	if d.Shape != "" {
		b.WriteString("[" + d.Shape + "]")
	}

	if d.FieldPath != "" {
		if b.Len() > 0 {
			b.WriteByte(' ')
		}

		b.WriteString(d.FieldPath)
	}

	if b.Len() > 0 {
		b.WriteString(": ")
	}

	if d.Code != "" {
		b.WriteString("[" + d.Code + "] ")
	}

	b.WriteString(d.Message)

	return b.String()
}

// Diagnostics collects findings by severity in the order they were added.
type Diagnostics struct {
	Errors   []Diagnostic
	Warnings []Diagnostic
	Infos    []Diagnostic
}

// Add records d under its severity.
func (d *Diagnostics) Add(diag Diagnostic) {
	switch diag.Severity {
	case SeverityError:
		d.Errors = append(d.Errors, diag)
	case SeverityWarning:
		d.Warnings = append(d.Warnings, diag)
	default:
		d.Infos = append(d.Infos, diag)
	}
}

func (d *Diagnostics) AddError(code, message, shape, fieldPath string) {
	d.Add(Diagnostic{Severity: SeverityError, Code: code, Message: message, Shape: shape, FieldPath: fieldPath})
}

func (d *Diagnostics) AddWarning(code, message, shape, fieldPath string) {
	d.Add(Diagnostic{Severity: SeverityWarning, Code: code, Message: message, Shape: shape, FieldPath: fieldPath})
}

func (d *Diagnostics) AddInfo(code, message, shape, fieldPath string) {
	d.Add(Diagnostic{Severity: SeverityInfo, Code: code, Message: message, Shape: shape, FieldPath: fieldPath})
}

// HasErrors reports whether the shape is unusable.
func (d *Diagnostics) HasErrors() bool {
	return len(d.Errors) > 0
}

// HasCode reports whether an error or warning carries code.
func (d *Diagnostics) HasCode(code string) bool {
	return slices.ContainsFunc(slices.Concat(d.Errors, d.Warnings), func(diag Diagnostic) bool {
		return diag.Code == code
	})
}

// Merge appends all findings of other.
func (d *Diagnostics) Merge(other Diagnostics) {
	d.Errors = append(d.Errors, other.Errors...)
	d.Warnings = append(d.Warnings, other.Warnings...)
	d.Infos = append(d.Infos, other.Infos...)
}

// Error combines the error findings into one error, nil when there are none.
// multierr.Errors splits it back into one error per finding.
func (d *Diagnostics) Error() error {
	var err error
	for _, e := range d.Errors {
		err = multierr.Append(err, errors.New(e.String()))
	}

	return err
}
