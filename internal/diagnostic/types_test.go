package diagnostic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"
)

func TestDiagnostics_Empty(t *testing.T) {
	var d Diagnostics

	assert.False(t, d.HasErrors())
	assert.NoError(t, d.Error())
}

func TestDiagnostics_Error(t *testing.T) {
	var d Diagnostics
	d.AddError("duplicate_field", `duplicate field "page"`, "Query", "pagination.page")
	d.AddError("empty_name", "field name is empty", "Query", "")
	d.AddWarning("optional_leaf", "optional leaf", "", "pagination.filters.search")
	d.AddInfo("note", "just a note", "", "")

	require.True(t, d.HasErrors())
	assert.True(t, d.HasCode("duplicate_field"))
	assert.True(t, d.HasCode("optional_leaf"))
	assert.False(t, d.HasCode("note"))

	err := d.Error()
	require.Error(t, err)

	errs := multierr.Errors(err)
	require.Len(t, errs, 2)
	assert.Equal(t, `[Query] pagination.page: [duplicate_field] duplicate field "page"`, errs[0].Error())
	assert.Equal(t, "[Query]: [empty_name] field name is empty", errs[1].Error())
}

func TestDiagnostics_Add_BySeverity(t *testing.T) {
	var d Diagnostics
	d.Add(Diagnostic{Severity: SeverityWarning, Code: "w"})
	d.Add(Diagnostic{Severity: Severity(7), Code: "odd"})

	assert.False(t, d.HasErrors())
	assert.Len(t, d.Warnings, 1)
	require.Len(t, d.Infos, 1)
	assert.Equal(t, "odd", d.Infos[0].Code)
}

func TestDiagnostics_Merge(t *testing.T) {
	var a, b Diagnostics
	a.AddError("a", "first", "", "")
	b.AddError("b", "second", "", "")
	b.AddWarning("w", "warn", "", "")

	a.Merge(b)

	assert.Len(t, a.Errors, 2)
	assert.Len(t, a.Warnings, 1)
}

func TestDiagnostic_String(t *testing.T) {
	assert.Equal(t, "plain", Diagnostic{Message: "plain"}.String())
	assert.Equal(t, "[c] msg", Diagnostic{Code: "c", Message: "msg"}.String())
	assert.Equal(t, "a.b: msg", Diagnostic{FieldPath: "a.b", Message: "msg"}.String())
	assert.Equal(t, "[S] a: [c] msg", Diagnostic{Shape: "S", FieldPath: "a", Code: "c", Message: "msg"}.String())
}

func TestSeverity_String(t *testing.T) {
	assert.Equal(t, "info", SeverityInfo.String())
	assert.Equal(t, "warning", SeverityWarning.String())
	assert.Equal(t, "error", SeverityError.String())
	assert.Equal(t, "unknown", Severity(42).String())
	assert.Equal(t, "unknown", Severity(-1).String())
}
