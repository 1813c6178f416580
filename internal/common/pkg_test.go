package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPkgAlias(t *testing.T) {
	assert.Equal(t, "", PkgAlias(""))
	assert.Equal(t, "time", PkgAlias("time"))
	assert.Equal(t, "pagination", PkgAlias("path-flattener/examples/pagination"))
}

func TestQualifiedName(t *testing.T) {
	assert.Equal(t, "string", QualifiedName("", "string"))
	assert.Equal(t, "time.Time", QualifiedName("time", "Time"))
	assert.Equal(t, "pagination.Order", QualifiedName("path-flattener/examples/pagination", "Order"))
}
