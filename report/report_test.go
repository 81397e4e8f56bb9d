package report_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/complx/report"
)

type fixed string

func (f fixed) Report() string { return string(f) }

type pointerReport struct{ text string }

func (p *pointerReport) Report() string { return p.text }

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestWrite_Sequence(t *testing.T) {
	var buf bytes.Buffer
	err := report.Write(&buf, fixed("first"), fixed("second"))
	require.NoError(t, err)
	assert.Equal(t, "first\nsecond\n", buf.String())
}

func TestWrite_NilReporter(t *testing.T) {
	var buf bytes.Buffer
	err := report.Write(&buf, fixed("ok"), nil)
	assert.ErrorIs(t, err, report.ErrNilReporter)
	assert.Equal(t, "ok\n", buf.String())
}

func TestWrite_TypedNilReporter(t *testing.T) {
	var buf bytes.Buffer
	var typed *pointerReport
	err := report.Write(&buf, &pointerReport{text: "ok"}, typed)
	assert.ErrorIs(t, err, report.ErrNilReporter)
	assert.Equal(t, "ok\n", buf.String())
}

func TestWrite_WriterFailure(t *testing.T) {
	err := report.Write(failingWriter{}, fixed("x"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")
}

func TestWrite_Empty(t *testing.T) {
	var buf bytes.Buffer
	assert.NoError(t, report.Write(&buf))
	assert.Empty(t, buf.String())
}
