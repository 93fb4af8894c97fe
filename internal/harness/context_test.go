package harness

import (
	"bytes"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
)

func TestContext_CountersPartitionTotal(t *testing.T) {
	var buf bytes.Buffer
	c := NewContext(&buf, false)

	c.Check("ok", true, "")
	c.Check("bad", false, "")
	c.ExpectEq("eq", 1, 1)
	c.ExpectEq("neq", 1, 2)
	c.ExpectExit("exit", 0, 0)
	c.Fail("spawn error", "details")

	assert.Equal(t, 3, c.Passed())
	assert.Equal(t, 3, c.Failed())
	assert.Equal(t, c.Passed()+c.Failed(), c.Total())
}

func TestContext_ExitCode(t *testing.T) {
	var buf bytes.Buffer

	c := NewContext(&buf, false)
	c.Check("ok", true, "")
	assert.Equal(t, 0, c.ExitCode())

	c.Check("bad", false, "")
	assert.Equal(t, 1, c.ExitCode())
}

func TestContext_VerbosityGatesPassLines(t *testing.T) {
	var quiet bytes.Buffer
	c := NewContext(&quiet, false)
	c.Check("all good", true, "")
	assert.NotContains(t, quiet.String(), "PASS:")

	var loud bytes.Buffer
	c = NewContext(&loud, true)
	c.Check("all good", true, "")
	assert.Contains(t, loud.String(), "PASS: all good")
}

func TestContext_FailureAlwaysPrints(t *testing.T) {
	var buf bytes.Buffer
	c := NewContext(&buf, false)
	c.Check("broken", false, "saw nothing")

	assert.Contains(t, buf.String(), "FAIL: broken")
	assert.Contains(t, buf.String(), "        saw nothing")
}

func TestContext_SectionTallies(t *testing.T) {
	var buf bytes.Buffer
	c := NewContext(&buf, false)

	c.Section("alpha")
	c.Check("a1", true, "")
	c.Check("a2", false, "")
	c.Section("beta")
	c.Check("b1", true, "")

	sections := c.Sections()
	assert.Equal(t, []SectionResult{
		{Name: "alpha", Passed: 1, Failed: 1},
		{Name: "beta", Passed: 1, Failed: 0},
	}, sections)
}

func TestContext_DefaultSection(t *testing.T) {
	var buf bytes.Buffer
	c := NewContext(&buf, false)
	c.Check("orphan", true, "")

	sections := c.Sections()
	assert.Len(t, sections, 1)
	assert.Equal(t, "(default)", sections[0].Name)
}

func TestContext_ExpectContains(t *testing.T) {
	var buf bytes.Buffer
	c := NewContext(&buf, false)

	assert.True(t, c.ExpectContains("has", "hello world", "world"))
	assert.False(t, c.ExpectContains("lacks", "hello world", "mars"))
	assert.True(t, c.ExpectNotContains("absent", "hello world", "mars"))
	assert.False(t, c.ExpectNotContains("present", "hello world", "world"))
}

func TestContext_ReportGolden(t *testing.T) {
	var buf bytes.Buffer
	c := NewContext(&buf, false)

	c.Section("echo")
	c.ExpectExit("echo exits 0", 0, 0)
	c.ExpectExit("echo prints argument", 1, 0)
	c.Summary()

	g := goldie.New(t)
	g.Assert(t, "report_basic", buf.Bytes())
}

func TestContext_SummaryAllPassed(t *testing.T) {
	var buf bytes.Buffer
	c := NewContext(&buf, false)
	c.Check("ok", true, "")
	c.Summary()

	assert.Contains(t, buf.String(), "Results: 1/1 passed")
	assert.Contains(t, buf.String(), "All tests passed")
}
