package harness

import (
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
)

func TestNormalize_StripsCRLF(t *testing.T) {
	assert.Equal(t, "a\nb", Normalize("a\r\nb\r\n"))
}

func TestNormalize_StripsCSISequences(t *testing.T) {
	assert.Equal(t, "hello", Normalize("\x1b[32mhello\x1b[0m"))
	assert.Equal(t, "ab", Normalize("a\x1b[2K\x1b[1Gb"))
}

func TestNormalize_DropsBannerAndPromptLines(t *testing.T) {
	raw := "Winix Shell v1.0\n[Winix] C:\\> echo hi\nhi\n[Winix] C:\\> exit\n"
	assert.Equal(t, "hi", Normalize(raw))
}

func TestNormalize_DropsBlankLines(t *testing.T) {
	assert.Equal(t, "a\nb", Normalize("a\n\n\nb\n"))
}

func TestNormalize_TrimsTrailingWhitespace(t *testing.T) {
	assert.Equal(t, "a\nb", Normalize("a   \nb\t\n"))
}

func TestNormalize_Idempotent(t *testing.T) {
	raw := "Winix Shell v1.0\r\n\x1b[36m[Winix]\x1b[0m C:\\> dir\r\nresult  \r\n\r\n"
	once := Normalize(raw)
	assert.Equal(t, once, Normalize(once))
}

func TestNormalize_FullTranscript(t *testing.T) {
	raw := "Winix Shell v1.0\r\n" +
		"[Winix] C:\\> echo hi\r\n" +
		"\x1b[32mhi\x1b[0m\r\n" +
		"\r\n" +
		"[Winix] C:\\> exit\r\n"

	g := goldie.New(t)
	g.Assert(t, "transcript_normalized", []byte(Normalize(raw)))
}
