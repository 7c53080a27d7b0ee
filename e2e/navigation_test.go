//go:build e2e && unix

package main

import (
	"testing"

	"github.com/stretchr/testify/require"
)

const threeSlides = `---
title: E2E Talk
---
# First slide

Opening.

???
Remember to breathe.

---

# Second slide

Middle.

---

# Third slide

Closing.
`

func startDeck(t *testing.T, tf *TUITestFramework, content string, args ...string) string {
	t.Helper()
	path, err := tf.WriteDeck("talk.md", content)
	require.NoError(t, err, "Failed to write deck")

	// A fixed theme skips the terminal background query
	err = tf.StartApp(append([]string{path, "--theme", "dark"}, args...)...)
	require.NoError(t, err, "Failed to start app")
	require.True(t, tf.Ready(), "Should draw the first slide")
	return path
}

func TestKeyboardNavigation(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	startDeck(t, tf, threeSlides)
	require.True(t, tf.SeePlain("E2E Talk"), "Should show the deck title")
	require.True(t, tf.SeePlain("1 / 3"), "Should start on the first slide")

	mark := tf.Mark()
	tf.Next()
	require.True(t, tf.SeePlainSince(mark, "2 / 3"), "Right arrow should advance")
	require.True(t, tf.SeePlainSince(mark, "Middle."), "Second slide body should show")

	mark = tf.Mark()
	tf.Previous()
	require.True(t, tf.SeePlainSince(mark, "1 / 3"), "Left arrow should go back")
}

func TestRestartFromLastSlide(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	startDeck(t, tf, threeSlides)

	mark := tf.Mark()
	tf.SendKeys(KeyEnd)
	require.True(t, tf.SeePlainSince(mark, "3 / 3"), "End should jump to the last slide")
	require.True(t, tf.SeePlainSince(mark, "Restart"), "Last slide should offer a restart")

	mark = tf.Mark()
	tf.Enter()
	require.True(t, tf.SeePlainSince(mark, "1 / 3"), "Enter on the last slide should restart")
}

func TestStartFlag(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	path, err := tf.WriteDeck("talk.md", threeSlides)
	require.NoError(t, err)
	require.NoError(t, tf.StartApp(path, "--theme", "dark", "--start", "2"))
	require.True(t, tf.SeePlain("2 / 3"), "Should open on the requested slide")
}

func TestGoToPrompt(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	startDeck(t, tf, threeSlides)

	tf.SendKeys(":")
	require.True(t, tf.SeePlain("Go to slide:"), "Should show the go-to prompt")

	mark := tf.Mark()
	tf.SendKeys("3")
	tf.Enter()
	require.True(t, tf.SeePlainSince(mark, "3 / 3"), "Should jump to slide 3")
}
