package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatClock(t *testing.T) {
	assert.Equal(t, "0:00", formatClock(0))
	assert.Equal(t, "2:17", formatClock(137.5))
	assert.Equal(t, "9:56", formatClock(596.5))
	assert.Equal(t, "61:01", formatClock(3661))
}

func TestFormatMinutes(t *testing.T) {
	assert.Equal(t, "-", formatMinutes(0))
	assert.Equal(t, "47m", formatMinutes(47))
	assert.Equal(t, "2h 28m", formatMinutes(148))
	assert.Equal(t, "1h 00m", formatMinutes(60))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "Inception", truncate("Inception", 20))
	assert.Equal(t, "The Lord of...", truncate("The Lord of the Rings", 14))
	assert.Equal(t, "千と千...", truncate("千と千尋の神隠し", 6))
}

func TestJoinOrDash(t *testing.T) {
	assert.Equal(t, "-", joinOrDash(nil))
	assert.Equal(t, "Action, Drama", joinOrDash([]string{"Action", "Drama"}))
}
