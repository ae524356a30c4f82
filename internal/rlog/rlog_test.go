package rlog

import "testing"

func TestNilLoggerIsSilent(t *testing.T) {
	var l *Logger
	l.Debugf("should not panic %d", 1)
	l.Warnf("should not panic %d", 2)
}

func TestLevelSilentSuppressesEverything(t *testing.T) {
	l := New("test", LevelSilent)
	l.Debugf("x")
	l.Warnf("y")
}

func TestLevelGating(t *testing.T) {
	warnOnly := New("test", LevelWarn)
	warnOnly.Debugf("should be suppressed")
	warnOnly.Warnf("should be emitted")

	debugLevel := New("test", LevelDebug)
	debugLevel.Debugf("should be emitted")
	debugLevel.Warnf("should be emitted")
}
