//go:build unit

package logger

import (
	"testing"
)

func TestNoopLogger(t *testing.T) {
	log := NewNoopLogger()

	// Must not panic or produce output.
	log.Logf("test message")
	log.Logf("test message with args: %s", "value")
	log.Warnf("warning: %s", "value")
}

func TestDefaultLogger_ThreadSafety(t *testing.T) {
	log := NewDefaultLogger()

	done := make(chan bool, 10)
	for i := 0; i < 10; i++ {
		go func(id int) {
			log.Logf("concurrent message from goroutine %d", id)
			log.Warnf("concurrent warning from goroutine %d", id)
			done <- true
		}(i)
	}

	for i := 0; i < 10; i++ {
		<-done
	}
}
