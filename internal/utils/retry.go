package utils

import "time"

// Retry runs fn up to attempts times, doubling the delay between tries and
// capping it at maxDelay. Returns the last error if every attempt fails.
func Retry(attempts int, baseDelay, maxDelay time.Duration, fn func() error) error {
	var err error
	delay := baseDelay
	for i := 0; i < attempts; i++ {
		if err = fn(); err == nil {
			return nil
		}
		if i == attempts-1 {
			break
		}
		time.Sleep(delay)
		delay *= 2
		if delay > maxDelay {
			delay = maxDelay
		}
	}
	return err
}
