package logger

import (
	"sync"
	"testing"
)

func TestGetIsSafeForConcurrentUse(t *testing.T) {
	if Get() == nil {
		t.Fatalf("Get() = nil, expected a non-nil logger")
	}

	var wg sync.WaitGroup
	for routine := 0; routine < 2; routine++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			for i := 0; i < 1000; i++ {
				if Get() == nil {
					t.Errorf("Get() = nil in goroutine %d, expected a non-nil logger", n)
					return
				}
			}
		}(routine)
	}
	wg.Wait()
}
