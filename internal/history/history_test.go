package history

import (
	"sync"
	"testing"
)

func TestLocker_SerializesSameUser(t *testing.T) {
	l := NewLocker()
	counter := 0

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			l.Lock("alice")
			defer l.Unlock("alice")
			counter++
		}()
	}
	wg.Wait()

	if counter != 50 {
		t.Errorf("counter = %d, want 50; increments raced", counter)
	}
}

func TestLocker_DifferentUsersDoNotBlock(t *testing.T) {
	l := NewLocker()
	l.Lock("alice")
	defer l.Unlock("alice")

	done := make(chan struct{})
	go func() {
		l.Lock("bob")
		l.Unlock("bob")
		close(done)
	}()

	// bob must proceed while alice's lock is held.
	<-done
}

func TestLocker_ReusesMutexPerUser(t *testing.T) {
	l := NewLocker()
	l.Lock("alice")
	l.Unlock("alice")
	l.Lock("alice")
	l.Unlock("alice")

	if len(l.users) != 1 {
		t.Errorf("expected one mutex for alice, got %d", len(l.users))
	}
}
