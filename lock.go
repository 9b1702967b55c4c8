package fstream

import "github.com/Kirov7/fstream/driver"

// Lock takes an advisory lock on the underlying resource, blocking until
// it is acquired. Handles without locking report ErrLockNotSupported.
func (s *Stream) Lock() error {
	if s.handle == nil {
		return ErrNotOpen
	}
	l, ok := s.handle.(driver.Locker)
	if !ok {
		return ErrLockNotSupported
	}
	return l.Lock()
}

// TryLock attempts the advisory lock without blocking. Handles whose lock
// cannot be polled report ErrLockNotSupported.
func (s *Stream) TryLock() (bool, error) {
	if s.handle == nil {
		return false, ErrNotOpen
	}
	l, ok := s.handle.(driver.TryLocker)
	if !ok {
		return false, ErrLockNotSupported
	}
	return l.TryLock()
}

// Unlock releases a lock taken by Lock or TryLock.
func (s *Stream) Unlock() error {
	if s.handle == nil {
		return ErrNotOpen
	}
	l, ok := s.handle.(driver.Locker)
	if !ok {
		return ErrLockNotSupported
	}
	return l.Unlock()
}
