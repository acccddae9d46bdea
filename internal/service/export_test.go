package service

import "time"

// SetTimeFunc replaces the clock used to stamp new messages.
func (s *MessageServiceImpl) SetTimeFunc(f func() time.Time) {
	s.timeFunc = f
}
