// Package timezone keeps every timestamp the service produces in one application
// timezone, configured with APP_TIMEZONE (IANA names such as "Asia/Jakarta").
//
//	now := timezone.Now()
//	due := timezone.StartOfDay(tripDate).AddDate(0, 0, -14)
//	formatted := timezone.Format(due, time.DateOnly)
//
// Tests can pin the clock with SetClock:
//
//	restore := timezone.SetClock(func() time.Time { return fixed })
//	defer restore()
package timezone
