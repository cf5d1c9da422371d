// Package animate counts displayed numbers up toward a target.
//
// An Animator adds target/steps to an accumulator on every tick of a
// Scheduler and stops for good once the accumulator reaches the target,
// emitting the exact target as its final frame. Metric wraps an Animator with
// the lifecycle a view needs: a new target restarts from zero, and Close
// releases the timer.
//
// Timers come from a Scheduler so the same code runs on the wall clock
// (TickerScheduler) and on a virtual clock in tests (ManualClock):
//
//	clock := animate.NewManualClock()
//	a, _ := animate.Start(clock, 100, animate.Config{Duration: time.Second, Steps: 10}, animate.Format{}, emit)
//	clock.Advance(time.Second) // ten frames, the last one is exactly 100
package animate
