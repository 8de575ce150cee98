// Package mix combines up to four images in the frequency domain.
//
// Each [Input] names an image, the Fourier component it contributes and a
// weight. A [Job] adds a region kind and size shared by every input. The
// engine runs one job at a time on a dedicated worker goroutine:
//
//  1. Resize every present input to the shape of the first one.
//  2. Transform and decompose each input, reporting progress per input.
//  3. Build one region mask for the job.
//  4. Rebuild each input's spectrum from its component pair, mask it,
//     weight it and add it to a running sum.
//  5. Inverse-transform the sum, clip it to 0..255 and deliver it.
//
// A faulty input is logged and skipped; it never aborts the job. The job
// fails only when no input can be mixed or the inverse transform fails, and
// then delivers a zero-filled placeholder image so observers are not left
// waiting.
//
// # Notifications
//
// [Job.OnProgress] and [Job.OnResult] run on the worker side, one at a time.
// Progress values are non-decreasing and end at 100 on completion and on
// failure. Cancellation is cooperative: [Handle.Cancel] is honored before
// each input and before delivery, after which no notification fires.
//
// Starting a job on a [Mixer] cancels the active job and waits for it to
// terminate first. Callbacks must not call [Mixer.Start] on the mixer that
// runs them.
//
// Weights are used as given; mapping slider positions to weights is the
// caller's concern (see [WeightFromPercent]).
package mix
