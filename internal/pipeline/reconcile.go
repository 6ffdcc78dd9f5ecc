package pipeline

import "duomux/audio"

// Reconcile forces both mono buffers to an identical frame count, in
// place. The shorter stream is padded with trailing silence; streams are
// never shrunk by the padding step. A second pass then trims both to the
// smaller of the recomputed counts; after a clean pad that is a no-op,
// but decode and resample rounding upstream can leave the counts a few
// frames apart.
func Reconcile(left, right *audio.Buffer) {
	lf, rf := left.Frames(), right.Frames()
	if lf < rf {
		left.AppendSilence(rf - lf)
	} else if rf < lf {
		right.AppendSilence(lf - rf)
	}

	lf, rf = left.Frames(), right.Frames()
	floor := lf
	if rf < floor {
		floor = rf
	}
	left.TrimFrames(floor)
	right.TrimFrames(floor)
}
