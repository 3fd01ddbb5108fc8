package batch

// aggregate outcome of a batch job
type Result struct {
	Total     int
	Processed int
	Failed    int
	Progress  float64
}

// record folds one task outcome into the aggregate and returns the new
// progress fraction.
func (r *Result) record(failed bool) float64 {
	if failed {
		r.Failed++
	} else {
		r.Processed++
	}
	r.Progress = float64(r.Processed+r.Failed) / float64(r.Total)
	return r.Progress
}
