package report

// TimePoint is a single sample of a time series.
type TimePoint struct {
	TimeS float64 `json:"time_s" yaml:"time_s"`
	Value float64 `json:"value" yaml:"value"`
}

// TimeSeries is an ordered sequence of samples, time ascending.
type TimeSeries struct {
	Points []TimePoint `json:"points" yaml:"points"`
	Kind   string      `json:"kind,omitempty" yaml:"kind,omitempty"`
}

// Last returns the final point of the series; ok is false for an empty series.
func (ts TimeSeries) Last() (p TimePoint, ok bool) {
	if len(ts.Points) == 0 {
		return TimePoint{}, false
	}
	return ts.Points[len(ts.Points)-1], true
}

// isOrdered reports whether points are sorted by time, ascending.
func (ts TimeSeries) isOrdered() bool {
	for i := 1; i < len(ts.Points); i++ {
		if ts.Points[i].TimeS < ts.Points[i-1].TimeS {
			return false
		}
	}
	return true
}
