package cache

// NoopMetrics is a drop-in Metrics implementation that does nothing.
// It is the default when no observability backend is configured.
type NoopMetrics struct{}

func (NoopMetrics) Hit()     {}
func (NoopMetrics) Miss()    {}
func (NoopMetrics) Evict()   {}
func (NoopMetrics) Replace() {}
func (NoopMetrics) Tick()    {}
func (NoopMetrics) Size(int) {}

var _ Metrics = NoopMetrics{}
