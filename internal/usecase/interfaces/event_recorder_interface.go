package interfaces

// IEventRecorder receives business events for metrics.
type IEventRecorder interface {
	EstimateCalculated(industryID, complexity string)
	EstimateSaved()
	FeatureDenied(feature string)
	SubscriptionChanged(plan, action string)
}

// NopEventRecorder discards every event.
type NopEventRecorder struct{}

func (NopEventRecorder) EstimateCalculated(string, string) {}
func (NopEventRecorder) EstimateSaved()                    {}
func (NopEventRecorder) FeatureDenied(string)              {}
func (NopEventRecorder) SubscriptionChanged(string, string) {}
