package sim

// OutputCouplingHandler routes one emitted value into the input bags of the
// models that should receive it. Implementations decide where a value goes from
// the sender's identity and the port it was emitted on; a handler that matches
// nothing simply leaves the bags untouched.
type OutputCouplingHandler interface {
	HandlePortValue(sender string, pv PortValue, inputs InputBags)
}

// Couplings applies a fixed sequence of handlers to every emitted value. The
// same value may be routed by more than one handler (fan-out).
type Couplings struct {
	handlers []OutputCouplingHandler
}

// NewCouplings builds the coupling set from handlers, applied in order.
func NewCouplings(handlers ...OutputCouplingHandler) *Couplings {
	return &Couplings{handlers: handlers}
}

// Route distributes every value in outputs, preserving bag order, so that each
// destination bag accumulates values in sender-processing order.
func (c *Couplings) Route(sender string, outputs Bag, inputs InputBags) {
	for _, pv := range outputs {
		for _, h := range c.handlers {
			h.HandlePortValue(sender, pv, inputs)
		}
	}
}
