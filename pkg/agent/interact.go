package agent

import "context"

// InteractResponse resolves one interact request.
type InteractResponse struct {
	Approved bool
	Data     map[string]any
	// Synthetic marks responses the runtime fabricated on cancellation.
	Synthetic bool
}

// Denied reports a rejection, fabricated or real.
func (r InteractResponse) Denied() bool { return !r.Approved }

// ResolveInteraction delivers an out-of-band answer to a pending interact
// request. Returns false when no turn is waiting on that request id.
func (r *Runtime) ResolveInteraction(requestID string, approved bool, data map[string]any) bool {
	r.mu.Lock()
	ch, ok := r.interacts[requestID]
	if ok {
		delete(r.interacts, requestID)
	}
	r.mu.Unlock()
	if !ok {
		return false
	}
	ch <- InteractResponse{Approved: approved, Data: data}
	return true
}

// waitForInteraction blocks the turn until the request is resolved or the
// turn is cancelled; cancellation resolves with a synthetic denial.
func (r *Runtime) waitForInteraction(ctx context.Context, requestID string) InteractResponse {
	ch := make(chan InteractResponse, 1)
	r.mu.Lock()
	r.interacts[requestID] = ch
	r.mu.Unlock()

	select {
	case resp := <-ch:
		return resp
	case <-ctx.Done():
		r.mu.Lock()
		delete(r.interacts, requestID)
		r.mu.Unlock()
		return InteractResponse{Approved: false, Synthetic: true}
	}
}
