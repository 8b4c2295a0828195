package cache

// InFlightUsers returns the number of users with a running computation.
func (r *Reports) InFlightUsers() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.inFlight)
}
