package usecase

// guard marks one mutating action as in flight. It is only touched with the
// orchestrator lock held; key records the target (e.g. the repository).
type guard struct {
	held bool
	key  string
}

func (x *guard) acquire(key string) bool {
	if x.held {
		return false
	}
	x.held = true
	x.key = key
	return true
}

func (x *guard) release() {
	x.held = false
	x.key = ""
}
