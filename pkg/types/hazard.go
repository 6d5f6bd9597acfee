package types

// HazardNotifier is implemented by variants that can carry dangerous cargo.
// NotifyHazard only writes a warning; it changes no state.
type HazardNotifier interface {
	NotifyHazard(containerID string)
}

var (
	_ HazardNotifier = (*Liquid)(nil)
	_ HazardNotifier = (*Gas)(nil)
)

// Hazardous reports whether c is flagged as carrying risk: dangerous
// liquids and all gas containers.
func Hazardous(c Container) bool {
	switch v := c.(type) {
	case *Liquid:
		return v.IsDangerous()
	case *Gas:
		return true
	default:
		return false
	}
}

// NotifyIfHazardous sends a hazard warning for c when it is hazardous and
// supports notification. It reports whether a warning was sent.
func NotifyIfHazardous(c Container) bool {
	n, ok := c.(HazardNotifier)
	if !ok || !Hazardous(c) {
		return false
	}
	n.NotifyHazard(c.ID())
	return true
}
