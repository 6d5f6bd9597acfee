package types

// ContainerInfo is a point-in-time view of one container.
type ContainerInfo struct {
	ID          string  `json:"id"`
	Kind        Kind    `json:"kind"`
	CurrentLoad float64 `json:"current_load"`
	MaxCapacity float64 `json:"max_capacity"`
	Limit       float64 `json:"limit"`
	EmptyWeight float64 `json:"empty_weight"`
	Hazardous   bool    `json:"hazardous"`
}

// ShipInfo is a point-in-time view of a ship and its roster.
type ShipInfo struct {
	ShipID        string          `json:"ship_id"`
	Name          string          `json:"name"`
	MaxSpeed      float64         `json:"max_speed"`
	Count         int             `json:"count"`
	MaxContainers int             `json:"max_containers"`
	TotalWeight   float64         `json:"total_weight"`
	MaxWeight     float64         `json:"max_weight"`
	Overweight    bool            `json:"overweight"`
	Containers    []ContainerInfo `json:"containers"`
}

// Describe returns the ContainerInfo for c.
func Describe(c Container) ContainerInfo {
	return ContainerInfo{
		ID:          c.ID(),
		Kind:        c.Kind(),
		CurrentLoad: c.CurrentLoad(),
		MaxCapacity: c.MaxCapacity(),
		Limit:       c.Limit(),
		EmptyWeight: c.EmptyWeight(),
		Hazardous:   Hazardous(c),
	}
}

// Info returns a snapshot of the ship reflecting the roster as it is now.
// Containers is never nil.
func (s *Ship) Info() ShipInfo {
	containers := make([]ContainerInfo, 0, len(s.roster))
	for _, c := range s.roster {
		containers = append(containers, Describe(c))
	}
	return ShipInfo{
		ShipID:        s.ShipID,
		Name:          s.config.Name,
		MaxSpeed:      s.config.MaxSpeed,
		Count:         len(s.roster),
		MaxContainers: s.config.MaxContainers,
		TotalWeight:   s.TotalWeight(),
		MaxWeight:     s.config.MaxWeight,
		Overweight:    s.Overweight(),
		Containers:    containers,
	}
}
