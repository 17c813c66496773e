package model

// WorldStats holds the color classification counts for one world.
type WorldStats struct {
	// WorldName is the display name of the world.
	WorldName string `json:"world_name"`

	// Standard is the number of elements using a standard color.
	Standard int `json:"standard"`

	// NonStandard is the number of elements using an STK color.
	NonStandard int `json:"non_standard"`
}

// NewWorldStats returns zeroed stats for the named world.
func NewWorldStats(worldName string) *WorldStats {
	return &WorldStats{WorldName: worldName}
}

// Add accumulates board counts into the world totals.
func (s *WorldStats) Add(standard, nonStandard int) {
	s.Standard += standard
	s.NonStandard += nonStandard
}

// Total returns the number of classified elements.
func (s *WorldStats) Total() int {
	return s.Standard + s.NonStandard
}

// STKPercentage returns the share of non-standard elements in percent.
// It is 0 when nothing was classified.
func (s *WorldStats) STKPercentage() float64 {
	total := s.Total()
	if total == 0 {
		return 0
	}
	return float64(s.NonStandard) / float64(total) * 100
}
