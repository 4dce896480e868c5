package baseflow

const (
	// LHBeta is the Lyne & Hollick filter parameter,
	// 0.925 recommended by Nathan & McMahon (1990)
	LHBeta = 0.925

	// HYSEP smoothing window bounds, the separation interval is the odd
	// integer between 3 and 11 nearest to 2N (Pettyjohn & Henning, 1979)
	MinHysepWindow = 3
	MaxHysepWindow = 11

	// window used when the drainage area is unknown
	DefaultHysepWindow = 5

	// the HYSEP relation N = A^0.2 wants the drainage area in square miles
	SquareMilesPerKm2 = 0.3861022

	// Local needs at least this many turning points to interpolate between
	MinTurningPoints = 3
)
