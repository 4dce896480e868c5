package metrics

// Rating thresholds from the calibration guidelines of Moriasi et al.
// for NSE, RSR and PBIAS; the PFPE bands mirror the PBIAS shape. Kept as
// named constants so the table can be checked against the published source
// independently of the classifier.
const (
	// R2 and NSE share bands, rated Very Good on (0.65, 1.0]
	EfficiencyMax          = 1.0
	EfficiencyVeryGood     = 0.65
	EfficiencyGood         = 0.55
	EfficiencySatisfactory = 0.40

	// RSR rated Very Good on (0, 0.6]
	RSRVeryGood     = 0.6
	RSRGood         = 0.7
	RSRSatisfactory = 0.8

	// absolute percent bias, Very Good below 15
	PBIASVeryGood     = 15.0
	PBIASGood         = 20.0
	PBIASSatisfactory = 30.0

	// peak-flow percent error, Very Good below 10
	PFPEVeryGood     = 10.0
	PFPEGood         = 20.0
	PFPESatisfactory = 30.0
)
