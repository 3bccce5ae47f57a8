package utils

const (
	NODETOL = 1.e-12
	// ZEROTOL is the snap-to-zero threshold applied to freshly built lattice matrices
	ZEROTOL = 1.e-5
	// PARALLELTOL bounds 1-|cos| for two unit vectors to be treated as parallel
	PARALLELTOL = 1.e-10
	// SINGULARTOL bounds |det| relative to the product of column norms, 4 machine epsilon
	SINGULARTOL = 4 * 2.220446049250313e-16
)
