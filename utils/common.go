package utils

const (
	// BisectTol and NewtonTol are the default absolute step tolerances of the root finders
	BisectTol = 2.e-12
	NewtonTol = 1.e-12
	// MaxIterations is the default iteration budget for every iterative solver
	MaxIterations = 100
	// ParallelThreshold is the array length below which element-wise maps stay serial
	ParallelThreshold = 4096
)
