package core

import (
	"gonum.org/v1/gonum/floats"
)

// Distances is a map of human–readable names to distance functions.
// You can use it to choose a distance metric by name.
var Distances = map[string]DistanceFunc{
	"euclidean":         Euclidean,
	"squared_euclidean": SquaredEuclidean,
	"manhattan":         Manhattan,
}

// DistanceFunc computes the distance between two vectors.
// a: the first vector.
// b: the second vector.
// Returns the computed distance as a float64. Any function whose results are
// totally ordered can be used for ranking.
type DistanceFunc func(a, b []float64) float64

func checkVectors(a, b []float64) {
	if len(a) == 0 || len(b) == 0 {
		panic("vectors must not be empty")
	}
	if len(a) != len(b) {
		panic("vectors must have the same length")
	}
}

// Euclidean computes the Euclidean (L2) distance between two vectors.
func Euclidean(a, b []float64) float64 {
	checkVectors(a, b)
	return floats.Distance(a, b, 2)
}

// SquaredEuclidean computes the squared Euclidean distance between two vectors.
// It is the default ranking metric.
func SquaredEuclidean(a, b []float64) float64 {
	checkVectors(a, b)
	var sum float64
	for i := range a {
		d := a[i] - b[i]
		sum += d * d
	}
	return sum
}

// Manhattan computes the Manhattan (L1) distance between two vectors.
func Manhattan(a, b []float64) float64 {
	checkVectors(a, b)
	return floats.Distance(a, b, 1)
}
