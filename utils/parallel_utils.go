package utils

import (
	"runtime"
	"sync"
)

type PartitionMap struct {
	MaxIndex       int // MaxIndex is partitioned into ParallelDegree partitions
	ParallelDegree int
	Partitions     [][2]int // Beginning and end index of partitions
}

func NewPartitionMap(ParallelDegree, maxIndex int) (pm *PartitionMap) {
	pm = &PartitionMap{
		MaxIndex:       maxIndex,
		ParallelDegree: ParallelDegree,
		Partitions:     make([][2]int, ParallelDegree),
	}
	for n := 0; n < ParallelDegree; n++ {
		pm.Partitions[n] = pm.Split1D(n)
	}
	return
}

func (pm *PartitionMap) GetBucketRange(bucketNum int) (kMin, kMax int) {
	kMin, kMax = pm.Partitions[bucketNum][0], pm.Partitions[bucketNum][1]
	return
}

func (pm *PartitionMap) Split1D(threadNum int) (bucket [2]int) {
	// This routine splits one dimension into pm.ParallelDegree pieces, with a maximum imbalance of one item
	var (
		Npart            = pm.MaxIndex / (pm.ParallelDegree)
		startAdd, endAdd int
		remainder        int
	)
	remainder = pm.MaxIndex % pm.ParallelDegree
	if remainder != 0 { // spread the remainder over the first chunks evenly
		if threadNum+1 > remainder {
			startAdd = remainder
			endAdd = 0
		} else {
			startAdd = threadNum
			endAdd = 1
		}
	}
	bucket[0] = threadNum*Npart + startAdd
	bucket[1] = bucket[0] + Npart + endAdd
	return
}

// ScalarFunc is a scalar relation that may reject its input
type ScalarFunc func(x float64) (float64, error)

// Apply maps f over X in order, stopping at the first error
func Apply(X []float64, f ScalarFunc) (Y []float64, err error) {
	Y = make([]float64, len(X))
	for i, x := range X {
		if Y[i], err = f(x); err != nil {
			return nil, err
		}
	}
	return
}

// ApplyParallel maps f over X with NP goroutines, each owning one partition of the
// index range. The reported error is the one at the lowest index, matching Apply.
// NP <= 0 uses GOMAXPROCS.
func ApplyParallel(X []float64, f ScalarFunc, NP int) (Y []float64, err error) {
	if NP <= 0 {
		NP = runtime.GOMAXPROCS(0)
	}
	if NP > len(X) {
		NP = len(X)
	}
	if NP <= 1 {
		return Apply(X, f)
	}
	var (
		pm   = NewPartitionMap(NP, len(X))
		errs = make([]error, NP)
		wg   = sync.WaitGroup{}
	)
	Y = make([]float64, len(X))
	for np := 0; np < NP; np++ {
		wg.Add(1)
		go func(np int) {
			defer wg.Done()
			kMin, kMax := pm.GetBucketRange(np)
			for k := kMin; k < kMax; k++ {
				var e error
				if Y[k], e = f(X[k]); e != nil {
					errs[np] = e
					return
				}
			}
		}(np)
	}
	wg.Wait()
	// Partitions are ordered, so the first failed partition holds the lowest failing index
	for _, e := range errs {
		if e != nil {
			return nil, e
		}
	}
	return
}

// Map picks the serial or parallel path by array length
func Map(X []float64, f ScalarFunc) ([]float64, error) {
	if len(X) < ParallelThreshold {
		return Apply(X, f)
	}
	return ApplyParallel(X, f, 0)
}
