package admissions

import (
	"expvar"
)

var (
	roundsCount     = expvar.NewInt("admissions/rounds")
	proposalsCount  = expvar.NewInt("admissions/proposals")
	rejectionsCount = expvar.NewInt("admissions/rejections")
	evictionsCount  = expvar.NewInt("admissions/evictions")
)
