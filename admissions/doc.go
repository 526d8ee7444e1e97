// Package admissions implements the College Admissions matching game.
//
// Students rank colleges, colleges rank students and admit up to a fixed
// capacity. Game runs student-proposing deferred acceptance (Gale-Shapley)
// until no unmatched student has a college left to propose to, which yields
// the student-optimal stable matching.
package admissions
