// Package pdg plays the iterated Prisoner's Dilemma between two players.
//
// Each player keeps a payout table indexed by the moves of both seats.
// Moves come from injected MoveSources, which are either fixed strategies
// or a Console reading choices from a human.
package pdg
