// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// OutcomeStatus describes how a negotiation ended.
type OutcomeStatus string

const (
	OutcomeSuccess OutcomeStatus = "success"
	OutcomeFailure OutcomeStatus = "failure"
	// OutcomeIgnored marks a trigger dropped because another negotiation was
	// still running.
	OutcomeIgnored OutcomeStatus = "ignored"
)

// Outcome is the result of a single negotiation.
type Outcome struct {
	Strategy StrategyKind
	Status   OutcomeStatus
	Err      error
}

// Succeeded reports whether the negotiation reached session establishment
// and the handoff accepted it.
func (o Outcome) Succeeded() bool {
	return o.Status == OutcomeSuccess
}
