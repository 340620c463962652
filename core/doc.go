// Package core contains the date picker state machine and its contracts.
//
// Allowed here:
// - the view state machine (granularities, transitions, navigation)
// - the picker controller and the snapshots it projects
// - key registries, message contracts and period jump parsing
//
// Not allowed here:
// - concrete rendering (see core/widgets)
// - configuration files and terminal programs
package core
