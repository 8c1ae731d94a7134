// Package types provides type definitions for structured data used throughout the resume-layout system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// ActionDropBullet removes a bullet from the document
const ActionDropBullet = "drop_bullet"

// RepairAction represents a single content change proposed to make a document fit
type RepairAction struct {
	Type     string  `json:"type"`
	BulletID string  `json:"bullet_id,omitempty"`
	Section  string  `json:"section,omitempty"`
	Priority float64 `json:"priority"`
	Reason   string  `json:"reason"`
}

// RepairActions represents a collection of repair actions
type RepairActions struct {
	Actions []RepairAction `json:"actions"`
}
