package models

// ParticipantID identifies a roster member independently of their display name
type ParticipantID string

// ItemID identifies a loot item independently of its display name
type ItemID string

// PendingID identifies an entry in the pending arrival queue
type PendingID string
