package entities

import "time"

// House is the shared household whose members split the monthly rent.
//
// Storage model (DynamoDB):
//   - PK: id
//
// Membership notes:
//   - MemberIDs is the authoritative roster used when a proposal is submitted.
//   - Roster edits do not invalidate an open draft; the submission gate
//     re-checks the allocation set against the roster current at that moment.
type House struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	MemberIDs []string  `json:"member_ids"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// HasMember reports whether userID belongs to the house roster.
func (h House) HasMember(userID string) bool {
	for _, id := range h.MemberIDs {
		if id == userID {
			return true
		}
	}
	return false
}
