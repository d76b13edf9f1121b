package response

import (
	"time"

	"splitnest/internal/domain/entities"
)

type HouseResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	MemberIDs []string  `json:"member_ids"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func FromHouse(h entities.House) HouseResponse {
	return HouseResponse{
		ID:        h.ID,
		Name:      h.Name,
		MemberIDs: h.MemberIDs,
		CreatedAt: h.CreatedAt,
		UpdatedAt: h.UpdatedAt,
	}
}

func FromHouses(hs []entities.House) []HouseResponse {
	out := make([]HouseResponse, len(hs))
	for i, h := range hs {
		out[i] = FromHouse(h)
	}
	return out
}
